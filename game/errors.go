package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when board dimensions are
	// non-positive or the mine count doesn't fit the grid.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
