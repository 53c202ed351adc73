package game

import (
	"fmt"
	"math/rand"
)

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	minesPlaced   bool
	numUnrevealed int // non-mine cells still hidden
	numFlags      int

	seed int64
	rand *rand.Rand
}

// NewBoard builds a board from the config. In Classic mode mines are
// placed immediately; in Safe mode placement is deferred to the first
// reveal so the revealed cell and its neighbors stay clear.
func NewBoard(config Config) (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.Restore(config.SnapshotFresh)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := emptyBoard(config.Width, config.Height, config.Seed)
	board.numMines = config.NumMines

	if config.Mode == Classic {
		board.placeMines(nil)
	}
	return board, nil
}

func emptyBoard(width, height int, seed int64) *Board {
	board := &Board{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
		seed:   seed,
		rand:   rand.New(rand.NewSource(seed)),
	}

	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		board.cells[y] = row

		for x := 0; x < width; x++ {
			cell := &row[x]
			cell.board = board
			cell.x, cell.y = x, y
		}
	}

	return board
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (board *Board) neighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for _, offset := range neighborOffsets {
		if neighbor := board.CellAt(cell.x+offset[0], cell.y+offset[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// placeMines scatters numMines mines uniformly at random, never under
// safe or its neighbors (unless the board is too crowded to honor the
// full exclusion zone, in which case only safe itself is kept clear).
func (board *Board) placeMines(safe *Cell) {
	excluded := make(map[*Cell]struct{})
	if safe != nil {
		excluded[safe] = struct{}{}
		for _, neighbor := range board.neighbors(safe) {
			excluded[neighbor] = struct{}{}
		}
		if board.numMines > board.NumCells()-len(excluded) {
			excluded = map[*Cell]struct{}{safe: {}}
		}
	}

	placed := 0
	for placed < board.numMines {
		x, y := board.rand.Intn(board.width), board.rand.Intn(board.height)
		cell := board.CellAt(x, y)
		if cell.isMine {
			continue
		}
		if _, isExcluded := excluded[cell]; isExcluded {
			continue
		}

		cell.isMine = true
		placed++
	}

	board.computeAdjacency()
	board.numUnrevealed = board.NumCells() - board.numMines
	board.minesPlaced = true
}

func (board *Board) computeAdjacency() {
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := board.CellAt(x, y)

			count := 0
			for _, neighbor := range board.neighbors(cell) {
				if neighbor.isMine {
					count++
				}
			}
			cell.numMines = count
		}
	}
}

// Reveal uncovers the cell at (x, y). Revealing an already-revealed or
// flagged cell is a no-op. Revealing a mine marks it as the losing
// mine; revealing a zero-adjacency cell flood-fills its region. The
// newly revealed cells are returned.
func (board *Board) Reveal(x, y int) ([]*Cell, error) {
	cell := board.CellAt(x, y)
	if cell == nil {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	if cell.isRevealed || cell.isFlagged {
		return nil, nil
	}

	if !board.minesPlaced {
		board.placeMines(cell)
	}

	if cell.isMine {
		cell.isRevealed = true
		cell.isLosingMine = true
		return []*Cell{cell}, nil
	}

	return board.flood(cell), nil
}

// ToggleFlag flips the flag on the cell at (x, y). Revealed cells
// cannot be flagged.
func (board *Board) ToggleFlag(x, y int) error {
	cell := board.CellAt(x, y)
	if cell == nil {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	if cell.isRevealed {
		return nil
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
	return nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// NumUnrevealed counts the non-mine cells still hidden; zero means the
// board is cleared.
func (board *Board) NumUnrevealed() int {
	return board.numUnrevealed
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}
