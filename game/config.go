package game

import "fmt"

type Mode int

const (
	// Classic places mines at construction time; the first click can
	// lose the game.
	Classic Mode = iota
	// Safe places mines on the first reveal, keeping the revealed cell
	// and all of its neighbors clear.
	Safe
)

type Config struct {
	Width, Height int
	NumMines      int
	Mode          Mode

	Seed int64

	// Snapshot to load the board from, instead of generating one
	Snapshot *BoardSnapshot
	// Whether to reset all cells to unrevealed when loading Snapshot
	SnapshotFresh bool

	// Path to directory where snapshots of finished boards are saved
	SnapshotDir string
}

func NewConfig() Config {
	return Config{
		Width:         Easy.Width,
		Height:        Easy.Height,
		NumMines:      Easy.NumMines,
		Mode:          Classic,
		SnapshotFresh: true,
	}
}

func (config Config) Validate() error {
	if config.Snapshot != nil {
		return nil
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidConfiguration, config.Width, config.Height)
	}
	if config.NumMines <= 0 || config.NumMines >= config.Width*config.Height {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d board",
			ErrInvalidConfiguration, config.NumMines, config.Width, config.Height)
	}
	return nil
}

// Preset is a named standard board configuration.
type Preset struct {
	Name          string
	Width, Height int
	NumMines      int
}

var (
	Easy   = Preset{Name: "easy", Width: 8, Height: 8, NumMines: 10}
	Medium = Preset{Name: "medium", Width: 16, Height: 16, NumMines: 40}
	Hard   = Preset{Name: "hard", Width: 30, Height: 16, NumMines: 99}
)

var Presets = []Preset{Easy, Medium, Hard}

func PresetByName(name string) (Preset, bool) {
	for _, preset := range Presets {
		if preset.Name == name {
			return preset, true
		}
	}
	return Preset{}, false
}

// Apply copies the preset's dimensions and mine count onto the config.
func (preset Preset) Apply(config *Config) {
	config.Width = preset.Width
	config.Height = preset.Height
	config.NumMines = preset.NumMines
}
