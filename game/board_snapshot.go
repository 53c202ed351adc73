package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the YAML form of a board: its seed and one rune per
// cell ('O' hidden mine, '*' losing mine, 'F' flagged mine, 'f' flag,
// '.' revealed, '#' hidden).
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.height)
	for y := 0; y < board.height; y++ {
		var row strings.Builder
		for x := 0; x < board.width; x++ {
			row.WriteString(board.CellAt(x, y).serialize())
		}
		rows[y] = row.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Restore rebuilds the board the snapshot was taken from. With fresh
// set, all cells come back unrevealed and unflagged.
func (snapshot *BoardSnapshot) Restore(fresh bool) (*Board, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")

	height := len(rows)
	width := len(rows[0])
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidConfiguration)
	}

	board := emptyBoard(width, height, snapshot.Seed)

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: ragged snapshot row %d", ErrInvalidConfiguration, y)
		}

		for x := 0; x < width; x++ {
			cell := board.CellAt(x, y)
			if !cell.deserialize(string(row[x]), fresh) {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)",
					ErrInvalidConfiguration, row[x], x, y)
			}

			if cell.isMine {
				board.numMines++
			} else if !cell.isRevealed {
				board.numUnrevealed++
			}
			if cell.isFlagged {
				board.numFlags++
			}
		}
	}

	if board.numMines == 0 || board.numMines >= board.NumCells() {
		return nil, fmt.Errorf("%w: snapshot holds %d mines", ErrInvalidConfiguration, board.numMines)
	}

	board.computeAdjacency()
	board.minesPlaced = true

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
