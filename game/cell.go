package game

import "fmt"

type Cell struct {
	board *Board

	x, y     int
	numMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// AdjacentMines is the number of the cell's (up to 8) neighbors holding
// a mine. Computed once, after mine placement.
func (cell *Cell) AdjacentMines() int {
	return cell.numMines
}

// IsLosingMine reports whether revealing this cell ended the game.
func (cell *Cell) IsLosingMine() bool {
	return cell.isLosingMine
}

// Neighbors returns the cell's 8-connected neighbors, fewer at borders.
func (cell *Cell) Neighbors() []*Cell {
	return cell.board.neighbors(cell)
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c string, fresh bool) bool {
	switch c {
	case "*", "F", "O":
		cell.isMine = true

		switch c {
		case "*":
			if !fresh {
				cell.isLosingMine = true
				cell.isRevealed = true
			}
		case "F":
			if !fresh {
				cell.isFlagged = true
			}
		}
	case "f":
		if !fresh {
			cell.isFlagged = true
		}
	case ".":
		if !fresh {
			cell.isRevealed = true
		}
	case "#":
	default:
		return false
	}

	return true
}
