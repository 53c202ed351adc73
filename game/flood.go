package game

import "github.com/gammazero/deque"

// flood reveals start and, breadth-first, every 8-connected cell
// reachable through zero-adjacency cells, stopping at the numbered
// frontier. Flagged cells are left alone. Mines are unreachable here:
// expansion only continues through cells with no adjacent mines.
func (board *Board) flood(start *Cell) []*Cell {
	var frontier deque.Deque
	enqueued := make(map[*Cell]struct{})

	frontier.PushBack(start)
	enqueued[start] = struct{}{}

	var revealed []*Cell
	for frontier.Len() > 0 {
		cell := frontier.PopFront().(*Cell)
		if cell.isRevealed || cell.isFlagged {
			continue
		}

		cell.isRevealed = true
		board.numUnrevealed--
		revealed = append(revealed, cell)

		if cell.numMines == 0 {
			for _, neighbor := range board.neighbors(cell) {
				if _, seen := enqueued[neighbor]; !seen {
					enqueued[neighbor] = struct{}{}
					frontier.PushBack(neighbor)
				}
			}
		}
	}

	return revealed
}
