package constraint

import (
	"github.com/sirupsen/logrus"

	"github.com/jrudowski/minesweep/director/random"
	"github.com/jrudowski/minesweep/game"
	"github.com/jrudowski/minesweep/util/collections"
)

type coord struct {
	x, y int
}

// Director plays deduced moves first: neighbors that must be mines get
// flagged, neighbors that cannot be mines get revealed. When no move is
// forced it guesses the cell with the lowest mine probability, and with
// no information at all it falls back to a random reveal.
type Director struct {
	session  *game.Session
	fallback *random.Director

	pending []game.CellAction
	queued  collections.Set[coord]
}

func (director *Director) Init(session *game.Session) {
	director.session = session

	director.fallback = &random.Director{}
	director.fallback.Init(session)
}

func (director *Director) Act() (game.CellAction, bool) {
	if action, ok := director.nextPending(); ok {
		return action, true
	}

	director.queued = make(collections.Set[coord])
	director.scan()
	if action, ok := director.nextPending(); ok {
		logrus.WithFields(logrus.Fields{"strategy": "deduction", "action": action}).Debug("director move")
		return action, true
	}

	if action, ok := director.lowestProbability(); ok {
		logrus.WithFields(logrus.Fields{"strategy": "probability", "action": action}).Debug("director move")
		return action, true
	}

	action, ok := director.fallback.Act()
	if ok {
		logrus.WithFields(logrus.Fields{"strategy": "random", "action": action}).Debug("director move")
	}
	return action, ok
}

func (director *Director) End() {
	director.pending = nil
	director.queued = nil
}

// nextPending pops queued actions, skipping any the board has since
// made redundant (a cascade may reveal a cell we planned to act on).
func (director *Director) nextPending() (game.CellAction, bool) {
	board := director.session.Board()

	for len(director.pending) > 0 {
		action := director.pending[0]
		director.pending = director.pending[1:]

		cell := board.CellAt(action.X, action.Y)
		if cell == nil || cell.IsRevealed() {
			continue
		}
		if action.Action == game.ActionReveal && cell.IsFlagged() {
			continue
		}
		if action.Action == game.ActionFlag && cell.IsFlagged() {
			continue
		}

		return action, true
	}
	return game.CellAction{}, false
}

// scan walks every revealed numbered cell and queues its forced moves:
// if the flags around it already satisfy its count, the remaining
// hidden neighbors are safe; if the hidden neighbors are exactly the
// missing mines, they all get flagged.
func (director *Director) scan() {
	board := director.session.Board()

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if !cell.IsRevealed() || cell.AdjacentMines() == 0 {
				continue
			}

			hidden, numFlagged := director.hiddenNeighbors(cell)
			if len(hidden) == 0 {
				continue
			}

			switch {
			case numFlagged == cell.AdjacentMines():
				director.enqueue(hidden, game.ActionReveal)
			case numFlagged+len(hidden) == cell.AdjacentMines():
				director.enqueue(hidden, game.ActionFlag)
			}
		}
	}
}

func (director *Director) enqueue(cells []*game.Cell, action game.ActionType) {
	for _, cell := range cells {
		pos := coord{cell.X(), cell.Y()}
		if director.queued.Contains(pos) {
			continue
		}
		director.queued.Add(pos)

		director.pending = append(director.pending, game.CellAction{
			X:      cell.X(),
			Y:      cell.Y(),
			Action: action,
		})
	}
}

// hiddenNeighbors returns the hidden, unflagged neighbors of cell along
// with the number of flagged neighbors.
func (director *Director) hiddenNeighbors(cell *game.Cell) ([]*game.Cell, int) {
	var hidden []*game.Cell
	numFlagged := 0

	for _, neighbor := range cell.Neighbors() {
		if neighbor.IsRevealed() {
			continue
		}

		if neighbor.IsFlagged() {
			numFlagged++
		} else {
			hidden = append(hidden, neighbor)
		}
	}

	return hidden, numFlagged
}

// lowestProbability guesses the hidden cell with the smallest chance of
// being a mine, taking each cell's most optimistic constraint.
func (director *Director) lowestProbability() (game.CellAction, bool) {
	board := director.session.Board()

	probabilities := make(map[*game.Cell]float64)
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if !cell.IsRevealed() || cell.AdjacentMines() == 0 {
				continue
			}

			hidden, numFlagged := director.hiddenNeighbors(cell)
			if len(hidden) == 0 {
				continue
			}

			probability := float64(cell.AdjacentMines()-numFlagged) / float64(len(hidden))
			for _, neighbor := range hidden {
				if past, seen := probabilities[neighbor]; !seen || probability < past {
					probabilities[neighbor] = probability
				}
			}
		}
	}

	var best *game.Cell
	bestProbability := 1.0
	for cell, probability := range probabilities {
		if best == nil || probability < bestProbability {
			best = cell
			bestProbability = probability
		}
	}

	if best == nil || bestProbability >= 1 {
		return game.CellAction{}, false
	}
	return game.CellAction{X: best.X(), Y: best.Y(), Action: game.ActionReveal}, true
}
