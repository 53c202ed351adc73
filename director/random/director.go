package random

import (
	"math/rand"
	"time"

	"github.com/jrudowski/minesweep/game"
)

// Director reveals uniformly random hidden, unflagged cells.
type Director struct {
	session *game.Session
	rand    *rand.Rand
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (director *Director) Act() (game.CellAction, bool) {
	board := director.session.Board()

	var candidates []*game.Cell
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if !cell.IsRevealed() && !cell.IsFlagged() {
				candidates = append(candidates, cell)
			}
		}
	}

	if len(candidates) == 0 {
		return game.CellAction{}, false
	}

	cell := candidates[director.rand.Intn(len(candidates))]
	return game.CellAction{X: cell.X(), Y: cell.Y(), Action: game.ActionReveal}, true
}

func (director *Director) End() {}
