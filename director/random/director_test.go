package random

import (
	"testing"

	"github.com/jrudowski/minesweep/game"
)

func TestDirectorPicksOnlyHiddenUnflaggedCells(t *testing.T) {
	session, err := game.NewSession(game.Config{
		Snapshot: &game.BoardSnapshot{Seed: 1, SerializedBoard: "O#\n.f"},
	})
	if err != nil {
		t.Fatal(err)
	}

	director := &Director{}
	director.Init(session)
	defer director.End()

	for i := 0; i < 20; i++ {
		action, ok := director.Act()
		if !ok {
			t.Fatal("director found no move")
		}
		cell := session.Board().CellAt(action.X, action.Y)
		if cell.IsRevealed() || cell.IsFlagged() {
			t.Fatalf("director picked %+v, a revealed or flagged cell", action)
		}
	}
}

func TestDirectorHasNoMoveOnExhaustedBoard(t *testing.T) {
	session, err := game.NewSession(game.Config{
		Snapshot: &game.BoardSnapshot{Seed: 1, SerializedBoard: "F.\n.."},
	})
	if err != nil {
		t.Fatal(err)
	}

	director := &Director{}
	director.Init(session)

	if action, ok := director.Act(); ok {
		t.Errorf("director played %+v on an exhausted board, want no move", action)
	}
}
