package game

import (
	"errors"
	"testing"
)

func TestSnapshotRestoresBoardState(t *testing.T) {
	board, err := NewBoard(Config{Width: 6, Height: 6, NumMines: 6, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}

	// Put the board into a mixed state before snapshotting
reveal:
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if !board.CellAt(x, y).IsMine() {
				if _, err := board.Reveal(x, y); err != nil {
					t.Fatal(err)
				}
				break reveal
			}
		}
	}
	if !board.CellAt(5, 5).IsRevealed() {
		if err := board.ToggleFlag(5, 5); err != nil {
			t.Fatal(err)
		}
	}

	snapshot, err := LoadSnapshot(board.Snapshot().Serialize())
	if err != nil {
		t.Fatal(err)
	}
	restored, err := snapshot.Restore(false)
	if err != nil {
		t.Fatal(err)
	}

	if restored.Seed() != board.Seed() {
		t.Errorf("restored seed = %d, want %d", restored.Seed(), board.Seed())
	}
	if restored.NumMines() != board.NumMines() || restored.NumFlags() != board.NumFlags() ||
		restored.NumUnrevealed() != board.NumUnrevealed() {
		t.Errorf("restored counters = (%d, %d, %d), want (%d, %d, %d)",
			restored.NumMines(), restored.NumFlags(), restored.NumUnrevealed(),
			board.NumMines(), board.NumFlags(), board.NumUnrevealed())
	}

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			original, restoredCell := board.CellAt(x, y), restored.CellAt(x, y)
			if original.IsMine() != restoredCell.IsMine() ||
				original.IsRevealed() != restoredCell.IsRevealed() ||
				original.IsFlagged() != restoredCell.IsFlagged() ||
				original.AdjacentMines() != restoredCell.AdjacentMines() {
				t.Fatalf("cell (%d, %d) differs after restore", x, y)
			}
		}
	}
}

func TestSnapshotRestoreFresh(t *testing.T) {
	snapshot := &BoardSnapshot{Seed: 5, SerializedBoard: "*F.\nf#."}

	board, err := snapshot.Restore(true)
	if err != nil {
		t.Fatal(err)
	}

	if board.NumFlags() != 0 || board.NumUnrevealed() != 4 {
		t.Errorf("fresh restore counters = (%d flags, %d unrevealed), want (0, 4)",
			board.NumFlags(), board.NumUnrevealed())
	}
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if cell.IsRevealed() || cell.IsFlagged() || cell.IsLosingMine() {
				t.Errorf("cell (%d, %d) kept state through a fresh restore", x, y)
			}
		}
	}

	// Mines survive a fresh restore
	if !board.CellAt(0, 0).IsMine() || !board.CellAt(1, 0).IsMine() {
		t.Error("mines lost in fresh restore")
	}
}

func TestSnapshotRestoreRejectsMalformedBoards(t *testing.T) {
	for _, serialized := range []string{
		"O#\n###",  // ragged rows
		"Ox\n##",   // unknown cell rune
		"##\n##",   // no mines
		"OO\nOO",   // nothing but mines
	} {
		snapshot := &BoardSnapshot{Seed: 1, SerializedBoard: serialized}
		if _, err := snapshot.Restore(false); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Restore(%q) = %v, want ErrInvalidConfiguration", serialized, err)
		}
	}
}
