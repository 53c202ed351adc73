package constraint

import (
	"strings"
	"testing"

	"github.com/jrudowski/minesweep/game"
)

func sessionFromRows(t *testing.T, rows ...string) *game.Session {
	t.Helper()

	session, err := game.NewSession(game.Config{
		Snapshot: &game.BoardSnapshot{Seed: 1, SerializedBoard: strings.Join(rows, "\n")},
	})
	if err != nil {
		t.Fatalf("building test session: %v", err)
	}
	return session
}

// A revealed 1 whose hidden neighbors are exactly its missing mines
// forces a flag.
func TestDirectorFlagsForcedMine(t *testing.T) {
	session := sessionFromRows(t,
		"O.",
		"..",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	action, ok := director.Act()
	if !ok {
		t.Fatal("director found no move")
	}
	if action.Action != game.ActionFlag || action.X != 0 || action.Y != 0 {
		t.Fatalf("director played %+v, want flag at (0, 0)", action)
	}

	if err := session.Apply(action); err != nil {
		t.Fatal(err)
	}
	if !session.Board().CellAt(0, 0).IsFlagged() {
		t.Error("forced flag was not applied")
	}
}

// A revealed 1 whose count is already satisfied by a flag makes its
// remaining hidden neighbors safe.
func TestDirectorRevealsForcedSafeCell(t *testing.T) {
	session := sessionFromRows(t,
		"F.",
		".#",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	action, ok := director.Act()
	if !ok {
		t.Fatal("director found no move")
	}
	if action.Action != game.ActionReveal || action.X != 1 || action.Y != 1 {
		t.Fatalf("director played %+v, want reveal at (1, 1)", action)
	}

	if err := session.Apply(action); err != nil {
		t.Fatal(err)
	}
	if !session.Board().CellAt(1, 1).IsRevealed() {
		t.Error("forced reveal was not applied")
	}
}

// With no information at all the director still makes a move (a random
// opening reveal).
func TestDirectorOpensBlindBoard(t *testing.T) {
	session := sessionFromRows(t,
		"O###",
		"####",
		"####",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	action, ok := director.Act()
	if !ok {
		t.Fatal("director refused to open the board")
	}
	if action.Action != game.ActionReveal {
		t.Fatalf("opening move = %+v, want a reveal", action)
	}
}

// Once every deduction is applied and nothing is left to pick, the
// director reports that it has no move.
func TestDirectorStopsOnResolvedPosition(t *testing.T) {
	session := sessionFromRows(t,
		"O.",
		"..",
	)

	director := &Director{}
	director.Init(session)
	defer director.End()

	action, ok := director.Act()
	if !ok {
		t.Fatal("director found no move")
	}
	if err := session.Apply(action); err != nil {
		t.Fatal(err)
	}

	// The only remaining cell is now flagged; there is nothing left to
	// deduce, guess, or pick at random.
	if action, ok = director.Act(); ok {
		t.Errorf("director played %+v on a finished position, want no move", action)
	}
}
