package game

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type State int

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

func (state State) String() string {
	switch state {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Session is the game controller: it owns a board, tracks elapsed time
// and the flag counter, and decides win/loss. Terminal states freeze
// the board.
type Session struct {
	id     uuid.UUID
	config Config
	board  *Board

	state      State
	startedAt  time.Time
	finishedAt time.Time

	log *logrus.Entry
}

func NewSession(config Config) (*Session, error) {
	board, err := NewBoard(config)
	if err != nil {
		return nil, err
	}

	session := &Session{
		id:     uuid.New(),
		config: config,
		board:  board,
		state:  NotStarted,
	}
	session.log = logrus.WithField("session", session.id)
	session.log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
		"seed":   board.seed,
	}).Debug("new game")

	return session, nil
}

func (session *Session) ID() uuid.UUID {
	return session.id
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) State() State {
	return session.state
}

func (session *Session) Config() Config {
	return session.config
}

// Elapsed is zero before the first reveal, live while the game is in
// progress, and frozen once it ends.
func (session *Session) Elapsed() time.Duration {
	switch session.state {
	case NotStarted:
		return 0
	case InProgress:
		return time.Since(session.startedAt)
	}
	return session.finishedAt.Sub(session.startedAt)
}

// FlagsRemaining is the mine count minus placed flags, clamped at zero
// when the player over-flags.
func (session *Session) FlagsRemaining() int {
	remaining := session.board.numMines - session.board.numFlags
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reveal uncovers (x, y). The first successful reveal starts the
// timer; a mine loses the game; clearing the last non-mine cell wins
// it. Reveals after the game has ended are ignored.
func (session *Session) Reveal(x, y int) error {
	if session.state == Won || session.state == Lost {
		return nil
	}

	revealed, err := session.board.Reveal(x, y)
	if err != nil {
		return err
	}
	if len(revealed) == 0 {
		return nil
	}

	if session.state == NotStarted {
		session.state = InProgress
		session.startedAt = time.Now()
	}

	if revealed[0].isMine {
		session.finish(Lost)
	} else if session.board.numUnrevealed == 0 {
		session.finish(Won)
	}
	return nil
}

// ToggleFlag flips the flag at (x, y); ignored once the game has ended.
func (session *Session) ToggleFlag(x, y int) error {
	if session.state == Won || session.state == Lost {
		return nil
	}
	return session.board.ToggleFlag(x, y)
}

func (session *Session) finish(state State) {
	session.state = state
	session.finishedAt = time.Now()
	session.log.WithFields(logrus.Fields{
		"result":  state.String(),
		"elapsed": session.Elapsed(),
	}).Info("game over")

	session.saveSnapshot()
}

func (session *Session) saveSnapshot() {
	dir := session.config.SnapshotDir
	if dir == "" {
		return
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		session.log.WithError(err).Warn("cannot create snapshot directory")
		return
	}

	path := filepath.Join(dir, session.snapshotFilename(time.Now()))
	if err := os.WriteFile(path, []byte(session.board.Snapshot().Serialize()), 0666); err != nil {
		session.log.WithError(err).Warn("cannot save snapshot")
		return
	}

	session.log.WithField("path", path).Debug("snapshot saved")
}

func (session *Session) snapshotFilename(t time.Time) string {
	var stateStr string
	switch session.state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}

	// The session ID keeps games ending within the same second from
	// overwriting each other
	return t.Format("20060102_150405_") + stateStr + "_" + session.id.String()[:8] + ".yaml"
}
