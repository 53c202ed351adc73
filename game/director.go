package game

type ActionType int

const (
	ActionReveal ActionType = iota
	ActionFlag
)

type CellAction struct {
	X, Y   int
	Action ActionType
}

// Director plays a session automatically, one action per Act call.
type Director interface {
	Init(*Session)

	// Act returns the director's next move, or false when it has none.
	Act() (CellAction, bool)

	End()
}

// Apply performs a director action against the session.
func (session *Session) Apply(action CellAction) error {
	switch action.Action {
	case ActionFlag:
		return session.ToggleFlag(action.X, action.Y)
	default:
		return session.Reveal(action.X, action.Y)
	}
}
