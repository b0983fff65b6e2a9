package game

// Status is the game state machine's status. It is recomputed after every
// accepted movement and is never stale with respect to the board.
type Status uint8

const (
	StatusUnknown Status = iota

	// StatusInProgress is when the active side has legal moves and its king
	// is not attacked.
	StatusInProgress

	// StatusCheck is when the active side's king is attacked but at least
	// one legal move exists.
	StatusCheck

	// StatusCheckmate is when the active side's king is attacked and no
	// legal move exists.
	StatusCheckmate

	// StatusStalemate is when the active side has no legal move and its
	// king is not attacked.
	StatusStalemate

	// StatusDraw is when neither side retains sufficient material to mate.
	StatusDraw
)

// IsTerminal reports whether the game accepts no further movements.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckmate, StatusStalemate, StatusDraw:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "InProgress"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	case StatusDraw:
		return "Draw"
	default:
		return ""
	}
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) Status {
	switch s {
	case "InProgress":
		return StatusInProgress
	case "Check":
		return StatusCheck
	case "Checkmate":
		return StatusCheckmate
	case "Stalemate":
		return StatusStalemate
	case "Draw":
		return StatusDraw
	default:
		return StatusUnknown
	}
}
