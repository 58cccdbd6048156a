package input

// InputMode selects the binding set
// Kept in sync by the app from the active game and its phase
type InputMode uint8

const (
	ModeBoard InputMode = iota // Clicking entities on a board
	ModeText                   // Typing an answer
	ModeEnd                    // End-of-game overlay
)

func (m InputMode) String() string {
	switch m {
	case ModeBoard:
		return "board"
	case ModeText:
		return "text"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}
