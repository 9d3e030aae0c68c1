package core

// Action represents a semantic input, abstracted from physical key presses.
// The platform maps keys to actions; the game maps actions to commands.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move paddle up
	ActionDown           // S, Down arrow - move paddle down
	ActionConfirm        // Enter, Space - start from menu
	ActionRestart        // R - play again after game over
	ActionBack           // B, Escape - return to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent returns the vertical direction an action requests:
// -1 for up, +1 for down, 0 otherwise.
func (a Action) Intent() int {
	switch a {
	case ActionUp:
		return -1
	case ActionDown:
		return 1
	default:
		return 0
	}
}
