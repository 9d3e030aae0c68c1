package pong

// Command is a discrete game-flow request from the input layer.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandRestart
	CommandMenu
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandRestart:
		return "restart"
	case CommandMenu:
		return "menu"
	default:
		return "none"
	}
}

// Input is everything the host collected since the previous tick.
// It replaces ambient event listeners: the host fills one per frame and
// passes it to Match.Step.
type Input struct {
	Intent   int       // -1, 0 or +1; last write wins
	Drag     *float64  // paddle top while a pointer drag is active, nil otherwise
	Commands []Command // applied in arrival order
}

// DragAt returns a pointer to y for use as Input.Drag.
func DragAt(y float64) *float64 {
	return &y
}
