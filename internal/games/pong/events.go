package pong

// Events is the set of notable things that happened during one tick.
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventPlayerScored
	EventAIScored
	EventGameOver
)

// Has reports whether all bits of e2 are set in e.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// Scored reports whether either side scored this tick.
func (e Events) Scored() bool {
	return e&(EventPlayerScored|EventAIScored) != 0
}
