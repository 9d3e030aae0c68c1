package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies a half of the arena. The human plays the left side.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Rand is the random source consumed by a match.
// *rand.Rand satisfies it; tests inject scripted values.
type Rand interface {
	Float64() float64
}

// TickContext is what a paddle may observe while advancing.
type TickContext struct {
	ArenaH float64
	Ball   Ball
	Rand   Rand
}

// Paddle is implemented by the player and policy paddles.
type Paddle interface {
	// Rect returns the paddle's bounding box.
	Rect() core.Rect
	// Advance moves the paddle by one tick, keeping it inside the arena.
	Advance(ctx TickContext)
}

// body is the geometry shared by both paddle kinds.
type body struct {
	X, Y float64
	W, H float64
}

func (b *body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

func (b *body) clampY(arenaH float64) {
	b.Y = core.ClampF(b.Y, 0, arenaH-b.H)
}

// PlayerPaddle moves by a directional intent or follows a pointer drag.
type PlayerPaddle struct {
	body
	Intent   int     // -1 up, 0 still, +1 down
	Speed    float64 // arena units per tick
	dragging bool
}

// NewPlayerPaddle creates a paddle at (x, y) sized from cfg.
func NewPlayerPaddle(x, y float64, cfg config.PaddleConfig) *PlayerPaddle {
	return &PlayerPaddle{
		body:  body{X: x, Y: y, W: cfg.Width, H: cfg.Height},
		Speed: cfg.PlayerSpeed,
	}
}

// SetIntent records the requested direction.
// Values other than -1, 0 and 1 are ignored.
func (p *PlayerPaddle) SetIntent(intent int) {
	if intent < -1 || intent > 1 {
		return
	}
	p.Intent = intent
}

// DragTo places the paddle's top edge at y and holds it there until the
// drag is released. Keyboard intent has no effect while dragging.
func (p *PlayerPaddle) DragTo(y, arenaH float64) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return
	}
	p.dragging = true
	p.Y = y
	p.clampY(arenaH)
}

// Release ends a drag and clears the intent; motion resumes on the next key.
func (p *PlayerPaddle) Release() {
	p.dragging = false
	p.Intent = 0
}

// Dragging reports whether a drag is active.
func (p *PlayerPaddle) Dragging() bool {
	return p.dragging
}

// Advance applies the intent and clamps the paddle into the arena.
func (p *PlayerPaddle) Advance(ctx TickContext) {
	if !p.dragging {
		p.Y += float64(p.Intent) * p.Speed
	}
	p.clampY(ctx.ArenaH)
}

var _ Paddle = (*PlayerPaddle)(nil)
