package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Ball is the moving square. Position is its top-left corner in arena units.
type Ball struct {
	X, Y   float64
	W, H   float64
	DX, DY float64
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Advance moves the ball by its velocity. Touching the top or bottom wall
// reflects dy and applies it once more in the same call, so the ball never
// rests on a wall at the end of a tick. Reports whether a bounce happened.
func (b *Ball) Advance(arenaH float64) bool {
	b.X += b.DX
	b.Y += b.DY

	if b.Y <= 0 || b.Y+b.H >= arenaH {
		b.DY = -b.DY
		b.Y += b.DY
		return true
	}
	return false
}

// resolveWalls pulls a ball that lies outside the vertical bounds back inside
// and points dy away from the wall it crossed.
func (b *Ball) resolveWalls(arenaH float64) bool {
	maxY := arenaH - b.H

	switch {
	case b.Y < 0:
		b.Y = 0
		if b.DY < 0 {
			b.DY = -b.DY
		}
		return true
	case b.Y > maxY:
		b.Y = maxY
		if b.DY > 0 {
			b.DY = -b.DY
		}
		return true
	}
	return false
}

// center places the ball's corner at the arena midpoint.
func (b *Ball) center(arenaW, arenaH float64) {
	b.X = arenaW / 2
	b.Y = arenaH / 2
}
