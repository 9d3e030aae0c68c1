package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// PolicyPaddle is the computer opponent. It picks a target from the ball's
// position while the ball approaches and eases toward it every tick.
type PolicyPaddle struct {
	body
	Tier       config.Tier
	Ease       float64 // fraction of the remaining distance covered per tick
	MissChance float64 // chance a target refresh is skipped
	TargetY    float64
	Facing     Side // side of the arena the paddle defends
}

// NewPolicyPaddle creates an opponent at (x, y) defending the given side.
func NewPolicyPaddle(x, y float64, side Side, paddles config.PaddleConfig, tier config.Tier, tc config.TierConfig) *PolicyPaddle {
	return &PolicyPaddle{
		body:       body{X: x, Y: y, W: paddles.Width, H: paddles.Height},
		Tier:       tier,
		Ease:       tc.Ease,
		MissChance: tc.MissChance,
		TargetY:    y,
		Facing:     side,
	}
}

// approaching reports whether the ball travels toward this paddle's side.
func (p *PolicyPaddle) approaching(b Ball) bool {
	if p.Facing == SideLeft {
		return b.DX < 0
	}
	return b.DX > 0
}

// tracks decides whether this tick refreshes the target.
// The high tier never consults the random source.
func (p *PolicyPaddle) tracks(rng Rand) bool {
	if p.Tier == config.TierHigh || p.MissChance <= 0 {
		return true
	}
	return rng.Float64() > p.MissChance
}

// Advance refreshes the target when allowed and eases toward it.
func (p *PolicyPaddle) Advance(ctx TickContext) {
	if p.approaching(ctx.Ball) && p.tracks(ctx.Rand) {
		p.TargetY = core.ClampF(ctx.Ball.Y-p.H/2, 0, ctx.ArenaH-p.H)
	}

	p.Y += (p.TargetY - p.Y) * p.Ease
	p.clampY(ctx.ArenaH)
}

var _ Paddle = (*PolicyPaddle)(nil)
