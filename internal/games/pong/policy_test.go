package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func newTestPolicy(tier config.Tier) *PolicyPaddle {
	cfg := testConfig()
	return NewPolicyPaddle(760, 150, SideRight, cfg.Paddles, tier, config.DefaultTiers()[tier])
}

func TestPolicyHighTierAlwaysTracks(t *testing.T) {
	p := newTestPolicy(config.TierHigh)
	rng := &fixedRand{value: 0}

	ball := Ball{X: 400, Y: 20, W: 10, H: 10, DX: 3, DY: 4}
	for i := range 30 {
		ball.Y += ball.DY
		p.Advance(TickContext{ArenaH: 400, Ball: ball, Rand: rng})

		want := max(ball.Y-50, 0)
		if p.TargetY != want {
			t.Fatalf("tick %d: TargetY = %v, expected %v", i, p.TargetY, want)
		}
	}
	if rng.calls != 0 {
		t.Errorf("high tier consumed %d random draws, expected none", rng.calls)
	}
}

func TestPolicyMissGate(t *testing.T) {
	tests := []struct {
		name       string
		tier       config.Tier
		draw       float64
		wantUpdate bool
	}{
		{"normal draw below miss chance", config.TierNormal, 0.3, false},
		{"normal draw at miss chance", config.TierNormal, 0.4, false},
		{"normal draw above miss chance", config.TierNormal, 0.41, true},
		{"low draw above miss chance", config.TierLow, 0.9, true},
		{"low draw below miss chance", config.TierLow, 0.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPolicy(tc.tier)
			ball := Ball{X: 400, Y: 300, DX: 3}
			p.Advance(TickContext{ArenaH: 400, Ball: ball, Rand: &fixedRand{value: tc.draw}})

			updated := p.TargetY == 250
			if updated != tc.wantUpdate {
				t.Errorf("target updated = %v (TargetY=%v), expected %v", updated, p.TargetY, tc.wantUpdate)
			}
		})
	}
}

func TestPolicyIgnoresRetreatingBall(t *testing.T) {
	p := newTestPolicy(config.TierNormal)
	rng := &fixedRand{value: 0.99}

	p.Advance(TickContext{ArenaH: 400, Ball: Ball{Y: 10, DX: -3}, Rand: rng})

	if p.TargetY != 150 {
		t.Errorf("TargetY = %v, expected unchanged 150", p.TargetY)
	}
	if rng.calls != 0 {
		t.Errorf("retreating ball should not consume draws, got %d", rng.calls)
	}
}

func TestPolicyEasesTowardTarget(t *testing.T) {
	p := newTestPolicy(config.TierNormal)
	p.TargetY = 250

	// Ball retreating: target fixed, paddle still eases
	ctx := TickContext{ArenaH: 400, Ball: Ball{DX: -3}, Rand: &fixedRand{}}
	p.Advance(ctx)
	if !approxEqual(p.Y, 150+(250-150)*0.2) {
		t.Errorf("Y after one tick = %v, expected 170", p.Y)
	}

	prev := p.Y
	for range 100 {
		p.Advance(ctx)
		if p.Y > 250 {
			t.Fatalf("pursuit overshot target: Y = %v", p.Y)
		}
		if p.Y < prev {
			t.Fatalf("pursuit moved away from target: %v -> %v", prev, p.Y)
		}
		prev = p.Y
	}
	if 250-p.Y > 1e-6 {
		t.Errorf("paddle should converge on target, Y = %v", p.Y)
	}
}

func TestPolicyTierResponsiveness(t *testing.T) {
	moved := make(map[config.Tier]float64)
	for _, tier := range config.Tiers() {
		p := newTestPolicy(tier)
		ball := Ball{Y: 390, DX: 3}
		p.Advance(TickContext{ArenaH: 400, Ball: ball, Rand: &fixedRand{value: 1}})
		moved[tier] = p.Y - 150
	}

	if !(moved[config.TierLow] < moved[config.TierNormal] && moved[config.TierNormal] < moved[config.TierHigh]) {
		t.Errorf("higher tiers should respond faster: %v", moved)
	}
}

func TestPolicyTargetClamped(t *testing.T) {
	p := newTestPolicy(config.TierHigh)

	p.Advance(TickContext{ArenaH: 400, Ball: Ball{Y: 5, DX: 3}})
	if p.TargetY != 0 {
		t.Errorf("TargetY = %v, expected clamp to 0", p.TargetY)
	}

	p.Advance(TickContext{ArenaH: 400, Ball: Ball{Y: 399, DX: 3}})
	if p.TargetY != 300 {
		t.Errorf("TargetY = %v, expected clamp to 300", p.TargetY)
	}
}

func TestPolicyLeftFacing(t *testing.T) {
	cfg := testConfig()
	p := NewPolicyPaddle(20, 150, SideLeft, cfg.Paddles, config.TierHigh, config.DefaultTiers()[config.TierHigh])

	p.Advance(TickContext{ArenaH: 400, Ball: Ball{Y: 300, DX: -3}})
	if p.TargetY != 250 {
		t.Errorf("left-facing paddle should track a ball moving left, TargetY = %v", p.TargetY)
	}
}
