package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// fixedRand returns the same value on every draw and counts draws.
type fixedRand struct {
	value float64
	calls int
}

func (r *fixedRand) Float64() float64 {
	r.calls++
	return r.value
}

// scriptedRand replays values in order, cycling when exhausted.
type scriptedRand struct {
	values []float64
	calls  int
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

func testConfig() config.PongConfig {
	return config.DefaultPongConfig()
}

func newPlaying(t *testing.T, cfg config.PongConfig) *Match {
	t.Helper()
	m := New(cfg, &fixedRand{value: 0.5})
	m.Start()
	if m.State() != StatePlaying {
		t.Fatalf("Start() left state %v, expected playing", m.State())
	}
	return m
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
