// Package audio plays short synthesized cues for match events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const sampleRate = beep.SampleRate(44100)

// volume is the peak amplitude of generated waves.
const volume = 0.2

// note is a single square-wave tone.
type note struct {
	freq float64 // Hz; 0 is a rest
	dur  time.Duration
}

// cue is a sequence of notes played for one event.
type cue []note

var (
	cueWall   = cue{{440, 30 * time.Millisecond}}
	cuePaddle = cue{{880, 50 * time.Millisecond}}
	cuePoint  = cue{
		{660, 100 * time.Millisecond},
		{440, 100 * time.Millisecond},
		{330, 150 * time.Millisecond},
	}
	cueGameOver = cue{
		{523, 120 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{659, 120 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{784, 280 * time.Millisecond},
	}
)

// Player owns the speaker. A nil *Player is silent.
type Player struct {
	mu     sync.Mutex
	closed bool
}

// initOnce guards speaker.Init, which may only run once per process.
var (
	initOnce sync.Once
	initErr  error
)

// New initializes the speaker and returns a player.
func New() (*Player, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	})
	if initErr != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", initErr)
	}
	return &Player{}, nil
}

// Close stops playback. Further calls to Play are ignored.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}

// Play sounds the most significant event in ev, if any.
func (p *Player) Play(ev pong.Events) {
	if p == nil {
		return
	}
	c := cueFor(ev)
	if len(c) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Play(c.streamer())
}

// cueFor picks one cue per tick so overlapping events do not stack.
func cueFor(ev pong.Events) cue {
	switch {
	case ev.Has(pong.EventGameOver):
		return cueGameOver
	case ev.Scored():
		return cuePoint
	case ev.Has(pong.EventPaddleHit):
		return cuePaddle
	case ev.Has(pong.EventWallBounce):
		return cueWall
	default:
		return nil
	}
}

func (c cue) streamer() beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c))
	for _, n := range c {
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(sampleRate.N(n.dur)))
			continue
		}
		parts = append(parts, squareWave(n.freq, n.dur))
	}
	return beep.Seq(parts...)
}

// squareWave generates a square wave for the given duration.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	step := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += step
			remaining--
		}
		return len(samples), true
	})
}
