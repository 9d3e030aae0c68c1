// Package pong implements a two-paddle ball game: the player defends the
// left side, a reactive policy paddle defends the right.
//
// A Match owns every entity and is advanced by its host once per frame.
// It performs no I/O and never blocks.
package pong

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// State is the game-flow state of a match.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Match is the controller for one player-vs-policy game.
type Match struct {
	cfg    config.PongConfig
	arenaW float64
	arenaH float64
	rng    Rand

	ball    Ball
	player  *PlayerPaddle
	ai      *PolicyPaddle
	paddles []Paddle // advanced in order each tick

	playerScore  int
	aiScore      int
	winningScore int

	state      State
	winner     Side
	inProgress bool
	tick       uint64
}

// New creates a match in the menu state. A nil rng is replaced by a
// clock-seeded source.
func New(cfg config.PongConfig, rng Rand) *Match {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // gameplay randomness
	}

	m := &Match{
		cfg:          cfg,
		arenaW:       cfg.Arena.Width,
		arenaH:       cfg.Arena.Height,
		rng:          rng,
		winningScore: max(cfg.Gameplay.WinningScore, 1),
		state:        StateMenu,
	}

	m.ball = Ball{W: cfg.Ball.Width, H: cfg.Ball.Height}
	m.player = NewPlayerPaddle(cfg.Paddles.Offset, m.paddleHomeY(), cfg.Paddles)
	m.ai = NewPolicyPaddle(
		m.arenaW-cfg.Paddles.Offset-cfg.Paddles.Width,
		m.paddleHomeY(),
		SideRight,
		cfg.Paddles,
		cfg.Opponent.Tier,
		cfg.TierSettings(),
	)
	m.paddles = []Paddle{m.player, m.ai}
	m.serveNew()

	return m
}

// NewSeeded creates a match whose random source is seeded with seed.
func NewSeeded(cfg config.PongConfig, seed int64) *Match {
	return New(cfg, rand.New(rand.NewSource(seed))) //nolint:gosec // gameplay randomness
}

// State returns the current game-flow state.
func (m *Match) State() State {
	return m.state
}

// Scores returns the player's and the opponent's score.
func (m *Match) Scores() (player, ai int) {
	return m.playerScore, m.aiScore
}

// Player returns the human-controlled paddle.
func (m *Match) Player() *PlayerPaddle {
	return m.player
}

// Opponent returns the policy paddle.
func (m *Match) Opponent() *PolicyPaddle {
	return m.ai
}

// Ball returns a copy of the ball.
func (m *Match) Ball() Ball {
	return m.ball
}

// ArenaSize returns the fixed arena dimensions.
func (m *Match) ArenaSize() (w, h float64) {
	return m.arenaW, m.arenaH
}

func (m *Match) paddleHomeY() float64 {
	return m.arenaH/2 - m.cfg.Paddles.Height/2
}

// SetPlayerIntent sets the player's direction. Out-of-range values are ignored.
func (m *Match) SetPlayerIntent(intent int) {
	m.player.SetIntent(intent)
}

// SetPlayerPositionAbsolute drags the player paddle so its top edge sits at y.
// Ignored unless a match is being played.
func (m *Match) SetPlayerPositionAbsolute(y float64) {
	if m.state != StatePlaying {
		return
	}
	m.player.DragTo(y, m.arenaH)
}

// ReleaseDrag ends a pointer drag.
func (m *Match) ReleaseDrag() {
	if m.player.Dragging() {
		m.player.Release()
	}
}

// Start leaves the menu. A match that was paused into the menu resumes with
// its scores; otherwise a fresh match begins.
func (m *Match) Start() {
	if m.state != StateMenu {
		return
	}
	if !m.inProgress {
		m.newMatch()
	}
	m.state = StatePlaying
	m.inProgress = true
}

// Restart begins a new match after game over.
func (m *Match) Restart() {
	if m.state != StateGameOver {
		return
	}
	m.newMatch()
	m.state = StatePlaying
	m.inProgress = true
}

// ReturnToMenu shows the menu. Scores are kept for display; a finished match
// cannot be resumed.
func (m *Match) ReturnToMenu() {
	switch m.state {
	case StatePlaying:
		m.inProgress = true
	case StateGameOver:
		m.inProgress = false
	default:
		return
	}
	m.player.Release()
	m.state = StateMenu
}

// Apply dispatches a single command.
func (m *Match) Apply(cmd Command) {
	switch cmd {
	case CommandStart:
		m.Start()
	case CommandRestart:
		m.Restart()
	case CommandMenu:
		m.ReturnToMenu()
	}
}

// Step applies one frame of input and advances the match by one tick.
func (m *Match) Step(in Input) Events {
	for _, cmd := range in.Commands {
		m.Apply(cmd)
	}

	// Intent is ignored on the tick a drag ends, so keys pressed during the
	// drag do not move the paddle until the next input frame.
	released := false
	switch {
	case in.Drag != nil:
		m.SetPlayerPositionAbsolute(*in.Drag)
	case m.player.Dragging():
		m.ReleaseDrag()
		released = true
	}
	if !released && !m.player.Dragging() {
		m.SetPlayerIntent(in.Intent)
	}

	return m.Tick()
}

// Tick advances the simulation by one frame:
// walls, paddles, scoring, then integration while playing.
// Collision and scoring always see the previous tick's positions.
func (m *Match) Tick() Events {
	var ev Events

	if m.ball.resolveWalls(m.arenaH) {
		ev |= EventWallBounce
	}
	if m.resolvePaddles() {
		ev |= EventPaddleHit
	}

	if m.state != StatePlaying {
		return ev
	}

	ev |= m.resolveScoring()
	if m.state != StatePlaying {
		return ev
	}

	m.tick++

	// A fresh serve starts from center on the next tick.
	if !ev.Scored() && m.ball.Advance(m.arenaH) {
		ev |= EventWallBounce
	}

	ctx := TickContext{ArenaH: m.arenaH, Ball: m.ball, Rand: m.rng}
	for _, p := range m.paddles {
		p.Advance(ctx)
	}

	return ev
}

// resolvePaddles bounces the ball off whichever paddle it overlaps while
// moving toward it.
func (m *Match) resolvePaddles() bool {
	br := m.ball.Rect()

	hit := (m.ball.DX < 0 && br.Intersects(m.player.Rect())) ||
		(m.ball.DX > 0 && br.Intersects(m.ai.Rect()))
	if !hit {
		return false
	}

	m.ball.DX = -m.ball.DX
	m.ball.DY *= m.cfg.Ball.SpeedUp
	if limit := m.cfg.Ball.MaxDY; limit > 0 && math.Abs(m.ball.DY) > limit {
		m.ball.DY = math.Copysign(limit, m.ball.DY)
	}
	return true
}

// resolveScoring awards a point when the ball leaves through a side wall.
func (m *Match) resolveScoring() Events {
	switch {
	case m.ball.X < 0:
		m.aiScore++
		return m.afterPoint(SideRight, m.aiScore) | EventAIScored
	case m.ball.X+m.ball.W > m.arenaW:
		m.playerScore++
		return m.afterPoint(SideLeft, m.playerScore) | EventPlayerScored
	}
	return 0
}

func (m *Match) afterPoint(scorer Side, score int) Events {
	if score >= m.winningScore {
		m.state = StateGameOver
		m.winner = scorer
		m.player.Release()
		return EventGameOver
	}
	m.servePoint(scorer)
	return 0
}

// newMatch zeroes the scores and puts every entity back at its start.
func (m *Match) newMatch() {
	m.playerScore = 0
	m.aiScore = 0
	m.winner = SideNone
	m.tick = 0

	home := m.paddleHomeY()
	m.player.Y = home
	m.player.Release()
	m.ai.Y = home
	m.ai.TargetY = home

	m.serveNew()
}

// serveNew launches the ball from center in a random direction.
func (m *Match) serveNew() {
	m.ball.center(m.arenaW, m.arenaH)

	m.ball.DX = m.cfg.Ball.ServeSpeed
	if m.rng.Float64() < 0.5 {
		m.ball.DX = -m.ball.DX
	}
	m.ball.DY = m.serveDY()
	if m.rng.Float64() < 0.5 {
		m.ball.DY = -m.ball.DY
	}
}

// servePoint recenters the ball after a point, reversing its horizontal
// direction. The ball heads up after a player point and down after an AI point.
func (m *Match) servePoint(scorer Side) {
	m.ball.center(m.arenaW, m.arenaH)
	m.ball.DX = -m.ball.DX

	dy := m.serveDY()
	if scorer == SideLeft {
		dy = -dy
	}
	m.ball.DY = dy
}

// serveDY draws a vertical speed magnitude from the configured range.
func (m *Match) serveDY() float64 {
	lo, hi := m.cfg.Ball.ServeDYMin, m.cfg.Ball.ServeDYMax
	return lo + m.rng.Float64()*(hi-lo)
}
