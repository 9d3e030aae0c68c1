package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Snapshot is a read-only view of a match for renderers.
type Snapshot struct {
	ArenaW, ArenaH float64

	Ball   core.Rect
	BallDX float64
	BallDY float64
	Player core.Rect
	AI     core.Rect

	PlayerScore  int
	AIScore      int
	WinningScore int

	State      State
	Winner     Side
	InProgress bool // a match was left for the menu and can be resumed
	Tier       config.Tier
	Tick       uint64
}

// Snapshot returns the current match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ArenaW:       m.arenaW,
		ArenaH:       m.arenaH,
		Ball:         m.ball.Rect(),
		BallDX:       m.ball.DX,
		BallDY:       m.ball.DY,
		Player:       m.player.Rect(),
		AI:           m.ai.Rect(),
		PlayerScore:  m.playerScore,
		AIScore:      m.aiScore,
		WinningScore: m.winningScore,
		State:        m.state,
		Winner:       m.winner,
		InProgress:   m.inProgress,
		Tier:         m.ai.Tier,
		Tick:         m.tick,
	}
}
