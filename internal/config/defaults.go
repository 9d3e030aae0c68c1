package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the hardcoded pong configuration.
// It mirrors defaults/pong.yaml and is used when the embedded file fails to parse.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 400,
		},
		Ball: BallConfig{
			Width:      10,
			Height:     10,
			ServeSpeed: 3,
			ServeDYMin: 3,
			ServeDYMax: 6,
			SpeedUp:    1.05,
			MaxDY:      0,
		},
		Paddles: PaddleConfig{
			Width:       20,
			Height:      100,
			Offset:      20,
			PlayerSpeed: 6,
		},
		Opponent: OpponentConfig{
			Tier:  TierNormal,
			Tiers: DefaultTiers(),
		},
		Gameplay: GameplayConfig{
			WinningScore: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
