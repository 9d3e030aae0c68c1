// Package config provides YAML-based game configuration loading and
// difficulty tier management for pong.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for a pong match.
type PongConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Opponent OpponentConfig `yaml:"opponent"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ArenaConfig fixes the playfield size in arena units.
// The renderer scales arena units onto terminal cells.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball size, serve velocities and rally acceleration.
type BallConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ServeSpeed float64 `yaml:"serve_speed"`  // |dx| of a fresh serve
	ServeDYMin float64 `yaml:"serve_dy_min"` // lower bound for |dy| after a point
	ServeDYMax float64 `yaml:"serve_dy_max"` // upper bound for |dy| after a point
	SpeedUp    float64 `yaml:"speed_up"`     // dy multiplier per paddle hit
	MaxDY      float64 `yaml:"max_dy"`       // cap on |dy|, 0 = uncapped
}

// PaddleConfig defines paddle geometry and player speed.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Offset      float64 `yaml:"offset"` // distance from the side wall
	PlayerSpeed float64 `yaml:"player_speed"`
}

// OpponentConfig selects the policy paddle tier and its coefficients.
type OpponentConfig struct {
	Tier  Tier                `yaml:"tier"`
	Tiers map[Tier]TierConfig `yaml:"tiers"`
}

// TierConfig holds the pursuit coefficients for one difficulty tier.
type TierConfig struct {
	Ease       float64 `yaml:"ease"`        // fraction of the remaining distance covered per tick
	MissChance float64 `yaml:"miss_chance"` // chance the target is not refreshed on a tick
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinningScore int `yaml:"winning_score"`
}

// TierSettings returns the coefficients of the selected tier.
func (c PongConfig) TierSettings() TierConfig {
	if tc, ok := c.Opponent.Tiers[c.Opponent.Tier]; ok {
		return tc
	}
	return DefaultTiers()[c.Opponent.Tier]
}

// Validate checks that the configuration describes a playable arena.
func (c PongConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %gx%g", c.Ball.Width, c.Ball.Height))
	}
	if c.Ball.Width >= c.Arena.Width || c.Ball.Height >= c.Arena.Height {
		errs = append(errs, errors.New("ball must be smaller than the arena"))
	}
	if c.Ball.ServeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ball.serve_speed must be positive, got %g", c.Ball.ServeSpeed))
	}
	if c.Ball.ServeDYMin <= 0 || c.Ball.ServeDYMax < c.Ball.ServeDYMin {
		errs = append(errs, fmt.Errorf("ball serve dy range invalid: [%g, %g]", c.Ball.ServeDYMin, c.Ball.ServeDYMax))
	}
	if c.Ball.SpeedUp < 1 {
		errs = append(errs, fmt.Errorf("ball.speed_up must be >= 1, got %g", c.Ball.SpeedUp))
	}
	if c.Ball.MaxDY < 0 {
		errs = append(errs, fmt.Errorf("ball.max_dy must be >= 0, got %g", c.Ball.MaxDY))
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 || c.Paddles.Height > c.Arena.Height {
		errs = append(errs, fmt.Errorf("paddle size %gx%g does not fit the arena", c.Paddles.Width, c.Paddles.Height))
	}
	if c.Paddles.Offset < 0 || 2*(c.Paddles.Offset+c.Paddles.Width) >= c.Arena.Width {
		errs = append(errs, fmt.Errorf("paddles.offset %g leaves no room between paddles", c.Paddles.Offset))
	}
	if c.Paddles.PlayerSpeed <= 0 {
		errs = append(errs, fmt.Errorf("paddles.player_speed must be positive, got %g", c.Paddles.PlayerSpeed))
	}
	if c.Gameplay.WinningScore < 1 {
		errs = append(errs, fmt.Errorf("gameplay.winning_score must be >= 1, got %d", c.Gameplay.WinningScore))
	}
	if err := c.Opponent.validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid pong config: %w", errors.Join(errs...))
	}
	return nil
}

func (o OpponentConfig) validate() error {
	if !o.Tier.Valid() {
		return fmt.Errorf("opponent.tier %q is not one of low, normal, high", o.Tier)
	}

	prev := 0.0
	for _, tier := range Tiers() {
		tc, ok := o.Tiers[tier]
		if !ok {
			return fmt.Errorf("opponent.tiers is missing %q", tier)
		}
		if tc.Ease <= 0 || tc.Ease > 1 {
			return fmt.Errorf("opponent.tiers.%s.ease must be in (0, 1], got %g", tier, tc.Ease)
		}
		if tc.MissChance < 0 || tc.MissChance >= 1 {
			return fmt.Errorf("opponent.tiers.%s.miss_chance must be in [0, 1), got %g", tier, tc.MissChance)
		}
		if tc.Ease <= prev {
			return fmt.Errorf("opponent.tiers.%s.ease must exceed the tier below it", tier)
		}
		prev = tc.Ease
	}

	if o.Tiers[TierHigh].MissChance != 0 {
		return errors.New("opponent.tiers.high.miss_chance must be 0")
	}
	return nil
}
