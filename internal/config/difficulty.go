package config

import (
	"fmt"
	"strings"
)

// Tier is the difficulty level of the policy paddle.
type Tier string

const (
	TierLow    Tier = "low"
	TierNormal Tier = "normal"
	TierHigh   Tier = "high"
)

// Tiers returns all tiers ordered from easiest to hardest.
func Tiers() []Tier {
	return []Tier{TierLow, TierNormal, TierHigh}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierLow, TierNormal, TierHigh:
		return true
	default:
		return false
	}
}

// ParseTier converts a user-supplied name into a Tier.
// Accepts the tier names plus the easy/hard/expert aliases.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low", "easy":
		return TierLow, nil
	case "", "normal", "medium":
		return TierNormal, nil
	case "high", "hard", "expert":
		return TierHigh, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want low, normal or high)", name)
	}
}

// DefaultTiers returns the pursuit coefficients for each tier.
// The two lower tiers skip a target refresh 40% of the time; high never does.
func DefaultTiers() map[Tier]TierConfig {
	return map[Tier]TierConfig{
		TierLow:    {Ease: 0.1, MissChance: 0.4},
		TierNormal: {Ease: 0.2, MissChance: 0.4},
		TierHigh:   {Ease: 0.4, MissChance: 0},
	}
}

// ApplyTier selects the opponent tier by name.
func ApplyTier(cfg *PongConfig, name string) error {
	tier, err := ParseTier(name)
	if err != nil {
		return err
	}
	cfg.Opponent.Tier = tier
	if cfg.Opponent.Tiers == nil {
		cfg.Opponent.Tiers = DefaultTiers()
	}
	return nil
}
