package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func withPlayFlags(t *testing.T, cfgPath, difficulty string, winScore int) {
	t.Helper()
	oldCfg, oldDiff, oldWin := flagConfig, flagDifficulty, flagWinScore
	flagConfig, flagDifficulty, flagWinScore = cfgPath, difficulty, winScore
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagWinScore = oldCfg, oldDiff, oldWin
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadPongConfigOverrides(t *testing.T) {
	path := writeConfig(t, "opponent:\n  tier: low\ngameplay:\n  winning_score: 3\n")

	tests := []struct {
		name       string
		difficulty string
		winScore   int
		wantTier   config.Tier
		wantWin    int
	}{
		{"file values", "", 0, config.TierLow, 3},
		{"difficulty flag", "hard", 0, config.TierHigh, 3},
		{"win score flag", "", 9, config.TierLow, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withPlayFlags(t, path, tc.difficulty, tc.winScore)

			cfg, err := loadPongConfig()
			if err != nil {
				t.Fatalf("loadPongConfig() error = %v", err)
			}
			if cfg.Opponent.Tier != tc.wantTier {
				t.Errorf("Tier = %v, expected %v", cfg.Opponent.Tier, tc.wantTier)
			}
			if cfg.Gameplay.WinningScore != tc.wantWin {
				t.Errorf("WinningScore = %d, expected %d", cfg.Gameplay.WinningScore, tc.wantWin)
			}
		})
	}
}

func TestLoadPongConfigRejectsBadFlags(t *testing.T) {
	path := writeConfig(t, "gameplay:\n  winning_score: 3\n")

	t.Run("unknown difficulty", func(t *testing.T) {
		withPlayFlags(t, path, "impossible", 0)
		if _, err := loadPongConfig(); err == nil {
			t.Error("loadPongConfig() expected error for unknown difficulty")
		}
	})

	t.Run("negative win score", func(t *testing.T) {
		withPlayFlags(t, path, "", -2)
		if _, err := loadPongConfig(); err == nil {
			t.Error("loadPongConfig() expected error for negative win score")
		}
	})
}
