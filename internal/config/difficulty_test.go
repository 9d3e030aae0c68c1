package config

import "testing"

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{"low", TierLow, false},
		{"easy", TierLow, false},
		{"", TierNormal, false},
		{"Normal", TierNormal, false},
		{"high", TierHigh, false},
		{" expert ", TierHigh, false},
		{"hard", TierHigh, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTier(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTier(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseTier(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestDefaultTiersMonotonic(t *testing.T) {
	tiers := DefaultTiers()
	low, normal, high := tiers[TierLow], tiers[TierNormal], tiers[TierHigh]

	if !(low.Ease < normal.Ease && normal.Ease < high.Ease) {
		t.Errorf("ease should increase with tier: low=%g normal=%g high=%g", low.Ease, normal.Ease, high.Ease)
	}
	if high.MissChance != 0 {
		t.Errorf("high tier should always track, miss chance = %g", high.MissChance)
	}
	if low.MissChance == 0 || normal.MissChance == 0 {
		t.Error("lower tiers should have a miss chance")
	}
}

func TestApplyTier(t *testing.T) {
	cfg := DefaultPongConfig()
	if err := ApplyTier(&cfg, "easy"); err != nil {
		t.Fatalf("ApplyTier() failed: %v", err)
	}
	if cfg.Opponent.Tier != TierLow {
		t.Errorf("Tier = %q, expected low", cfg.Opponent.Tier)
	}
	if got := cfg.TierSettings(); got != DefaultTiers()[TierLow] {
		t.Errorf("TierSettings() = %+v, expected low defaults", got)
	}

	if err := ApplyTier(&cfg, "bogus"); err == nil {
		t.Error("ApplyTier() with unknown name should fail")
	}
	if cfg.Opponent.Tier != TierLow {
		t.Error("failed ApplyTier() should leave the tier unchanged")
	}
}
