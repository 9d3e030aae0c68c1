package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME holding config overrides.
const configDirName = ".tui-pong"

// LoadPong loads pong configuration.
// Search order: customPath -> ~/.tui-pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files only override what they name.
func LoadPong(customPath string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parsePong(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePong(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pong.yaml")); err == nil {
		if cfg, err := parsePong(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePong(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePong decodes YAML over the hardcoded defaults.
// Tier entries are merged key by key, because yaml decodes each map value
// into a zero TierConfig.
func parsePong(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}

	var raw struct {
		Opponent struct {
			Tiers map[Tier]yaml.Node `yaml:"tiers"`
		} `yaml:"opponent"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return PongConfig{}, err
	}

	tiers := DefaultTiers()
	for name, node := range raw.Opponent.Tiers {
		if node.Tag == "!!null" {
			continue
		}
		tc := tiers[name]
		if err := node.Decode(&tc); err != nil {
			return PongConfig{}, fmt.Errorf("tier %s: %w", name, err)
		}
		tiers[name] = tc
	}
	cfg.Opponent.Tiers = tiers

	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}
