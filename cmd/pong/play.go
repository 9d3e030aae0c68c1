package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWinScore   int
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match against the computer paddle.

Controls:
  W/S or Up/Down   - Move paddle (or drag it with the mouse)
  Enter/Space      - Start or resume from the menu
  Esc/B            - Pause to the menu
  R                - Play again (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  low    - Slow opponent that sometimes ignores the ball
  normal - Faster opponent that sometimes ignores the ball
  high   - Fast opponent that always tracks the ball

Examples:
  pong play
  pong play --difficulty high
  pong play --win-score 11 --sound
  pong play --config ./my-pong.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the match flags on cmd. The root command shares
// them so that a bare "pong" plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Opponent tier: low, normal, high")
	cmd.Flags().IntVar(&flagWinScore, "win-score", 0, "Points needed to win (0 = from config)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// loadPongConfig loads the game config and applies command-line overrides.
func loadPongConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		if err := config.ApplyTier(&cfg, flagDifficulty); err != nil {
			return cfg, err
		}
	}
	if flagWinScore != 0 {
		cfg.Gameplay.WinningScore = flagWinScore
	}

	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("pong")
	if err != nil {
		return err
	}

	pongCfg, err := loadPongConfig()
	if err != nil {
		return err
	}

	width, height := core.DefaultScreenW, core.DefaultScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Pong: pongCfg,
	}

	if flagSound {
		player, audioErr := audio.New()
		if audioErr != nil {
			logger.Warn("sound disabled", "error", audioErr)
		} else {
			defer player.Close()
			opts.Audio = player
		}
	}

	logger.Debug("starting match",
		"config", flagConfig,
		"tier", pongCfg.Opponent.Tier,
		"winning_score", pongCfg.Gameplay.WinningScore,
		"fps", flagFPS,
		"seed", flagSeed,
		"size", fmt.Sprintf("%dx%d", width, height),
	)

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("run match: %w", err)
	}
	return nil
}
