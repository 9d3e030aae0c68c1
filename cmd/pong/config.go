package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in pong configuration as YAML.

Save it to ~/.tui-pong/configs/pong.yaml or ./configs/pong.yaml and edit
the values to change arena size, ball speed, paddle size, opponent tiers
and the winning score. Keys left out keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
