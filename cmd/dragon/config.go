package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a run would use, after applying the config
file search order. Save the output to ~/.dragon/config.yaml to customize it.

Examples:
  dragon config
  dragon config --format toml > dragon.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
	return config.Encode(cmd.OutOrStdout(), cfg, flagFormat)
}
