// dragon is Flappy Dragon, a side-scroller for the terminal.
//
// Usage:
//
//	dragon                   - Play (same as "dragon play")
//	dragon play              - Play the game
//	dragon config            - Print the effective configuration
//	dragon assets            - List the sprites the game will use
//
// Global flags:
//
//	--config <path>      - Config file (.yaml or .toml)
//	--assets <dir>       - Sprite directory (default: built-in sprites)
//	--log-file <path>    - Log destination, "-" for stderr (default: ~/.dragon/dragon.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - keep the dragon in the air",
	Long: `Flappy Dragon is a side-scroller for the terminal. Flap to climb,
let go to fall, and steer the dragon through the gaps between obstacles.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  assets   - List the sprites the game will use

Examples:
  dragon
  dragon play --seed 42
  dragon play --fit
  dragon config --format toml
  dragon --config ./my-dragon.toml play`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprite files (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dragon/dragon.log", `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}
