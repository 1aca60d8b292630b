package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	flagFPS  int
	flagSeed int64
	flagFit  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start a run. The run ends when the dragon hits an obstacle, touches
the top or bottom edge, or you quit.

Controls:
  Space/Up/Enter/W/Click  - Flap
  P                       - Pause
  Esc/Q/Ctrl+C            - Quit

Examples:
  dragon play
  dragon play --seed 42 --fps 30
  dragon play --fit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", core.DefaultFPS, "Tick rate (frames per second), overrides the config")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().BoolVar(&flagFit, "fit", false, "Size the world to the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	if cmd.Flags().Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}
	if flagFit {
		cfg.World = fitWorld(cfg.World, logger)
	}

	set, err := loadAssets(cfg, logger)
	if err != nil {
		return err
	}

	game := dragon.New(cfg, set)
	state, err := tui.Run(game, core.RuntimeConfig{
		TickRate: cfg.Timing.FPS,
		Seed:     flagSeed,
	}, logger)
	if err != nil {
		logger.Error("terminal loop failed", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}

	reportGameOver(cmd.OutOrStdout(), state)
	return nil
}

// reportGameOver prints the final line after the terminal is restored.
func reportGameOver(w io.Writer, state core.GameState) {
	fmt.Fprintf(w, "Game over! Score: %d\n", state.Score)
}

// fitWorld sizes the world to the terminal, leaving a line for the help
// footer. The configured size is kept when the terminal can't be queried.
func fitWorld(world config.World, logger *log.Logger) config.World {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Warn("cannot read terminal size, keeping configured world", "error", err)
		return world
	}
	return config.World{Width: w, Height: h - 1}
}

// loadAssets loads sprites from --assets, or the built-in set.
func loadAssets(cfg config.DragonConfig, logger *log.Logger) (assets.Set, error) {
	source := flagAssets
	if source == "" {
		source = "embedded"
	}

	set, err := assets.Load(assets.Open(flagAssets), assets.DimensionsFor(cfg))
	if err != nil {
		logger.Error("cannot load sprites", "source", source, "error", err)
		return assets.Set{}, fmt.Errorf("cannot load sprites from %s: %w", source, err)
	}
	logger.Info("sprites loaded", "source", source)
	return set, nil
}
