package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/assets"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the sprites the game will use",
	Long: `Loads every sprite from --assets (or the built-in set), checks it
against the configured sizes and prints a summary.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	set, err := assets.Load(assets.Open(flagAssets), assets.DimensionsFor(cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Sprites:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range assets.Names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Opaque")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "------")

	for _, name := range assets.Names {
		img := set.Get(name)
		size := fmt.Sprintf("%dx%d", img.Width(), img.Height())
		fmt.Fprintf(out, "  %-*s  %-7s  %d\n", maxNameLen, name, size, core.MaskFromImage(img).Count())
	}

	return nil
}
