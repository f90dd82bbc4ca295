package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window [level-file]",
	Short: "Play a level in a desktop window",
	Long: `Open a resizable window and play a Sokoban level.

Controls:
  Arrows  - Move
  R       - Restart the level
  Escape  - Close the window

The window title changes to the victory title once every target is covered.
Size, titles and colors come from the window section of the config.

Examples:
  sokoban window
  sokoban window levels/plansza.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, logger := mustSetup()
	def := mustLoadLevel(levelPath(cfg, args), logger)

	game, err := sokoban.New(def)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := gui.New(game, cfg.Window, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
