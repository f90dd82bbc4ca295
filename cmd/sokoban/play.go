package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/i18n"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level-file]",
	Short: "Play a level in the terminal",
	Long: `Play a Sokoban level in the terminal.

Controls:
  Arrows/WASD/hjkl  - Move
  R                 - Restart the level
  ?                 - Toggle full help
  Q/Esc/Ctrl+C      - Quit

Without a level file the configured level (level.path) is played.

Examples:
  sokoban play
  sokoban play levels/warehouse.txt
  sokoban play --lang pl`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, logger := mustSetup()
	path := levelPath(cfg, args)
	def := mustLoadLevel(path, logger)

	game, err := sokoban.New(def, sokoban.WithGlyphs(cfg.TUI.Glyphs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store := openHistory(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	state, err := tui.Run(game, rc, tui.Options{
		Store:     store,
		LevelPath: path,
		Logger:    logger,
		ShowHelp:  cfg.TUI.ShowHelp,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if state.Won {
		fmt.Println(i18n.T(i18n.MsgSolvedIn, state.Moves))
	}
}
