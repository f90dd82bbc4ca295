package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level-id]",
	Short: "Browse recorded sessions",
	Long: `Show recorded play sessions, newest first.

In a terminal the sessions are shown in an interactive table; tab cycles
between levels. With --plain (or when output is not a terminal) a plain
listing is printed instead. --clear deletes the sessions of one level.

Examples:
  sokoban history
  sokoban history plansza
  sokoban history --plain
  sokoban history plansza --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded sessions for the given level")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, _ := mustSetup()

	levelID := ""
	if len(args) > 0 {
		levelID = args[0]
	}

	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if levelID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level id")
			os.Exit(1)
		}
		if err := store.ClearHistory(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history for %s.\n", levelID)
		return
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		if err := printHistory(store, levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunHistory(store, levelID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history view: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the sessions as plain text.
func printHistory(store *storage.Store, levelID string) error {
	var (
		sessions []storage.Session
		err      error
	)
	if levelID == "" {
		sessions, err = store.RecentSessions(20)
	} else {
		sessions, err = store.SessionsForLevel(levelID, 20)
	}
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-16s  %-9s  %5s  %6s\n", "Date", "Level", "Result", "Moves", "Pushes")
	fmt.Printf("  %-16s  %-16s  %-9s  %5s  %6s\n", "----", "-----", "------", "-----", "------")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-16s  %-9s  %5d  %6d\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.LevelID, s.Outcome, s.Moves, s.Pushes)
	}

	if levelID != "" {
		best, err := store.BestSession(levelID)
		if err != nil {
			return err
		}
		if best != nil {
			fmt.Println()
			fmt.Printf("Best: %d moves, %d pushes\n", best.Moves, best.Pushes)
		}
	}
	return nil
}
