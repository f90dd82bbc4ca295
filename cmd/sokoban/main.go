// sokoban is a Sokoban puzzle game for the terminal and the desktop.
//
// Usage:
//
//	sokoban play [level-file]     - Play in the terminal
//	sokoban window [level-file]   - Play in a desktop window
//	sokoban check <level-file>    - Validate a level and preview it
//	sokoban history [level-id]    - Browse recorded sessions
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search ~/.sokoban, ./configs)
//	--db <path>         - History database path (default: ~/.sokoban/history.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--lang <code>       - UI language, e.g. pl
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/i18n"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLang     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push every box onto a target",
	Long: `Sokoban is a warehouse puzzle: walk around the level, push boxes
(never pull them) and cover every target to win.

Available commands:
  play     - Play a level in the terminal
  window   - Play a level in a desktop window
  check    - Validate a level file and print a preview
  history  - Browse recorded sessions

Examples:
  sokoban play
  sokoban play levels/warehouse.txt
  sokoban window levels/plansza.txt
  sokoban check levels/plansza.txt
  sokoban history plansza`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "UI language (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads configuration, applies flag overrides and wires the logger
// and translations into the packages that use them.
func setup() (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	applyFlags(&cfg)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger.SetLevel(level)

	levels.SetLogger(logger)
	i18n.Configure(cfg.Locale.Dir, cfg.Locale.Lang, cfg.Locale.Domain)
	logger.Debug("configuration loaded", "lang", cfg.Locale.Lang, "history", cfg.History.Enabled)

	return cfg, logger, nil
}

// applyFlags copies non-empty global flags over the loaded configuration.
func applyFlags(cfg *config.Config) {
	if flagDBPath != "" {
		cfg.History.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLang != "" {
		cfg.Locale.Lang = flagLang
	}
}

// mustSetup is setup for command handlers: configuration errors end the process.
func mustSetup() (config.Config, *log.Logger) {
	cfg, logger, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}

// levelPath returns the level file named on the command line, or the configured one.
func levelPath(cfg config.Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Level.Path
}

// mustLoadLevel loads a level or exits with status 1.
func mustLoadLevel(path string, logger *log.Logger) levels.Definition {
	def, err := levels.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range def.Warnings() {
		logger.Warn(w, "level", def.ID)
	}
	return def
}

// openHistory opens the journal, or returns nil when it is disabled or unavailable.
func openHistory(cfg config.Config, logger *log.Logger) *storage.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without history
		return nil
	}
	return store
}
