package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// Default returns the hardcoded Sokoban configuration.
// It matches defaults/sokoban.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Level: LevelConfig{
			Path: "levels/plansza.txt",
		},
		TUI: TUIConfig{
			ShowHelp: true,
			Glyphs: Glyphs{
				Empty:       " ",
				Floor:       "·",
				Wall:        "█",
				Box:         "$",
				BoxOnTarget: "*",
				Target:      "○",
				Player:      "@",
			},
		},
		Window: WindowConfig{
			Width:        800,
			Height:       600,
			Title:        "Sokoban",
			VictoryTitle: "Victory",
			Outline:      1,
			Palette: Palette{
				Empty:   "#1e1e1e",
				Floor:   "#c8c8c8",
				Wall:    "#646464",
				Box:     "#a0522d",
				Target:  "#00c800",
				Player:  "#0000ff",
				Outline: "#000000",
			},
		},
		Locale: LocaleConfig{
			Dir:    "locales",
			Lang:   "en",
			Domain: "default",
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.sokoban/history.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSokobanYAML
}
