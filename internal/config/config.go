// Package config provides YAML-based configuration loading for the Sokoban
// front ends, the play-history journal and logging.
package config

// Config contains all configuration for a Sokoban session.
type Config struct {
	Level   LevelConfig   `yaml:"level"`
	TUI     TUIConfig     `yaml:"tui"`
	Window  WindowConfig  `yaml:"window"`
	Locale  LocaleConfig  `yaml:"locale"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// LevelConfig selects the level played when none is given on the command line.
type LevelConfig struct {
	Path string `yaml:"path"`
}

// TUIConfig defines the terminal front end.
type TUIConfig struct {
	Glyphs   Glyphs `yaml:"glyphs"`
	ShowHelp bool   `yaml:"show_help"`
}

// Glyphs holds the single character drawn for each cell kind.
type Glyphs struct {
	Empty       string `yaml:"empty"`
	Floor       string `yaml:"floor"`
	Wall        string `yaml:"wall"`
	Box         string `yaml:"box"`
	BoxOnTarget string `yaml:"box_on_target"`
	Target      string `yaml:"target"`
	Player      string `yaml:"player"`
}

// WindowConfig defines the graphical window front end.
type WindowConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Title        string  `yaml:"title"`
	VictoryTitle string  `yaml:"victory_title"`
	Outline      float32 `yaml:"outline"`
	Palette      Palette `yaml:"palette"`
}

// Palette holds hex colors ("#rrggbb") for each cell kind in the window.
type Palette struct {
	Empty   string `yaml:"empty"`
	Floor   string `yaml:"floor"`
	Wall    string `yaml:"wall"`
	Box     string `yaml:"box"`
	Target  string `yaml:"target"`
	Player  string `yaml:"player"`
	Outline string `yaml:"outline"`
}

// LocaleConfig points at the gettext catalogs used for UI strings.
type LocaleConfig struct {
	Dir    string `yaml:"dir"`
	Lang   string `yaml:"lang"`
	Domain string `yaml:"domain"`
}

// HistoryConfig controls the play-history journal.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig controls the logger level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}
