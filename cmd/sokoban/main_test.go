package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

func parseLevel(t *testing.T, src string) levels.Definition {
	t.Helper()
	def, err := levels.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def.Name = "Inline"
	def.Path = "inline.txt"
	return def
}

func TestPreviewUsesGlyphs(t *testing.T) {
	def := parseLevel(t, "XXXXX\nXSBPX\n*XXX\n")
	glyphs := config.Glyphs{
		Empty: "~", Floor: ".", Wall: "#", Box: "$", BoxOnTarget: "*", Target: "o", Player: "@",
	}

	got := color.ClearCode(Preview(def, glyphs))
	want := "#####\n#@$o#\n~###~\n"
	if got != want {
		t.Errorf("Preview() = %q, expected %q", got, want)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	writeReport(&buf, parseLevel(t, "XXXXXX\nXSBP X\nXXXXXX\n"), config.Default().TUI.Glyphs)

	out := color.ClearCode(buf.String())
	for _, want := range []string{"Inline (inline.txt)", "size:    6x3", "boxes:   1", "targets: 1", "OK"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportWarnings(t *testing.T) {
	var buf bytes.Buffer
	writeReport(&buf, parseLevel(t, "XXXXX\nXS PX\nXXXXX\n"), config.Default().TUI.Glyphs)

	out := color.ClearCode(buf.String())
	if !strings.Contains(out, "warning: 0 boxes for 1 targets") {
		t.Errorf("expected unwinnable warning:\n%s", out)
	}
	if strings.Contains(out, "OK") {
		t.Error("a level with warnings should not report OK")
	}
}

func TestLevelPath(t *testing.T) {
	cfg := config.Default()
	if got := levelPath(cfg, nil); got != cfg.Level.Path {
		t.Errorf("levelPath without args = %q, expected %q", got, cfg.Level.Path)
	}
	if got := levelPath(cfg, []string{"custom.txt"}); got != "custom.txt" {
		t.Errorf("levelPath with arg = %q", got)
	}
}

func TestApplyFlags(t *testing.T) {
	t.Cleanup(func() { flagDBPath, flagLogLevel, flagLang = "", "", "" })

	cfg := config.Default()
	applyFlags(&cfg)
	if cfg != config.Default() {
		t.Error("empty flags should not change the config")
	}

	flagDBPath = filepath.Join(t.TempDir(), "h.db")
	flagLogLevel = "debug"
	flagLang = "pl"
	applyFlags(&cfg)
	if cfg.History.DBPath != flagDBPath || cfg.Log.Level != "debug" || cfg.Locale.Lang != "pl" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestShippedLevelsLoad(t *testing.T) {
	for _, name := range []string{"plansza.txt", "warehouse.txt"} {
		def, err := levels.LoadFile(filepath.Join("..", "..", "levels", name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if w := def.Warnings(); len(w) != 0 {
			t.Errorf("%s: unexpected warnings %v", name, w)
		}
	}
}
