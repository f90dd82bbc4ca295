package levels

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// testdataPath returns the path of a file in testdata.
func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func TestLoadFile(t *testing.T) {
	def, err := LoadFile(testdataPath("first_steps.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if def.ID != "first_steps" {
		t.Errorf("expected ID 'first_steps', got %q", def.ID)
	}
	if def.Name != "First Steps" {
		t.Errorf("expected Name 'First Steps', got %q", def.Name)
	}
	if def.Width != 6 || def.Height != 5 {
		t.Errorf("expected 6x5, got %dx%d", def.Width, def.Height)
	}
	if def.Player != core.C(3, 3) {
		t.Errorf("expected player at (3,3), got %v", def.Player)
	}
	if len(def.Targets) != 1 || def.Targets[0] != core.C(1, 3) {
		t.Errorf("expected single target at (1,3), got %v", def.Targets)
	}
	if def.Boxes != 1 {
		t.Errorf("expected 1 box, got %d", def.Boxes)
	}

	testCases := []struct {
		coord core.Coord
		kind  core.CellKind
	}{
		{core.C(0, 0), core.CellEmpty},
		{core.C(2, 0), core.CellWall},
		{core.C(3, 1), core.CellFloor},
		{core.C(3, 2), core.CellBox},
		{core.C(1, 3), core.CellTarget},
		{core.C(3, 3), core.CellPlayer},
	}
	for _, tc := range testCases {
		if got := def.Grid.Get(tc.coord); got != tc.kind {
			t.Errorf("at %v: expected %v, got %v", tc.coord, tc.kind, got)
		}
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(testdataPath("does_not_exist.txt"))
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
	if errors.Is(err, core.ErrInvalidLevel) {
		t.Error("missing file should not be reported as invalid level")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	for _, name := range []string{"empty.txt", "no_player.txt", "two_players.txt"} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(testdataPath(name))
			if !errors.Is(err, core.ErrInvalidLevel) {
				t.Errorf("expected ErrInvalidLevel, got %v", err)
			}
			if errors.Is(err, ErrLevelNotFound) {
				t.Error("invalid level should not be reported as not found")
			}
		})
	}
}

func TestLoadFileDirectory(t *testing.T) {
	_, err := LoadFile(t.TempDir())
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound for a directory, got %v", err)
	}
}

func TestLoadFileOverlongRowIsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.txt")
	row := "XS" + strings.Repeat(" ", maxRowBytes) + "X\n"
	if err := os.WriteFile(path, []byte(row), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadFile(path)
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
	if errors.Is(err, ErrLevelNotFound) {
		t.Error("an existing file with an overlong row should not be reported as not found")
	}
}

func TestParseWideRow(t *testing.T) {
	// wider than bufio's default 64 KiB token limit
	row := "XSBP" + strings.Repeat(" ", 70*1024) + "X"
	def, err := Parse(strings.NewReader(row))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Width != len(row) || def.Height != 1 {
		t.Errorf("size = %dx%d, expected %dx1", def.Width, def.Height, len(row))
	}
}

func TestDefinitionStatsFloor(t *testing.T) {
	def, err := Parse(strings.NewReader("XXXXXX\nXS BPX\nXXXXXX"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	st := def.Stats()
	// floor, target and the player's own cell are walkable
	if st.Floor != 3 || st.Walls != 14 || st.Boxes != 1 || st.Targets != 1 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestParsePadsRaggedRows(t *testing.T) {
	def, err := LoadFile(testdataPath("ragged.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if def.Width != 8 || def.Height != 4 {
		t.Fatalf("expected 8x4 (trailing blank lines dropped), got %dx%d", def.Width, def.Height)
	}
	for x := 1; x < 8; x++ {
		if got := def.Grid.Get(core.C(x, 2)); got != core.CellEmpty {
			t.Errorf("padding at (%d,2): expected Empty, got %v", x, got)
		}
	}
	if def.Grid.Get(core.C(1, 3)) != core.CellTarget {
		t.Errorf("expected target at (1,3)")
	}
}

func TestParseStripsCarriageReturns(t *testing.T) {
	def, err := LoadFile(testdataPath("windows_line_endings.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if def.Width != 7 {
		t.Errorf("expected width 7, got %d", def.Width)
	}
	if def.Grid.Count(core.CellEmpty) != 0 {
		t.Errorf("carriage returns should not become cells")
	}
}

func TestParseUnknownCharactersAreEmpty(t *testing.T) {
	def, err := Parse(strings.NewReader("S#?P"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Grid.Get(core.C(1, 0)) != core.CellEmpty || def.Grid.Get(core.C(2, 0)) != core.CellEmpty {
		t.Error("unknown characters should map to Empty")
	}
}

func TestDefinitionNewLevelIsFresh(t *testing.T) {
	def, err := LoadFile(testdataPath("plansza.txt"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	a, err := def.NewLevel()
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	a.MoveRight()

	b, err := def.NewLevel()
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	if b.Player() != def.Player {
		t.Error("second level should start from the definition, not the mutated first level")
	}
}

func TestDefinitionWarnings(t *testing.T) {
	def, err := Parse(strings.NewReader("SPP B"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(def.Warnings()) != 1 {
		t.Errorf("expected 1 warning, got %v", def.Warnings())
	}

	def, err = Parse(strings.NewReader("S B"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(def.Warnings()) != 1 {
		t.Errorf("expected no-target warning, got %v", def.Warnings())
	}

	def, err = Parse(strings.NewReader("SBP"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(def.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %v", def.Warnings())
	}
}

func TestDisplayName(t *testing.T) {
	testCases := map[string]string{
		"plansza":         "Plansza",
		"first_steps":     "First Steps",
		"a-b c":           "A B C",
		"__":              "__",
		"ćwiczenie_łatwe": "Ćwiczenie Łatwe",
		"żółw":            "Żółw",
	}
	for in, want := range testCases {
		got := displayName(in)
		if got != want {
			t.Errorf("displayName(%q) = %q, expected %q", in, got, want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("displayName(%q) is not valid UTF-8: %q", in, got)
		}
	}
}
