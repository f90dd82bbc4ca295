package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// mustLevel parses rows joined by newlines into a fresh level.
func mustLevel(t *testing.T, rows ...string) *core.Level {
	t.Helper()
	def, err := levels.Parse(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	lvl, err := def.NewLevel()
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	return lvl
}

func TestNewLevelRejectsEmptyGrid(t *testing.T) {
	_, err := core.NewLevel(core.NewGrid(0, 0), core.C(0, 0), nil)
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}

	_, err = core.NewLevel(nil, core.C(0, 0), nil)
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel for nil grid, got %v", err)
	}
}

func TestNewLevelRejectsMissingPlayer(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Set(core.C(0, 0), core.CellWall)
	g.Set(core.C(1, 0), core.CellFloor)
	g.Set(core.C(2, 0), core.CellWall)

	_, err := core.NewLevel(g, core.C(1, 0), nil)
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestNewLevelRejectsMismatchedInputs(t *testing.T) {
	g := core.NewGrid(4, 1)
	g.Set(core.C(0, 0), core.CellPlayer)
	g.Set(core.C(1, 0), core.CellTarget)
	g.Set(core.C(2, 0), core.CellBox)
	g.Set(core.C(3, 0), core.CellFloor)

	testCases := []struct {
		name    string
		player  core.Coord
		targets []core.Coord
	}{
		{"wrong player position", core.C(3, 0), []core.Coord{core.C(1, 0)}},
		{"missing target", core.C(0, 0), nil},
		{"extra target", core.C(0, 0), []core.Coord{core.C(1, 0), core.C(3, 0)}},
		{"target not on marker", core.C(0, 0), []core.Coord{core.C(3, 0)}},
		{"duplicate target", core.C(0, 0), []core.Coord{core.C(1, 0), core.C(1, 0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewLevel(g, tc.player, tc.targets)
			if !errors.Is(err, core.ErrInvalidLevel) {
				t.Errorf("expected ErrInvalidLevel, got %v", err)
			}
		})
	}

	if _, err := core.NewLevel(g, core.C(0, 0), []core.Coord{core.C(1, 0)}); err != nil {
		t.Errorf("valid inputs rejected: %v", err)
	}
}

func TestNewLevelRejectsTwoPlayers(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Set(core.C(0, 0), core.CellPlayer)
	g.Set(core.C(2, 0), core.CellPlayer)

	_, err := core.NewLevel(g, core.C(0, 0), nil)
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestNewLevelCopiesGrid(t *testing.T) {
	g := core.NewGrid(3, 1)
	g.Set(core.C(0, 0), core.CellPlayer)
	g.Set(core.C(1, 0), core.CellFloor)
	g.Set(core.C(2, 0), core.CellFloor)

	lvl, err := core.NewLevel(g, core.C(0, 0), nil)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}

	lvl.MoveRight()
	if g.Get(core.C(0, 0)) != core.CellPlayer {
		t.Error("caller's grid should not be mutated by moves")
	}
}

func TestVictoryWithoutTargets(t *testing.T) {
	lvl := mustLevel(t,
		"XXXX",
		"XS X",
		"XXXX",
	)

	if !lvl.IsVictory() {
		t.Error("level without targets should be won immediately")
	}
	if lvl.Status() != core.StatusWon {
		t.Errorf("expected StatusWon, got %v", lvl.Status())
	}
}

func TestVictoryRequiresEveryTarget(t *testing.T) {
	lvl := mustLevel(t,
		"XXXXXXX",
		"XPBS BPX",
		"XXXXXXX",
	)

	if lvl.IsVictory() {
		t.Fatal("no target is covered yet")
	}

	// Push the left box onto the left target.
	lvl.MoveLeft()
	if lvl.CoveredTargets() != 1 {
		t.Fatalf("expected 1 covered target, got %d", lvl.CoveredTargets())
	}
	if lvl.IsVictory() {
		t.Error("one uncovered target remains")
	}

	// Walk back and push the right box onto the right target.
	lvl.MoveRight()
	lvl.MoveRight()
	lvl.MoveRight()
	if !lvl.IsVictory() {
		t.Errorf("expected victory, grid:\n%s", dump(lvl))
	}
}

func TestTargetsReturnsCopy(t *testing.T) {
	lvl := mustLevel(t, "SPB")
	ts := lvl.Targets()
	ts[0] = core.C(9, 9)

	if lvl.Targets()[0] != core.C(1, 0) {
		t.Error("Targets() should return a copy")
	}
}

func TestIsTarget(t *testing.T) {
	lvl := mustLevel(t, "SPBP")

	for _, c := range []core.Coord{core.C(1, 0), core.C(3, 0)} {
		if !lvl.IsTarget(c) {
			t.Errorf("IsTarget(%v) = false, expected true", c)
		}
	}
	for _, c := range []core.Coord{core.C(0, 0), core.C(2, 0), core.C(-1, 0)} {
		if lvl.IsTarget(c) {
			t.Errorf("IsTarget(%v) = true, expected false", c)
		}
	}

	// Target positions survive the player standing on them.
	lvl.MoveRight()
	if lvl.At(core.C(1, 0)) != core.CellPlayer || !lvl.IsTarget(core.C(1, 0)) {
		t.Errorf("target under player lost, grid:\n%s", dump(lvl))
	}
}

// dump renders the level with the level file alphabet for failure messages.
func dump(lvl *core.Level) string {
	glyph := map[core.CellKind]byte{
		core.CellEmpty:  '*',
		core.CellFloor:  ' ',
		core.CellWall:   'X',
		core.CellBox:    'B',
		core.CellTarget: 'P',
		core.CellPlayer: 'S',
	}
	var sb strings.Builder
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			sb.WriteByte(glyph[lvl.At(core.C(x, y))])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
