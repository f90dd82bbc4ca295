package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

func TestGridFromRowsPadsWithEmpty(t *testing.T) {
	g := core.GridFromRows([][]core.CellKind{
		{core.CellWall, core.CellWall},
		{core.CellWall, core.CellFloor, core.CellFloor, core.CellWall},
	})

	if g.W != 4 || g.H != 2 {
		t.Fatalf("expected 4x2 grid, got %dx%d", g.W, g.H)
	}
	if g.Get(core.C(3, 0)) != core.CellEmpty {
		t.Errorf("short row should be padded with Empty, got %v", g.Get(core.C(3, 0)))
	}
	if g.Get(core.C(2, 1)) != core.CellFloor {
		t.Errorf("expected Floor at (2,1), got %v", g.Get(core.C(2, 1)))
	}
}

func TestGridAtBounds(t *testing.T) {
	g := core.NewGrid(3, 2)

	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(2, 1), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(3, 0), false},
		{core.C(0, 2), false},
	}

	for _, tc := range testCases {
		_, ok := g.At(tc.coord)
		if ok != tc.expected {
			t.Errorf("At(%v): expected in-bounds=%v, got %v", tc.coord, tc.expected, ok)
		}
	}

	// Out-of-bounds writes are ignored.
	g.Set(core.C(5, 5), core.CellWall)
	if g.Count(core.CellWall) != 0 {
		t.Error("out-of-bounds Set should be ignored")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(core.C(1, 1), core.CellBox)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	g.Set(core.C(1, 1), core.CellFloor)
	if clone.Get(core.C(1, 1)) != core.CellBox {
		t.Error("clone should not be affected by original modification")
	}
}

func TestGridCoordsOrder(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(core.C(2, 0), core.CellTarget)
	g.Set(core.C(0, 2), core.CellTarget)
	g.Set(core.C(1, 1), core.CellTarget)

	coords := g.Coords(core.CellTarget)
	expected := []core.Coord{core.C(2, 0), core.C(1, 1), core.C(0, 2)}
	if len(coords) != len(expected) {
		t.Fatalf("expected %d coords, got %d", len(expected), len(coords))
	}
	for i := range expected {
		if coords[i] != expected[i] {
			t.Errorf("coords[%d] = %v, expected %v", i, coords[i], expected[i])
		}
	}
}
