// Package paint turns a level into positioned, colored tiles for pixel
// front ends. It has no graphics dependency so it can be tested headless.
package paint

import (
	"image/color"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Tile is one square cell in window coordinates.
type Tile struct {
	X, Y float32
	Size float32
	Kind core.CellKind
	Fill color.RGBA
}

// Tiles lays out every cell of the level in a w×h area, row by row.
// It returns nil when the area is too small for a one-pixel tile.
func Tiles(lvl *core.Level, w, h int, pal config.RGBAPalette) []Tile {
	lay := core.ComputeLayout(lvl.Width(), lvl.Height(), w, h)
	if lay.Tile == 0 {
		return nil
	}

	tiles := make([]Tile, 0, lvl.Width()*lvl.Height())
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			c := core.C(x, y)
			kind := lvl.At(c)
			ox, oy := lay.Origin(c)
			tiles = append(tiles, Tile{
				X:    float32(ox),
				Y:    float32(oy),
				Size: float32(lay.Tile),
				Kind: kind,
				Fill: FillFor(kind, pal),
			})
		}
	}
	return tiles
}

// FillFor returns the palette color for a cell kind.
func FillFor(kind core.CellKind, pal config.RGBAPalette) color.RGBA {
	switch kind {
	case core.CellFloor:
		return pal.Floor
	case core.CellWall:
		return pal.Wall
	case core.CellBox:
		return pal.Box
	case core.CellTarget:
		return pal.Target
	case core.CellPlayer:
		return pal.Player
	default:
		return pal.Empty
	}
}

// Title picks the window title for the level: the victory title whenever
// every target holds a box, including a level that starts solved.
func Title(lvl *core.Level, title, victory string) string {
	if lvl.IsVictory() {
		return victory
	}
	return title
}
