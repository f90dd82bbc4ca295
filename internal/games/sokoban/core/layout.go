package core

// Layout positions a grid inside a drawing area.
// Tile is the side of one square cell; OffsetX/OffsetY center the grid.
type Layout struct {
	Tile    int
	OffsetX int
	OffsetY int
}

// ComputeLayout returns the largest tile size such that cols*Tile <= areaW and
// rows*Tile <= areaH, with offsets that center the grid in the area.
// Units are whatever the caller draws in (pixels, terminal cells).
func ComputeLayout(cols, rows, areaW, areaH int) Layout {
	if cols <= 0 || rows <= 0 || areaW <= 0 || areaH <= 0 {
		return Layout{}
	}

	tile := min(areaW/cols, areaH/rows)
	return Layout{
		Tile:    tile,
		OffsetX: (areaW - tile*cols) / 2,
		OffsetY: (areaH - tile*rows) / 2,
	}
}

// Origin returns the top-left corner of cell c in area units.
func (lay Layout) Origin(c Coord) (x, y int) {
	return lay.OffsetX + c.X*lay.Tile, lay.OffsetY + c.Y*lay.Tile
}
