package core

// Grid represents the level map as a rectangular grid of cell kinds.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int        // Width of the grid
	H     int        // Height of the grid
	Cells []CellKind // Flat array of cells, length W*H
}

// NewGrid creates a grid of the given dimensions with every cell Empty.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]CellKind, w*h),
	}
}

// GridFromRows builds a grid from rows of cell kinds.
// Shorter rows are padded with CellEmpty up to the longest row.
func GridFromRows(rows [][]CellKind) *Grid {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		copy(g.Cells[y*w:], row)
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the cell kind at c and whether c is inside the grid.
func (g *Grid) At(c Coord) (CellKind, bool) {
	if !g.InBounds(c) {
		return CellEmpty, false
	}
	return g.Cells[g.index(c)], true
}

// Get returns the cell kind at the given coordinate.
// Returns CellEmpty if out of bounds.
func (g *Grid) Get(c Coord) CellKind {
	k, _ := g.At(c)
	return k
}

// Set sets the cell at the given coordinate. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, k CellKind) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = k
	}
}

// IsEmpty returns true if the grid has no cells.
func (g *Grid) IsEmpty() bool {
	return g.W == 0 || g.H == 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellKind, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, k := range g.Cells {
		if k != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.Cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Coords returns all coordinates holding the given kind, ordered by row then column.
func (g *Grid) Coords(kind CellKind) []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Get(c) == kind {
				coords = append(coords, c)
			}
		}
	}
	return coords
}
