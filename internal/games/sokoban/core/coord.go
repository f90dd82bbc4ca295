package core

import "fmt"

// Coord is a cell position: X is the column, Y the row, origin at the
// top-left of the level.
type Coord struct {
	X int
	Y int
}

func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add offsets c by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step is the neighbour of c in direction d. The result may lie outside
// the grid; callers check bounds.
func (c Coord) Step(d Dir) Coord {
	return c.Add(d.Delta())
}
