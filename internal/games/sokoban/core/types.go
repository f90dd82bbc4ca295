// Package core provides the level state machine for the Sokoban game.
// This package is UI-agnostic and deterministic: it holds the grid, the
// player position and the target set, and resolves moves against them.
package core

// CellKind is the semantic category of a single grid square.
// A cell holds exactly one kind at a time.
type CellKind uint8

const (
	CellEmpty  CellKind = iota // Unreachable void
	CellFloor                  // Open, walkable
	CellWall                   // Blocking
	CellBox                    // Movable crate
	CellTarget                 // Goal tile, currently uncovered
	CellPlayer                 // Player location (floor or target underneath)
)

// String returns the name of the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellFloor:
		return "Floor"
	case CellWall:
		return "Wall"
	case CellBox:
		return "Box"
	case CellTarget:
		return "Target"
	case CellPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// Walkable reports whether the player may step onto a cell of this kind.
func (k CellKind) Walkable() bool {
	return k == CellFloor || k == CellTarget
}

// Dir represents one of the four axis-aligned movement directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Status is the observable state of a level.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon               // Terminal
)

// String returns the string representation of a status.
func (s Status) String() string {
	if s == StatusWon {
		return "Won"
	}
	return "InProgress"
}
