package core

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidLevel is returned when a level violates its structural invariants.
var ErrInvalidLevel = errors.New("invalid level")

// Level holds the complete state of one play session: the grid of cell kinds,
// the player position and the fixed set of target positions.
// It is mutated only through Move and its direction helpers.
type Level struct {
	grid    *Grid
	player  Coord
	targets []Coord // Recorded once, never changed
}

// NewLevel constructs a level from parsed input.
// The grid must be non-empty and contain exactly one Player marker located at
// player; targets must match the grid's Target markers as a set.
// The grid is copied, so the caller's grid is never mutated.
func NewLevel(grid *Grid, player Coord, targets []Coord) (*Level, error) {
	if grid == nil || grid.IsEmpty() {
		return nil, fmt.Errorf("%w: grid is empty", ErrInvalidLevel)
	}

	players := grid.Coords(CellPlayer)
	switch {
	case len(players) == 0:
		return nil, fmt.Errorf("%w: no player marker", ErrInvalidLevel)
	case len(players) > 1:
		return nil, fmt.Errorf("%w: %d player markers, expected 1", ErrInvalidLevel, len(players))
	case players[0] != player:
		return nil, fmt.Errorf("%w: player position %v does not match marker at %v",
			ErrInvalidLevel, player, players[0])
	}

	if err := checkTargets(grid, targets); err != nil {
		return nil, err
	}

	ts := make([]Coord, len(targets))
	copy(ts, targets)

	return &Level{
		grid:    grid.Clone(),
		player:  player,
		targets: ts,
	}, nil
}

// checkTargets verifies that targets and the grid's Target markers are the same set.
func checkTargets(grid *Grid, targets []Coord) error {
	given := mapset.New[Coord]()
	for _, t := range targets {
		if given.Has(t) {
			return fmt.Errorf("%w: duplicate target %v", ErrInvalidLevel, t)
		}
		given.Put(t)
	}

	markers := grid.Coords(CellTarget)
	if len(markers) != given.Size() {
		return fmt.Errorf("%w: %d target positions for %d target markers",
			ErrInvalidLevel, given.Size(), len(markers))
	}
	for _, m := range markers {
		if !given.Has(m) {
			return fmt.Errorf("%w: target marker at %v missing from target positions", ErrInvalidLevel, m)
		}
	}
	return nil
}

// Width returns the number of columns.
func (l *Level) Width() int {
	return l.grid.W
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return l.grid.H
}

// At returns the cell kind at c, or CellEmpty outside the grid.
func (l *Level) At(c Coord) CellKind {
	return l.grid.Get(c)
}

// Player returns the current player position.
func (l *Level) Player() Coord {
	return l.player
}

// Targets returns a copy of the target positions in load order.
func (l *Level) Targets() []Coord {
	ts := make([]Coord, len(l.targets))
	copy(ts, l.targets)
	return ts
}

// IsTarget reports whether c is one of the target positions.
func (l *Level) IsTarget(c Coord) bool {
	for _, t := range l.targets {
		if t == c {
			return true
		}
	}
	return false
}

// Grid returns a snapshot of the current grid.
func (l *Level) Grid() *Grid {
	return l.grid.Clone()
}

// CoveredTargets returns how many targets currently hold a box.
func (l *Level) CoveredTargets() int {
	n := 0
	for _, t := range l.targets {
		if l.grid.Get(t) == CellBox {
			n++
		}
	}
	return n
}

// IsVictory returns true iff every target position holds a box.
// A level without targets is trivially won.
func (l *Level) IsVictory() bool {
	return l.CoveredTargets() == len(l.targets)
}

// Status returns StatusWon once all targets are covered.
func (l *Level) Status() Status {
	if l.IsVictory() {
		return StatusWon
	}
	return StatusInProgress
}

// Equal returns true if both levels have identical grid, player and targets.
func (l *Level) Equal(other *Level) bool {
	if l.player != other.player || len(l.targets) != len(other.targets) {
		return false
	}
	for i, t := range l.targets {
		if other.targets[i] != t {
			return false
		}
	}
	return l.grid.Equal(other.grid)
}
