package core

// Outcome describes what a move attempt did.
type Outcome uint8

const (
	OutcomeBlocked     Outcome = iota // Wall, void, or an immovable box
	OutcomeOutOfBounds                // Next or beyond cell lies outside the grid
	OutcomeWalked                     // Player moved onto floor or target
	OutcomePushed                     // Player moved and pushed a box
	OutcomeFinished                   // Level already won; move ignored
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "Blocked"
	case OutcomeOutOfBounds:
		return "OutOfBounds"
	case OutcomeWalked:
		return "Walked"
	case OutcomePushed:
		return "Pushed"
	case OutcomeFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Moved reports whether the move changed the level.
func (o Outcome) Moved() bool {
	return o == OutcomeWalked || o == OutcomePushed
}

// MoveLeft attempts to move the player one cell left.
func (l *Level) MoveLeft() Outcome { return l.Move(DirLeft) }

// MoveRight attempts to move the player one cell right.
func (l *Level) MoveRight() Outcome { return l.Move(DirRight) }

// MoveUp attempts to move the player one cell up.
func (l *Level) MoveUp() Outcome { return l.Move(DirUp) }

// MoveDown attempts to move the player one cell down.
func (l *Level) MoveDown() Outcome { return l.Move(DirDown) }

// Move attempts to move the player in direction d, pushing a box if one is
// in the way. Illegal moves leave the level untouched.
func (l *Level) Move(d Dir) Outcome {
	if l.IsVictory() {
		return OutcomeFinished
	}

	next := l.player.Step(d)
	kind, ok := l.grid.At(next)
	if !ok {
		return OutcomeOutOfBounds
	}

	outcome := OutcomeWalked
	switch kind {
	case CellFloor, CellTarget:
	case CellBox:
		beyond := next.Step(d)
		bk, ok := l.grid.At(beyond)
		if !ok {
			return OutcomeOutOfBounds
		}
		if !bk.Walkable() {
			return OutcomeBlocked
		}
		l.grid.Set(beyond, CellBox)
		l.grid.Set(next, CellFloor)
		outcome = OutcomePushed
	default:
		// Wall and Empty; the player never occupies next.
		return OutcomeBlocked
	}

	l.grid.Set(l.player, CellFloor)
	l.grid.Set(next, CellPlayer)
	l.player = next

	l.restoreTargets()
	return outcome
}

// restoreTargets re-marks every vacated target. Targets under a box stay Box,
// the target under the player stays Player.
func (l *Level) restoreTargets() {
	for _, t := range l.targets {
		if l.grid.Get(t) == CellFloor {
			l.grid.Set(t, CellTarget)
		}
	}
}
