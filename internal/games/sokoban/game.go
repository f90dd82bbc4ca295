// Package sokoban adapts the Sokoban level state to the platform game loop:
// input frames in, rendered screens out.
package sokoban

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// Stats counts the player's effort in the current attempt.
type Stats struct {
	Moves  int
	Pushes int
}

// Game is one Sokoban session on a single level.
type Game struct {
	def    levels.Definition
	level  *core.Level
	glyphs config.Glyphs
	stats  Stats

	// Rendering config
	hudHeight int
	cellW     int // Terminal columns per tile unit
}

// Option customizes a Game.
type Option func(*Game)

// WithGlyphs sets the characters drawn for each cell kind.
func WithGlyphs(g config.Glyphs) Option {
	return func(game *Game) {
		game.glyphs = g
	}
}

// New creates a game for the level definition.
// It fails when the definition does not produce a valid level.
func New(def levels.Definition, opts ...Option) (*Game, error) {
	lvl, err := def.NewLevel()
	if err != nil {
		return nil, fmt.Errorf("sokoban: %w", err)
	}
	g := &Game{
		def:       def,
		level:     lvl,
		glyphs:    config.Default().TUI.Glyphs,
		hudHeight: 2,
		cellW:     2, // Each tile is 2 chars wide so it looks square
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.def.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.def.Name == "" {
		return "Sokoban"
	}
	return g.def.Name
}

// Definition returns the level definition the game was created from.
func (g *Game) Definition() levels.Definition {
	return g.def
}

// Reset restarts the level from its definition.
// The layout is recomputed from the destination screen on every Render,
// so the runtime screen size needs no bookkeeping here.
func (g *Game) Reset(_ platformcore.RuntimeConfig) {
	g.restart()
}

// restart rebuilds the level. The definition was validated by New, so
// NewLevel cannot fail here.
func (g *Game) restart() {
	lvl, err := g.def.NewLevel()
	if err != nil {
		return
	}
	g.level = lvl
	g.stats = Stats{}
}

// Step applies one input frame.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if input.Has(platformcore.ActionRestart) {
		g.restart()
		return platformcore.StepResult{State: g.State(), Moved: true}
	}

	moved := false
	for _, m := range []struct {
		action platformcore.Action
		dir    core.Dir
	}{
		{platformcore.ActionUp, core.DirUp},
		{platformcore.ActionRight, core.DirRight},
		{platformcore.ActionDown, core.DirDown},
		{platformcore.ActionLeft, core.DirLeft},
	} {
		if !input.Has(m.action) {
			continue
		}
		switch g.level.Move(m.dir) {
		case core.OutcomeWalked:
			g.stats.Moves++
			moved = true
		case core.OutcomePushed:
			g.stats.Moves++
			g.stats.Pushes++
			moved = true
		}
	}

	return platformcore.StepResult{State: g.State(), Moved: moved}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Moves:  g.stats.Moves,
		Pushes: g.stats.Pushes,
		Won:    g.level.IsVictory(),
	}
}

// Level returns the live level state for read-only use by renderers.
func (g *Game) Level() *core.Level {
	return g.level
}

// Stats returns the counters of the current attempt.
func (g *Game) Stats() Stats {
	return g.stats
}
