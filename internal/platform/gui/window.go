// Package gui provides the Ebiten window front end: filled, outlined tiles
// scaled to the window, arrow keys to move and Escape to close.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/gui/paint"
)

// keyActions maps window keys to game actions.
var keyActions = []struct {
	key    ebiten.Key
	action platformcore.Action
}{
	{ebiten.KeyArrowLeft, platformcore.ActionLeft},
	{ebiten.KeyArrowRight, platformcore.ActionRight},
	{ebiten.KeyArrowUp, platformcore.ActionUp},
	{ebiten.KeyArrowDown, platformcore.ActionDown},
	{ebiten.KeyR, platformcore.ActionRestart},
}

// Window runs one game in an Ebiten window.
type Window struct {
	game    *sokoban.Game
	cfg     config.WindowConfig
	palette config.RGBAPalette
	log     *log.Logger

	width, height int
	title         string // Title currently set on the window
	solved        bool   // Whether the solve has been logged
}

// New creates a window for the game. The palette is parsed up front so a
// bad color fails before the window opens.
func New(game *sokoban.Game, cfg config.WindowConfig, logger *log.Logger) (*Window, error) {
	pal, err := cfg.Palette.Resolve()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:    game,
		cfg:     cfg,
		palette: pal,
		log:     logger,
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

// Update handles input (Ebiten interface).
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	frame := platformcore.NewInputFrame()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			frame.Set(ka.action)
		}
	}
	if len(frame.Actions) > 0 {
		res := w.game.Step(frame)
		if res.State.Won && !w.solved {
			w.log.Info("level solved", "level", w.game.ID(), "moves", res.State.Moves, "pushes", res.State.Pushes)
		}
		w.solved = res.State.Won
	}

	w.syncTitle()
	return nil
}

// syncTitle sets the window title from the level state when it changed.
func (w *Window) syncTitle() {
	want := paint.Title(w.game.Level(), w.cfg.Title, w.cfg.VictoryTitle)
	if want == w.title {
		return
	}
	ebiten.SetWindowTitle(want)
	w.title = want
}

// Draw paints every tile filled with its palette color and outlined (Ebiten interface).
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.palette.Empty)

	for _, t := range paint.Tiles(w.game.Level(), w.width, w.height, w.palette) {
		vector.DrawFilledRect(screen, t.X, t.Y, t.Size, t.Size, t.Fill, false)
		if w.cfg.Outline > 0 {
			vector.StrokeRect(screen, t.X, t.Y, t.Size, t.Size, w.cfg.Outline, w.palette.Outline, false)
		}
	}
}

// Layout tracks the window size so tiles rescale on resize (Ebiten interface).
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width = outsideWidth
	w.height = outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	w.syncTitle()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// State returns the game state, useful once Run has returned.
func (w *Window) State() platformcore.GameState {
	return w.game.State()
}
