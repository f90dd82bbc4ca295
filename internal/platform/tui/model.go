package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Game is what the terminal front end drives.
// Implementations hold pure logic; the platform handles keys, timing and display.
type Game interface {
	// ID returns the level identifier, used as the history key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset restarts the level from its initial layout.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions of one key press.
	Step(input core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer,
	// laid out for the buffer's current size.
	Render(dst *core.Screen)

	// State returns the current counters and whether the level is won.
	State() core.GameState
}

// Options configures a play session.
type Options struct {
	Store     *storage.Store // nil disables history
	LevelPath string
	Logger    *log.Logger
	ShowHelp  bool
	Keys      *KeyMap // nil uses DefaultKeyMap
	Now       func() time.Time
}

// Model is the Bubble Tea model for one Sokoban session.
type Model struct {
	game      Game
	screen    *core.Screen
	store     *storage.Store
	levelPath string
	log       *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	showHelp  bool
	now       func() time.Time

	width     int
	height    int
	gameState core.GameState
	started   time.Time
	elapsed   time.Duration
	recorded  bool // Whether the current attempt is in the journal
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		levelPath: opts.LevelPath,
		log:       logger,
		config:    cfg,
		keys:      keys,
		help:      help.New(),
		showHelp:  opts.ShowHelp,
		now:       now,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		gameState: game.State(),
		started:   now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies one key press. Moves are turn-based, so the game
// steps on the key itself rather than on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &frame) {
		if !m.recorded && m.gameState.Moves > 0 {
			m.record(storage.OutcomeAbandoned)
		}
		m.quitting = true
		return m, tea.Quit
	}
	if len(frame.Actions) == 0 {
		return m, nil
	}

	if frame.Has(core.ActionRestart) {
		if !m.recorded && m.gameState.Moves > 0 {
			m.record(storage.OutcomeAbandoned)
		}
		m.recorded = false
		m.started = m.now()
		m.elapsed = 0
	}

	wasWon := m.gameState.Won
	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.Won && !wasWon {
		m.elapsed = m.now().Sub(m.started)
		if !m.recorded {
			m.record(storage.OutcomeWon)
		}
	}

	return m, nil
}

// handleResize adopts the new terminal size. The level state is kept;
// the game re-lays the grid on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick refreshes the elapsed time until the level is won.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.Won {
		m.elapsed = m.now().Sub(m.started)
	}
	return m, tickCmd(m.config.TickRate)
}

// record writes the current attempt to the journal once.
func (m *Model) record(outcome storage.Outcome) {
	m.recorded = true
	if m.store == nil {
		return
	}

	elapsed := m.elapsed
	if outcome == storage.OutcomeAbandoned {
		elapsed = m.now().Sub(m.started)
	}
	_, err := m.store.SaveSession(storage.Session{
		LevelID:   m.game.ID(),
		LevelPath: m.levelPath,
		Outcome:   outcome,
		Moves:     m.gameState.Moves,
		Pushes:    m.gameState.Pushes,
		Duration:  elapsed,
	})
	if err != nil {
		m.log.Warn("could not record session", "level", m.game.ID(), "error", err)
		return
	}
	m.log.Debug("session recorded", "level", m.game.ID(), "outcome", outcome, "moves", m.gameState.Moves)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := renderStatus(m.elapsed, m.gameState.Won)
	if m.showHelp {
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, statusStyle.Render(m.help.View(m.keys)))
	}

	// The board gets whatever the footer leaves.
	m.screen.Resize(m.width, core.Max(m.height-lipgloss.Height(footer), 0))
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Elapsed returns the time spent on the current attempt.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.GameState(), nil
	}
	return model.GameState(), nil
}
