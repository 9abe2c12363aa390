package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// helpRows is the height of the help footer below the game screen.
const helpRows = 1

// Model is the Bubble Tea model for running the game.
//
// The tick chain only runs while the game reports Running: it starts when a
// start or restart command is accepted and stops on game over.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *heldKeys
	clock     core.Clock
	logger    *log.Logger
	gameState core.GameState
	ticking   bool
	quitting  bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithClock sets the clock used for held-key timing.
func WithClock(c core.Clock) ModelOption {
	return func(m *Model) {
		m.clock = c
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   &heldKeys{},
		clock:  core.SystemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init initializes the model. Nothing ticks until the game is started.
func (m Model) Init() tea.Cmd {
	return nil
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.ticking = false
		m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		return m, tea.Quit

	case core.ActionStart, core.ActionRestart:
		if !m.game.Command(action) {
			return m, nil
		}
		m.held.reset()
		m.gameState = m.game.State()
		m.logger.Info("game started", "game", m.game.ID(), "action", action)
		return m.startTicking()

	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.held.press(action, m.clock.Now())
	}

	return m, nil
}

// startTicking begins the tick chain unless one is already running.
func (m Model) startTicking() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The field is scaled to
// whatever size the terminal has, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	result := m.game.Step(m.held.frame(m.clock.Now()))
	m.gameState = result.State

	for _, ev := range result.Events {
		if strings.HasPrefix(ev, "phase ") {
			m.logger.Info(ev)
		} else {
			m.logger.Debug(ev)
		}
	}

	if !result.State.Running {
		m.ticking = false
		if result.State.GameOver {
			m.logger.Info("game over", "score", result.State.Score, "lives", result.State.Lives)
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
