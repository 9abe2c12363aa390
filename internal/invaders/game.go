// Package invaders implements a Space Invaders game: the player's ship at
// the bottom of the field, a descending formation of enemies shooting back,
// and a short freeze each time the ship is hit.
package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Game IDs
const (
	GameID     = "invaders"
	DemoGameID = "invaders_demo"
)

// gameConfig is the configuration used by New; set via CLI.
var gameConfig = config.DefaultInvadersConfig()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.InvadersConfig) {
	gameConfig = cfg
}

// Game adapts the pure simulation to the platform's registry.Game interface.
// It owns the clock, the random source and, in demo mode, the autopilot.
type Game struct {
	cfg       config.InvadersConfig
	state     State
	clock     core.Clock
	rng       core.RNG
	fixedRNG  bool // RNG injected by an option, not reseeded on Reset
	demo      bool
	autopilot *Autopilot
	runtime   core.RuntimeConfig
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for the enemy fire cooldown.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithRNG replaces the random source for enemy shooters and tints.
func WithRNG(r core.RNG) Option {
	return func(g *Game) {
		g.rng = r
		g.fixedRNG = true
	}
}

// WithAutopilot makes the game play itself; user movement and fire are ignored.
func WithAutopilot() Option {
	return func(g *Game) {
		g.demo = true
	}
}

// New creates a game with the configuration set by SetConfig.
func New(opts ...Option) *Game {
	return NewWithConfig(gameConfig, opts...)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.InvadersConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		clock: core.SystemClock{},
		rng:   core.NewSimpleRNG(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = NewState(&g.cfg)
	if g.demo {
		g.autopilot = NewAutopilot()
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.demo {
		return DemoGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.demo {
		return "Space Invaders (Demo)"
	}
	return "Space Invaders"
}

// Reset returns to the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if !g.fixedRNG {
		g.rng = core.NewSimpleRNG(cfg.Seed)
	}
	g.state = NewState(&g.cfg)
	if g.demo {
		g.autopilot = NewAutopilot()
	}
}

// Command handles the start and restart commands.
func (g *Game) Command(a core.Action) bool {
	var ok bool
	switch a {
	case core.ActionStart:
		g.state, ok = Start(g.state, g.clock.Now(), g.rng)
	case core.ActionRestart:
		g.state, ok = Restart(g.state, g.clock.Now(), g.rng)
	}
	if ok && g.demo {
		g.autopilot = NewAutopilot()
	}
	return ok
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.demo {
		in = g.autopilot.Input(g.state.Snapshot())
	}

	prev := g.state.Phase
	next, events := Step(g.state, in, g.clock.Now(), g.rng)
	g.state = next

	var notes []string
	for _, ev := range events {
		notes = append(notes, ev.String())
	}
	if next.Phase != prev {
		notes = append(notes, fmt.Sprintf("phase %s -> %s", prev, next.Phase))
	}

	return core.StepResult{State: g.State(), Events: notes}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.state.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		Phase:    g.state.Phase.String(),
		GameOver: g.state.Phase == PhaseGameOver,
		Running:  g.state.Phase.Running(),
	}
}

// Snapshot returns a read-only view of the current frame.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Current returns the full simulation state.
func (g *Game) Current() State {
	return g.state
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(DemoGameID, func() registry.Game {
		return New(WithAutopilot())
	})
}
