package invaders

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func newTestGame(opts ...Option) (*Game, *core.ManualClock) {
	clock := core.NewManualClock(t0)
	opts = append([]Option{WithClock(clock), WithRNG(core.NewSimpleRNG(1))}, opts...)
	g := New(opts...)
	g.Reset(core.DefaultConfig())
	return g, clock
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{GameID, DemoGameID} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameLifecycle(t *testing.T) {
	g, clock := newTestGame()

	st := g.State()
	if st.Phase != "start" || st.Running || st.GameOver {
		t.Fatalf("new game state = %+v, expected title screen", st)
	}
	if g.Command(core.ActionRestart) {
		t.Error("restart should be rejected on the title screen")
	}

	// Steps on the title screen do nothing.
	g.Step(core.NewInputFrame())
	if g.Current().Frame != 0 {
		t.Error("title screen should not advance frames")
	}

	if !g.Command(core.ActionStart) {
		t.Fatal("start should be accepted")
	}
	if g.Command(core.ActionStart) {
		t.Error("a second start should be rejected")
	}
	st = g.State()
	if st.Phase != "playing" || !st.Running || st.Lives != 3 || st.Score != 0 {
		t.Fatalf("state after start = %+v", st)
	}

	clock.Advance(16 * time.Millisecond)
	res := g.Step(input(core.ActionFire))
	if !res.State.Running {
		t.Error("game should still be running")
	}
	if len(g.Current().Bullets) != 1 {
		t.Errorf("expected a bullet after fire, got %d", len(g.Current().Bullets))
	}
}

func TestGameStepReportsPhaseChange(t *testing.T) {
	g, _ := newTestGame()
	g.Command(core.ActionStart)

	s := g.state.Clone()
	s.Lives = 1
	s.EnemyBullets = []EnemyBullet{{X: 585, Y: 725}}
	g.state = s

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || res.State.Running {
		t.Fatalf("state = %+v, expected game over", res.State)
	}
	joined := strings.Join(res.Events, "\n")
	if !strings.Contains(joined, "player hit") || !strings.Contains(joined, "phase playing -> gameOver") {
		t.Errorf("events = %q", res.Events)
	}

	if !g.Command(core.ActionRestart) {
		t.Fatal("restart should be accepted after game over")
	}
	if st := g.State(); st.Phase != "playing" || st.Lives != 3 {
		t.Errorf("state after restart = %+v", st)
	}
}

func TestGameDemoIgnoresUserInput(t *testing.T) {
	g, clock := newTestGame(WithAutopilot())
	g.Command(core.ActionStart)

	// Drive the demo with "left" held; the autopilot decides instead.
	for i := 0; i < 100; i++ {
		clock.Advance(16 * time.Millisecond)
		g.Step(input(core.ActionLeft))
	}
	if g.Current().Player.X == 0 {
		t.Error("demo mode should not follow user input")
	}
}

func TestGameSeedDeterminism(t *testing.T) {
	run := func() uint64 {
		clock := core.NewManualClock(t0)
		g := New(WithClock(clock), WithAutopilot())
		cfg := core.DefaultConfig()
		cfg.Seed = 1234
		g.Reset(cfg)
		g.Command(core.ActionStart)
		for i := 0; i < 1000; i++ {
			clock.Advance(16 * time.Millisecond)
			g.Step(core.NewInputFrame())
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different games: %x != %x", a, b)
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"SPACE INVADERS", "Press Enter to start", "Score: 0", "Lives: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen should contain %q", want)
		}
	}

	g.Command(core.ActionStart)
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "SPACE INVADERS") {
		t.Error("title box should be gone once playing")
	}
	if !strings.ContainsRune(out, EnemyChar) || !strings.ContainsRune(out, PlayerChar) {
		t.Error("playing screen should show enemies and the player")
	}
}

func TestDrawGameOverAndFlash(t *testing.T) {
	s := startedState(t)
	screen := core.NewScreen(80, 24)

	s.Phase = PhaseExplosion
	s.ExplosionFrame = 10
	Draw(screen, s.Snapshot())
	if !strings.ContainsRune(screen.String(), FlashChar) {
		t.Error("explosion phase should draw the fireball")
	}

	s.Phase = PhaseGameOver
	s.Score = 230
	Draw(screen, s.Snapshot())
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Final Score: 230") {
		t.Errorf("game over screen missing text:\n%s", out)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	s := startedState(t)
	s.Explosions = []Explosion{{X: 0, Y: 0}, {X: 1199, Y: 799}}
	Draw(core.NewScreen(1, 1), s.Snapshot())
	Draw(core.NewScreen(0, 0), s.Snapshot())
}
