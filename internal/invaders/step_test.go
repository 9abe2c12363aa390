package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestStepIdlePhases(t *testing.T) {
	for _, phase := range []Phase{PhaseStart, PhaseGameOver} {
		s := startedState(t)
		s.Phase = phase
		got, events := Step(s, input(core.ActionFire, core.ActionLeft), t0.Add(time.Hour), fixedRNG(0))
		if got.Frame != s.Frame || len(got.Bullets) != 0 || got.Player.X != s.Player.X || events != nil {
			t.Errorf("%v: Step should be a no-op", phase)
		}
	}
}

func TestStepShootsEnemy(t *testing.T) {
	s := startedState(t)
	s.Formation.Speed = 0
	s.Player.X = 547 // Bullet at x=570, under column 4

	s, _ = Step(s, input(core.ActionFire), t0, fixedRNG(0))
	if len(s.Bullets) != 1 {
		t.Fatalf("expected one bullet in flight, got %d", len(s.Bullets))
	}

	frames := 1
	for s.Enemies[44].Alive && frames < 100 {
		s, _ = Step(s, input(), t0, fixedRNG(0))
		frames++
	}

	if s.Enemies[44].Alive {
		t.Fatal("the bottom enemy of column 4 should have been shot")
	}
	if frames != 52 {
		t.Errorf("hit after %d frames, expected 52", frames)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, expected 10", s.Score)
	}
	if s.AliveCount() != 49 {
		t.Errorf("alive = %d, expected 49", s.AliveCount())
	}
	if len(s.Explosions) != 1 || s.Explosions[0] != (Explosion{X: 570, Y: 355}) {
		t.Errorf("explosions = %+v, expected one at (570, 355)", s.Explosions)
	}
	if len(s.Bullets) != 0 {
		t.Error("the bullet should be spent")
	}
	if len(s.EnemyBullets) != 0 {
		t.Error("the clock never moved, nobody should have fired")
	}

	// The transient disappears after its lifetime.
	for i := 0; i < 15; i++ {
		s, _ = Step(s, input(), t0, fixedRNG(0))
	}
	if len(s.Explosions) != 0 {
		t.Errorf("explosion should be gone after 15 frames, got %+v", s.Explosions)
	}
}

func TestStepFormationReachesWall(t *testing.T) {
	s := startedState(t)

	for i := 1; i <= 200; i++ {
		prev := s
		s, _ = Step(s, input(), t0, fixedRNG(0))
		if s.Formation.Direction == prev.Formation.Direction {
			continue
		}
		if i != 74 {
			t.Errorf("reversed at frame %d, expected 74", i)
		}
		if s.Formation.Direction != -1 {
			t.Errorf("direction = %d, expected -1", s.Formation.Direction)
		}
		for j, e := range s.Enemies {
			if e.Y != prev.Enemies[j].Y+20 {
				t.Errorf("enemy %d y = %v, expected %v", j, e.Y, prev.Enemies[j].Y+20)
			}
		}
		return
	}
	t.Fatal("formation never reached the right wall")
}

func TestStepEnemyFireAfterInterval(t *testing.T) {
	s := startedState(t)

	got, _ := Step(s, input(), t0.Add(999*time.Millisecond), core.NewSimpleRNG(3))
	if len(got.EnemyBullets) != 0 {
		t.Fatal("no shot expected before the interval")
	}

	got, _ = Step(got, input(), t0.Add(1001*time.Millisecond), core.NewSimpleRNG(3))
	if len(got.EnemyBullets) != 1 {
		t.Fatalf("expected exactly one enemy bullet, got %d", len(got.EnemyBullets))
	}
	shot := got.EnemyBullets[0]
	found := false
	for _, e := range got.Enemies {
		if e.Alive && shot.X == e.X+e.W/2 && shot.Y == e.Y+e.H {
			found = true
		}
	}
	if !found {
		t.Errorf("shot at (%v, %v) is not at the bottom center of an alive enemy", shot.X, shot.Y)
	}
}

func TestStepLastLifeEndsGame(t *testing.T) {
	s := startedState(t)
	s.Lives = 1
	s.EnemyBullets = []EnemyBullet{{X: 585, Y: 725}}

	got, events := Step(s, input(), t0, fixedRNG(0))

	if len(events) != 1 || events[0].Kind != EventPlayerHit {
		t.Fatalf("events = %+v, expected a player hit", events)
	}
	if got.Lives != 0 || got.Phase != PhaseGameOver {
		t.Errorf("lives = %d phase = %v, expected 0 and gameOver", got.Lives, got.Phase)
	}
}

func TestStepExplosionFreezesThenResumes(t *testing.T) {
	s := startedState(t)
	s.Player.X = 100
	s.EnemyBullets = []EnemyBullet{{X: 110, Y: 725}, {X: 10, Y: 100}}

	s, _ = Step(s, input(), t0, fixedRNG(0))
	if s.Phase != PhaseExplosion || s.Lives != 2 {
		t.Fatalf("phase = %v lives = %d, expected explosion and 2", s.Phase, s.Lives)
	}
	frozen := s

	clock := core.NewManualClock(t0)
	for i := 1; i < 60; i++ {
		clock.Advance(time.Second)
		s, _ = Step(s, input(core.ActionLeft, core.ActionFire), clock.Now(), fixedRNG(0))
		if s.Phase != PhaseExplosion {
			t.Fatalf("frame %d: phase = %v, expected explosion", i, s.Phase)
		}
	}
	if s.Player != frozen.Player || len(s.Bullets) != 0 || len(s.EnemyBullets) != 1 {
		t.Error("nothing should move while frozen")
	}
	for i := range s.Enemies {
		if s.Enemies[i] != frozen.Enemies[i] {
			t.Fatalf("enemy %d moved while frozen", i)
		}
	}

	s, _ = Step(s, input(), clock.Now(), fixedRNG(0))
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, expected playing after 60 frames", s.Phase)
	}
	if s.Player.X != 575 || len(s.EnemyBullets) != 0 || len(s.Bullets) != 0 {
		t.Errorf("player x = %v bullets = %d/%d, expected recentered with no bullets",
			s.Player.X, len(s.Bullets), len(s.EnemyBullets))
	}
	if s.Lives != 2 {
		t.Errorf("lives = %d, expected 2", s.Lives)
	}
}

// TestStepInvariants drives random inputs through full games and checks the
// rules that must hold on every frame.
func TestStepInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		rng := core.NewSimpleRNG(seed)
		inputs := core.NewSimpleRNG(seed + 1000)
		clock := core.NewManualClock(t0)
		s, _ := Start(NewState(testConfig()), clock.Now(), rng)
		actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire}

		for frame := 0; frame < 6000 && s.Phase != PhaseGameOver; frame++ {
			clock.Advance(16 * time.Millisecond)
			in := core.NewInputFrame()
			for _, a := range actions {
				if inputs.Intn(3) == 0 {
					in.Set(a)
				}
			}

			prev := s
			var events []Event
			s, events = Step(s, in, clock.Now(), rng)

			if s.Player.X < 0 || s.Player.X > 1150 {
				t.Fatalf("seed %d frame %d: player x = %v out of bounds", seed, frame, s.Player.X)
			}
			for i, e := range s.Enemies {
				if e.Alive && !prev.Enemies[i].Alive {
					t.Fatalf("seed %d frame %d: enemy %d came back to life", seed, frame, i)
				}
			}
			kills := 0
			for _, ev := range events {
				if ev.Kind == EventEnemyKilled {
					kills++
				}
			}
			if s.Score != prev.Score+kills*10 {
				t.Fatalf("seed %d frame %d: score %d -> %d with %d kills", seed, frame, prev.Score, s.Score, kills)
			}
			if s.Lives > prev.Lives || prev.Lives-s.Lives > 1 {
				t.Fatalf("seed %d frame %d: lives %d -> %d", seed, frame, prev.Lives, s.Lives)
			}
			if prev.Phase == PhasePlaying && s.Phase == PhaseExplosion {
				if s.Lives != prev.Lives-1 || s.ExplosionFrame != 0 {
					t.Fatalf("seed %d frame %d: bad explosion entry", seed, frame)
				}
			}
			if s.Phase == PhaseGameOver && s.Lives > 0 && s.AliveCount() > 0 && !Breached(s) {
				t.Fatalf("seed %d frame %d: game over without a reason", seed, frame)
			}
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	run := func() []uint64 {
		clock := core.NewManualClock(t0)
		rng := core.NewSimpleRNG(42)
		pilot := NewAutopilot()
		s, _ := Start(NewState(testConfig()), clock.Now(), rng)

		var hashes []uint64
		for frame := 0; frame < 2000; frame++ {
			clock.Advance(16 * time.Millisecond)
			s, _ = Step(s, pilot.Input(s.Snapshot()), clock.Now(), rng)
			if frame%100 == 0 {
				snap := s.Snapshot()
				hashes = append(hashes, snap.Hash())
			}
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at checkpoint %d: %x != %x", i, a[i], b[i])
		}
	}
}
