package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestAdvanceFormationDrifts(t *testing.T) {
	s := startedState(t)
	s = s.Clone()
	s.Enemies[3].Alive = false

	got := AdvanceFormation(s)

	for i, e := range got.Enemies {
		want := s.Enemies[i].X
		if s.Enemies[i].Alive {
			want += 1.5
		}
		if e.X != want || e.Y != s.Enemies[i].Y {
			t.Errorf("enemy %d at (%v, %v), expected (%v, %v)", i, e.X, e.Y, want, s.Enemies[i].Y)
		}
	}
	if got.Formation.Direction != 1 {
		t.Errorf("direction = %d, expected 1", got.Formation.Direction)
	}
}

func TestAdvanceFormationReverses(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		edgeX     float64
		wantDir   int
	}{
		{"right wall", 1, 1158.5, -1},
		{"left wall", -1, 1.5, 1},
		{"short of right wall", 1, 1157, 1},
		{"short of left wall", -1, 2, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := killAll(startedState(t))
			s.Formation.Direction = tc.direction
			s.Enemies[0].Alive = true
			s.Enemies[0].X = tc.edgeX
			s.Enemies[1].Alive = true
			s.Enemies[1].X = 600

			got := AdvanceFormation(s)

			if got.Formation.Direction != tc.wantDir {
				t.Fatalf("direction = %d, expected %d", got.Formation.Direction, tc.wantDir)
			}
			drop := 0.0
			if tc.wantDir != tc.direction {
				drop = 20
			}
			for _, i := range []int{0, 1} {
				if got.Enemies[i].Y != s.Enemies[i].Y+drop {
					t.Errorf("enemy %d y = %v, expected %v", i, got.Enemies[i].Y, s.Enemies[i].Y+drop)
				}
			}
			if got.Enemies[2].Y != s.Enemies[2].Y {
				t.Error("dead enemies must not descend")
			}
		})
	}
}

func TestEnemyFireCooldown(t *testing.T) {
	s := startedState(t)

	tests := []struct {
		name    string
		elapsed time.Duration
		shots   int
	}{
		{"just reset", 0, 0},
		{"before interval", 999 * time.Millisecond, 0},
		{"at interval", time.Second, 0},
		{"after interval", 1001 * time.Millisecond, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			now := t0.Add(tc.elapsed)
			got := EnemyFire(s, now, fixedRNG(0))
			if len(got.EnemyBullets) != tc.shots {
				t.Fatalf("shots = %d, expected %d", len(got.EnemyBullets), tc.shots)
			}
			if tc.shots == 0 && !got.Formation.LastShot.Equal(t0) {
				t.Error("LastShot should not move without a shot")
			}
			if tc.shots == 1 && !got.Formation.LastShot.Equal(now) {
				t.Error("LastShot should be the shot instant")
			}
		})
	}
}

func TestEnemyFirePicksAliveShooter(t *testing.T) {
	s := startedState(t).Clone()
	for i := 0; i < 10; i++ {
		s.Enemies[i].Alive = false
	}

	got := EnemyFire(s, t0.Add(2*time.Second), fixedRNG(0))

	// Index 0 among the alive enemies is enemy 10.
	shooter := s.Enemies[10]
	want := EnemyBullet{X: shooter.X + shooter.W/2, Y: shooter.Y + shooter.H}
	if len(got.EnemyBullets) != 1 || got.EnemyBullets[0] != want {
		t.Errorf("enemy bullets = %+v, expected [%+v]", got.EnemyBullets, want)
	}
}

func TestEnemyFireSeededShooterIsAlive(t *testing.T) {
	rng := core.NewSimpleRNG(7)
	for i := 0; i < 50; i++ {
		s := startedState(t).Clone()
		for j := range s.Enemies {
			s.Enemies[j].Alive = j%3 == 0
		}
		got := EnemyFire(s, t0.Add(2*time.Second), rng)
		if len(got.EnemyBullets) != 1 {
			t.Fatalf("expected one shot, got %d", len(got.EnemyBullets))
		}
		shot := got.EnemyBullets[0]
		found := false
		for _, e := range s.Enemies {
			if e.Alive && shot.X == e.X+e.W/2 && shot.Y == e.Y+e.H {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("shot at (%v, %v) does not come from an alive enemy", shot.X, shot.Y)
		}
	}
}

func TestEnemyFireWithNobodyAlive(t *testing.T) {
	s := killAll(startedState(t))
	later := t0.Add(5 * time.Second)

	got := EnemyFire(s, later, fixedRNG(0))
	if len(got.EnemyBullets) != 0 {
		t.Fatal("no enemy should fire when none are alive")
	}
	if !got.Formation.LastShot.Equal(t0) {
		t.Error("cooldown should be left untouched")
	}

	// The first enemy to exist afterwards fires straight away.
	got.Enemies[5].Alive = true
	got = EnemyFire(got, later.Add(time.Millisecond), fixedRNG(0))
	if len(got.EnemyBullets) != 1 {
		t.Error("expected an immediate shot once an enemy is alive")
	}
}
