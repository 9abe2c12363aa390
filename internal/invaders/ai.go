package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// AdvanceFormation moves every alive enemy sideways. When any of them ends
// up touching a wall, the whole formation reverses and drops one step in
// the same frame.
func AdvanceFormation(s State) State {
	ec := s.cfg.Enemies
	dx := float64(s.Formation.Direction) * s.Formation.Speed
	maxX := s.cfg.Field.Width - ec.Width

	enemies := make([]Enemy, len(s.Enemies))
	reverse := false
	for i, e := range s.Enemies {
		if e.Alive {
			e.X += dx
			if e.X <= 0 || e.X >= maxX {
				reverse = true
			}
		}
		enemies[i] = e
	}

	if reverse {
		s.Formation.Direction = -s.Formation.Direction
		for i := range enemies {
			if enemies[i].Alive {
				enemies[i].Y += ec.Descent
			}
		}
	}

	s.Enemies = enemies
	return s
}

// EnemyFire lets one random alive enemy shoot once the cooldown has elapsed.
// With nobody alive no shot is fired and the cooldown is left as is, so the
// next enemy to exist fires straight away.
func EnemyFire(s State, now time.Time, rng core.RNG) State {
	interval := time.Duration(s.cfg.Enemies.ShotIntervalMS) * time.Millisecond
	if now.Sub(s.Formation.LastShot) <= interval {
		return s
	}

	alive := make([]int, 0, len(s.Enemies))
	for i, e := range s.Enemies {
		if e.Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return s
	}

	shooter := s.Enemies[alive[rng.Intn(len(alive))]]
	shot := EnemyBullet{
		X: shooter.X + shooter.W/2,
		Y: shooter.Y + shooter.H,
	}

	enemyBullets := make([]EnemyBullet, 0, len(s.EnemyBullets)+1)
	enemyBullets = append(enemyBullets, s.EnemyBullets...)
	s.EnemyBullets = append(enemyBullets, shot)
	s.Formation.LastShot = now
	return s
}
