package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MovePlayer applies the held left/right controls to the player.
// The player never leaves [0, fieldWidth-playerWidth].
func MovePlayer(s State, in core.InputFrame) State {
	p := s.Player
	maxX := s.cfg.Field.Width - p.W

	if in.Has(core.ActionLeft) && p.X > 0 {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) && p.X < maxX {
		p.X += p.Speed
	}
	p.X = core.ClampF(p.X, 0, maxX)

	s.Player = p
	return s
}

// MoveBullets advances both projectile lists and drops the ones that left
// the field: player bullets at y <= 0, enemy bullets at y >= field height.
func MoveBullets(s State) State {
	bullets := make([]Bullet, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		b.Y -= s.cfg.Bullets.PlayerSpeed
		if b.Y > 0 {
			bullets = append(bullets, b)
		}
	}

	enemyBullets := make([]EnemyBullet, 0, len(s.EnemyBullets))
	for _, b := range s.EnemyBullets {
		b.Y += s.cfg.Bullets.EnemySpeed
		if b.Y < s.cfg.Field.Height {
			enemyBullets = append(enemyBullets, b)
		}
	}

	s.Bullets = bullets
	s.EnemyBullets = enemyBullets
	return s
}

// Fire adds one bullet centered on the player's top edge.
// Ignored outside PhasePlaying.
func Fire(s State) State {
	if s.Phase != PhasePlaying {
		return s
	}
	b := Bullet{
		X: s.Player.X + s.Player.W/2 - s.cfg.Bullets.Width/2,
		Y: s.Player.Y,
	}
	bullets := make([]Bullet, 0, len(s.Bullets)+1)
	bullets = append(bullets, s.Bullets...)
	s.Bullets = append(bullets, b)
	return s
}

// AdvanceExplosions ages the enemy explosion transients and drops the ones
// that reached their lifetime.
func AdvanceExplosions(s State) State {
	explosions := make([]Explosion, 0, len(s.Explosions))
	for _, e := range s.Explosions {
		e.Frame++
		if e.Frame < s.cfg.Gameplay.TransientFrames {
			explosions = append(explosions, e)
		}
	}
	s.Explosions = explosions
	return s
}
