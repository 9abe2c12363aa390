package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Phase is the high-level game phase.
type Phase int

const (
	PhaseStart     Phase = iota // Title screen, waiting for a start command
	PhasePlaying                // Normal simulation
	PhaseExplosion              // Player was hit; everything frozen for a while
	PhaseGameOver               // Terminal until a restart command
)

// String returns the phase name used in logs and the HUD.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseExplosion:
		return "explosion"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Running reports whether the frame loop has work to do in this phase.
func (p Phase) Running() bool {
	return p == PhasePlaying || p == PhaseExplosion
}

// Player is the ship controlled by the user.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Bullet is a player-fired projectile moving up.
type Bullet struct {
	X, Y float64
}

// EnemyBullet is an enemy-fired projectile moving down.
type EnemyBullet struct {
	X, Y float64
}

// Enemy is one member of the formation.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Alive bool
}

// Rect returns the enemy's collision rectangle.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Explosion is the short-lived visual left behind by a destroyed enemy.
// Not to be confused with PhaseExplosion, the player-hit freeze.
type Explosion struct {
	X, Y  float64 // Center of the destroyed enemy
	Frame int     // Frames since spawn
}

// Formation is the state shared by the whole enemy grid.
type Formation struct {
	Direction int     // +1 moving right, -1 moving left
	Speed     float64 // Horizontal pixels per frame
	LastShot  time.Time
}
