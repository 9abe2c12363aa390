package invaders

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the complete simulation state for one frame.
//
// State is a value: every update function takes a State and returns a new
// one, cloning any slice it changes. A State handed out earlier is never
// modified by later frames.
type State struct {
	cfg *config.InvadersConfig

	Phase          Phase
	Player         Player
	Bullets        []Bullet
	EnemyBullets   []EnemyBullet
	Enemies        []Enemy
	Explosions     []Explosion
	Formation      Formation
	Score          int
	Lives          int
	ExplosionFrame int    // Counter while in PhaseExplosion
	Tint           int    // Palette index picked for this game
	Frame          uint64 // Frames simulated since the last reset
}

// NewState creates the title-screen state for the given configuration.
// The formation is laid out so the title screen has something to show.
func NewState(cfg *config.InvadersConfig) State {
	s := State{
		cfg:   cfg,
		Phase: PhaseStart,
		Lives: cfg.Gameplay.Lives,
	}
	s.Player = s.spawnPlayer()
	s.Enemies = s.buildFormation()
	s.Formation = Formation{Direction: 1, Speed: cfg.Enemies.Speed}
	return s
}

// Config returns the configuration the state was built with.
func (s State) Config() *config.InvadersConfig {
	return s.cfg
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Bullets = slices.Clone(s.Bullets)
	c.EnemyBullets = slices.Clone(s.EnemyBullets)
	c.Enemies = slices.Clone(s.Enemies)
	c.Explosions = slices.Clone(s.Explosions)
	return c
}

// AliveCount returns the number of enemies still alive.
func (s State) AliveCount() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// TintColor returns the enemy color chosen for this game.
func (s State) TintColor() core.Color {
	if len(s.cfg.Palette) == 0 {
		return core.ColorGray
	}
	return core.Color(s.cfg.Palette[s.Tint%len(s.cfg.Palette)])
}

// Reset rebuilds the entity store for a new game: empty projectile lists,
// a full formation at its canonical positions, a centered player, fresh
// counters and a newly picked enemy tint. The enemy fire cooldown starts
// counting from now. The phase is left unchanged.
func Reset(s State, now time.Time, rng core.RNG) State {
	cfg := s.cfg
	s.Bullets = nil
	s.EnemyBullets = nil
	s.Explosions = nil
	s.Enemies = s.buildFormation()
	s.Formation = Formation{
		Direction: 1,
		Speed:     cfg.Enemies.Speed,
		LastShot:  now,
	}
	s.Player = s.spawnPlayer()
	s.Score = 0
	s.Lives = cfg.Gameplay.Lives
	s.ExplosionFrame = 0
	s.Frame = 0
	s.Tint = rng.Intn(len(cfg.Palette))
	return s
}

// spawnPlayer returns the player at its centered starting position.
func (s State) spawnPlayer() Player {
	cfg := s.cfg
	return Player{
		X:     (cfg.Field.Width - cfg.Player.Width) / 2,
		Y:     cfg.Field.Height - cfg.Player.BottomOffset,
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Speed: cfg.Player.Speed,
	}
}

// buildFormation lays out the enemy grid row by row.
func (s State) buildFormation() []Enemy {
	ec := s.cfg.Enemies
	enemies := make([]Enemy, 0, ec.Rows*ec.Cols)
	for row := 0; row < ec.Rows; row++ {
		for col := 0; col < ec.Cols; col++ {
			enemies = append(enemies, Enemy{
				X:     float64(col)*ec.SpacingX + ec.OriginX,
				Y:     float64(row)*ec.SpacingY + ec.OriginY,
				W:     ec.Width,
				H:     ec.Height,
				Alive: true,
			})
		}
	}
	return enemies
}

// bulletRect returns the collision rectangle of a projectile at (x, y).
func (s State) bulletRect(x, y float64) core.Rect {
	return core.NewRect(x, y, s.cfg.Bullets.Width, s.cfg.Bullets.Height)
}
