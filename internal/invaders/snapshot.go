package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot is the read-only view of a frame handed to renderers and the
// autopilot. It shares no memory with the simulation.
type Snapshot struct {
	FieldW, FieldH float64

	Phase          Phase
	Score          int
	Lives          int
	ExplosionFrame int
	Frame          uint64
	Tint           core.Color

	Player       core.Rect
	Enemies      []core.Rect // Alive enemies only
	Bullets      []core.Rect
	EnemyBullets []core.Rect
	Explosions   []Explosion

	Direction      int     // Formation direction
	FormationSpeed float64 // Formation pixels per frame
	BulletSpeed    float64 // Player bullet pixels per frame
}

// Snapshot captures the state for drawing.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		FieldW:         s.cfg.Field.Width,
		FieldH:         s.cfg.Field.Height,
		Phase:          s.Phase,
		Score:          s.Score,
		Lives:          s.Lives,
		ExplosionFrame: s.ExplosionFrame,
		Frame:          s.Frame,
		Tint:           s.TintColor(),
		Player:         s.Player.Rect(),
		Enemies:        make([]core.Rect, 0, len(s.Enemies)),
		Bullets:        make([]core.Rect, 0, len(s.Bullets)),
		EnemyBullets:   make([]core.Rect, 0, len(s.EnemyBullets)),
		Explosions:     make([]Explosion, len(s.Explosions)),
		Direction:      s.Formation.Direction,
		FormationSpeed: s.Formation.Speed,
		BulletSpeed:    s.cfg.Bullets.PlayerSpeed,
	}

	for _, e := range s.Enemies {
		if e.Alive {
			snap.Enemies = append(snap.Enemies, e.Rect())
		}
	}
	for _, b := range s.Bullets {
		snap.Bullets = append(snap.Bullets, s.bulletRect(b.X, b.Y))
	}
	for _, b := range s.EnemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, s.bulletRect(b.X, b.Y))
	}
	copy(snap.Explosions, s.Explosions)

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionFrame) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction+1)    //#nosec G115 -- hash computation

	rect := func(r core.Rect) {
		h = h*31 + math.Float64bits(r.X)
		h = h*31 + math.Float64bits(r.Y)
	}
	rect(snap.Player)
	for _, r := range snap.Enemies {
		rect(r)
	}
	for _, r := range snap.Bullets {
		rect(r)
	}
	for _, r := range snap.EnemyBullets {
		rect(r)
	}
	for _, e := range snap.Explosions {
		h = h*31 + uint64(e.Frame) //#nosec G115 -- hash computation
	}

	return h
}
