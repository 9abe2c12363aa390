package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Autopilot tuning
const (
	autopilotFireGap    = 12  // Minimum frames between shots
	autopilotDodgeRange = 160 // How far above the ship enemy bullets are watched
	autopilotDodgeSlack = 10  // Extra horizontal margin around the ship
)

// Autopilot plays the game from snapshots, the way a demo attract mode
// would: chase the lowest enemy, dodge shots about to land, fire when lined up.
type Autopilot struct {
	sinceFire int
}

// NewAutopilot creates an autopilot ready to fire immediately.
func NewAutopilot() *Autopilot {
	return &Autopilot{sinceFire: autopilotFireGap}
}

// Input decides the controls for the next frame.
func (a *Autopilot) Input(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase != PhasePlaying {
		return in
	}
	a.sinceFire++

	px, _ := snap.Player.Center()

	if dir := a.dodge(snap); dir != 0 {
		if dir < 0 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		return in
	}

	target, ok := lowestEnemy(snap.Enemies, px)
	if !ok {
		return in
	}
	tx, _ := target.Center()
	// Lead the target by the formation drift while the bullet climbs.
	if snap.BulletSpeed > 0 {
		climb := (snap.Player.Y - target.Bottom()) / snap.BulletSpeed
		tx += float64(snap.Direction) * climb * snap.FormationSpeed
	}

	switch diff := tx - px; {
	case diff < -3:
		in.Set(core.ActionLeft)
	case diff > 3:
		in.Set(core.ActionRight)
	}

	if math.Abs(tx-px) < target.W/2 && a.sinceFire >= autopilotFireGap {
		in.Set(core.ActionFire)
		a.sinceFire = 0
	}
	return in
}

// dodge returns -1 or +1 when an enemy bullet is about to land on the ship.
func (a *Autopilot) dodge(snap Snapshot) int {
	p := snap.Player
	danger := core.NewRect(p.X-autopilotDodgeSlack, p.Y-autopilotDodgeRange, p.W+2*autopilotDodgeSlack, autopilotDodgeRange+p.H)
	for _, b := range snap.EnemyBullets {
		if !b.Intersects(danger) {
			continue
		}
		bx, _ := b.Center()
		px, _ := p.Center()
		// Move away from the bullet, unless a wall is in the way.
		if bx >= px && p.X > p.W {
			return -1
		}
		if p.Right() < snap.FieldW-p.W {
			return 1
		}
		return -1
	}
	return 0
}

// lowestEnemy picks the enemy closest to the bottom, preferring the one
// nearest to x on ties.
func lowestEnemy(enemies []core.Rect, x float64) (core.Rect, bool) {
	var best core.Rect
	found := false
	for _, e := range enemies {
		if !found {
			best, found = e, true
			continue
		}
		switch {
		case e.Bottom() > best.Bottom():
			best = e
		case e.Bottom() == best.Bottom():
			ex, _ := e.Center()
			bx, _ := best.Center()
			if math.Abs(ex-x) < math.Abs(bx-x) {
				best = e
			}
		}
	}
	return best, found
}
