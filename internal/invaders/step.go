package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Step advances the simulation by one frame and returns the new state
// together with the collision events of the frame.
//
// In PhasePlaying the order is: fire, player and bullet movement, formation
// movement, enemy fire, explosion transients, collisions, then the state
// machine. In PhaseExplosion only the freeze counter moves. Other phases are
// idle and return the state unchanged.
//
// now is only used for the enemy fire cooldown.
func Step(s State, in core.InputFrame, now time.Time, rng core.RNG) (State, []Event) {
	switch s.Phase {
	case PhaseExplosion:
		s.Frame++
		return AdvanceExplosion(s), nil
	case PhasePlaying:
	default:
		return s, nil
	}

	s.Frame++
	if in.Has(core.ActionFire) {
		s = Fire(s)
	}
	s = MovePlayer(s, in)
	s = MoveBullets(s)
	s = AdvanceFormation(s)
	s = EnemyFire(s, now, rng)
	s = AdvanceExplosions(s)

	s, events := ResolveCollisions(s)
	return Transition(s, events), events
}
