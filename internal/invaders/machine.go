package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Start leaves the title screen and begins a fresh game.
// Returns false and the unchanged state outside PhaseStart.
func Start(s State, now time.Time, rng core.RNG) (State, bool) {
	if s.Phase != PhaseStart {
		return s, false
	}
	s = Reset(s, now, rng)
	s.Phase = PhasePlaying
	return s, true
}

// Restart begins a fresh game after game over, exactly like Start.
// Returns false and the unchanged state outside PhaseGameOver.
func Restart(s State, now time.Time, rng core.RNG) (State, bool) {
	if s.Phase != PhaseGameOver {
		return s, false
	}
	s = Reset(s, now, rng)
	s.Phase = PhasePlaying
	return s, true
}

// Transition applies a frame's collision events to score, lives and phase,
// then runs the end-of-game checks.
//
// Only the first player hit of a frame counts: it moves the game out of
// PhasePlaying, and hits are ignored in every other phase.
func Transition(s State, events []Event) State {
	for _, ev := range events {
		switch ev.Kind {
		case EventEnemyKilled:
			s.Score += s.cfg.Enemies.Points
		case EventPlayerHit:
			s = playerHit(s)
		}
	}
	return CheckEnd(s)
}

// playerHit costs one life and either freezes the game or ends it.
func playerHit(s State) State {
	if s.Phase != PhasePlaying {
		return s
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Phase = PhaseGameOver
		return s
	}
	s.Phase = PhaseExplosion
	s.ExplosionFrame = 0
	return s
}

// CheckEnd ends a game in PhasePlaying when the formation is wiped out or
// an enemy reaches the bottom of the field.
func CheckEnd(s State) State {
	if s.Phase != PhasePlaying {
		return s
	}
	if s.AliveCount() == 0 {
		s.Phase = PhaseGameOver
		return s
	}
	if Breached(s) {
		s.Phase = PhaseGameOver
	}
	return s
}

// Breached reports whether any alive enemy touches the bottom of the field.
func Breached(s State) bool {
	for _, e := range s.Enemies {
		if e.Alive && e.Y+e.H >= s.cfg.Field.Height {
			return true
		}
	}
	return false
}

// AdvanceExplosion counts one frame of the player-hit freeze. When the
// freeze is over, both bullet lists are cleared, the player is recentered
// and play resumes.
func AdvanceExplosion(s State) State {
	if s.Phase != PhaseExplosion {
		return s
	}
	s.ExplosionFrame++
	if s.ExplosionFrame < s.cfg.Gameplay.ExplosionFrames {
		return s
	}
	s.Bullets = nil
	s.EnemyBullets = nil
	s.Player = s.spawnPlayer()
	s.Phase = PhasePlaying
	return s
}
