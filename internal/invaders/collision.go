package invaders

import "fmt"

// EventKind identifies what happened during a frame.
type EventKind int

const (
	EventEnemyKilled EventKind = iota // A player bullet destroyed an enemy
	EventEnemyRammed                  // An enemy crashed into the player and died
	EventPlayerHit                    // The player was hit by a bullet or an enemy
)

// Event is a collision outcome handed to the state machine.
type Event struct {
	Kind  EventKind
	Enemy int     // Index into State.Enemies, -1 for bullet hits on the player
	X, Y  float64 // Where it happened
}

// String returns a short description for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventEnemyKilled:
		return fmt.Sprintf("enemy %d killed at (%.0f, %.0f)", e.Enemy, e.X, e.Y)
	case EventEnemyRammed:
		return fmt.Sprintf("enemy %d rammed the player at (%.0f, %.0f)", e.Enemy, e.X, e.Y)
	case EventPlayerHit:
		return fmt.Sprintf("player hit at (%.0f, %.0f)", e.X, e.Y)
	default:
		return "unknown event"
	}
}

// ResolveCollisions runs every hit test for the frame.
//
// All matches are found against the state as it was at the start of the
// call, then applied in one pass: hit enemies die, hit bullets disappear
// and each destroyed enemy leaves an Explosion at its center. Score and
// lives are not touched here; the returned events carry that to Transition.
func ResolveCollisions(s State) (State, []Event) {
	var events []Event

	killed := make([]bool, len(s.Enemies))
	spentBullets := make([]bool, len(s.Bullets))
	spentEnemyBullets := make([]bool, len(s.EnemyBullets))

	// Player bullets against enemies: first match in grid order wins.
	for bi, b := range s.Bullets {
		br := s.bulletRect(b.X, b.Y)
		for ei, e := range s.Enemies {
			if !e.Alive || killed[ei] {
				continue
			}
			if br.Intersects(e.Rect()) {
				killed[ei] = true
				spentBullets[bi] = true
				cx, cy := e.Rect().Center()
				events = append(events, Event{Kind: EventEnemyKilled, Enemy: ei, X: cx, Y: cy})
				break
			}
		}
	}

	player := s.Player.Rect()

	// Enemy bullets against the player.
	for bi, b := range s.EnemyBullets {
		if s.bulletRect(b.X, b.Y).Intersects(player) {
			spentEnemyBullets[bi] = true
			events = append(events, Event{Kind: EventPlayerHit, Enemy: -1, X: b.X, Y: b.Y})
		}
	}

	// Enemies physically touching the player.
	for ei, e := range s.Enemies {
		if !e.Alive || killed[ei] {
			continue
		}
		if e.Rect().Intersects(player) {
			killed[ei] = true
			cx, cy := e.Rect().Center()
			events = append(events,
				Event{Kind: EventEnemyRammed, Enemy: ei, X: cx, Y: cy},
				Event{Kind: EventPlayerHit, Enemy: ei, X: cx, Y: cy},
			)
		}
	}

	if len(events) == 0 {
		return s, nil
	}

	enemies := make([]Enemy, len(s.Enemies))
	explosions := make([]Explosion, 0, len(s.Explosions)+len(events))
	explosions = append(explosions, s.Explosions...)
	for i, e := range s.Enemies {
		if killed[i] {
			e.Alive = false
			cx, cy := e.Rect().Center()
			explosions = append(explosions, Explosion{X: cx, Y: cy})
		}
		enemies[i] = e
	}

	bullets := make([]Bullet, 0, len(s.Bullets))
	for i, b := range s.Bullets {
		if !spentBullets[i] {
			bullets = append(bullets, b)
		}
	}
	enemyBullets := make([]EnemyBullet, 0, len(s.EnemyBullets))
	for i, b := range s.EnemyBullets {
		if !spentEnemyBullets[i] {
			enemyBullets = append(enemyBullets, b)
		}
	}

	s.Enemies = enemies
	s.Explosions = explosions
	s.Bullets = bullets
	s.EnemyBullets = enemyBullets
	return s, events
}
