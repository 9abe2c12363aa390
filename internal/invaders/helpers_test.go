package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fixedRNG always picks the same index (modulo n).
type fixedRNG int

func (f fixedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(f) % n
}

func testConfig() *config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	return &cfg
}

// startedState returns a freshly started game at t0.
func startedState(t *testing.T) State {
	t.Helper()
	s, ok := Start(NewState(testConfig()), t0, fixedRNG(0))
	if !ok {
		t.Fatal("Start should succeed from the title screen")
	}
	return s
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// killAll marks every enemy dead in a copy of the state.
func killAll(s State) State {
	s = s.Clone()
	for i := range s.Enemies {
		s.Enemies[i].Alive = false
	}
	return s
}
