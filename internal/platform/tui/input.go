package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keyHoldDuration is how long a direction is considered held after its last
// press. Terminals report no key releases, only auto-repeat presses.
const keyHoldDuration = 150 * time.Millisecond

// heldKeys turns key presses into per-tick input frames.
type heldKeys struct {
	left  time.Time
	right time.Time
	fire  bool // Latched until the next tick
}

// press records a key press at the given instant.
func (h *heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	case core.ActionFire:
		h.fire = true
	}
}

// frame builds the input for a tick and consumes the fire latch.
func (h *heldKeys) frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	if !h.left.IsZero() && now.Sub(h.left) < keyHoldDuration {
		in.Set(core.ActionLeft)
	}
	if !h.right.IsZero() && now.Sub(h.right) < keyHoldDuration {
		in.Set(core.ActionRight)
	}
	if h.fire {
		in.Set(core.ActionFire)
		h.fire = false
	}
	return in
}

// reset releases everything.
func (h *heldKeys) reset() {
	*h = heldKeys{}
}
