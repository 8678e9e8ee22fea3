// Package input turns raw key and touch events into per-frame game.Input
// snapshots.
package input

import (
	"sync"

	"github.com/ugaemi/starshooter/internal/game"
)

// Key is a logical control, already decoupled from any physical key code.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyFire:
		return "fire"
	default:
		return "none"
	}
}

// Button is an on-screen touch control.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonFire
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonFire:
		return "fire"
	default:
		return "none"
	}
}

// Controls merges keyboard and touch state. Event methods may be called from
// any goroutine; Snapshot is called once per frame by the simulation loop.
type Controls struct {
	// HoldFrames releases a held key after this many snapshots without a
	// repeat key-down. Zero keeps keys held until KeyUp, which suits hosts
	// that report key releases; terminals do not.
	HoldFrames int

	held     map[Key]int // key -> snapshots remaining, or -1 until KeyUp
	keyFire  bool        // fire key-down seen since last snapshot
	touch    map[Button]bool
	touchHit bool // edge-triggered touch fire, cleared by Snapshot

	mu sync.Mutex
}

// NewControls creates an empty control state.
func NewControls(holdFrames int) *Controls {
	return &Controls{
		HoldFrames: holdFrames,
		held:       make(map[Key]int),
		touch:      make(map[Button]bool),
	}
}

// KeyDown records a key press or auto-repeat. Each fire key-down asserts fire
// for the next snapshot, so a held fire key keeps firing while it repeats.
func (c *Controls) KeyDown(k Key) {
	if k == KeyNone {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if k == KeyFire {
		c.keyFire = true
		return
	}
	if c.HoldFrames > 0 {
		c.held[k] = c.HoldFrames
	} else {
		c.held[k] = -1
	}
}

// KeyUp releases a held key.
func (c *Controls) KeyUp(k Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, k)
}

// TouchStart presses an on-screen button. Pressing fire raises the
// edge-triggered fire flag.
func (c *Controls) TouchStart(b Button) {
	if b == ButtonNone {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touch[b] = true
	if b == ButtonFire {
		c.touchHit = true
	}
}

// TouchEnd lifts an on-screen button. Lifting fire before the next frame
// cancels an unconsumed fire.
func (c *Controls) TouchEnd(b Button) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.touch, b)
	if b == ButtonFire {
		c.touchHit = false
	}
}

// TouchEndAll lifts every on-screen button.
func (c *Controls) TouchEndAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.touch)
	c.touchHit = false
}

// Reset drops all held keys, touches and pending fire.
func (c *Controls) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.held)
	clear(c.touch)
	c.keyFire = false
	c.touchHit = false
}

// Snapshot returns this frame's intent and consumes the one-shot fire flags.
func (c *Controls) Snapshot() game.Input {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := game.Input{
		Left:  c.isHeld(KeyLeft) || c.touch[ButtonLeft],
		Right: c.isHeld(KeyRight) || c.touch[ButtonRight],
		Up:    c.isHeld(KeyUp),
		Down:  c.isHeld(KeyDown),
		Fire:  c.keyFire || c.touchHit,
	}
	c.keyFire = false
	c.touchHit = false

	for k, left := range c.held {
		if left < 0 {
			continue
		}
		if left <= 1 {
			delete(c.held, k)
		} else {
			c.held[k] = left - 1
		}
	}
	return in
}

// isHeld must be called with c.mu held.
func (c *Controls) isHeld(k Key) bool {
	_, ok := c.held[k]
	return ok
}
