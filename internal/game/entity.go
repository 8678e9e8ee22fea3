package game

import "fmt"

// Color is a 24-bit RGB value.
type Color uint32

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Rect is an axis-aligned bounding box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bullet travels straight up from the player's nose.
type Bullet struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
}

// Bounds returns the bullet's collision box.
func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Enemy descends from above the top edge at its own speed.
type Enemy struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Speed  float64 `json:"speed"`
	Health int     `json:"health"`
	Color  Color   `json:"color"`
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Size, H: e.Size}
}

// Center returns the midpoint of the enemy's box.
func (e *Enemy) Center() (float64, float64) {
	return e.Bounds().Center()
}

// Particle is a short-lived explosion fragment.
type Particle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Life  int     `json:"life"`
	Size  float64 `json:"size"`
	Color Color   `json:"color"`
}

// Alpha is the particle's opacity, falling linearly from 1 at maxLife to 0.
func (p *Particle) Alpha(maxLife int) float64 {
	if maxLife <= 0 {
		return 0
	}
	return clamp(float64(p.Life)/float64(maxLife), 0, 1)
}

// Star is background decoration. Stars never collide and never expire.
type Star struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
	Size  float64 `json:"size"`
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
