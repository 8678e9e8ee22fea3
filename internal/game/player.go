package game

// Player is the craft steered by the input snapshot. There is exactly one per
// State; it is never destroyed, only repositioned on restart.
type Player struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Speed float64 `json:"speed"`
	Color Color   `json:"color"`
}

// NewPlayer places a player at the default spawn point for the viewport:
// horizontally at the midpoint, PlayerSpawnOffset above the bottom edge.
func NewPlayer(t Tuning, vp Viewport) Player {
	p := Player{
		X:     vp.Width / 2,
		Y:     vp.Height - t.PlayerSpawnOffset,
		Size:  t.PlayerSize,
		Speed: t.PlayerSpeed,
		Color: ColorPlayer,
	}
	p.Clamp(vp)
	return p
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Center returns the midpoint of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.Bounds().Center()
}

// Clamp keeps the player fully inside the viewport on both axes.
func (p *Player) Clamp(vp Viewport) {
	p.X = clamp(p.X, 0, vp.Width-p.Size)
	p.Y = clamp(p.Y, 0, vp.Height-p.Size)
}

// Steer applies one frame of directional intent and clamps the result.
func (p *Player) Steer(in Input, vp Viewport) {
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}
	p.Clamp(vp)
}
