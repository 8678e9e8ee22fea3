package game

// Every function here rebuilds its collection from survivors instead of
// deleting in place, so an entity is gone in the same frame it expires.

// MoveBullets advances bullets upward and keeps those still below the top edge.
func MoveBullets(bullets []Bullet) []Bullet {
	kept := make([]Bullet, 0, len(bullets))
	for _, b := range bullets {
		b.Y -= b.Speed
		if b.Y > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}

// MoveEnemies advances enemies downward and keeps those above height+margin.
// There is no check against the top edge so enemies spawned above it scroll in.
func MoveEnemies(enemies []Enemy, vp Viewport, margin float64) []Enemy {
	limit := vp.Height + margin
	kept := make([]Enemy, 0, len(enemies))
	for _, e := range enemies {
		e.Y += e.Speed
		if e.Y < limit {
			kept = append(kept, e)
		}
	}
	return kept
}

// AgeParticles drifts, shrinks and ages particles, keeping those with life left.
func AgeParticles(particles []Particle, decay float64) []Particle {
	kept := make([]Particle, 0, len(particles))
	for _, p := range particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		p.Size *= decay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

// ScrollStars moves stars down and recycles those past the bottom edge to the
// top at a fresh column.
func ScrollStars(rng Rand, stars []Star, vp Viewport) {
	for i := range stars {
		s := &stars[i]
		s.Y += s.Speed
		if s.Y > vp.Height {
			s.Y = StarResetY
			s.X = rng.Float64() * vp.Width
		}
	}
}

// move runs the Mover for one frame.
func (sim *Simulation) move(s *State, in Input) {
	s.Player.Steer(in, s.Viewport)
	s.Bullets = MoveBullets(s.Bullets)
	s.Enemies = MoveEnemies(s.Enemies, s.Viewport, sim.tuning.EnemyDespawnMargin)
	s.Particles = AgeParticles(s.Particles, sim.tuning.ParticleDecay)
	ScrollStars(sim.rng, s.Stars, s.Viewport)
}
