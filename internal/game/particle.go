package game

// NewBurst creates count particles at the origin. Each velocity component is
// independently uniform in [-max, max) and size is uniform in [min, max).
func NewBurst(rng Rand, t Tuning, req BurstRequest) []Particle {
	particles := make([]Particle, 0, req.Count)
	for range req.Count {
		particles = append(particles, Particle{
			X:     req.X,
			Y:     req.Y,
			VX:    uniform(rng, -t.ParticleMaxSpeed, t.ParticleMaxSpeed),
			VY:    uniform(rng, -t.ParticleMaxSpeed, t.ParticleMaxSpeed),
			Life:  t.ParticleLife,
			Size:  uniform(rng, t.ParticleMinSize, t.ParticleMaxSize),
			Color: req.Color,
		})
	}
	return particles
}

// emit materializes burst requests in request order.
func (sim *Simulation) emit(s *State, reqs []BurstRequest) int {
	n := 0
	for _, req := range reqs {
		burst := NewBurst(sim.rng, sim.tuning, req)
		s.Particles = append(s.Particles, burst...)
		n += len(burst)
	}
	return n
}
