package game

// Rand is the randomness source the simulation draws from. *math/rand.Rand
// satisfies it; tests substitute scripted sources.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// uniform draws from [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// ShouldSpawnEnemy runs this frame's Bernoulli trial.
func ShouldSpawnEnemy(rng Rand, chance float64) bool {
	return rng.Float64() < chance
}

// NewEnemy creates an enemy just above the top edge at a random column and speed.
// The column range is [0, width-size); a viewport narrower than one enemy pins it to 0.
func NewEnemy(rng Rand, t Tuning, vp Viewport) Enemy {
	span := vp.Width - t.EnemySize
	if span < 0 {
		span = 0
	}
	return Enemy{
		X:      rng.Float64() * span,
		Y:      t.EnemySpawnY,
		Size:   t.EnemySize,
		Speed:  uniform(rng, t.EnemyMinSpeed, t.EnemyMaxSpeed),
		Health: EnemyHealth,
		Color:  ColorEnemy,
	}
}

// NewBullet creates a bullet centered on the player's horizontal midpoint at
// the player's top edge.
func NewBullet(t Tuning, p *Player) Bullet {
	return Bullet{
		X:      p.X + p.Size/2 - t.BulletWidth/2,
		Y:      p.Y,
		Width:  t.BulletWidth,
		Height: t.BulletHeight,
		Speed:  t.BulletSpeed,
	}
}

// NewStars scatters the starfield uniformly over the viewport.
func NewStars(rng Rand, t Tuning, vp Viewport) []Star {
	stars := make([]Star, 0, t.StarCount)
	for range t.StarCount {
		stars = append(stars, Star{
			X:     rng.Float64() * vp.Width,
			Y:     rng.Float64() * vp.Height,
			Speed: uniform(rng, t.StarMinSpeed, t.StarMaxSpeed),
			Size:  rng.Float64() * t.StarMaxSize,
		})
	}
	return stars
}

// ScatterStars re-randomizes star positions within new bounds, keeping speed and size.
func ScatterStars(rng Rand, stars []Star, vp Viewport) {
	for i := range stars {
		stars[i].X = rng.Float64() * vp.Width
		stars[i].Y = rng.Float64() * vp.Height
	}
}

// spawnResult reports what the spawner injected this frame.
type spawnResult struct {
	fired   bool
	spawned bool
}

// spawn injects at most one bullet (on fire intent) and at most one enemy.
func (sim *Simulation) spawn(s *State, in Input) spawnResult {
	var res spawnResult
	if in.Fire {
		s.Bullets = append(s.Bullets, NewBullet(sim.tuning, &s.Player))
		res.fired = true
	}
	if ShouldSpawnEnemy(sim.rng, sim.tuning.EnemySpawnChance) {
		s.Enemies = append(s.Enemies, NewEnemy(sim.rng, sim.tuning, s.Viewport))
		res.spawned = true
	}
	return res
}
