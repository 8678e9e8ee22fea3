package game

// BurstRequest asks the particle system for an explosion at a point.
type BurstRequest struct {
	X     float64
	Y     float64
	Color Color
	Count int
}

// KillEvent records an enemy destroyed by a bullet.
type KillEvent struct {
	BulletIndex int
	EnemyIndex  int
	X, Y        float64 // enemy center
}

// HitEvent records an enemy that rammed the player.
type HitEvent struct {
	EnemyIndex int
	X, Y       float64 // enemy center
}

// FindBulletHits pairs each bullet with the first enemy it overlaps.
// Bullets are scanned in slice order and each scans enemies in slice order;
// an enemy already claimed by an earlier bullet is skipped. One bullet destroys
// at most one enemy per frame even when it overlaps several: the lowest enemy
// index wins.
func FindBulletHits(bullets []Bullet, enemies []Enemy) []KillEvent {
	var events []KillEvent
	claimed := make([]bool, len(enemies))
	for bi := range bullets {
		bb := bullets[bi].Bounds()
		for ei := range enemies {
			if claimed[ei] {
				continue
			}
			if bb.Overlaps(enemies[ei].Bounds()) {
				claimed[ei] = true
				x, y := enemies[ei].Center()
				events = append(events, KillEvent{BulletIndex: bi, EnemyIndex: ei, X: x, Y: y})
				break
			}
		}
	}
	return events
}

// FindPlayerHits returns the enemies overlapping the player, in slice order,
// stopping after maxHits so lives can never go below zero.
func FindPlayerHits(p *Player, enemies []Enemy, maxHits int) []HitEvent {
	var events []HitEvent
	pb := p.Bounds()
	for ei := range enemies {
		if len(events) >= maxHits {
			break
		}
		if pb.Overlaps(enemies[ei].Bounds()) {
			x, y := enemies[ei].Center()
			events = append(events, HitEvent{EnemyIndex: ei, X: x, Y: y})
		}
	}
	return events
}

// collisionResult summarizes one frame of collision resolution.
type collisionResult struct {
	kills  int
	hits   int
	bursts []BurstRequest
}

// resolveCollisions applies bullet and player hits to the state. Removal is
// decided first and the collections are compacted afterwards, so several hits
// in one frame never disturb the scan of the other collection.
func (sim *Simulation) resolveCollisions(s *State) collisionResult {
	var res collisionResult
	count := sim.tuning.ParticleCount

	kills := FindBulletHits(s.Bullets, s.Enemies)
	if len(kills) > 0 {
		deadBullets := make(map[int]bool, len(kills))
		deadEnemies := make(map[int]bool, len(kills))
		for _, k := range kills {
			deadBullets[k.BulletIndex] = true
			deadEnemies[k.EnemyIndex] = true
			res.bursts = append(res.bursts, BurstRequest{X: k.X, Y: k.Y, Color: ColorEnemy, Count: count})
			s.Score += sim.tuning.KillScore
		}
		s.Bullets = compact(s.Bullets, deadBullets)
		s.Enemies = compact(s.Enemies, deadEnemies)
		res.kills = len(kills)
	}

	hits := FindPlayerHits(&s.Player, s.Enemies, s.Lives)
	if len(hits) > 0 {
		dead := make(map[int]bool, len(hits))
		px, py := s.Player.Center()
		for _, h := range hits {
			dead[h.EnemyIndex] = true
			res.bursts = append(res.bursts,
				BurstRequest{X: h.X, Y: h.Y, Color: ColorEnemy, Count: count},
				BurstRequest{X: px, Y: py, Color: s.Player.Color, Count: count},
			)
			s.Lives--
		}
		s.Enemies = compact(s.Enemies, dead)
		res.hits = len(hits)
	}

	return res
}

// compact rebuilds items without the marked indices.
func compact[T any](items []T, dead map[int]bool) []T {
	kept := make([]T, 0, len(items)-len(dead))
	for i, it := range items {
		if !dead[i] {
			kept = append(kept, it)
		}
	}
	return kept
}
