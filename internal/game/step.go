package game

import "errors"

// Simulation holds the immutable tuning and the randomness source shared by
// every component. It carries no per-game state; that lives in State.
type Simulation struct {
	tuning Tuning
	rng    Rand
}

// NewSimulation validates the tuning and binds a randomness source.
func NewSimulation(t Tuning, rng Rand) (*Simulation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("simulation: nil rand source")
	}
	return &Simulation{tuning: t, rng: rng}, nil
}

// Tuning returns the constants this simulation runs with.
func (sim *Simulation) Tuning() Tuning {
	return sim.tuning
}

// NewState builds a fresh Running game with a populated starfield.
func (sim *Simulation) NewState(vp Viewport) *State {
	s := &State{Viewport: vp}
	sim.reset(s)
	s.Stars = NewStars(sim.rng, sim.tuning, vp)
	return s
}

// Restart returns the state machine to Running with score, lives, player and
// all finite-lifetime collections reset. Stars are left untouched.
func (sim *Simulation) Restart(s *State) {
	sim.reset(s)
}

func (sim *Simulation) reset(s *State) {
	s.Phase = PhaseRunning
	s.Score = 0
	s.Lives = sim.tuning.StartLives
	s.Player = NewPlayer(sim.tuning, s.Viewport)
	s.Bullets = nil
	s.Enemies = nil
	s.Particles = nil
}

// Resize applies new viewport bounds: the player is re-clamped and stars are
// scattered across the new area. Nothing else changes.
func (sim *Simulation) Resize(s *State, vp Viewport) {
	s.Viewport = vp
	s.Player.Clamp(vp)
	ScatterStars(sim.rng, s.Stars, vp)
}

// StepResult describes what one frame did.
type StepResult struct {
	Skipped   bool // the state was GameOver; nothing moved
	Fired     bool
	Spawned   bool
	Kills     int
	Hits      int
	Particles int  // particles created this frame
	GameOver  bool // Running -> GameOver happened this frame
}

// Step advances the simulation one frame: Mover, Spawner, CollisionResolver,
// ParticleSystem and finally the game-over check, strictly in that order.
// While GameOver it returns immediately without touching any entity.
func (sim *Simulation) Step(s *State, in Input) StepResult {
	if !s.IsRunning() {
		return StepResult{Skipped: true}
	}

	sim.move(s, in)
	sp := sim.spawn(s, in)
	col := sim.resolveCollisions(s)
	n := sim.emit(s, col.bursts)

	return StepResult{
		Fired:     sp.fired,
		Spawned:   sp.spawned,
		Kills:     col.kills,
		Hits:      col.hits,
		Particles: n,
		GameOver:  s.checkGameOver(),
	}
}
