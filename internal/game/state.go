package game

import (
	"encoding/json"
	"log/slog"
	"slices"
)

// Phase is the game state machine's current state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Phase as a string.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// State is the whole simulation aggregate. Step owns and mutates it; renderers
// receive a Clone.
type State struct {
	Phase    Phase    `json:"phase"`
	Score    int      `json:"score"`
	Lives    int      `json:"lives"`
	Viewport Viewport `json:"viewport"`

	Player    Player     `json:"player"`
	Bullets   []Bullet   `json:"bullets"`
	Enemies   []Enemy    `json:"enemies"`
	Particles []Particle `json:"particles"`
	Stars     []Star     `json:"stars"`
}

// IsRunning reports whether Step will advance the simulation.
func (s *State) IsRunning() bool {
	return s.Phase == PhaseRunning
}

// IsGameOver reports whether the state machine is waiting for a restart.
func (s *State) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}

// checkGameOver moves Running to GameOver once lives are exhausted.
// Returns true only on the transition.
func (s *State) checkGameOver() bool {
	if s.Phase == PhaseRunning && s.Lives <= 0 {
		s.Lives = 0
		s.Phase = PhaseGameOver
		return true
	}
	return false
}

// Clone returns a deep copy safe to hand to a renderer.
func (s *State) Clone() *State {
	c := *s
	c.Bullets = slices.Clone(s.Bullets)
	c.Enemies = slices.Clone(s.Enemies)
	c.Particles = slices.Clone(s.Particles)
	c.Stars = slices.Clone(s.Stars)
	return &c
}

// LogValue implements slog.LogValuer.
func (s *State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("phase", s.Phase.String()),
		slog.Int("score", s.Score),
		slog.Int("lives", s.Lives),
		slog.Int("bullets", len(s.Bullets)),
		slog.Int("enemies", len(s.Enemies)),
		slog.Int("particles", len(s.Particles)),
	)
}
