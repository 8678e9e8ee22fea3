package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value. 0.99 never spawns an enemy.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// seqRand replays vals in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var testViewport = Viewport{Width: 800, Height: 600}

func newTestSim(t *testing.T, rng Rand) *Simulation {
	t.Helper()
	sim, err := NewSimulation(DefaultTuning(), rng)
	require.NoError(t, err)
	return sim
}

func newQuietSim(t *testing.T) (*Simulation, *State) {
	t.Helper()
	sim := newTestSim(t, fixedRand(0.99))
	return sim, sim.NewState(testViewport)
}
