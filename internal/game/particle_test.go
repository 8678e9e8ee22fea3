package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBurst(t *testing.T) {
	req := BurstRequest{X: 50, Y: 60, Color: ColorEnemy, Count: ParticleCount}
	particles := NewBurst(fixedRand(0.5), DefaultTuning(), req)

	require.Len(t, particles, ParticleCount)
	for _, p := range particles {
		assert.InDelta(t, 50.0, p.X, 0.001)
		assert.InDelta(t, 60.0, p.Y, 0.001)
		assert.InDelta(t, 0.0, p.VX, 0.001)
		assert.InDelta(t, 0.0, p.VY, 0.001)
		assert.InDelta(t, 2.5, p.Size, 0.001)
		assert.Equal(t, ParticleLife, p.Life)
		assert.Equal(t, ColorEnemy, p.Color)
	}
}

func TestNewBurst_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tuning := DefaultTuning()

	particles := NewBurst(rng, tuning, BurstRequest{Count: 1000, Color: ColorPlayer})

	require.Len(t, particles, 1000)
	for _, p := range particles {
		assert.GreaterOrEqual(t, p.VX, -ParticleMaxSpeed)
		assert.Less(t, p.VX, ParticleMaxSpeed)
		assert.GreaterOrEqual(t, p.VY, -ParticleMaxSpeed)
		assert.Less(t, p.VY, ParticleMaxSpeed)
		assert.GreaterOrEqual(t, p.Size, ParticleMinSize)
		assert.Less(t, p.Size, ParticleMaxSize)
	}
}

func TestNewBurst_LowestDraws(t *testing.T) {
	particles := NewBurst(fixedRand(0), DefaultTuning(), BurstRequest{Count: 1})

	require.Len(t, particles, 1)
	assert.InDelta(t, -ParticleMaxSpeed, particles[0].VX, 0.001)
	assert.InDelta(t, -ParticleMaxSpeed, particles[0].VY, 0.001)
	assert.InDelta(t, ParticleMinSize, particles[0].Size, 0.001)
}

func TestEmit_AppendsInRequestOrder(t *testing.T) {
	sim, s := newQuietSim(t)
	reqs := []BurstRequest{
		{X: 1, Y: 1, Color: ColorEnemy, Count: ParticleCount},
		{X: 2, Y: 2, Color: ColorPlayer, Count: ParticleCount},
	}

	n := sim.emit(s, reqs)

	assert.Equal(t, 2*ParticleCount, n)
	require.Len(t, s.Particles, 2*ParticleCount)
	assert.Equal(t, ColorEnemy, s.Particles[0].Color)
	assert.Equal(t, ColorPlayer, s.Particles[ParticleCount].Color)
}

func TestEmit_NoRequests(t *testing.T) {
	sim, s := newQuietSim(t)
	assert.Equal(t, 0, sim.emit(s, nil))
	assert.Empty(t, s.Particles)
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		name string
		life int
		want float64
	}{
		{"fresh", ParticleLife, 1},
		{"half", ParticleLife / 2, 0.5},
		{"last frame", 1, 1.0 / ParticleLife},
		{"expired", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Life: tt.life}
			assert.InDelta(t, tt.want, p.Alpha(ParticleLife), 0.001)
		})
	}

	p := Particle{Life: 5}
	assert.Zero(t, p.Alpha(0))
}

func TestColorRGB(t *testing.T) {
	r, g, b := ColorEnemy.RGB()
	assert.Equal(t, []uint8{0xff, 0x00, 0x80}, []uint8{r, g, b})
	assert.Equal(t, "#ff0080", ColorEnemy.Hex())
}
