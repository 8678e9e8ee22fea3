package input

import "github.com/ugaemi/starshooter/internal/game"

// Autopilot produces a deterministic input pattern for headless runs: it
// sweeps left and right across the screen and fires on a fixed cadence.
type Autopilot struct {
	SweepFrames int // frames spent moving in one direction
	FireEvery   int // frames between shots

	frame int
}

// NewAutopilot creates an autopilot with the given cadence. Non-positive
// values fall back to a one-second sweep and four shots per second at 60 Hz.
func NewAutopilot(sweepFrames, fireEvery int) *Autopilot {
	if sweepFrames <= 0 {
		sweepFrames = 60
	}
	if fireEvery <= 0 {
		fireEvery = 15
	}
	return &Autopilot{SweepFrames: sweepFrames, FireEvery: fireEvery}
}

// Snapshot returns the next frame of scripted intent.
func (a *Autopilot) Snapshot() game.Input {
	f := a.frame
	a.frame++

	left := (f/a.SweepFrames)%2 == 0
	return game.Input{
		Left:  left,
		Right: !left,
		Fire:  f%a.FireEvery == 0,
	}
}
