// Package session schedules a single game: it drains queued commands, steps
// the simulation, and feeds the renderer and UI once per tick.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ugaemi/starshooter/internal/game"
)

// InputSource supplies the per-frame intent snapshot.
type InputSource interface {
	Snapshot() game.Input
}

// Renderer draws a frame. It receives a private copy of the state.
type Renderer interface {
	Render(s *game.State)
}

// UI receives display updates whenever a tracked value changes.
type UI interface {
	SetScore(score int)
	SetLives(lives int)
	SetGameOverVisible(visible bool)
}

type commandKind int

const (
	cmdRestart commandKind = iota
	cmdResize
)

func (k commandKind) String() string {
	switch k {
	case cmdRestart:
		return "restart"
	case cmdResize:
		return "resize"
	default:
		return "unknown"
	}
}

type command struct {
	kind     commandKind
	viewport game.Viewport
}

// published tracks what the UI was last told so it is only called on change.
type published struct {
	valid    bool
	score    int
	lives    int
	gameOver bool
}

// Session owns one game.State. All simulation mutation happens on the
// goroutine that calls Tick (normally Run); Restart and Resize only enqueue.
type Session struct {
	ID string

	sim      *game.Simulation
	state    *game.State
	input    InputSource
	renderer Renderer
	ui       UI

	tickInterval time.Duration
	commands     chan command
	shown        published
	frames       uint64
}

// Options configures a Session.
type Options struct {
	Simulation   *game.Simulation
	Viewport     game.Viewport
	Input        InputSource
	Renderer     Renderer
	UI           UI
	TickInterval time.Duration
}

// New creates a session with a fresh Running game.
func New(opts Options) *Session {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second / 60
	}
	s := &Session{
		ID:           uuid.New().String(),
		sim:          opts.Simulation,
		state:        opts.Simulation.NewState(opts.Viewport),
		input:        opts.Input,
		renderer:     opts.Renderer,
		ui:           opts.UI,
		tickInterval: interval,
		commands:     make(chan command, 16),
	}
	slog.Info("session created", "session", s.ID, "viewport", opts.Viewport, "tick", interval)
	return s
}

// Restart queues a restart for the start of the next frame.
func (s *Session) Restart() {
	s.enqueue(command{kind: cmdRestart})
}

// Resize queues a viewport change for the start of the next frame.
func (s *Session) Resize(vp game.Viewport) {
	s.enqueue(command{kind: cmdResize, viewport: vp})
}

func (s *Session) enqueue(c command) {
	select {
	case s.commands <- c:
	default:
		slog.Warn("session command queue full, dropping command", "session", s.ID, "kind", c.kind)
	}
}

// Frames returns how many ticks have run.
func (s *Session) Frames() uint64 {
	return s.frames
}

// State returns a copy of the current game state.
func (s *Session) State() *game.State {
	return s.state.Clone()
}

// Tick runs one frame: commands, input capture, Step, UI publish, Render.
// The step itself is a no-op while GameOver but the frame still renders and
// still observes restart commands.
func (s *Session) Tick() game.StepResult {
	s.drainCommands()
	if !s.shown.valid {
		s.publish()
	}

	in := game.Input{}
	if s.input != nil {
		in = s.input.Snapshot()
	}
	res := s.sim.Step(s.state, in)
	s.frames++

	if res.Kills > 0 || res.Hits > 0 {
		slog.Debug("collisions resolved", "session", s.ID, "frame", s.frames,
			"kills", res.Kills, "hits", res.Hits, "particles", res.Particles)
	}
	if res.GameOver {
		slog.Info("game over", "session", s.ID, "frame", s.frames, "state", s.state)
	}

	s.publish()
	if s.renderer != nil {
		s.renderer.Render(s.state.Clone())
	}
	return res
}

// Run ticks until ctx is cancelled. GameOver does not stop the loop.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	s.publish()
	slog.Info("session started", "session", s.ID)

	for {
		select {
		case <-ctx.Done():
			slog.Info("session stopped", "session", s.ID, "frames", s.frames, "state", s.state)
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// RunFrames ticks exactly n times without waiting on a clock.
func (s *Session) RunFrames(ctx context.Context, n int) error {
	s.publish()
	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()
	}
	return nil
}

func (s *Session) drainCommands() {
	for {
		select {
		case c := <-s.commands:
			s.apply(c)
		default:
			return
		}
	}
}

func (s *Session) apply(c command) {
	switch c.kind {
	case cmdRestart:
		s.sim.Restart(s.state)
		slog.Info("game restarted", "session", s.ID, "frame", s.frames)
	case cmdResize:
		s.sim.Resize(s.state, c.viewport)
		slog.Info("viewport resized", "session", s.ID, "viewport", c.viewport)
	}
}

// publish pushes score, lives and the game-over panel to the UI when they change.
func (s *Session) publish() {
	if s.ui == nil {
		return
	}
	st := s.state
	first := !s.shown.valid
	if first || st.Score != s.shown.score {
		s.ui.SetScore(st.Score)
	}
	if first || st.Lives != s.shown.lives {
		s.ui.SetLives(st.Lives)
	}
	if first || st.IsGameOver() != s.shown.gameOver {
		s.ui.SetGameOverVisible(st.IsGameOver())
	}
	s.shown = published{valid: true, score: st.Score, lives: st.Lives, gameOver: st.IsGameOver()}
}
