package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ugaemi/starshooter/internal/config"
	"github.com/ugaemi/starshooter/internal/game"
	"github.com/ugaemi/starshooter/internal/handler"
	"github.com/ugaemi/starshooter/internal/input"
	"github.com/ugaemi/starshooter/internal/session"
	"github.com/ugaemi/starshooter/internal/terminal"
)

func main() {
	cfg := config.Load()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer logOut.Close()
	setupLogger(cfg, logOut)

	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := game.NewSimulation(tuning, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starshooter starting", "seed", seed, "headless", cfg.Headless, "tick_rate", cfg.TickRate)
	if cfg.Headless {
		return runHeadless(ctx, cfg, sim)
	}
	return runTerminal(ctx, cfg, sim)
}

// runHeadless plays a fixed number of frames with the autopilot and no screen.
func runHeadless(ctx context.Context, cfg *config.Config, sim *game.Simulation) error {
	vp, err := game.NewViewport(cfg.HeadlessWidth, cfg.HeadlessHeight)
	if err != nil {
		return err
	}

	sess := session.New(session.Options{
		Simulation: sim,
		Viewport:   vp,
		Input:      input.NewAutopilot(cfg.TickRate, cfg.TickRate/4),
		UI:         logUI{},
	})
	if err := sess.RunFrames(ctx, cfg.HeadlessFrames); err != nil {
		return err
	}
	slog.Info("headless run finished", "session", sess.ID, "frames", sess.Frames(), "state", sess.State())

	if cfg.StateFile != "" {
		if err := writeState(cfg.StateFile, sess.State()); err != nil {
			return err
		}
		slog.Info("final state written", "path", cfg.StateFile)
	}
	return nil
}

func writeState(path string, s *game.State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config, sim *game.Simulation) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	display := terminal.NewDisplay(screen, cfg.CellWidth, cfg.CellHeight)
	display.ParticleLife = sim.Tuning().ParticleLife
	vp, err := display.Viewport()
	if err != nil {
		return fmt.Errorf("terminal too small: %w", err)
	}

	controls := input.NewControls(cfg.KeyHoldFrames)
	sess := session.New(session.Options{
		Simulation:   sim,
		Viewport:     vp,
		Input:        controls,
		Renderer:     display,
		UI:           display,
		TickInterval: time.Second / time.Duration(cfg.TickRate),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	router := handler.NewRouter(controls, sess, display, cfg.CellWidth, cfg.CellHeight)
	router.OnQuit = cancel

	pump := terminal.NewPump(screen)
	pump.OnEvent = router.HandleEvent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sess.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return pump.Run(gctx)
	})
	return g.Wait()
}

// logUI reports HUD changes to the log when there is no screen.
type logUI struct{}

func (logUI) SetScore(score int) { slog.Debug("score", "score", score) }
func (logUI) SetLives(lives int) { slog.Info("lives", "lives", lives) }

func (logUI) SetGameOverVisible(visible bool) {
	if visible {
		slog.Info("game over panel shown")
	}
}

// openLog picks the log destination. The terminal owns stdout, so interactive
// runs log to a file.
func openLog(cfg *config.Config) (io.WriteCloser, error) {
	if cfg.Headless {
		return nopCloser{os.Stdout}, nil
	}
	if cfg.LogFile == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func setupLogger(cfg *config.Config, w io.Writer) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
}
