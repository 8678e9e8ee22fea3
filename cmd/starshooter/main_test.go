package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/starshooter/internal/config"
	"github.com/ugaemi/starshooter/internal/game"
)

func headlessConfig() *config.Config {
	return &config.Config{
		LogLevel:       "info",
		LogFormat:      "text",
		TickRate:       60,
		Seed:           1,
		CellWidth:      10,
		CellHeight:     20,
		Headless:       true,
		HeadlessWidth:  800,
		HeadlessHeight: 600,
		HeadlessFrames: 200,
	}
}

func TestRunHeadless(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	setupLogger(headlessConfig(), &buf)

	sim, err := game.NewSimulation(game.DefaultTuning(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.NoError(t, runHeadless(context.Background(), headlessConfig(), sim))
	assert.Contains(t, buf.String(), "headless run finished")
	assert.Contains(t, buf.String(), "frames=200")
}

func TestRunHeadless_WritesState(t *testing.T) {
	cfg := headlessConfig()
	cfg.HeadlessFrames = 30
	cfg.StateFile = filepath.Join(t.TempDir(), "state.json")

	sim, err := game.NewSimulation(game.DefaultTuning(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, runHeadless(context.Background(), cfg, sim))

	data, err := os.ReadFile(cfg.StateFile)
	require.NoError(t, err)

	var dump struct {
		Phase    string `json:"phase"`
		Lives    int    `json:"lives"`
		Viewport struct {
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"viewport"`
		Stars []json.RawMessage `json:"stars"`
	}
	require.NoError(t, json.Unmarshal(data, &dump))
	assert.Contains(t, []string{"running", "game_over"}, dump.Phase)
	assert.Equal(t, 800.0, dump.Viewport.Width)
	assert.Equal(t, 600.0, dump.Viewport.Height)
	assert.Len(t, dump.Stars, game.StarCount)
}

func TestRunHeadless_InvalidViewport(t *testing.T) {
	cfg := headlessConfig()
	cfg.HeadlessWidth = 0

	sim, err := game.NewSimulation(game.DefaultTuning(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.ErrorIs(t, runHeadless(context.Background(), cfg, sim), game.ErrInvalidViewport)
}

func TestRun_RejectsBadConfig(t *testing.T) {
	cfg := headlessConfig()
	cfg.TickRate = 0
	assert.ErrorIs(t, run(cfg), config.ErrInvalidConfig)

	cfg = headlessConfig()
	cfg.TuningFile = filepath.Join(t.TempDir(), "missing.toml")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	assert.Error(t, run(cfg))
}

func TestSetupLogger_Level(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg := headlessConfig()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"
	setupLogger(cfg, &buf)

	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestOpenLog(t *testing.T) {
	cfg := headlessConfig()
	cfg.Headless = false
	cfg.LogFile = filepath.Join(t.TempDir(), "game.log")

	w, err := openLog(cfg)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.FileExists(t, cfg.LogFile)
}
