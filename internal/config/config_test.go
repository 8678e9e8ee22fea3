package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/starshooter/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"LOG_LEVEL", "TICK_RATE", "SEED", "HEADLESS", "CELL_WIDTH", "TUNING_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 10.0, cfg.CellWidth)
	assert.Equal(t, 20.0, cfg.CellHeight)
	assert.Equal(t, 30, cfg.KeyHoldFrames)
	assert.Empty(t, cfg.StateFile)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 800.0, cfg.HeadlessWidth)
	assert.Equal(t, 600.0, cfg.HeadlessHeight)
	assert.Equal(t, 3600, cfg.HeadlessFrames)
	assert.Empty(t, cfg.TuningFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TICK_RATE", "30")
	t.Setenv("SEED", "42")
	t.Setenv("HEADLESS", "true")
	t.Setenv("HEADLESS_FRAMES", "120")

	cfg := Load()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 120, cfg.HeadlessFrames)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TICK_RATE", "fast")
	t.Setenv("HEADLESS", "maybe")

	cfg := Load()

	assert.Equal(t, 60, cfg.TickRate)
	assert.False(t, cfg.Headless)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TICK_RATE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEED=7\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SEED") })

	cfg := Load()

	assert.Equal(t, int64(7), cfg.Seed)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{TickRate: 60, CellWidth: 10, CellHeight: 20, HeadlessWidth: 800, HeadlessHeight: 600}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, true},
		{"zero cell width", func(c *Config) { c.CellWidth = 0 }, true},
		{"negative cell height", func(c *Config) { c.CellHeight = -1 }, true},
		{"negative key hold", func(c *Config) { c.KeyHoldFrames = -1 }, true},
		{"headless zero width", func(c *Config) { c.Headless = true; c.HeadlessWidth = 0 }, true},
		{"headless negative frames", func(c *Config) { c.Headless = true; c.HeadlessFrames = -1 }, true},
		{"terminal ignores headless size", func(c *Config) { c.HeadlessWidth = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		tuning, err := LoadTuning("")
		require.NoError(t, err)
		assert.Equal(t, game.DefaultTuning(), tuning)
	})

	t.Run("overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.toml")
		data := "enemy_spawn_chance = 0.05\nstart_lives = 5\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		tuning, err := LoadTuning(path)
		require.NoError(t, err)

		want := game.DefaultTuning()
		want.EnemySpawnChance = 0.05
		want.StartLives = 5
		assert.Equal(t, want, tuning)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.toml")
		require.NoError(t, os.WriteFile(path, []byte("start_lives = [\n"), 0o644))

		_, err := LoadTuning(path)
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.toml")
		require.NoError(t, os.WriteFile(path, []byte("start_lives = 5\nenemy_spawn_chanse = 0.1\n"), 0o644))

		_, err := LoadTuning(path)
		assert.ErrorIs(t, err, game.ErrInvalidTuning)
		assert.ErrorContains(t, err, "enemy_spawn_chanse")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.toml")
		require.NoError(t, os.WriteFile(path, []byte("start_lives = 0\n"), 0o644))

		_, err := LoadTuning(path)
		assert.ErrorIs(t, err, game.ErrInvalidTuning)
	})
}
