package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/ugaemi/starshooter/internal/game"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string
	LogFormat string
	LogFile   string

	TickRate   int
	Seed       int64
	TuningFile string

	CellWidth  float64
	CellHeight float64

	// KeyHoldFrames keeps a key held this long after its last key-down.
	// Terminals send no key-up and usually wait 250-500ms before the first
	// auto-repeat; a hold shorter than that stutters.
	KeyHoldFrames int

	Headless       bool
	HeadlessWidth  float64
	HeadlessHeight float64
	HeadlessFrames int
	StateFile      string
}

// Load reads the environment, after overlaying a .env file if one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogFile:        getEnv("LOG_FILE", "starshooter.log"),
		TickRate:       getEnvInt("TICK_RATE", 60),
		Seed:           int64(getEnvInt("SEED", 0)),
		TuningFile:     getEnv("TUNING_FILE", ""),
		CellWidth:      float64(getEnvInt("CELL_WIDTH", 10)),
		CellHeight:     float64(getEnvInt("CELL_HEIGHT", 20)),
		KeyHoldFrames:  getEnvInt("KEY_HOLD_FRAMES", 30),
		Headless:       getEnvBool("HEADLESS", false),
		HeadlessWidth:  float64(getEnvInt("HEADLESS_WIDTH", 800)),
		HeadlessHeight: float64(getEnvInt("HEADLESS_HEIGHT", 600)),
		HeadlessFrames: getEnvInt("HEADLESS_FRAMES", 3600),
		StateFile:      getEnv("STATE_FILE", ""),
	}
}

// Validate rejects settings that cannot drive a game.
func (c *Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: TICK_RATE must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %gx%g", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	case c.KeyHoldFrames < 0:
		return fmt.Errorf("%w: KEY_HOLD_FRAMES must not be negative", ErrInvalidConfig)
	case c.Headless && (c.HeadlessWidth <= 0 || c.HeadlessHeight <= 0):
		return fmt.Errorf("%w: headless viewport must be positive, got %gx%g",
			ErrInvalidConfig, c.HeadlessWidth, c.HeadlessHeight)
	case c.Headless && c.HeadlessFrames < 0:
		return fmt.Errorf("%w: HEADLESS_FRAMES must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LoadTuning overlays a TOML file on the default tuning. An empty path
// returns the defaults.
func LoadTuning(path string) (game.Tuning, error) {
	t := game.DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return game.Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return game.Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return game.Tuning{}, fmt.Errorf("%w: unknown keys %v in %s", game.ErrInvalidTuning, undecoded, path)
	}
	if err := t.Validate(); err != nil {
		return game.Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
