// Package config loads the maze settings from YAML, .env files and MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/game/generator"
)

// Tick budget bounds
const (
	MinStepsPerTick = 1
	MaxStepsPerTick = 2000
)

// MinDimension is the smallest grid side the generator accepts
const MinDimension = generator.MinDimension

// ErrInvalidConfig is returned by Validate for settings that cannot be repaired
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the maze explorer.
type Config struct {
	// Rows and Cols are the grid dimensions. Odd values give a closed outer wall.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// StepsPerTick is the number of generator operations run per scheduler tick.
	StepsPerTick int `yaml:"steps_per_tick"`

	// TickAdjustFactor multiplies or divides StepsPerTick on the faster/slower keys.
	TickAdjustFactor float64 `yaml:"tick_adjust_factor"`

	// TickIntervalMS is the scheduler period in milliseconds.
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// Seed drives generation and exit placement. 0 picks a time based seed.
	Seed int64 `yaml:"seed"`

	// Renderer is "tui" or "ebiten".
	Renderer string `yaml:"renderer"`

	// TileSize is the ebiten cell size in pixels.
	TileSize int `yaml:"tile_size"`

	Language   string `yaml:"language"`
	LocalesDir string `yaml:"locales_dir"`

	// GenerateOnStart carves a maze before the first frame instead of starting on an open grid.
	GenerateOnStart bool `yaml:"generate_on_start"`

	// Keys rebinds actions, e.g. {"solve": "enter"}.
	Keys map[string]string `yaml:"keys"`

	Logging logger.Config `yaml:"logging"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Rows:             21,
		Cols:             31,
		StepsPerTick:     40,
		TickAdjustFactor: 2,
		TickIntervalMS:   16,
		Renderer:         "tui",
		TileSize:         24,
		Language:         "en_US",
		LocalesDir:       "locales",
		GenerateOnStart:  true,
		Keys:             map[string]string{},
		Logging:          logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	return config, nil
}

// LoadEnv reads .env style files into the process environment without overriding
// variables that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ApplyEnv overrides settings from MAZE_* variables and the logging section from LOG_* variables.
// Unparseable values are reported and left unchanged.
func (c *Config) ApplyEnv() error {
	var errs []error

	intVar := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	intVar("MAZE_ROWS", &c.Rows)
	intVar("MAZE_COLS", &c.Cols)
	intVar("MAZE_STEPS_PER_TICK", &c.StepsPerTick)
	intVar("MAZE_TICK_INTERVAL_MS", &c.TickIntervalMS)
	intVar("MAZE_TILE_SIZE", &c.TileSize)

	if v, ok := os.LookupEnv("MAZE_SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_SEED: %w", err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := os.LookupEnv("MAZE_TICK_ADJUST_FACTOR"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_TICK_ADJUST_FACTOR: %w", err))
		} else {
			c.TickAdjustFactor = f
		}
	}
	if v, ok := os.LookupEnv("MAZE_GENERATE_ON_START"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_GENERATE_ON_START: %w", err))
		} else {
			c.GenerateOnStart = b
		}
	}
	if v := os.Getenv("MAZE_RENDERER"); v != "" {
		c.Renderer = strings.ToLower(v)
	}
	if v := os.Getenv("MAZE_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("MAZE_LOCALES_DIR"); v != "" {
		c.LocalesDir = v
	}

	c.Logging.ApplyEnv()

	return errors.Join(errs...)
}

// Validate repairs out-of-range settings, returning a warning for each repair.
// Settings that cannot be repaired produce an error wrapping ErrInvalidConfig.
func (c *Config) Validate() ([]string, error) {
	var warnings []string

	if c.Rows < MinDimension || c.Cols < MinDimension {
		return nil, fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Rows, c.Cols, MinDimension, MinDimension)
	}
	if c.Rows%2 == 0 || c.Cols%2 == 0 {
		warnings = append(warnings, fmt.Sprintf("grid %dx%d has an even side; the last row or column stays solid wall", c.Rows, c.Cols))
	}

	if c.StepsPerTick < MinStepsPerTick {
		warnings = append(warnings, fmt.Sprintf("steps_per_tick %d raised to %d", c.StepsPerTick, MinStepsPerTick))
		c.StepsPerTick = MinStepsPerTick
	} else if c.StepsPerTick > MaxStepsPerTick {
		warnings = append(warnings, fmt.Sprintf("steps_per_tick %d lowered to %d", c.StepsPerTick, MaxStepsPerTick))
		c.StepsPerTick = MaxStepsPerTick
	}

	if c.TickAdjustFactor <= 1 {
		warnings = append(warnings, fmt.Sprintf("tick_adjust_factor %g reset to 2", c.TickAdjustFactor))
		c.TickAdjustFactor = 2
	}
	if c.TickIntervalMS <= 0 {
		warnings = append(warnings, fmt.Sprintf("tick_interval_ms %d reset to 16", c.TickIntervalMS))
		c.TickIntervalMS = 16
	}
	if c.TileSize <= 0 {
		c.TileSize = 24
	}

	switch c.Renderer {
	case "tui", "ebiten":
	default:
		return warnings, fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}

	return warnings, nil
}

var current = DefaultConfig()

// Current returns the active configuration
func Current() *Config {
	return current
}

// SetCurrent replaces the active configuration
func SetCurrent(c *Config) {
	current = c
}
