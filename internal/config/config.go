// Package config provides YAML-based configuration loading for game2048,
// with optional .env and environment variable overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/engine"
)

// ErrInvalidTimeLimit is returned by Validate for a non-positive time limit.
var ErrInvalidTimeLimit = errors.New("config: time limit must be positive")

// Config contains all settings read from file and environment.
type Config struct {
	GridSize   int             `yaml:"grid_size"`
	Difficulty core.Difficulty `yaml:"difficulty"`
	TimeLimit  int             `yaml:"time_limit"` // Versus match length in seconds
	DBPath     string          `yaml:"db_path"`
	LogLevel   string          `yaml:"log_level"`
}

// Validate reports the first setting that cannot start a game.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("config: grid_size %d: %w", c.GridSize, engine.ErrInvalidGridSize)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeLimit, c.TimeLimit)
	}
	return nil
}

// Runtime converts the file settings into the values a session needs.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridSize:   c.GridSize,
		Difficulty: c.Difficulty,
		TimeLimit:  c.TimeLimit,
		Seed:       seed,
	}
}
