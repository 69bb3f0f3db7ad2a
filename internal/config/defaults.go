package config

import (
	_ "embed"

	"github.com/nghiafl1/game2048/internal/core"
)

//go:embed defaults/game2048.yaml
var defaultYAML []byte

// DefaultDBPath is where scores are kept unless configured otherwise.
const DefaultDBPath = "~/.game2048/scores.db"

// Default returns the hard-coded configuration used when no file and no
// embedded default can be read.
func Default() Config {
	rc := core.DefaultConfig()
	return Config{
		GridSize:   rc.GridSize,
		Difficulty: rc.Difficulty,
		TimeLimit:  rc.TimeLimit,
		DBPath:     DefaultDBPath,
		LogLevel:   "info",
	}
}
