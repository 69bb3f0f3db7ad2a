package core

import "strings"

// DefaultGridSize is the classic 4x4 board.
const DefaultGridSize = 4

// Difficulty controls how much noise the AI adds to its move ranking.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a difficulty token. Unrecognized values are kept
// as-is; they behave like DifficultyHard.
func ParseDifficulty(s string) Difficulty {
	return Difficulty(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether d is one of the named presets.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// RuntimeConfig contains configuration passed to sessions at creation.
type RuntimeConfig struct {
	GridSize   int        // Board dimension (N for an N×N grid)
	Difficulty Difficulty // AI noise level
	TimeLimit  int        // Versus round length in seconds, enforced by the caller
	Seed       int64      // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridSize:   DefaultGridSize,
		Difficulty: DifficultyMedium,
		TimeLimit:  120,
		Seed:       0, // 0 means use current time in the CLI layer
	}
}
