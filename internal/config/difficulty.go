package config

import "github.com/nghiafl1/game2048/internal/core"

// Difficulties lists the named difficulty levels, easiest first.
var Difficulties = []core.Difficulty{
	core.DifficultyEasy,
	core.DifficultyMedium,
	core.DifficultyHard,
}

// NormalizeDifficulty parses a difficulty token. Unknown tokens are kept
// as given (they play like hard) and reported with ok=false so callers can
// warn about them.
func NormalizeDifficulty(s string) (d core.Difficulty, ok bool) {
	d = core.ParseDifficulty(s)
	return d, d.Known()
}
