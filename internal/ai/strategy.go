package ai

import (
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/engine"
	"github.com/nghiafl1/game2048/internal/session"
)

// Strategy chooses the next move for a grid.
type Strategy interface {
	NextMove(g engine.Grid) (core.Direction, bool)
}

// GreedyStrategy plays the heuristic's best move.
type GreedyStrategy struct {
	Selector   *Selector
	Difficulty core.Difficulty
}

// NextMove implements Strategy.
func (g GreedyStrategy) NextMove(grid engine.Grid) (core.Direction, bool) {
	ev, ok := g.Selector.Best(grid, g.Difficulty)
	return ev.Direction, ok
}

// RandomStrategy plays a uniformly random legal move, the same policy as Hint.
type RandomStrategy struct {
	Selector *Selector
}

// NextMove implements Strategy.
func (r RandomStrategy) NextMove(grid engine.Grid) (core.Direction, bool) {
	return r.Selector.Hint(grid)
}

// NewStrategy returns the named strategy: "random" or "greedy" (the default).
func NewStrategy(name string, sel *Selector, d core.Difficulty) Strategy {
	if name == "random" {
		return RandomStrategy{Selector: sel}
	}
	return GreedyStrategy{Selector: sel, Difficulty: d}
}

// Play drives a session with a strategy until the game ends, no move is
// available, or maxMoves committed moves have been made (0 means no limit).
// It returns the number of committed moves.
func Play(sess *session.Session, st Strategy, maxMoves int) int {
	moves := 0
	for !sess.IsGameOver() {
		if maxMoves > 0 && moves >= maxMoves {
			break
		}
		dir, ok := st.NextMove(sess.Grid())
		if !ok {
			break
		}
		if res := sess.Move(dir); !res.Moved {
			break
		}
		moves++
	}
	return moves
}
