// Package ai chooses moves for hints and computer play.
//
// The heuristic is deliberately greedy and one ply deep: every legal
// direction is simulated on a copy of the grid and scored by its merge gain,
// the empty cells it leaves, and a difficulty-scaled random term.
package ai

import (
	"math/rand"
	"sort"

	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/engine"
	"github.com/nghiafl1/game2048/internal/session"
)

// EmptyCellWeight is the heuristic value of each empty cell after a move.
const EmptyCellWeight = 10

// Evaluation is the heuristic assessment of one direction.
type Evaluation struct {
	Direction  core.Direction `json:"direction" yaml:"direction"`
	Score      float64        `json:"score" yaml:"score"`
	ScoreDelta int            `json:"points_gained" yaml:"points_gained"`
	EmptyCells int            `json:"empty_cells" yaml:"empty_cells"`
}

// Decision is a move the selector committed to a session.
type Decision struct {
	Move  core.Direction   `json:"move"`
	State session.Snapshot `json:"game_state"`
}

// Selector ranks and picks moves. It owns the RNG used for difficulty noise
// and hint selection, so a seeded Selector is reproducible.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector seeded with seed.
func NewSelector(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// RandomBonusCeiling returns the exclusive upper bound of the random term
// for a difficulty. Unknown difficulties play like hard.
func RandomBonusCeiling(d core.Difficulty) float64 {
	switch d {
	case core.DifficultyEasy:
		return 100
	case core.DifficultyMedium:
		return 50
	default:
		return 0
	}
}

func (s *Selector) randomBonus(d core.Difficulty) float64 {
	ceiling := RandomBonusCeiling(d)
	if ceiling == 0 {
		return 0
	}
	return s.rng.Float64() * ceiling
}

// Evaluate scores a single direction. It reports false if the move would not
// change the grid. The grid is never modified.
func (s *Selector) Evaluate(g engine.Grid, dir core.Direction, d core.Difficulty) (Evaluation, bool) {
	out := engine.Apply(g, dir)
	if !out.Changed {
		return Evaluation{}, false
	}

	empty := out.Grid.CountEmpty()
	score := float64(out.ScoreDelta+empty*EmptyCellWeight) + s.randomBonus(d)

	return Evaluation{
		Direction:  dir,
		Score:      score,
		ScoreDelta: out.ScoreDelta,
		EmptyCells: empty,
	}, true
}

// Best evaluates the directions in order up, down, left, right and returns
// the one with the strictly greatest score, so earlier directions win ties.
func (s *Selector) Best(g engine.Grid, d core.Difficulty) (Evaluation, bool) {
	var best Evaluation
	found := false

	for _, dir := range core.Directions {
		ev, ok := s.Evaluate(g, dir, d)
		if !ok {
			continue
		}
		if !found || ev.Score > best.Score {
			best = ev
			found = true
		}
	}

	return best, found
}

// Rank returns every legal direction, best first. Equal scores keep
// evaluation order.
func (s *Selector) Rank(g engine.Grid, d core.Difficulty) []Evaluation {
	var evals []Evaluation
	for _, dir := range core.Directions {
		if ev, ok := s.Evaluate(g, dir, d); ok {
			evals = append(evals, ev)
		}
	}

	sort.SliceStable(evals, func(i, j int) bool {
		return evals[i].Score > evals[j].Score
	})

	return evals
}

// SelectMove picks the best direction for the session and applies it for
// real, including the tile spawn. It reports false when no direction changes
// the grid.
func (s *Selector) SelectMove(sess *session.Session, d core.Difficulty) (Decision, bool) {
	best, ok := s.Best(sess.Grid(), d)
	if !ok {
		return Decision{}, false
	}

	res := sess.Move(best.Direction)
	return Decision{Move: best.Direction, State: res.State}, true
}

// Hint returns a uniformly random legal direction, or false on a terminal grid.
func (s *Selector) Hint(g engine.Grid) (core.Direction, bool) {
	moves := engine.LegalMoves(g)
	if len(moves) == 0 {
		return core.DirNone, false
	}
	return moves[s.rng.Intn(len(moves))], true
}
