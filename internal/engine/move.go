package engine

import "github.com/nghiafl1/game2048/internal/core"

// Outcome is the result of applying a direction to a grid.
type Outcome struct {
	Changed    bool // Whether any cell differs from the input
	ScoreDelta int  // Sum of all values created by merges
	Merges     int  // Number of merges performed
	Grid       Grid // Resulting grid; the input itself when nothing changed
}

// slideLine slides and merges a line toward index 0.
// A tile produced by a merge never merges again in the same pass.
func slideLine(line []int) (result []int, score, merges int) {
	result = make([]int, len(line))
	writePos := 0
	lastMerged := -1

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == v && lastMerged != writePos-1 {
			// Merge with previous tile
			result[writePos-1] *= 2
			score += result[writePos-1]
			merges++
			lastMerged = writePos - 1
		} else {
			// Move tile
			result[writePos] = v
			writePos++
		}
	}

	return result, score, merges
}

// linePositions returns the cells of line i ordered from the wall the tiles
// move toward to the opposite edge.
func linePositions(size int, dir core.Direction, i int) []core.Pos {
	pos := make([]core.Pos, size)
	for k := range size {
		switch dir {
		case core.DirLeft:
			pos[k] = core.NewPos(i, k)
		case core.DirRight:
			pos[k] = core.NewPos(i, size-1-k)
		case core.DirUp:
			pos[k] = core.NewPos(k, i)
		case core.DirDown:
			pos[k] = core.NewPos(size-1-k, i)
		}
	}
	return pos
}

// Apply performs a move in the given direction and returns the outcome.
// The input grid is left untouched. Unknown directions and blocked moves
// return Changed=false with the input grid.
func Apply(g Grid, dir core.Direction) Outcome {
	if !dir.Valid() || g.size == 0 {
		return Outcome{Grid: g}
	}

	out := g.Clone()
	line := make([]int, g.size)
	totalScore, totalMerges := 0, 0
	changed := false

	for i := range g.size {
		positions := linePositions(g.size, dir, i)
		for k, p := range positions {
			line[k] = g.At(p)
		}

		slid, score, merges := slideLine(line)
		totalScore += score
		totalMerges += merges

		for k, p := range positions {
			if line[k] != slid[k] {
				changed = true
			}
			out.set(p, slid[k])
		}
	}

	if !changed {
		return Outcome{Grid: g}
	}

	return Outcome{
		Changed:    true,
		ScoreDelta: totalScore,
		Merges:     totalMerges,
		Grid:       out,
	}
}

// CanMove reports whether moving in dir would change the grid.
func CanMove(g Grid, dir core.Direction) bool {
	return Apply(g, dir).Changed
}

// LegalMoves returns the directions that change the grid, in evaluation order.
func LegalMoves(g Grid) []core.Direction {
	var moves []core.Direction
	for _, d := range core.Directions {
		if CanMove(g, d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// IsGameOver returns true if the grid is full and no adjacent pair can merge.
func IsGameOver(g Grid) bool {
	return !g.HasEmptyCell() && !g.HasAdjacentEqual()
}
