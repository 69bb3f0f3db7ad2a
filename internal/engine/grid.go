// Package engine implements the 2048 board and its move/merge rules.
// Everything here is pure: moves return new grids and never touch their input.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/nghiafl1/game2048/internal/core"
)

// SpawnFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const SpawnFourProbability = 0.1

// ErrInvalidGridSize is returned when a grid dimension is not a positive integer.
var ErrInvalidGridSize = errors.New("engine: grid size must be a positive integer")

// ErrInvalidTile is returned when a tile value is negative or not a power of two.
var ErrInvalidTile = errors.New("engine: tile must be zero or a power of two")

// Grid is a square matrix of tile values, 0 meaning empty.
// Grid values share their backing storage; use Clone before mutating a copy.
type Grid struct {
	size  int
	cells []int // row-major
}

// NewGrid returns an empty size×size grid.
func NewGrid(size int) (Grid, error) {
	if size <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidGridSize, size)
	}
	return Grid{size: size, cells: make([]int, size*size)}, nil
}

// FromRows builds a grid from a square matrix, copying the values.
func FromRows(rows [][]int) (Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return Grid{}, err
	}
	for r, row := range rows {
		if len(row) != g.size {
			return Grid{}, fmt.Errorf("engine: row %d has %d cells, want %d", r, len(row), g.size)
		}
		for c, v := range row {
			if !validTile(v) {
				return Grid{}, fmt.Errorf("%w: %d at %v", ErrInvalidTile, v, core.NewPos(r, c))
			}
			g.cells[r*g.size+c] = v
		}
	}
	return g, nil
}

func validTile(v int) bool {
	return v == 0 || (v > 0 && v&(v-1) == 0)
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return g.size
}

// At returns the value at the given position, or 0 outside the grid.
func (g Grid) At(p core.Pos) int {
	if !p.In(g.size) {
		return 0
	}
	return g.cells[p.Row*g.size+p.Col]
}

func (g Grid) set(p core.Pos, v int) {
	g.cells[p.Row*g.size+p.Col] = v
}

// Rows returns a copy of the grid as a slice of rows.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.size {
		rows[r] = make([]int, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and values.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g Grid) EmptyCells() []core.Pos {
	var cells []core.Pos
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, core.NewPos(i/g.size, i%g.size))
		}
	}
	return cells
}

// CountEmpty returns the number of empty cells.
func (g Grid) CountEmpty() int {
	n := 0
	for _, v := range g.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for _, v := range g.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasAdjacentEqual returns true if any cell equals its right or bottom neighbour.
func (g Grid) HasAdjacentEqual() bool {
	for r := range g.size {
		for c := range g.size {
			val := g.cells[r*g.size+c]
			// Check right neighbor
			if c < g.size-1 && g.cells[r*g.size+c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < g.size-1 && g.cells[(r+1)*g.size+c] == val {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	sum := 0
	for _, v := range g.cells {
		sum += v
	}
	return sum
}

// TileDistribution counts occupied cells by value.
func (g Grid) TileDistribution() map[int]int {
	dist := make(map[int]int)
	for _, v := range g.cells {
		if v != 0 {
			dist[v]++
		}
	}
	return dist
}

// SpawnRandomTile places a 2 (90%) or a 4 (10%) on a uniformly chosen empty
// cell, mutating the grid in place. It reports false and does nothing when the
// grid is full.
func (g *Grid) SpawnRandomTile(rng *rand.Rand) (core.Pos, int, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return core.Pos{}, 0, false
	}

	cell := empty[rng.Intn(len(empty))]

	// Determine value (90% 2, 10% 4)
	value := 2
	if rng.Float64() < SpawnFourProbability {
		value = 4
	}

	g.set(cell, value)
	return cell, value, true
}

// String renders the grid as whitespace-aligned rows.
func (g Grid) String() string {
	var b strings.Builder
	for r := range g.size {
		for c := range g.size {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%5d", g.cells[r*g.size+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalJSON encodes the grid as an array of rows.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes an array of rows, validating tile values.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	parsed, err := FromRows(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalYAML encodes the grid as a sequence of rows.
func (g Grid) MarshalYAML() (any, error) {
	return g.Rows(), nil
}
