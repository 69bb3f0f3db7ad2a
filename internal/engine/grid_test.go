package engine

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/nghiafl1/game2048/internal/core"
)

func TestNewGrid(t *testing.T) {
	for _, size := range []int{1, 4, 6} {
		g, err := NewGrid(size)
		if err != nil {
			t.Fatalf("NewGrid(%d) failed: %v", size, err)
		}
		if g.Size() != size {
			t.Errorf("Size() = %d, want %d", g.Size(), size)
		}
		if g.CountEmpty() != size*size {
			t.Errorf("NewGrid(%d) has %d empty cells, want %d", size, g.CountEmpty(), size*size)
		}
	}

	for _, size := range []int{0, -3} {
		if _, err := NewGrid(size); !errors.Is(err, ErrInvalidGridSize) {
			t.Errorf("NewGrid(%d) error = %v, want ErrInvalidGridSize", size, err)
		}
	}
}

func TestFromRowsValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"empty", [][]int{}},
		{"ragged", [][]int{{2, 0}, {0}}},
		{"negative", [][]int{{2, -2}, {0, 0}}},
		{"not a power of two", [][]int{{2, 6}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRows(tt.rows); err == nil {
				t.Errorf("FromRows(%v) should fail", tt.rows)
			}
		})
	}
}

func TestFromRowsCopies(t *testing.T) {
	rows := [][]int{{2, 0}, {0, 4}}
	g := mustGrid(t, rows)
	rows[0][0] = 1024

	if g.At(core.NewPos(0, 0)) != 2 {
		t.Error("FromRows should copy its input")
	}

	out := g.Rows()
	out[1][1] = 2048
	if g.At(core.NewPos(1, 1)) != 4 {
		t.Error("Rows should return a copy")
	}
}

func TestEmptyCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != core.NewPos(0, 1) {
		t.Errorf("first empty cell = %v, want (0,1)", cells[0])
	}

	full := mustGrid(t, [][]int{{2, 4}, {4, 2}})
	if len(full.EmptyCells()) != 0 {
		t.Error("full grid should have no empty cells")
	}
}

func TestHasAdjacentEqual(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		expected bool
	}{
		{"horizontal pair", [][]int{{2, 2}, {4, 8}}, true},
		{"vertical pair", [][]int{{2, 4}, {2, 8}}, true},
		{"diagonal only", [][]int{{2, 4}, {4, 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustGrid(t, tt.rows).HasAdjacentEqual(); got != tt.expected {
				t.Errorf("HasAdjacentEqual() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if max := g.MaxTile(); max != 2048 {
		t.Errorf("MaxTile = %d, want 2048", max)
	}
}

func TestTileDistribution(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 0},
		{4, 0, 0},
		{2, 8, 0},
	})

	dist := g.TileDistribution()
	if dist[2] != 3 || dist[4] != 1 || dist[8] != 1 || len(dist) != 3 {
		t.Errorf("TileDistribution() = %v", dist)
	}
}

func TestSpawnRandomTile(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, _ := NewGrid(4)

	pos, value, ok := g.SpawnRandomTile(rng)
	if !ok {
		t.Fatal("SpawnRandomTile should succeed on an empty grid")
	}
	if value != 2 && value != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", value)
	}
	if g.At(pos) != value {
		t.Errorf("cell %v = %d, want %d", pos, g.At(pos), value)
	}
	if g.CountEmpty() != 15 {
		t.Errorf("CountEmpty = %d, want 15", g.CountEmpty())
	}
}

func TestSpawnRandomTileFullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := mustGrid(t, [][]int{{2, 4}, {4, 2}})
	before := g.Clone()

	if _, _, ok := g.SpawnRandomTile(rng); ok {
		t.Error("SpawnRandomTile should report false on a full grid")
	}
	if !g.Equal(before) {
		t.Error("SpawnRandomTile should not modify a full grid")
	}
}

func TestDeterministicSpawn(t *testing.T) {
	// The same seed produces the same sequence of spawns
	g1, _ := NewGrid(4)
	g2, _ := NewGrid(4)
	r1 := rand.New(rand.NewSource(12345))
	r2 := rand.New(rand.NewSource(12345))

	for range 6 {
		g1.SpawnRandomTile(r1)
		g2.SpawnRandomTile(r2)
	}

	if !g1.Equal(g2) {
		t.Errorf("Same seed should produce same grid:\n%v\nvs\n%v", g1, g2)
	}
}

func TestSpawnFourFrequency(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	fours := 0
	const trials = 5000

	for range trials {
		g, _ := NewGrid(2)
		if _, v, _ := g.SpawnRandomTile(rng); v == 4 {
			fours++
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("share of 4s = %.3f, want about %.2f", ratio, SpawnFourProbability)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	c := g.Clone()
	c.SpawnRandomTile(rand.New(rand.NewSource(3)))

	if g.CountEmpty() != 4 {
		t.Error("spawning on a clone should not affect the original")
	}
}

func TestGridJSON(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {0, 4}})

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[[2,0],[0,4]]" {
		t.Errorf("Marshal = %s, want [[2,0],[0,4]]", data)
	}

	var bad Grid
	if err := json.Unmarshal([]byte("[[3,0],[0,0]]"), &bad); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("Unmarshal of invalid tile error = %v, want ErrInvalidTile", err)
	}
}
