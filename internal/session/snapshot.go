package session

import (
	"github.com/nghiafl1/game2048/internal/engine"
)

// Snapshot is the externally visible state of a session.
// Its field names match the wire shape consumed by presentation layers.
type Snapshot struct {
	Grid     engine.Grid `json:"grid" yaml:"grid"`
	Score    int         `json:"score" yaml:"score"`
	GameOver bool        `json:"game_over" yaml:"game_over"`
}

// Snapshot returns the current state. The grid is a copy.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:     s.grid.Clone(),
		Score:    s.score,
		GameOver: s.gameOver,
	}
}

// Stats summarizes the current board.
type Stats struct {
	Score            int         `json:"score" yaml:"score"`
	MaxTile          int         `json:"max_tile" yaml:"max_tile"`
	EmptyCells       int         `json:"empty_cells" yaml:"empty_cells"`
	FilledCells      int         `json:"filled_cells" yaml:"filled_cells"`
	TileDistribution map[int]int `json:"tile_distribution" yaml:"tile_distribution"`
	MovesAvailable   int         `json:"moves_available" yaml:"moves_available"`
	GameOver         bool        `json:"game_over" yaml:"game_over"`
}

// Stats computes board statistics without changing the session.
func (s *Session) Stats() Stats {
	empty := s.grid.CountEmpty()
	size := s.grid.Size()
	return Stats{
		Score:            s.score,
		MaxTile:          s.grid.MaxTile(),
		EmptyCells:       empty,
		FilledCells:      size*size - empty,
		TileDistribution: s.grid.TileDistribution(),
		MovesAvailable:   len(engine.LegalMoves(s.grid)),
		GameOver:         s.gameOver,
	}
}
