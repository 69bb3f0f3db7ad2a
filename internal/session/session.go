// Package session owns a single 2048 game: its grid, score and a bounded
// undo history. A Session is not safe for concurrent use; callers serialize
// access to each session.
package session

import (
	"fmt"
	"math/rand"

	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/engine"
)

// MaxHistory is the number of undo steps kept; older entries are evicted first.
const MaxHistory = 10

// historyEntry is the state captured before a committed move.
type historyEntry struct {
	grid  engine.Grid
	score int
}

// MoveResult is returned by Move.
type MoveResult struct {
	Moved      bool
	ScoreDelta int
	Merges     int
	State      Snapshot
}

// Session is one independent game.
type Session struct {
	rng        *rand.Rand
	difficulty core.Difficulty

	grid     engine.Grid
	score    int
	history  []historyEntry
	gameOver bool
}

// New creates a session and starts a game with the configured grid size.
func New(cfg core.RuntimeConfig) (*Session, error) {
	s := &Session{
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		difficulty: cfg.Difficulty,
	}
	if _, err := s.NewGame(cfg.GridSize); err != nil {
		return nil, err
	}
	return s, nil
}

// Resume creates a session positioned at a previously captured snapshot.
// The history starts empty and game-over is re-evaluated from the grid.
func Resume(cfg core.RuntimeConfig, snap Snapshot) (*Session, error) {
	if snap.Grid.Size() <= 0 {
		return nil, fmt.Errorf("session: cannot resume: %w", engine.ErrInvalidGridSize)
	}
	if snap.Score < 0 {
		return nil, fmt.Errorf("session: cannot resume with negative score %d", snap.Score)
	}
	s := &Session{
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		difficulty: cfg.Difficulty,
		grid:       snap.Grid.Clone(),
		score:      snap.Score,
	}
	s.gameOver = engine.IsGameOver(s.grid)
	return s, nil
}

// NewGame resets the grid to the given size, clears score and history and
// spawns the two starting tiles.
func (s *Session) NewGame(size int) (Snapshot, error) {
	grid, err := engine.NewGrid(size)
	if err != nil {
		return Snapshot{}, fmt.Errorf("session: %w", err)
	}

	s.grid = grid
	s.score = 0
	s.history = nil
	s.gameOver = false

	// Spawn initial tiles (2 tiles)
	s.grid.SpawnRandomTile(s.rng)
	s.grid.SpawnRandomTile(s.rng)

	return s.Snapshot(), nil
}

// Move applies a direction. When the grid changes, the previous state is
// pushed onto the history, one tile is spawned and game-over is re-evaluated.
// A move that changes nothing leaves the session untouched.
func (s *Session) Move(dir core.Direction) MoveResult {
	entry := historyEntry{grid: s.grid.Clone(), score: s.score}

	out := engine.Apply(s.grid, dir)
	if !out.Changed {
		// Board didn't change - drop the capture and don't spawn
		return MoveResult{State: s.Snapshot()}
	}

	s.pushHistory(entry)
	s.grid = out.Grid
	s.score += out.ScoreDelta

	s.grid.SpawnRandomTile(s.rng)
	s.gameOver = engine.IsGameOver(s.grid)

	return MoveResult{
		Moved:      true,
		ScoreDelta: out.ScoreDelta,
		Merges:     out.Merges,
		State:      s.Snapshot(),
	}
}

func (s *Session) pushHistory(e historyEntry) {
	s.history = append(s.history, e)
	if len(s.history) > MaxHistory {
		s.history = s.history[len(s.history)-MaxHistory:]
	}
}

// Undo restores the state before the most recent committed move.
// It returns false when there is nothing to undo.
func (s *Session) Undo() (Snapshot, bool) {
	if len(s.history) == 0 {
		return Snapshot{}, false
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.grid = last.grid
	s.score = last.score
	s.gameOver = engine.IsGameOver(s.grid)

	return s.Snapshot(), true
}

// IsGameOver returns true if no empty cell and no mergeable pair remain.
func (s *Session) IsGameOver() bool {
	return s.gameOver
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() engine.Grid {
	return s.grid.Clone()
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Size returns the grid dimension.
func (s *Session) Size() int {
	return s.grid.Size()
}

// Difficulty returns the difficulty the session was created with.
func (s *Session) Difficulty() core.Difficulty {
	return s.difficulty
}

// HistoryLen returns the number of undo steps available.
func (s *Session) HistoryLen() int {
	return len(s.history)
}
