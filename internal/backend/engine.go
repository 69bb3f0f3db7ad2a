// Package backend exposes game operations behind one Engine contract and
// decides which implementation serves each call.
package backend

import (
	"context"
	"errors"

	"github.com/nghiafl1/game2048/internal/ai"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
	"github.com/nghiafl1/game2048/internal/versus"
)

var (
	// ErrGameNotFound is returned for an id with no registered game.
	ErrGameNotFound = errors.New("backend: game not found")
	// ErrNoVersusGame is returned by AIMove before NewVsGame was called.
	ErrNoVersusGame = errors.New("backend: no versus game in progress")
	// ErrNoValidMoves is returned by AIMove when the AI board is stuck.
	ErrNoValidMoves = errors.New("backend: no valid moves")
)

// Engine is the full set of game operations. Every call takes a context
// since an implementation may sit across a network boundary.
type Engine interface {
	NewGame(ctx context.Context, id string, cfg core.RuntimeConfig) (string, session.Snapshot, error)
	Move(ctx context.Context, id string, dir core.Direction) (session.MoveResult, error)
	Undo(ctx context.Context, id string) (session.Snapshot, bool, error)
	Hint(ctx context.Context, id string) (core.Direction, bool, error)
	State(ctx context.Context, id string) (session.Snapshot, error)
	Stats(ctx context.Context, id string) (session.Stats, error)
	Evaluate(ctx context.Context, id string, dir core.Direction) (ai.Evaluation, bool, error)
	BestMoves(ctx context.Context, id string) ([]ai.Evaluation, error)
	NewVsGame(ctx context.Context, cfg core.RuntimeConfig) (versus.MatchID, versus.State, error)
	AIMove(ctx context.Context) (ai.Decision, error)
	DeleteGame(ctx context.Context, id string) error
	Health(ctx context.Context) error
}
