package backend

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/nghiafl1/game2048/internal/ai"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
	"github.com/nghiafl1/game2048/internal/versus"
)

// Fallback routes calls to a remote engine until the first failure, then
// pins itself to the local engine for the rest of its life. Games created
// remotely are not copied over, so they read as ErrGameNotFound afterwards.
type Fallback struct {
	remote     Engine
	local      *Local
	remoteMode atomic.Bool
	logger     *log.Logger
}

var _ Engine = (*Fallback)(nil)

// NewFallback wraps remote and local. A nil remote starts in local mode.
func NewFallback(remote Engine, local *Local, logger *log.Logger) *Fallback {
	if logger == nil {
		logger = log.Default()
	}
	f := &Fallback{
		remote: remote,
		local:  local,
		logger: logger,
	}
	f.remoteMode.Store(remote != nil)
	return f
}

// Remote reports whether calls still go to the remote engine.
func (f *Fallback) Remote() bool {
	return f.remoteMode.Load()
}

// do runs fn against the remote engine while remote mode holds and against
// the local engine otherwise. A remote error switches modes for good and
// the same call is retried locally.
func (f *Fallback) do(op string, fn func(Engine) error) error {
	if f.remoteMode.Load() {
		err := fn(f.remote)
		if err == nil {
			return nil
		}
		if f.remoteMode.CompareAndSwap(true, false) {
			f.logger.Warn("remote engine failed, using local engine", "op", op, "err", err)
		}
	}
	return fn(f.local)
}

// NewGame implements Engine.
func (f *Fallback) NewGame(ctx context.Context, id string, cfg core.RuntimeConfig) (gameID string, snap session.Snapshot, err error) {
	err = f.do("new_game", func(e Engine) error {
		var err error
		gameID, snap, err = e.NewGame(ctx, id, cfg)
		return err
	})
	return gameID, snap, err
}

// Move implements Engine.
func (f *Fallback) Move(ctx context.Context, id string, dir core.Direction) (res session.MoveResult, err error) {
	err = f.do("move", func(e Engine) error {
		var err error
		res, err = e.Move(ctx, id, dir)
		return err
	})
	return res, err
}

// Undo implements Engine.
func (f *Fallback) Undo(ctx context.Context, id string) (snap session.Snapshot, ok bool, err error) {
	err = f.do("undo", func(e Engine) error {
		var err error
		snap, ok, err = e.Undo(ctx, id)
		return err
	})
	return snap, ok, err
}

// Hint implements Engine.
func (f *Fallback) Hint(ctx context.Context, id string) (dir core.Direction, ok bool, err error) {
	err = f.do("hint", func(e Engine) error {
		var err error
		dir, ok, err = e.Hint(ctx, id)
		return err
	})
	return dir, ok, err
}

// State implements Engine.
func (f *Fallback) State(ctx context.Context, id string) (snap session.Snapshot, err error) {
	err = f.do("state", func(e Engine) error {
		var err error
		snap, err = e.State(ctx, id)
		return err
	})
	return snap, err
}

// Stats implements Engine.
func (f *Fallback) Stats(ctx context.Context, id string) (st session.Stats, err error) {
	err = f.do("stats", func(e Engine) error {
		var err error
		st, err = e.Stats(ctx, id)
		return err
	})
	return st, err
}

// Evaluate implements Engine.
func (f *Fallback) Evaluate(ctx context.Context, id string, dir core.Direction) (ev ai.Evaluation, ok bool, err error) {
	err = f.do("evaluate", func(e Engine) error {
		var err error
		ev, ok, err = e.Evaluate(ctx, id, dir)
		return err
	})
	return ev, ok, err
}

// BestMoves implements Engine.
func (f *Fallback) BestMoves(ctx context.Context, id string) (evs []ai.Evaluation, err error) {
	err = f.do("best_moves", func(e Engine) error {
		var err error
		evs, err = e.BestMoves(ctx, id)
		return err
	})
	return evs, err
}

// NewVsGame implements Engine.
func (f *Fallback) NewVsGame(ctx context.Context, cfg core.RuntimeConfig) (id versus.MatchID, state versus.State, err error) {
	err = f.do("new_vs_game", func(e Engine) error {
		var err error
		id, state, err = e.NewVsGame(ctx, cfg)
		return err
	})
	return id, state, err
}

// AIMove implements Engine.
func (f *Fallback) AIMove(ctx context.Context) (dec ai.Decision, err error) {
	err = f.do("ai_move", func(e Engine) error {
		var err error
		dec, err = e.AIMove(ctx)
		return err
	})
	return dec, err
}

// DeleteGame implements Engine.
func (f *Fallback) DeleteGame(ctx context.Context, id string) error {
	return f.do("delete_game", func(e Engine) error {
		return e.DeleteGame(ctx, id)
	})
}

// Health implements Engine.
func (f *Fallback) Health(ctx context.Context) error {
	return f.do("health", func(e Engine) error {
		return e.Health(ctx)
	})
}
