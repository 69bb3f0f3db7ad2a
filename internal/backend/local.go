package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/nghiafl1/game2048/internal/ai"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/registry"
	"github.com/nghiafl1/game2048/internal/session"
	"github.com/nghiafl1/game2048/internal/versus"
)

// Local serves every Engine call in-process. All calls are serialized
// by one mutex.
type Local struct {
	mu       sync.Mutex
	games    *registry.Sessions
	selector *ai.Selector
	vs       *versus.Coordinator
}

var _ Engine = (*Local)(nil)

// NewLocal creates an in-process engine whose hints use the given seed.
func NewLocal(seed int64) *Local {
	return &Local{
		games:    registry.New(),
		selector: ai.NewSelector(seed),
	}
}

// NewGame starts a game under id, replacing any game already there.
// An empty id is replaced with a generated one.
func (l *Local) NewGame(_ context.Context, id string, cfg core.RuntimeConfig) (string, session.Snapshot, error) {
	if id == "" {
		id = uuid.NewString()
	}

	s, err := session.New(cfg)
	if err != nil {
		return "", session.Snapshot{}, fmt.Errorf("backend: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.games.Register(id, s)
	return id, s.Snapshot(), nil
}

// Move slides the tiles of game id in dir.
func (l *Local) Move(_ context.Context, id string, dir core.Direction) (session.MoveResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return session.MoveResult{}, err
	}
	return s.Move(dir), nil
}

// Undo restores the state before the last move of game id.
func (l *Local) Undo(_ context.Context, id string) (session.Snapshot, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return session.Snapshot{}, false, err
	}
	snap, ok := s.Undo()
	return snap, ok, nil
}

// Hint suggests the greedy best move for game id without playing it.
func (l *Local) Hint(_ context.Context, id string) (core.Direction, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return core.DirNone, false, err
	}
	dir, ok := l.selector.Hint(s.Grid())
	return dir, ok, nil
}

// State returns a snapshot of game id.
func (l *Local) State(_ context.Context, id string) (session.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// Stats summarizes the board of game id.
func (l *Local) Stats(_ context.Context, id string) (session.Stats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return session.Stats{}, err
	}
	return s.Stats(), nil
}

// Evaluate scores one direction against the game's grid without playing it.
func (l *Local) Evaluate(_ context.Context, id string, dir core.Direction) (ai.Evaluation, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return ai.Evaluation{}, false, err
	}
	ev, ok := l.selector.Evaluate(s.Grid(), dir, s.Difficulty())
	return ev, ok, nil
}

// BestMoves ranks the legal moves of a game, best first.
func (l *Local) BestMoves(_ context.Context, id string) ([]ai.Evaluation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	return l.selector.Rank(s.Grid(), s.Difficulty()), nil
}

// NewVsGame starts a versus match. Its two boards are registered under
// the ids "human" and "ai" so the ordinary per-game calls reach them.
func (l *Local) NewVsGame(_ context.Context, cfg core.RuntimeConfig) (versus.MatchID, versus.State, error) {
	c, state, err := versus.NewVsGame(cfg)
	if err != nil {
		return "", versus.State{}, fmt.Errorf("backend: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, label := range []versus.Label{versus.LabelHuman, versus.LabelAI} {
		s, err := c.Session(label)
		if err != nil {
			return "", versus.State{}, fmt.Errorf("backend: %w", err)
		}
		l.games.Register(string(label), s)
	}
	l.vs = c

	return c.ID(), state, nil
}

// AIMove plays one computer move on the versus AI board.
func (l *Local) AIMove(_ context.Context) (ai.Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.vs == nil {
		return ai.Decision{}, ErrNoVersusGame
	}
	dec, ok := l.vs.AIMove()
	if !ok {
		return ai.Decision{}, ErrNoValidMoves
	}
	return dec, nil
}

// DeleteGame removes game id.
func (l *Local) DeleteGame(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.games.Delete(id) {
		return fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return nil
}

// Health always succeeds for the in-process engine.
func (l *Local) Health(context.Context) error {
	return nil
}

// Games returns the ids of all live games.
func (l *Local) Games() []string {
	return l.games.IDs()
}

func (l *Local) lookup(id string) (*session.Session, error) {
	s, ok := l.games.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return s, nil
}
