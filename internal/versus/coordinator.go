package versus

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nghiafl1/game2048/internal/ai"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
)

// State holds the opening snapshots of both sides.
type State struct {
	Human session.Snapshot `json:"human_state"`
	AI    session.Snapshot `json:"ai_state"`
}

// Coordinator owns the two sessions of a versus match.
type Coordinator struct {
	id        MatchID
	cfg       core.RuntimeConfig
	human     *session.Session
	ai        *session.Session
	selector  *ai.Selector
	startedAt time.Time
}

// NewVsGame starts fresh human and AI games with the same grid size.
// Each side gets its own RNG stream derived from cfg.Seed.
func NewVsGame(cfg core.RuntimeConfig) (*Coordinator, State, error) {
	humanCfg := cfg
	aiCfg := cfg
	aiCfg.Seed = cfg.Seed + 1

	human, err := session.New(humanCfg)
	if err != nil {
		return nil, State{}, fmt.Errorf("versus: human session: %w", err)
	}
	computer, err := session.New(aiCfg)
	if err != nil {
		return nil, State{}, fmt.Errorf("versus: ai session: %w", err)
	}

	c := &Coordinator{
		id:        MatchID(uuid.NewString()),
		cfg:       cfg,
		human:     human,
		ai:        computer,
		selector:  ai.NewSelector(cfg.Seed + 2),
		startedAt: time.Now(),
	}

	return c, State{Human: human.Snapshot(), AI: computer.Snapshot()}, nil
}

// ID returns the match identifier.
func (c *Coordinator) ID() MatchID {
	return c.id
}

// Config returns the configuration the match was created with.
func (c *Coordinator) Config() core.RuntimeConfig {
	return c.cfg
}

// StartedAt returns when the match was created.
func (c *Coordinator) StartedAt() time.Time {
	return c.startedAt
}

// Session returns the session for a label.
func (c *Coordinator) Session(label Label) (*session.Session, error) {
	switch label {
	case LabelHuman:
		return c.human, nil
	case LabelAI:
		return c.ai, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
}

// Snapshot returns the current state of one side.
func (c *Coordinator) Snapshot(label Label) (session.Snapshot, error) {
	s, err := c.Session(label)
	if err != nil {
		return session.Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// Move applies a direction to one side.
func (c *Coordinator) Move(label Label, dir core.Direction) (session.MoveResult, error) {
	s, err := c.Session(label)
	if err != nil {
		return session.MoveResult{}, err
	}
	return s.Move(dir), nil
}

// Undo reverts the last move of one side.
func (c *Coordinator) Undo(label Label) (session.Snapshot, bool, error) {
	s, err := c.Session(label)
	if err != nil {
		return session.Snapshot{}, false, err
	}
	snap, ok := s.Undo()
	return snap, ok, nil
}

// Hint suggests a legal move for one side.
func (c *Coordinator) Hint(label Label) (core.Direction, bool, error) {
	s, err := c.Session(label)
	if err != nil {
		return core.DirNone, false, err
	}
	dir, ok := c.selector.Hint(s.Grid())
	return dir, ok, nil
}

// AIMove lets the computer play one move on its own board at the match
// difficulty. It reports false when the AI board has no legal move.
func (c *Coordinator) AIMove() (ai.Decision, bool) {
	return c.selector.SelectMove(c.ai, c.cfg.Difficulty)
}
