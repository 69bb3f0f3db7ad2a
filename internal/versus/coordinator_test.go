package versus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/engine"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		GridSize:   4,
		Difficulty: core.DifficultyMedium,
		TimeLimit:  120,
		Seed:       77,
	}
}

func TestNewVsGame(t *testing.T) {
	c, state, err := NewVsGame(testConfig())
	require.NoError(t, err)
	require.NotEmpty(t, c.ID())

	for _, snap := range []struct {
		name  string
		tiles int
		size  int
		score int
	}{
		{"human", state.Human.Grid.Size()*state.Human.Grid.Size() - state.Human.Grid.CountEmpty(), state.Human.Grid.Size(), state.Human.Score},
		{"ai", state.AI.Grid.Size()*state.AI.Grid.Size() - state.AI.Grid.CountEmpty(), state.AI.Grid.Size(), state.AI.Score},
	} {
		require.Equal(t, 2, snap.tiles, snap.name)
		require.Equal(t, 4, snap.size, snap.name)
		require.Equal(t, 0, snap.score, snap.name)
	}

	other, _, err := NewVsGame(testConfig())
	require.NoError(t, err)
	require.NotEqual(t, c.ID(), other.ID())
}

func TestNewVsGameInvalidSize(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 0
	_, _, err := NewVsGame(cfg)
	require.ErrorIs(t, err, engine.ErrInvalidGridSize)
}

func TestSessionsAreIndependent(t *testing.T) {
	c, _, err := NewVsGame(testConfig())
	require.NoError(t, err)

	aiBefore, err := c.Snapshot(LabelAI)
	require.NoError(t, err)

	human, err := c.Session(LabelHuman)
	require.NoError(t, err)
	for _, d := range core.Directions {
		if _, err := c.Move(LabelHuman, d); err != nil {
			t.Fatal(err)
		}
	}
	require.Positive(t, human.HistoryLen())

	aiAfter, err := c.Snapshot(LabelAI)
	require.NoError(t, err)
	require.Equal(t, aiBefore, aiAfter)

	computer, err := c.Session(LabelAI)
	require.NoError(t, err)
	require.Equal(t, 0, computer.HistoryLen())
}

func TestAIMove(t *testing.T) {
	c, _, err := NewVsGame(testConfig())
	require.NoError(t, err)

	humanBefore, err := c.Snapshot(LabelHuman)
	require.NoError(t, err)

	dec, ok := c.AIMove()
	require.True(t, ok)
	require.True(t, dec.Move.Valid())

	computer, err := c.Session(LabelAI)
	require.NoError(t, err)
	require.Equal(t, 1, computer.HistoryLen())

	humanAfter, err := c.Snapshot(LabelHuman)
	require.NoError(t, err)
	require.Equal(t, humanBefore, humanAfter)
}

func TestUndoAndHintRouting(t *testing.T) {
	c, _, err := NewVsGame(testConfig())
	require.NoError(t, err)

	_, ok, err := c.Undo(LabelAI)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok = c.AIMove()
	require.True(t, ok)

	_, ok, err = c.Undo(LabelAI)
	require.NoError(t, err)
	require.True(t, ok)

	dir, ok, err := c.Hint(LabelHuman)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, dir.Valid())
}

func TestUnknownLabel(t *testing.T) {
	c, _, err := NewVsGame(testConfig())
	require.NoError(t, err)

	_, err = c.Move(Label("spectator"), core.DirLeft)
	require.ErrorIs(t, err, ErrUnknownLabel)

	_, _, err = c.Undo(Label(""))
	require.ErrorIs(t, err, ErrUnknownLabel)

	_, err = ParseLabel("both")
	require.ErrorIs(t, err, ErrUnknownLabel)

	label, err := ParseLabel("ai")
	require.NoError(t, err)
	require.Equal(t, LabelAI, label)
}
