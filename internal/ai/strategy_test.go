package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
)

func TestPlay(t *testing.T) {
	for _, name := range []string{"greedy", "random"} {
		t.Run(name, func(t *testing.T) {
			sess, err := session.New(core.RuntimeConfig{GridSize: 4, Seed: 21})
			require.NoError(t, err)

			st := NewStrategy(name, NewSelector(21), core.DifficultyMedium)
			moves := Play(sess, st, 0)

			require.Positive(t, moves)
			require.True(t, sess.IsGameOver())
			require.Positive(t, sess.Score())
		})
	}
}

func TestPlayMaxMoves(t *testing.T) {
	sess, err := session.New(core.RuntimeConfig{GridSize: 6, Seed: 3})
	require.NoError(t, err)

	moves := Play(sess, NewStrategy("greedy", NewSelector(3), core.DifficultyHard), 5)
	require.Equal(t, 5, moves)
	require.Equal(t, 5, sess.HistoryLen())
}

func TestNewStrategy(t *testing.T) {
	sel := NewSelector(1)
	require.IsType(t, RandomStrategy{}, NewStrategy("random", sel, core.DifficultyEasy))
	require.IsType(t, GreedyStrategy{}, NewStrategy("greedy", sel, core.DifficultyEasy))
	require.IsType(t, GreedyStrategy{}, NewStrategy("", sel, core.DifficultyEasy))
}
