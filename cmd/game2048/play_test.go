package main

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nghiafl1/game2048/internal/backend"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/storage"
)

type fakeKeeper struct {
	modes  []string
	scores []int
	best   int
}

func (f *fakeKeeper) SaveScore(mode string, score, maxTile, gridSize int) (int64, error) {
	f.modes = append(f.modes, mode)
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), nil
}

func (f *fakeKeeper) HighScore(string) (int, error) {
	return f.best, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		GridSize:   4,
		Difficulty: core.DifficultyHard,
		TimeLimit:  60,
		Seed:       5,
	}
}

// press sends key presses to a model and returns the model and the command
// produced by the last one.
func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyPress(k))
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestPlayModel(t *testing.T, eng backend.Engine, cfg core.RuntimeConfig, keeper scoreKeeper) playModel {
	t.Helper()
	m, err := newPlayModel(context.Background(), eng, cfg, keeper, testLogger())
	if err != nil {
		t.Fatalf("newPlayModel() failed: %v", err)
	}
	return m
}

func TestPlayModelKeys(t *testing.T) {
	ctx := context.Background()
	keeper := &fakeKeeper{best: 4096}
	eng := backend.NewLocal(1)
	var model tea.Model = newTestPlayModel(t, eng, testRuntime(), keeper)

	model, _ = press(model, "a", "d", "up", "down")
	view := model.View()
	for _, want := range []string{"Score", "Best", "4096", "undo", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	model, _ = press(model, "t")
	if !strings.Contains(model.View(), "Legal moves") {
		t.Error("stats panel not shown")
	}

	model, _ = press(model, "r")
	if !strings.Contains(model.View(), "Points") {
		t.Error("move ranking not shown")
	}

	model, _ = press(model, "h")
	if !strings.Contains(model.View(), "Try ") {
		t.Error("hint not shown")
	}

	model, _ = press(model, "u")
	if strings.Contains(model.View(), "Try ") {
		t.Error("hint should clear on the next key")
	}

	model, cmd := press(model, "q")
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	pm := model.(playModel)
	if model.View() != "" {
		t.Error("view should be empty after quitting")
	}

	snap, err := eng.State(ctx, pm.id)
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if snap.Score != pm.snap.Score {
		t.Errorf("model score %d, engine score %d", pm.snap.Score, snap.Score)
	}
	if snap.Score == 0 {
		if len(keeper.scores) != 0 {
			t.Errorf("empty game was saved: %v", keeper.scores)
		}
		return
	}
	if len(keeper.scores) != 1 || keeper.scores[0] != snap.Score {
		t.Errorf("saved scores = %v, want [%d]", keeper.scores, snap.Score)
	}
	if keeper.modes[0] != storage.ModeClassic {
		t.Errorf("saved mode = %q, want %q", keeper.modes[0], storage.ModeClassic)
	}
}

func TestPlayModelNewGameKeepsID(t *testing.T) {
	m := newTestPlayModel(t, backend.NewLocal(1), testRuntime(), nil)
	id := m.id
	if id == "" {
		t.Fatal("model has no game id")
	}

	model, cmd := press(m, "n", "n")
	if isQuit(cmd) {
		t.Fatal("new game should not quit")
	}
	if got := model.(playModel).id; got != id {
		t.Errorf("id = %q after new game, want %q", got, id)
	}
}

func TestPlayModelRecordsGameOverOnce(t *testing.T) {
	cfg := testRuntime()
	cfg.GridSize = 3
	keeper := &fakeKeeper{}
	var model tea.Model = newTestPlayModel(t, backend.NewLocal(1), cfg, keeper)

	dirs := []string{"w", "a", "s", "d"}
	for i := 0; !model.(playModel).snap.GameOver; i++ {
		if i > 100000 {
			t.Fatal("game never ended")
		}
		model, _ = press(model, dirs[i%len(dirs)])
	}
	if !strings.Contains(model.View(), "No moves left") {
		t.Error("game over message not shown")
	}

	final := model.(playModel).snap.Score
	_, cmd := press(model, "w", "q")
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if final == 0 {
		if len(keeper.scores) != 0 {
			t.Errorf("empty game was saved: %v", keeper.scores)
		}
		return
	}
	if len(keeper.scores) != 1 || keeper.scores[0] != final {
		t.Errorf("saved scores = %v, want [%d]", keeper.scores, final)
	}
}

func TestPlayModelHelpToggle(t *testing.T) {
	m := newTestPlayModel(t, backend.NewLocal(1), testRuntime(), nil)
	if strings.Contains(m.View(), "rank moves") {
		t.Fatal("short help should not list every key")
	}

	model, _ := press(m, "?")
	if !strings.Contains(model.View(), "rank moves") {
		t.Error("full help should list every key")
	}
}

func TestPlayModelInvalidConfig(t *testing.T) {
	cfg := testRuntime()
	cfg.GridSize = 0
	if _, err := newPlayModel(context.Background(), backend.NewLocal(1), cfg, nil, testLogger()); err == nil {
		t.Error("newPlayModel() should fail for a zero grid size")
	}
}
