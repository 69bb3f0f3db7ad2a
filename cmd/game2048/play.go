package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nghiafl1/game2048/internal/backend"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
	"github.com/nghiafl1/game2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a classic game",
	Long: `Start a classic game of 2048.

Controls:
  ↑/↓/←/→ or w/s/a/d  - Slide tiles
  u                   - Undo last move
  h                   - Suggest a move
  r                   - Rank legal moves by the AI heuristic
  t                   - Board statistics
  n                   - Start over
  ?                   - Show all keys
  q, esc              - Quit

Your score is saved when the board locks up, when you start over,
or when you quit.

Examples:
  game2048 play
  game2048 play --size 5
  game2048 play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// scoreKeeper is the part of the score store the game models need.
type scoreKeeper interface {
	SaveScore(mode string, score, maxTile, gridSize int) (int64, error)
	HighScore(mode string) (int, error)
}

var _ scoreKeeper = (*storage.Store)(nil)

func runPlay(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	rc := runtimeConfig()
	store := openStore()

	var keeper scoreKeeper
	if store != nil {
		keeper = store
	}

	runErr := func() error {
		m, err := newPlayModel(ctx, newEngine(rc.Seed), rc, keeper, logger)
		if err != nil {
			return err
		}
		final, err := runProgram(ctx, m, terminalOptions()...)
		if err != nil {
			return err
		}
		pm, ok := final.(playModel)
		if !ok {
			return nil
		}
		// Cancelled programs never saw a quit key
		pm.record()
		fmt.Println(renderBoard("2048", pm.snap, max(pm.best, pm.snap.Score)))
		return pm.err
	}()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

var (
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	panelStyle   = lipgloss.NewStyle().MarginTop(1)
)

// playModel is the Bubble Tea model for a classic game.
type playModel struct {
	ctx    context.Context
	eng    backend.Engine
	cfg    core.RuntimeConfig
	keeper scoreKeeper // nil when scores are not persisted
	logger *log.Logger
	keys   keyMap
	help   help.Model

	id       string
	snap     session.Snapshot
	best     int
	recorded bool
	message  string // One-line feedback under the board
	panel    string // Stats or move ranking
	quitting bool
	err      error
}

// newPlayModel starts a game on eng and returns a model for it.
func newPlayModel(ctx context.Context, eng backend.Engine, cfg core.RuntimeConfig, keeper scoreKeeper, logger *log.Logger) (playModel, error) {
	m := playModel{
		ctx:    ctx,
		eng:    eng,
		cfg:    cfg,
		keeper: keeper,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	if keeper != nil {
		if best, err := keeper.HighScore(storage.ModeClassic); err == nil {
			m.best = best
		}
	}
	if err := m.newGame(); err != nil {
		return m, err
	}
	return m, nil
}

// Init initializes the model.
func (m playModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message, m.panel = "", ""
	if err := m.handle(m.keys.mapKey(msg)); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m *playModel) newGame() error {
	id, snap, err := m.eng.NewGame(m.ctx, m.id, m.cfg)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	m.id = id
	m.snap = snap
	m.recorded = false
	m.logger.Debug("game started", "id", id, "size", m.cfg.GridSize, "seed", m.cfg.Seed)
	return nil
}

// handle executes one command against the engine.
func (m *playModel) handle(c command) error {
	switch c.action {
	case actionMove:
		res, err := m.eng.Move(m.ctx, m.id, c.dir)
		if err != nil {
			return err
		}
		if !res.Moved {
			m.message = fmt.Sprintf("Can't move %s.", c.dir)
			return nil
		}
		m.snap = res.State
		if m.snap.GameOver {
			m.record()
			m.message = "No moves left. Press u to undo, n for a new game or q to quit."
		}

	case actionUndo:
		snap, ok, err := m.eng.Undo(m.ctx, m.id)
		if err != nil {
			return err
		}
		if !ok {
			m.message = "Nothing to undo."
			return nil
		}
		m.snap = snap

	case actionHint:
		dir, ok, err := m.eng.Hint(m.ctx, m.id)
		if err != nil {
			return err
		}
		if !ok {
			m.message = "No moves available."
			return nil
		}
		m.message = fmt.Sprintf("Try %s.", dir)

	case actionStats:
		st, err := m.eng.Stats(m.ctx, m.id)
		if err != nil {
			return err
		}
		m.panel = renderStats(st)

	case actionRank:
		evs, err := m.eng.BestMoves(m.ctx, m.id)
		if err != nil {
			return err
		}
		if len(evs) == 0 {
			m.message = "No moves available."
			return nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%-6s  %8s  %6s  %5s", "Move", "Score", "Points", "Empty")
		for _, ev := range evs {
			fmt.Fprintf(&b, "\n%-6s  %8.1f  %6d  %5d", ev.Direction, ev.Score, ev.ScoreDelta, ev.EmptyCells)
		}
		m.panel = b.String()

	case actionNew:
		m.record()
		return m.newGame()

	case actionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case actionQuit:
		m.record()
		m.quitting = true
	}
	return nil
}

// record saves the current game once. Empty games are not saved.
func (m *playModel) record() {
	if m.keeper == nil || m.recorded || m.snap.Score == 0 {
		return
	}
	if _, err := m.keeper.SaveScore(storage.ModeClassic, m.snap.Score, m.snap.Grid.MaxTile(), m.snap.Grid.Size()); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.recorded = true
	m.best = max(m.best, m.snap.Score)
	m.logger.Info("score saved", "score", m.snap.Score, "max_tile", m.snap.Grid.MaxTile())
}

// View renders the board, feedback and key help.
func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{renderBoard("2048", m.snap, max(m.best, m.snap.Score))}
	if m.panel != "" {
		parts = append(parts, panelStyle.Render(m.panel))
	}
	if m.message != "" {
		parts = append(parts, messageStyle.Render(m.message))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
