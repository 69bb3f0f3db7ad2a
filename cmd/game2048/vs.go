package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nghiafl1/game2048/internal/backend"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
	"github.com/nghiafl1/game2048/internal/storage"
	"github.com/nghiafl1/game2048/internal/versus"
)

var flagTimeLimit int

var vsCmd = &cobra.Command{
	Use:   "vs",
	Short: "Race the computer",
	Long: `Play against a computer opponent. Each side has its own board and
the computer moves once after every move you make. The higher score
when the clock runs out, or when both boards lock up, wins.

Difficulty options:
  easy   - The computer adds a lot of randomness to its choices
  medium - Some randomness
  hard   - Always the greedy best move

Examples:
  game2048 vs
  game2048 vs --difficulty hard
  game2048 vs --time-limit 60`,
	Args: cobra.NoArgs,
	Run:  runVs,
}

func init() {
	vsCmd.Flags().IntVar(&flagTimeLimit, "time-limit", 0, "Match length in seconds (0 = from config)")
}

func runVs(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	rc := runtimeConfig()
	if flagTimeLimit > 0 {
		rc.TimeLimit = flagTimeLimit
	}
	store := openStore()

	var (
		saver  versus.MatchResultSaver
		keeper scoreKeeper
	)
	if store != nil {
		saver = store
		keeper = store
	}

	runErr := func() error {
		m, err := newVsModel(ctx, newEngine(rc.Seed), rc, saver, keeper, logger)
		if err != nil {
			return err
		}
		final, err := runProgram(ctx, m, terminalOptions()...)
		if err != nil {
			return err
		}
		vm, ok := final.(vsModel)
		if !ok {
			return nil
		}
		if vm.err != nil {
			return vm.err
		}
		// Cancelled programs never reached the end of the match
		vm.finish()
		fmt.Println(renderVersus(vm.human, vm.computer, vm.remaining.String()))
		fmt.Println(vm.summary())
		return nil
	}()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// vsModel is the Bubble Tea model for a human vs computer race.
type vsModel struct {
	ctx    context.Context
	eng    backend.Engine
	cfg    core.RuntimeConfig
	saver  versus.MatchResultSaver // nil when results are not persisted
	keeper scoreKeeper
	logger *log.Logger
	keys   keyMap
	help   help.Model

	id        versus.MatchID
	human     session.Snapshot
	computer  session.Snapshot
	start     time.Time
	remaining time.Duration
	message   string

	result versus.MatchResultData
	timeUp bool
	done   bool
	err    error
}

// newVsModel starts a match on eng and returns a model for it.
func newVsModel(ctx context.Context, eng backend.Engine, cfg core.RuntimeConfig, saver versus.MatchResultSaver, keeper scoreKeeper, logger *log.Logger) (vsModel, error) {
	id, state, err := eng.NewVsGame(ctx, cfg)
	if err != nil {
		return vsModel{}, fmt.Errorf("cannot start match: %w", err)
	}
	logger.Debug("match started", "match", id, "difficulty", cfg.Difficulty, "time_limit", cfg.TimeLimit)

	return vsModel{
		ctx:       ctx,
		eng:       eng,
		cfg:       cfg,
		saver:     saver,
		keeper:    keeper,
		logger:    logger,
		keys:      versusKeyMap(),
		help:      help.New(),
		id:        id,
		human:     state.Human,
		computer:  state.AI,
		start:     time.Now(),
		remaining: time.Duration(cfg.TimeLimit) * time.Second,
	}, nil
}

// Init starts the match clock.
func (m vsModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m vsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick counts the clock down by one second.
func (m vsModel) handleTick() (tea.Model, tea.Cmd) {
	m.remaining -= time.Second
	if m.remaining > 0 {
		return m, tickCmd()
	}
	m.remaining = 0
	m.timeUp = true
	m.finish()
	return m, tea.Quit
}

// handleKey processes keyboard input.
func (m vsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	if err := m.handle(m.keys.mapKey(msg)); err != nil {
		m.err = err
		m.done = true
		return m, tea.Quit
	}
	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

// handle executes one command on the human board.
func (m *vsModel) handle(c command) error {
	humanID := string(versus.LabelHuman)

	switch c.action {
	case actionQuit:
		m.finish()

	case actionMove:
		res, err := m.eng.Move(m.ctx, humanID, c.dir)
		if err != nil {
			return err
		}
		if !res.Moved {
			m.message = fmt.Sprintf("Can't move %s.", c.dir)
			return nil
		}
		m.human = res.State
		if m.computer, err = m.aiTurn(m.computer); err != nil {
			return err
		}
		if m.human.GameOver {
			// The computer plays out its board before the match ends
			if m.computer, err = m.playOut(m.computer); err != nil {
				return err
			}
			m.finish()
		}

	case actionUndo:
		snap, ok, err := m.eng.Undo(m.ctx, humanID)
		if err != nil {
			return err
		}
		if !ok {
			m.message = "Nothing to undo."
			return nil
		}
		m.human = snap

	case actionHint:
		dir, ok, err := m.eng.Hint(m.ctx, humanID)
		if err != nil {
			return err
		}
		if ok {
			m.message = fmt.Sprintf("Try %s.", dir)
		}

	case actionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// aiTurn plays one computer move. A stuck computer board is not an error.
func (m *vsModel) aiTurn(current session.Snapshot) (session.Snapshot, error) {
	dec, err := m.eng.AIMove(m.ctx)
	if errors.Is(err, backend.ErrNoValidMoves) {
		return current, nil
	}
	if err != nil {
		return current, err
	}
	m.logger.Debug("computer moved", "move", dec.Move, "score", dec.State.Score)
	return dec.State, nil
}

// playOut lets the computer move until its board locks.
func (m *vsModel) playOut(current session.Snapshot) (session.Snapshot, error) {
	for !current.GameOver {
		if m.ctx.Err() != nil {
			return current, nil
		}
		dec, err := m.eng.AIMove(m.ctx)
		if errors.Is(err, backend.ErrNoValidMoves) {
			break
		}
		if err != nil {
			return current, err
		}
		current = dec.State
	}
	return current, nil
}

// finish decides the winner and persists the result. Only the first call
// has any effect.
func (m *vsModel) finish() {
	if m.done {
		return
	}
	m.done = true
	m.result = versus.MatchResultData{
		MatchID:      string(m.id),
		GridSize:     m.cfg.GridSize,
		Difficulty:   string(m.cfg.Difficulty),
		HumanScore:   m.human.Score,
		AIScore:      m.computer.Score,
		Winner:       winner(m.human.Score, m.computer.Score),
		DurationSecs: int(time.Since(m.start).Seconds()),
	}
	m.save()
}

// winner names the side with the higher score, or "" for a draw.
func winner(humanScore, aiScore int) string {
	switch {
	case humanScore > aiScore:
		return string(versus.LabelHuman)
	case aiScore > humanScore:
		return string(versus.LabelAI)
	default:
		return ""
	}
}

// summary describes how the match ended.
func (m vsModel) summary() string {
	var b strings.Builder
	if m.timeUp {
		b.WriteString("Time's up!\n")
	}
	fmt.Fprintf(&b, "You: %d  Computer: %d\n", m.result.HumanScore, m.result.AIScore)
	switch m.result.Winner {
	case string(versus.LabelHuman):
		b.WriteString("You win!")
	case string(versus.LabelAI):
		b.WriteString("The computer wins.")
	default:
		b.WriteString("It's a draw.")
	}
	return b.String()
}

func (m *vsModel) save() {
	r := m.result
	if m.saver != nil {
		if err := m.saver.SaveMatchResult(r); err != nil {
			m.logger.Warn("could not save match", "match", r.MatchID, "error", err)
		}
	}
	if m.keeper != nil && m.human.Score > 0 {
		if _, err := m.keeper.SaveScore(storage.ModeVersus, m.human.Score, m.human.Grid.MaxTile(), m.human.Grid.Size()); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
}

// View renders both boards, the clock and key help.
func (m vsModel) View() string {
	if m.done {
		return ""
	}

	parts := []string{renderVersus(m.human, m.computer, m.remaining.String())}
	if m.message != "" {
		parts = append(parts, messageStyle.Render(m.message))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
