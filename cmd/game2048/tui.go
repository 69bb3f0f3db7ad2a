package main

import (
	"context"
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// tickMsg drives the versus clock.
type tickMsg time.Time

// tickCmd sends a tickMsg after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// terminalOptions uses the alternate screen when stdout is a terminal.
func terminalOptions() []tea.ProgramOption {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return []tea.ProgramOption{tea.WithAltScreen()}
	}
	return nil
}

// runProgram runs model until it quits or ctx is cancelled and returns the
// final model. Cancellation is a normal exit, not an error.
func runProgram(ctx context.Context, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	return final, err
}
