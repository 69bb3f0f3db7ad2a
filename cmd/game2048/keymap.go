package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nghiafl1/game2048/internal/core"
)

// action is what a key press asks the game to do.
type action int

const (
	actionNone action = iota
	actionMove
	actionUndo
	actionHint
	actionStats
	actionRank
	actionNew
	actionHelp
	actionQuit
)

// command pairs an action with its direction when the action is a move.
type command struct {
	action action
	dir    core.Direction
}

// keyMap defines the key bindings for a board. It implements help.KeyMap.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Undo  key.Binding
	Hint  key.Binding
	Stats key.Binding
	Rank  key.Binding
	New   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Undo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Hint, k.Stats, k.Rank},
		{k.New, k.Help, k.Quit},
	}
}

// defaultKeyMap returns the bindings for a classic game.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "backspace"),
			key.WithHelp("u", "undo"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Stats: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "stats"),
		),
		Rank: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rank moves"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// versusKeyMap returns the bindings for a match. Stats, ranking and
// restarting are disabled so they neither match nor show in help.
func versusKeyMap() keyMap {
	k := defaultKeyMap()
	k.Stats.SetEnabled(false)
	k.Rank.SetEnabled(false)
	k.New.SetEnabled(false)
	return k
}

// mapKey translates a key message to a command.
// Unbound keys yield actionNone.
func (k keyMap) mapKey(msg tea.KeyMsg) command {
	switch {
	case key.Matches(msg, k.Quit):
		return command{action: actionQuit}
	case key.Matches(msg, k.Up):
		return command{action: actionMove, dir: core.DirUp}
	case key.Matches(msg, k.Down):
		return command{action: actionMove, dir: core.DirDown}
	case key.Matches(msg, k.Left):
		return command{action: actionMove, dir: core.DirLeft}
	case key.Matches(msg, k.Right):
		return command{action: actionMove, dir: core.DirRight}
	case key.Matches(msg, k.Undo):
		return command{action: actionUndo}
	case key.Matches(msg, k.Hint):
		return command{action: actionHint}
	case key.Matches(msg, k.Stats):
		return command{action: actionStats}
	case key.Matches(msg, k.Rank):
		return command{action: actionRank}
	case key.Matches(msg, k.New):
		return command{action: actionNew}
	case key.Matches(msg, k.Help):
		return command{action: actionHelp}
	}
	return command{action: actionNone}
}
