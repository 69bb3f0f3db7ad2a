package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nghiafl1/game2048/internal/engine"
	"github.com/nghiafl1/game2048/internal/session"
)

// Tile colors use ANSI 256-color codes, warming up as values grow.
var tileColors = map[int]string{
	2:    "255", // White
	4:    "230", // Cream
	8:    "215", // Light orange
	16:   "209", // Orange
	32:   "203", // Salmon
	64:   "196", // Red
	128:  "228", // Pale yellow
	256:  "227", // Yellow
	512:  "226", // Bright yellow
	1024: "220", // Gold
	2048: "214", // Deep gold
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boardBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	bigTileColor = "201" // Magenta for anything past 2048
)

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	if v == 0 {
		return emptyStyle
	}
	color, ok := tileColors[v]
	if !ok {
		color = bigTileColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(v >= 128)
}

// cellWidth is wide enough for the largest tile on the board.
func cellWidth(g engine.Grid) int {
	w := len(strconv.Itoa(g.MaxTile()))
	if w < 4 {
		w = 4
	}
	return w + 1
}

// renderGrid draws the tiles inside a rounded border.
func renderGrid(g engine.Grid) string {
	w := cellWidth(g)
	lines := make([]string, 0, g.Size())
	for _, row := range g.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			text := "·"
			if v != 0 {
				text = strconv.Itoa(v)
			}
			cells[i] = tileStyle(v).Width(w).Align(lipgloss.Right).Render(text)
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	return boardBorder.Render(strings.Join(lines, "\n"))
}

// renderBoard draws a titled board with its score line.
func renderBoard(title string, snap session.Snapshot, best int) string {
	header := titleStyle.Render(title)
	score := labelStyle.Render("Score ") + valueStyle.Render(strconv.Itoa(snap.Score))
	if best > 0 {
		score += labelStyle.Render("  Best ") + valueStyle.Render(strconv.Itoa(best))
	}

	parts := []string{header, score, renderGrid(snap.Grid)}
	if snap.GameOver {
		parts = append(parts, overStyle.Render("GAME OVER"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderVersus draws both boards side by side.
func renderVersus(human, computer session.Snapshot, remaining string) string {
	boards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBoard("You", human, 0),
		"   ",
		renderBoard("Computer", computer, 0),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Time left ")+valueStyle.Render(remaining),
		boards,
	)
}

// renderStats formats board statistics.
func renderStats(st session.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Score:          "), st.Score)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Max tile:       "), st.MaxTile)
	fmt.Fprintf(&b, "%s %d/%d\n", labelStyle.Render("Filled cells:   "), st.FilledCells, st.FilledCells+st.EmptyCells)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Legal moves:    "), st.MovesAvailable)

	tiles := make([]string, 0, len(st.TileDistribution))
	for _, v := range slices.Sorted(maps.Keys(st.TileDistribution)) {
		tiles = append(tiles, tileStyle(v).Render(strconv.Itoa(v))+"×"+strconv.Itoa(st.TileDistribution[v]))
	}
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Tiles:          "), strings.Join(tiles, " "))
	return b.String()
}
