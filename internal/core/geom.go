// Package core provides fundamental types shared by the game engine, the AI
// and the surrounding layers. It has no external dependencies to keep game
// logic pure and testable.
package core

import "fmt"

// Pos addresses a single grid cell.
type Pos struct {
	Row, Col int
}

// NewPos creates a position at the given row and column.
func NewPos(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// In returns true if the position lies inside a size×size grid.
func (p Pos) In(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// String returns the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
