// Package engine runs the minefield crossing game.
package engine

import "minewalk/types"

// Renderer draws the game. It is implemented by the terminal UI.
type Renderer interface {
	// SetTitle sets the window or frame title.
	SetTitle(title string)

	// SquareGlyph returns the two character symbol of a square.
	SquareGlyph(status types.Status) string

	// Size returns the viewport width and height in cells.
	Size() (width, height int)

	// Clear blanks the viewport.
	Clear()

	// Draw replaces the viewport contents with the given lines.
	Draw(lines []types.Line)
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Title            string
	DifficultyFactor float64 // probability of a square holding a mine, 0 <= f < 1
	StartLives       int
	StartRow         int // 1-based row to enter the field from, 0 for none
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Title:            "JUST FOR FUN :)",
		DifficultyFactor: 0.1,
		StartLives:       5,
		StartRow:         1,
	}
}
