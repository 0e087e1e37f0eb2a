// Package types contains shared data structures for minewalk.
package types

import "github.com/mattn/go-runewidth"

// Status is the state of a single square of the minefield.
type Status int

const (
	Safe Status = iota
	Mine
	Debris // a mine that has been stepped on
)

func (s Status) String() string {
	switch s {
	case Mine:
		return "mine"
	case Debris:
		return "debris"
	default:
		return "safe"
	}
}

// Direction is a single step on the board. North increases the row index.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Delta returns the column and row offsets of a step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// State is the phase of a game.
type State int

const (
	NotStarted State = iota
	FreeMovement
	Winner
	Loser
)

func (s State) String() string {
	switch s {
	case FreeMovement:
		return "playing"
	case Winner:
		return "winner"
	case Loser:
		return "loser"
	default:
		return "not started"
	}
}

// Finished returns true if the game is over.
func (s State) Finished() bool {
	return s == Winner || s == Loser
}

// Position represents a position on the board.
// X = -1 means the player is west of the field and not on any square.
type Position struct {
	X int
	Y int
}

// Color is the role a glyph plays on screen. The UI decides the real colour.
type Color int

const (
	ColorDefault Color = iota // no explicit style
	ColorLegend
	ColorHighlight
	ColorBorder
	ColorTitle
)

// Glyph is a piece of text drawn with a single style.
type Glyph struct {
	Value string
	Color Color
}

// Line is a row of glyphs, drawn left to right.
type Line []Glyph

// Width returns the number of terminal cells the line occupies.
func (l Line) Width() int {
	w := 0
	for _, g := range l {
		w += runewidth.StringWidth(g.Value)
	}
	return w
}

// String returns the line text without styling.
func (l Line) String() string {
	s := ""
	for _, g := range l {
		s += g.Value
	}
	return s
}

// StringToLine splits s into one glyph per rune, all with the same colour.
func StringToLine(s string, color Color) Line {
	line := make(Line, 0, len(s))
	for _, r := range s {
		line = append(line, Glyph{Value: string(r), Color: color})
	}
	return line
}
