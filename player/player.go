// Package player tracks where the walker stands on the minefield.
package player

import "minewalk/types"

// Player is the walker crossing the field. Position bounds are the
// engine's responsibility.
type Player struct {
	x int
	y int

	// OnTheBoard is set once the player has entered the field and
	// cleared when they are sent back to the start.
	OnTheBoard bool
}

func New() *Player {
	return &Player{}
}

func (p *Player) X() int {
	return p.x
}

func (p *Player) Y() int {
	return p.y
}

// Position returns the current position.
func (p *Player) Position() types.Position {
	return types.Position{X: p.x, Y: p.y}
}

// UpdatePosition moves the player without any validation.
func (p *Player) UpdatePosition(x, y int) {
	p.x = x
	p.y = y
}
