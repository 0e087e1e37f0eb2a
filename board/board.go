// Package board implements the minefield: mine generation, occupancy and rendering.
package board

import (
	"fmt"
	"math/rand"
	"time"

	"minewalk/types"
)

// MaxSize is the largest width or height, one legend letter per column.
const MaxSize = 26

// OutOfRangeError is returned when a dimension or coordinate is outside the board.
type OutOfRangeError struct {
	Arg   string
	Value int
	Msg   string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range (%d): %s", e.Arg, e.Value, e.Msg)
}

// Board is a Width x Height grid of squares, stored x-major in one buffer.
type Board struct {
	width   int
	height  int
	squares []types.Status
	rng     *rand.Rand
}

// New creates an empty board drawing mines from src.
// A nil src seeds a generator from the current time.
func New(src rand.Source) *Board {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Board{rng: rand.New(src)}
}

// Init allocates a width x height grid and lays mines, each square
// independently becoming a mine with probability difficultyFactor.
func (b *Board) Init(width, height int, difficultyFactor float64) error {
	if width < 1 || width > MaxSize {
		return &OutOfRangeError{"width", width, "width must be between 1 and 26 inclusive"}
	}
	if height < 1 || height > MaxSize {
		return &OutOfRangeError{"height", height, "height must be between 1 and 26 inclusive"}
	}

	b.width = width
	b.height = height
	b.squares = make([]types.Status, width*height)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if b.rng.Float64() < difficultyFactor {
				b.squares[b.index(x, y)] = types.Mine
			} else {
				b.squares[b.index(x, y)] = types.Safe
			}
		}
	}
	return nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Contains reports whether (x, y) is a square of the board.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return x*b.height + y
}

func (b *Board) check(x, y int) error {
	if x < 0 || x >= b.width {
		return &OutOfRangeError{"x", x, "x must be a valid board column index"}
	}
	if y < 0 || y >= b.height {
		return &OutOfRangeError{"y", y, "y must be a valid board row index"}
	}
	return nil
}

// GetSquare returns the status of a square.
func (b *Board) GetSquare(x, y int) (types.Status, error) {
	if err := b.check(x, y); err != nil {
		return types.Safe, err
	}
	return b.squares[b.index(x, y)], nil
}

// OccupySquare steps on a square, turning a mine into debris.
// The status before the step is returned, so a fresh hit reports Mine
// and any later visit reports Debris.
func (b *Board) OccupySquare(x, y int) (types.Status, error) {
	if err := b.check(x, y); err != nil {
		return types.Safe, err
	}
	i := b.index(x, y)
	status := b.squares[i]
	if status == types.Mine {
		b.squares[i] = types.Debris
	}
	return status, nil
}

// ExplodedMines returns the number of mines that have been stepped on.
func (b *Board) ExplodedMines() int {
	return b.count(types.Debris)
}

// Mines returns the number of mines laid, exploded or not.
func (b *Board) Mines() int {
	return b.count(types.Mine) + b.count(types.Debris)
}

func (b *Board) count(status types.Status) int {
	n := 0
	for _, s := range b.squares {
		if s == status {
			n++
		}
	}
	return n
}
