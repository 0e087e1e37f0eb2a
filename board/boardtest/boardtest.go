// Package boardtest provides deterministic mine layouts for tests.
package boardtest

import "minewalk/types"

// Difficulty is the factor to pass to Board.Init together with a Layout.
const Difficulty = 0.5

const (
	mineDraw = 0       // Float64() == 0.0
	safeDraw = 3 << 61 // Float64() == 0.75
)

// Source is a rand.Source replaying a fixed layout. Draws repeat every
// width*height values, so every Init of the same size yields the same field.
type Source struct {
	draws []int64
	next  int
}

// Layout returns a source that lays mines exactly on the given positions
// of a width x height board.
func Layout(width, height int, mines ...types.Position) *Source {
	draws := make([]int64, width*height)
	for i := range draws {
		draws[i] = safeDraw
	}
	for _, m := range mines {
		draws[m.X*height+m.Y] = mineDraw
	}
	return &Source{draws: draws}
}

func (s *Source) Int63() int64 {
	v := s.draws[s.next]
	s.next = (s.next + 1) % len(s.draws)
	return v
}

func (s *Source) Seed(seed int64) {
	s.next = 0
}
