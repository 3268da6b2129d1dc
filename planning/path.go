package planning

import "github.com/gridrover/sdk/grid"

// Path is an ordered, front-consumed sequence of moves toward a destination.
// The zero value is an empty path.
type Path struct {
	moves []grid.Direction
}

// NewPath creates a path from the given moves.
func NewPath(moves ...grid.Direction) Path {
	return Path{moves: moves}
}

// Len returns the number of remaining moves.
func (p *Path) Len() int {
	return len(p.moves)
}

// Empty reports whether no moves remain.
func (p *Path) Empty() bool {
	return len(p.moves) == 0
}

// Peek returns the next move without consuming it.
// It returns grid.DirectionNone on an empty path.
func (p *Path) Peek() grid.Direction {
	if len(p.moves) == 0 {
		return grid.DirectionNone
	}
	return p.moves[0]
}

// Pop consumes and returns the next move.
// It returns grid.DirectionNone on an empty path.
func (p *Path) Pop() grid.Direction {
	if len(p.moves) == 0 {
		return grid.DirectionNone
	}
	d := p.moves[0]
	p.moves = p.moves[1:]
	return d
}

// Clear drops all remaining moves.
func (p *Path) Clear() {
	p.moves = nil
}

// Moves returns a copy of the remaining moves.
func (p *Path) Moves() []grid.Direction {
	out := make([]grid.Direction, len(p.moves))
	copy(out, p.moves)
	return out
}
