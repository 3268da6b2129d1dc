// Package grid provides the primitive value types for grid worlds:
// coordinates, movement directions, terrain kinds, and local sensor views.
//
// Coordinates are zero-based with Y increasing downward, matching the row
// order of scenario layouts. All movement is axis-aligned; there is no
// diagonal direction.
package grid

import "fmt"

// Coordinate identifies a single cell on a grid.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the coordinate in "(x,y)" form.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns the Manhattan distance to another coordinate.
// This is the exact path length on an unobstructed 4-connected grid and
// therefore an admissible heuristic whenever the minimum step cost is 1.
func (c Coordinate) Manhattan(other Coordinate) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Step returns the coordinate one move in the given direction.
// DirectionNone returns the coordinate unchanged.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four axis-aligned moves, or none (stay in place).
type Direction string

const (
	// DirectionLeft moves one cell toward smaller X.
	DirectionLeft Direction = "left"

	// DirectionRight moves one cell toward larger X.
	DirectionRight Direction = "right"

	// DirectionUp moves one cell toward smaller Y.
	DirectionUp Direction = "up"

	// DirectionDown moves one cell toward larger Y.
	DirectionDown Direction = "down"

	// DirectionNone stays in place. Used for charging and waiting.
	DirectionNone Direction = "none"
)

// Directions lists the four movement directions, excluding DirectionNone.
// The order is fixed; planners rely on it for deterministic expansion.
var Directions = [4]Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// IsValid checks if the direction is a recognized value.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown, DirectionNone:
		return true
	default:
		return false
	}
}

// Delta returns the (dx, dy) displacement of one move in this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// DirectionBetween recovers the move that leads from one coordinate to an
// adjacent one. It returns DirectionNone and false if the two coordinates
// are not exactly one axis-aligned step apart.
func DirectionBetween(from, to Coordinate) (Direction, bool) {
	for _, d := range Directions {
		if from.Step(d) == to {
			return d, true
		}
	}
	return DirectionNone, from == to
}
