package rover

import (
	"context"

	"github.com/gridrover/sdk/grid"
)

// Environment is the contract a rover consumes from the world it moves in.
// The environment owns all ground truth: grid storage, rover positions,
// energy accounting, and turn bookkeeping. A rover never holds a mutable
// reference to shared terrain; it senses through read-only views and mutates
// the world only through Move.
//
// All methods are synchronous and return immediately. Implementations must
// be safe for use by multiple rovers sharing one world.
type Environment interface {
	// LocalView returns a square snapshot of side 2*radius+1 centered on
	// the rover. Cells beyond the grid's bounds are reported as
	// grid.TerrainObstacle.
	LocalView(ctx context.Context, roverID string, radius int) (grid.View, error)

	// CanMove reports whether a move is legal, without side effects.
	// DirectionNone is always legal.
	CanMove(ctx context.Context, roverID string, dir grid.Direction) (bool, error)

	// Move executes a move, applies terrain effects to the rover's energy,
	// and fails with ErrIllegalMove or ErrNoEnergy when the move cannot be
	// carried out. DirectionNone is the stay action used while charging.
	Move(ctx context.Context, roverID string, dir grid.Direction) error

	// Goal returns the fixed mission target.
	Goal(ctx context.Context) (grid.Coordinate, error)

	// Dimensions returns the true grid's width and height. A rover calls
	// this once, to size its belief map after the first sensing step.
	Dimensions(ctx context.Context) (width, height int, err error)

	// Position returns the rover's current coordinate.
	Position(ctx context.Context, roverID string) (grid.Coordinate, error)

	// Energy returns the rover's current energy level.
	Energy(ctx context.Context, roverID string) (int, error)
}
