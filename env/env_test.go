package env

import (
	"context"
	"testing"

	"github.com/gridrover/sdk/grid"
	"github.com/gridrover/sdk/rover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFromLayout(t *testing.T, rows []string) [][]grid.Terrain {
	t.Helper()
	cells := make([][]grid.Terrain, len(rows))
	for y, row := range rows {
		cells[y] = make([]grid.Terrain, len(row))
		for x, r := range row {
			terrain, ok := grid.TerrainFromSymbol(r)
			require.True(t, ok, "symbol %q", r)
			cells[y][x] = terrain
		}
	}
	return cells
}

func newTestWorld(t *testing.T, rows []string, opts ...Option) (*Local, string) {
	t.Helper()
	world, err := NewLocal(gridFromLayout(t, rows), opts...)
	require.NoError(t, err)
	id, err := world.AddRover("testbot")
	require.NoError(t, err)
	return world, id
}

func TestNewLocalValidation(t *testing.T) {
	_, err := NewLocal(nil)
	assert.Error(t, err)

	_, err = NewLocal(gridFromLayout(t, []string{"...", "..."}))
	assert.Error(t, err, "missing start and target")

	_, err = NewLocal(gridFromLayout(t, []string{"S.S", "..T"}))
	assert.Error(t, err, "duplicate start")

	_, err = NewLocal(gridFromLayout(t, []string{"S.T", ".TT"}))
	assert.Error(t, err, "duplicate target")

	world, err := NewLocal(gridFromLayout(t, []string{"S.T"}))
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{X: 0, Y: 0}, world.Start())

	goal, err := world.Goal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{X: 2, Y: 0}, goal)
}

func TestAddRoverSpawnsAtStart(t *testing.T) {
	world, id := newTestWorld(t, []string{".S.", "..T"}, WithInitialEnergy(77))
	ctx := context.Background()

	pos, err := world.Position(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{X: 1, Y: 0}, pos)

	energy, err := world.Energy(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 77, energy)
}

func TestUnknownRoverID(t *testing.T) {
	world, _ := newTestWorld(t, []string{"S.T"})
	ctx := context.Background()

	_, err := world.Position(ctx, "nobody")
	assert.ErrorIs(t, err, rover.ErrUnknownRover)

	_, err = world.LocalView(ctx, "nobody", 2)
	assert.ErrorIs(t, err, rover.ErrUnknownRover)

	err = world.Move(ctx, "nobody", grid.DirectionRight)
	assert.ErrorIs(t, err, rover.ErrUnknownRover)
}

func TestLocalViewReportsOutOfBoundsAsObstacle(t *testing.T) {
	world, id := newTestWorld(t, []string{"S.T"})
	ctx := context.Background()

	view, err := world.LocalView(ctx, id, 1)
	require.NoError(t, err)

	assert.Equal(t, grid.TerrainStart, view.At(0, 0))
	assert.Equal(t, grid.TerrainEmpty, view.At(1, 0))
	assert.Equal(t, grid.TerrainObstacle, view.At(-1, 0), "left of the map")
	assert.Equal(t, grid.TerrainObstacle, view.At(0, -1), "above the map")
	assert.Equal(t, grid.TerrainObstacle, view.At(0, 1), "below the map")
}

func TestCanMove(t *testing.T) {
	world, id := newTestWorld(t, []string{"S#T"})
	ctx := context.Background()

	ok, err := world.CanMove(ctx, id, grid.DirectionRight)
	require.NoError(t, err)
	assert.False(t, ok, "obstacle ahead")

	ok, err = world.CanMove(ctx, id, grid.DirectionLeft)
	require.NoError(t, err)
	assert.False(t, ok, "edge of the map")

	ok, err = world.CanMove(ctx, id, grid.DirectionNone)
	require.NoError(t, err)
	assert.True(t, ok, "staying put is always legal")
}

func TestMoveCostsOneEnergy(t *testing.T) {
	world, id := newTestWorld(t, []string{"S.T"}, WithInitialEnergy(10))
	ctx := context.Background()

	require.NoError(t, world.Move(ctx, id, grid.DirectionRight))

	pos, _ := world.Position(ctx, id)
	energy, _ := world.Energy(ctx, id)
	assert.Equal(t, grid.Coordinate{X: 1, Y: 0}, pos)
	assert.Equal(t, 9, energy)
}

func TestStayCostsNothing(t *testing.T) {
	world, id := newTestWorld(t, []string{"S.T"}, WithInitialEnergy(10))
	ctx := context.Background()

	require.NoError(t, world.Move(ctx, id, grid.DirectionNone))

	energy, _ := world.Energy(ctx, id)
	assert.Equal(t, 10, energy)
}

func TestIllegalMoveFails(t *testing.T) {
	world, id := newTestWorld(t, []string{"S#T"})
	ctx := context.Background()

	err := world.Move(ctx, id, grid.DirectionRight)
	assert.ErrorIs(t, err, rover.ErrIllegalMove)

	err = world.Move(ctx, id, grid.DirectionUp)
	assert.ErrorIs(t, err, rover.ErrIllegalMove)

	err = world.Move(ctx, id, grid.Direction("diagonal"))
	assert.ErrorIs(t, err, rover.ErrIllegalMove)
}

func TestChargerRestoresEnergyBeforeTheMove(t *testing.T) {
	world, id := newTestWorld(t, []string{"SC.T"}, WithInitialEnergy(50))
	ctx := context.Background()

	// Step onto the charger; the start cell has no terrain effect.
	require.NoError(t, world.Move(ctx, id, grid.DirectionRight))
	energy, _ := world.Energy(ctx, id)
	assert.Equal(t, 49, energy)

	// Staying on the charger restores 20 per turn.
	require.NoError(t, world.Move(ctx, id, grid.DirectionNone))
	energy, _ = world.Energy(ctx, id)
	assert.Equal(t, 69, energy)

	// Charging caps at full.
	for i := 0; i < 5; i++ {
		require.NoError(t, world.Move(ctx, id, grid.DirectionNone))
	}
	energy, _ = world.Energy(ctx, id)
	assert.Equal(t, 100, energy)

	// Leaving the charger applies one more charge, then the move cost.
	require.NoError(t, world.Move(ctx, id, grid.DirectionRight))
	energy, _ = world.Energy(ctx, id)
	assert.Equal(t, 99, energy)
}

func TestLavaDrainsEnergy(t *testing.T) {
	world, id := newTestWorld(t, []string{"SL.T"}, WithInitialEnergy(50))
	ctx := context.Background()

	require.NoError(t, world.Move(ctx, id, grid.DirectionRight)) // onto lava, 49
	require.NoError(t, world.Move(ctx, id, grid.DirectionRight)) // drained 20, then move: 28

	energy, _ := world.Energy(ctx, id)
	assert.Equal(t, 28, energy)
}

func TestNoEnergyFailsTheMove(t *testing.T) {
	world, id := newTestWorld(t, []string{"SL.T"}, WithInitialEnergy(21), WithLavaDrain(20))
	ctx := context.Background()

	require.NoError(t, world.Move(ctx, id, grid.DirectionRight)) // onto lava, 20
	err := world.Move(ctx, id, grid.DirectionRight)              // drained to 0
	assert.ErrorIs(t, err, rover.ErrNoEnergy)
}

func TestTurnAccounting(t *testing.T) {
	world, _ := newTestWorld(t, []string{"S.T"}, WithMaxTurns(2))

	assert.Equal(t, 0, world.Turn())
	assert.False(t, world.IsOver())

	world.NextTurn()
	assert.False(t, world.IsOver())
	world.NextTurn()
	assert.True(t, world.IsOver())
	assert.Equal(t, 2, world.Turn())
}

func TestDimensions(t *testing.T) {
	world, _ := newTestWorld(t, []string{"S....", "....T"})
	w, h, err := world.Dimensions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)
}

func TestAtTarget(t *testing.T) {
	world, id := newTestWorld(t, []string{"ST"})
	ctx := context.Background()

	at, err := world.AtTarget(id)
	require.NoError(t, err)
	assert.False(t, at)

	require.NoError(t, world.Move(ctx, id, grid.DirectionRight))
	at, err = world.AtTarget(id)
	require.NoError(t, err)
	assert.True(t, at)
}

func TestMapStringOverlaysRovers(t *testing.T) {
	world, _ := newTestWorld(t, []string{"S.T"})
	assert.Equal(t, "@.T\n", world.MapString())
}
