package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateManhattan(t *testing.T) {
	a := Coordinate{X: 1, Y: 1}
	b := Coordinate{X: 9, Y: 9}

	assert.Equal(t, 16, a.Manhattan(b))
	assert.Equal(t, 16, b.Manhattan(a))
	assert.Equal(t, 0, a.Manhattan(a))
}

func TestCoordinateStep(t *testing.T) {
	c := Coordinate{X: 3, Y: 3}

	assert.Equal(t, Coordinate{X: 2, Y: 3}, c.Step(DirectionLeft))
	assert.Equal(t, Coordinate{X: 4, Y: 3}, c.Step(DirectionRight))
	assert.Equal(t, Coordinate{X: 3, Y: 2}, c.Step(DirectionUp))
	assert.Equal(t, Coordinate{X: 3, Y: 4}, c.Step(DirectionDown))
	assert.Equal(t, c, c.Step(DirectionNone))
}

func TestDirectionBetween(t *testing.T) {
	from := Coordinate{X: 2, Y: 2}

	for _, dir := range Directions {
		got, ok := DirectionBetween(from, from.Step(dir))
		require.True(t, ok)
		assert.Equal(t, dir, got)
	}

	// Same cell is a valid "stay".
	got, ok := DirectionBetween(from, from)
	assert.True(t, ok)
	assert.Equal(t, DirectionNone, got)

	// Not adjacent.
	_, ok = DirectionBetween(from, Coordinate{X: 4, Y: 2})
	assert.False(t, ok)
}

func TestDirectionIsValid(t *testing.T) {
	for _, dir := range Directions {
		assert.True(t, dir.IsValid())
	}
	assert.True(t, DirectionNone.IsValid())
	assert.False(t, Direction("diagonal").IsValid())
}

func TestTerrainMovementCost(t *testing.T) {
	assert.Equal(t, CostLava, TerrainLava.MovementCost())
	assert.Equal(t, CostNormal, TerrainEmpty.MovementCost())
	assert.Equal(t, CostNormal, TerrainCharger.MovementCost())
	assert.Equal(t, CostNormal, TerrainUnknown.MovementCost())
}

func TestTerrainTraversable(t *testing.T) {
	assert.False(t, TerrainObstacle.Traversable())
	assert.True(t, TerrainLava.Traversable())
	assert.True(t, TerrainUnknown.Traversable())
}

func TestTerrainSymbolRoundTrip(t *testing.T) {
	terrains := []Terrain{TerrainEmpty, TerrainObstacle, TerrainLava, TerrainCharger, TerrainStart, TerrainTarget}
	for _, terrain := range terrains {
		got, ok := TerrainFromSymbol(terrain.Symbol())
		require.True(t, ok, "symbol %q", terrain.Symbol())
		assert.Equal(t, terrain, got)
	}

	_, ok := TerrainFromSymbol('x')
	assert.False(t, ok)
}

func TestTerrainIsValid(t *testing.T) {
	assert.True(t, TerrainLava.IsValid())
	assert.False(t, TerrainUnknown.IsValid())
	assert.False(t, Terrain("swamp").IsValid())
}

func TestViewAt(t *testing.T) {
	v := NewView(2)
	assert.Equal(t, 5, v.Side())

	v.Set(-2, -2, TerrainObstacle)
	v.Set(0, 0, TerrainStart)
	v.Set(2, 1, TerrainCharger)

	assert.Equal(t, TerrainObstacle, v.At(-2, -2))
	assert.Equal(t, TerrainStart, v.At(0, 0))
	assert.Equal(t, TerrainCharger, v.At(2, 1))
	assert.Equal(t, TerrainUnknown, v.At(1, 1))
}
