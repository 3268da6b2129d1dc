package sdk

import (
	"context"
	"testing"

	"github.com/gridrover/sdk/env"
	"github.com/gridrover/sdk/grid"
	"github.com/gridrover/sdk/rover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) (*env.Local, string) {
	t.Helper()

	world, err := env.NewLocal([][]grid.Terrain{
		{grid.TerrainStart, grid.TerrainEmpty, grid.TerrainTarget},
	})
	require.NoError(t, err)

	id, err := world.AddRover("robby")
	require.NoError(t, err)
	return world, id
}

func TestNewRoverRequiresEnvironment(t *testing.T) {
	_, err := NewRover(WithName("robby"), WithRoverID("some-id"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrNoEnvironment)
}

func TestNewRoverRequiresID(t *testing.T) {
	world, _ := newTestWorld(t)

	_, err := NewRover(WithEnvironment(world))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewRoverDefaults(t *testing.T) {
	world, id := newTestWorld(t)

	rv, err := NewRover(
		WithRoverID(id),
		WithEnvironment(world),
	)
	require.NoError(t, err)

	assert.Equal(t, id, rv.ID())
	assert.Equal(t, id, rv.Name(), "name falls back to the instance ID")
	assert.Equal(t, rover.StateScanning, rv.State())
}

func TestNewRoverAppliesOptions(t *testing.T) {
	world, id := newTestWorld(t)

	rv, err := NewRover(
		WithName("robby"),
		WithRoverID(id),
		WithEnvironment(world),
		WithSensorRadius(5),
		WithEnergyThreshold(25),
		WithFullEnergy(80),
	)
	require.NoError(t, err)
	assert.Equal(t, "robby", rv.Name())
}

func TestNewRoverStepsAgainstLocalWorld(t *testing.T) {
	world, id := newTestWorld(t)

	rv, err := NewRover(
		WithName("robby"),
		WithRoverID(id),
		WithEnvironment(world),
	)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 20 && !rv.Finished(); i++ {
		require.NoError(t, rv.Step(ctx))
	}

	assert.True(t, rv.Finished())
	at, err := world.AtTarget(id)
	require.NoError(t, err)
	assert.True(t, at)
}