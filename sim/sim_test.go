package sim

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/gridrover/sdk/env"
	"github.com/gridrover/sdk/grid"
	"github.com/gridrover/sdk/rover"
	"github.com/gridrover/sdk/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRun builds a world from map rows, registers one rover, and returns
// a runner for them.
func newTestRun(t *testing.T, rows []string, envOpts []env.Option, simOpts ...Option) (*Runner, *env.Local, *rover.Rover) {
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

	world, err := env.NewLocal(cells, envOpts...)
	require.NoError(t, err)

	id, err := world.AddRover("testbot")
	require.NoError(t, err)

	rv, err := rover.New(rover.Config{
		ID:          id,
		Name:        "testbot",
		Environment: world,
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	simOpts = append(simOpts, WithLogger(quietLogger()))
	runner, err := NewRunner(world, []*rover.Rover{rv}, simOpts...)
	require.NoError(t, err)
	return runner, world, rv
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(nil, nil)
	assert.Error(t, err, "nil world")

	world, werr := env.NewLocal([][]grid.Terrain{{grid.TerrainStart, grid.TerrainTarget}})
	require.NoError(t, werr)
	_, err = NewRunner(world, nil)
	assert.Error(t, err, "no rovers")
}

func TestRunReachesTarget(t *testing.T) {
	runner, world, rv := newTestRun(t,
		[]string{"S...T"},
		[]env.Option{env.WithMaxTurns(50)},
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Reached)
	assert.True(t, rv.Finished())
	assert.Less(t, report.Turns, 50)

	pos, err := world.Position(context.Background(), rv.ID())
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{X: 4, Y: 0}, pos)
}

func TestRunAroundObstacles(t *testing.T) {
	runner, _, rv := newTestRun(t,
		[]string{
			"S..#.",
			".#.#.",
			".#.#.",
			".#...",
			".#..T",
		},
		[]env.Option{env.WithMaxTurns(200)},
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Reached)
	assert.True(t, rv.Finished())
}

func TestRunDivertsToChargerWhenLow(t *testing.T) {
	runner, world, rv := newTestRun(t,
		[]string{"S.C.......T"},
		[]env.Option{env.WithMaxTurns(200), env.WithInitialEnergy(30)},
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Reached, "should charge on the way and still finish")

	energy, err := world.Energy(context.Background(), rv.ID())
	require.NoError(t, err)
	assert.Greater(t, energy, 0)
}

func TestRunStopsAtTurnLimit(t *testing.T) {
	runner, _, rv := newTestRun(t,
		[]string{"S#T"},
		[]env.Option{env.WithMaxTurns(5)},
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Reached, "target is walled off")
	assert.False(t, rv.Finished())
	assert.Equal(t, 5, report.Turns)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	runner, _, _ := newTestRun(t,
		[]string{"S...T"},
		nil,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// capturePublisher records every published event in order.
type capturePublisher struct {
	events []stream.TurnEvent
}

func (p *capturePublisher) Publish(ctx context.Context, event stream.TurnEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestRunPublishesOneEventPerRoverPerTurn(t *testing.T) {
	pub := &capturePublisher{}
	runner, _, rv := newTestRun(t,
		[]string{"S.T"},
		[]env.Option{env.WithMaxTurns(50)},
		WithPublisher(pub),
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.True(t, report.Reached)

	require.Len(t, pub.events, report.Turns)
	last := pub.events[len(pub.events)-1]
	assert.Equal(t, rv.ID(), last.RoverID)
	assert.Equal(t, "testbot", last.RoverName)
	assert.Equal(t, rover.StateFinished, last.State)
	assert.Equal(t, grid.Coordinate{X: 2, Y: 0}, last.Position)
	require.NotNil(t, last.Destination)
	assert.Equal(t, grid.Coordinate{X: 2, Y: 0}, *last.Destination)
}