// Package sdk is the GridRover SDK: a toolkit for building autonomous
// rovers that navigate partially observable grid worlds under an energy
// budget.
//
// A rover senses only a bounded radius around itself, accumulates a private
// belief map of the terrain it has seen, plans weighted shortest paths over
// that belief, and diverts to discovered charging cells when its energy runs
// low. The decision logic lives in the rover package; the world physics live
// in the env package; this root package wires the two together with
// functional options.
//
// Basic usage:
//
//	cfg, err := scenario.LoadFile("maps/crater.yaml")
//	// handle err
//	cells, _, _, err := cfg.Grid()
//	// handle err
//	world, err := env.NewLocal(cells,
//	    env.WithInitialEnergy(cfg.InitialEnergy),
//	    env.WithMaxTurns(cfg.MaxTurns),
//	)
//	// handle err
//	id, err := world.AddRover("robby")
//	// handle err
//	rv, err := sdk.NewRover(
//	    sdk.WithName("robby"),
//	    sdk.WithRoverID(id),
//	    sdk.WithEnvironment(world),
//	    sdk.WithSensorRadius(cfg.SensorRadius),
//	)
//	// handle err
//	runner, err := sim.NewRunner(world, []*rover.Rover{rv})
//	// handle err
//	report, err := runner.Run(ctx)
package sdk
