package sdk

import (
	"fmt"

	"github.com/gridrover/sdk/rover"
)

// NewRover creates a rover with the provided options. The rover must at
// minimum be given an environment and the instance ID the environment
// assigned at registration.
//
// Example:
//
//	id, err := world.AddRover("robby")
//	// handle err
//	rv, err := sdk.NewRover(
//	    sdk.WithName("robby"),
//	    sdk.WithRoverID(id),
//	    sdk.WithEnvironment(world),
//	    sdk.WithEnergyThreshold(40),
//	)
func NewRover(opts ...RoverOption) (*rover.Rover, error) {
	cfg := rover.Config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Environment == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoEnvironment)
	}
	if cfg.ID == "" {
		return nil, fmt.Errorf("%w: rover id is required; register with the environment first", ErrInvalidConfig)
	}
	return rover.New(cfg)
}
