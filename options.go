package sdk

import (
	"log/slog"

	"github.com/gridrover/sdk/rover"
	"github.com/gridrover/sdk/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// RoverOption configures a Rover built with NewRover.
type RoverOption func(*rover.Config)

// WithName sets the rover's human-readable name, used in logs and events.
func WithName(name string) RoverOption {
	return func(c *rover.Config) {
		c.Name = name
	}
}

// WithRoverID sets the environment-assigned instance ID, as returned by the
// environment's registration call (env.Local.AddRover). Required.
func WithRoverID(id string) RoverOption {
	return func(c *rover.Config) {
		c.ID = id
	}
}

// WithEnvironment sets the world the rover acts against. Required.
func WithEnvironment(environment rover.Environment) RoverOption {
	return func(c *rover.Config) {
		c.Environment = environment
	}
}

// WithSensorRadius sets the sensing radius used each scan.
// Defaults to rover.DefaultSensorRadius.
func WithSensorRadius(radius int) RoverOption {
	return func(c *rover.Config) {
		c.SensorRadius = radius
	}
}

// WithEnergyThreshold sets the energy level below which the rover diverts
// to the nearest known charger. Defaults to goal.DefaultLowEnergy.
func WithEnergyThreshold(threshold int) RoverOption {
	return func(c *rover.Config) {
		c.Selector.LowEnergy = threshold
	}
}

// WithFullEnergy sets the energy level the rover charges up to.
// Defaults to goal.DefaultFullEnergy.
func WithFullEnergy(full int) RoverOption {
	return func(c *rover.Config) {
		c.Selector.FullEnergy = full
	}
}

// WithLogger sets a custom logger for the rover.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) RoverOption {
	return func(c *rover.Config) {
		c.Logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for decision-cycle spans.
func WithTracer(tracer trace.Tracer) RoverOption {
	return func(c *rover.Config) {
		c.Tracer = tracer
	}
}

// WithMetrics sets the metric instruments the rover records into.
func WithMetrics(metrics *telemetry.Metrics) RoverOption {
	return func(c *rover.Config) {
		c.Metrics = metrics
	}
}
