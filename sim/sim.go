// Package sim drives rovers through an environment one turn at a time until
// every rover has reached the mission target or the environment calls the
// run over.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gridrover/sdk/env"
	"github.com/gridrover/sdk/rover"
	"github.com/gridrover/sdk/stream"
	"github.com/gridrover/sdk/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Report summarizes a finished run.
type Report struct {
	// Reached is true when every rover finished at the mission target.
	Reached bool

	// Turns is the number of external turns the run consumed.
	Turns int
}

// Runner owns the outer simulation loop: step every rover, advance the turn
// counter, record telemetry, publish turn events.
type Runner struct {
	world     *env.Local
	rovers    []*rover.Rover
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *telemetry.Metrics
	publisher stream.Publisher
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithTracer sets the OpenTelemetry tracer for per-turn spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runner) { r.tracer = tracer }
}

// WithMetrics sets the metric instruments to record into.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(r *Runner) { r.metrics = metrics }
}

// WithPublisher sets the turn-event publisher. Defaults to a no-op.
func WithPublisher(publisher stream.Publisher) Option {
	return func(r *Runner) { r.publisher = publisher }
}

// NewRunner creates a runner for the given world and rovers.
func NewRunner(world *env.Local, rovers []*rover.Rover, opts ...Option) (*Runner, error) {
	if world == nil {
		return nil, fmt.Errorf("sim: world is required")
	}
	if len(rovers) == 0 {
		return nil, fmt.Errorf("sim: at least one rover is required")
	}

	r := &Runner{
		world:     world,
		rovers:    rovers,
		publisher: stream.NopPublisher{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	if r.tracer == nil {
		r.tracer = noop.NewTracerProvider().Tracer("sim")
	}
	return r, nil
}

// Run executes turns until every rover is finished, the environment reports
// the run over, or the context is cancelled.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	for !r.allFinished() && !r.world.IsOver() {
		if err := ctx.Err(); err != nil {
			return Report{Turns: r.world.Turn()}, err
		}
		if err := r.turn(ctx); err != nil {
			return Report{Turns: r.world.Turn()}, err
		}
	}

	report := Report{Reached: r.allFinished(), Turns: r.world.Turn()}
	if report.Reached {
		r.logger.Info("all rovers reached the target", "turns", report.Turns)
	} else {
		r.logger.Info("turn limit reached, run ended", "turns", report.Turns)
	}
	return report, nil
}

// turn runs one external turn: a decision cycle per unfinished rover, then
// the clock tick and the per-rover event publish.
func (r *Runner) turn(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "sim.turn",
		trace.WithAttributes(attribute.Int("sim.turn_number", r.world.Turn())))
	defer span.End()

	for _, rv := range r.rovers {
		if rv.Finished() {
			continue
		}
		if err := rv.Step(ctx); err != nil {
			return fmt.Errorf("rover %s: %w", rv.Name(), err)
		}
	}

	r.world.NextTurn()
	r.metrics.RecordTurn(ctx)

	for _, rv := range r.rovers {
		if err := r.publish(ctx, rv); err != nil {
			// Streaming is best effort; a lost event never stops the run.
			r.logger.Warn("failed to publish turn event", "rover", rv.Name(), "error", err)
		}
	}
	return nil
}

func (r *Runner) publish(ctx context.Context, rv *rover.Rover) error {
	pos, err := r.world.Position(ctx, rv.ID())
	if err != nil {
		return err
	}
	energy, err := r.world.Energy(ctx, rv.ID())
	if err != nil {
		return err
	}
	event := stream.TurnEvent{
		Turn:      r.world.Turn(),
		RoverID:   rv.ID(),
		RoverName: rv.Name(),
		State:     rv.State(),
		Position:  pos,
		Energy:    energy,
	}
	if dest, ok := rv.Destination(); ok {
		event.Destination = &dest
	}
	return r.publisher.Publish(ctx, event)
}

func (r *Runner) allFinished() bool {
	for _, rv := range r.rovers {
		if !rv.Finished() {
			return false
		}
	}
	return true
}
