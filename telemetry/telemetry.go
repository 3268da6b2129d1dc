// Package telemetry provides OpenTelemetry wiring for rover simulations:
// tracer provider construction and the metric instruments recorded by the
// controller and the simulation runner.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// NewTracerProvider creates a TracerProvider that exports spans through the
// given exporter. A SimpleSpanProcessor is used so spans are exported as
// soon as they complete; simulation runs are short-lived and batching would
// only delay visibility.
//
// The exporter may be nil, in which case the provider records spans but
// exports nothing, which is convenient for tests.
func NewTracerProvider(serviceName string, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

// Metrics holds the metric instruments recorded during a simulation.
// All record methods are safe to call on a nil receiver, so callers can
// carry a nil *Metrics when observability is not configured.
type Metrics struct {
	// moves counts executed movement steps.
	moves metric.Int64Counter

	// replans counts planner invocations.
	replans metric.Int64Counter

	// cellsObserved counts belief-map cells observed for the first time.
	cellsObserved metric.Int64Counter

	// turns counts external simulation turns.
	turns metric.Int64Counter

	// pathCost records the weighted cost of each committed path.
	pathCost metric.Float64Histogram
}

// NewMetrics creates all metric instruments from the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.moves, err = meter.Int64Counter(
		"rover.moves",
		metric.WithDescription("Number of movement steps executed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create moves counter: %w", err)
	}

	m.replans, err = meter.Int64Counter(
		"rover.replans",
		metric.WithDescription("Number of path-planning invocations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create replans counter: %w", err)
	}

	m.cellsObserved, err = meter.Int64Counter(
		"rover.cells_observed",
		metric.WithDescription("Number of belief-map cells observed for the first time"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cells_observed counter: %w", err)
	}

	m.turns, err = meter.Int64Counter(
		"rover.turns",
		metric.WithDescription("Number of external simulation turns"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create turns counter: %w", err)
	}

	m.pathCost, err = meter.Float64Histogram(
		"rover.path_cost",
		metric.WithDescription("Weighted cost of each committed path"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create path_cost histogram: %w", err)
	}

	return m, nil
}

// RecordMove increments the executed-move counter.
func (m *Metrics) RecordMove(ctx context.Context) {
	if m == nil {
		return
	}
	m.moves.Add(ctx, 1)
}

// RecordReplan increments the planner-invocation counter.
func (m *Metrics) RecordReplan(ctx context.Context) {
	if m == nil {
		return
	}
	m.replans.Add(ctx, 1)
}

// RecordCellsObserved adds newly observed cells to the observation counter.
func (m *Metrics) RecordCellsObserved(ctx context.Context, n int64) {
	if m == nil || n == 0 {
		return
	}
	m.cellsObserved.Add(ctx, n)
}

// RecordTurn increments the turn counter.
func (m *Metrics) RecordTurn(ctx context.Context) {
	if m == nil {
		return
	}
	m.turns.Add(ctx, 1)
}

// RecordPathCost records the weighted cost of a committed path.
func (m *Metrics) RecordPathCost(ctx context.Context, cost float64) {
	if m == nil {
		return
	}
	m.pathCost.Record(ctx, cost)
}
