package rover

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gridrover/sdk/belief"
	"github.com/gridrover/sdk/goal"
	"github.com/gridrover/sdk/grid"
	"github.com/gridrover/sdk/planning"
	"github.com/gridrover/sdk/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultSensorRadius is the sensing radius used when none is configured.
const DefaultSensorRadius = 3

// Config holds everything needed to construct a Rover.
type Config struct {
	// ID is the environment-assigned instance ID, as returned by the
	// environment's registration call. Required.
	ID string

	// Name is a human-readable rover name used in logs.
	Name string

	// Environment is the world contract the rover acts against. Required.
	Environment Environment

	// SensorRadius is the radius passed to LocalView each scan.
	// Defaults to DefaultSensorRadius.
	SensorRadius int

	// Selector arbitrates between the mission target and chargers.
	// Zero value means goal.NewSelector() defaults.
	Selector goal.Selector

	// Logger is the structured logger. Defaults to a text handler on
	// stderr at Info level.
	Logger *slog.Logger

	// Tracer is the OpenTelemetry tracer for decision-cycle spans.
	// Defaults to a no-op tracer.
	Tracer trace.Tracer

	// Metrics holds the metric instruments to record into. May be nil.
	Metrics *telemetry.Metrics
}

// Rover is the finite-state controller for one agent. All of its state --
// belief map, committed path, destination, FSM state -- is private to the
// instance; multiple rovers sharing an environment share nothing else.
type Rover struct {
	id     string
	name   string
	env    Environment
	radius int

	selector goal.Selector
	planner  planning.Planner

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *telemetry.Metrics

	state   State
	beliefs *belief.Map
	path    planning.Path

	// dest is the destination the committed path leads to; nil until the
	// first analysis cycle.
	dest *grid.Coordinate
}

// New constructs a Rover in the scanning state.
func New(cfg Config) (*Rover, error) {
	if cfg.Environment == nil {
		return nil, fmt.Errorf("rover: environment is required")
	}
	if cfg.ID == "" {
		return nil, ErrNotRegistered
	}
	if cfg.SensorRadius <= 0 {
		cfg.SensorRadius = DefaultSensorRadius
	}
	if cfg.Selector.LowEnergy == 0 {
		cfg.Selector.LowEnergy = goal.DefaultLowEnergy
	}
	if cfg.Selector.FullEnergy == 0 {
		cfg.Selector.FullEnergy = goal.DefaultFullEnergy
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	if cfg.Tracer == nil {
		cfg.Tracer = noop.NewTracerProvider().Tracer("rover")
	}
	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}
	return &Rover{
		id:       cfg.ID,
		name:     name,
		env:      cfg.Environment,
		radius:   cfg.SensorRadius,
		selector: cfg.Selector,
		logger:   cfg.Logger.With("rover", name),
		tracer:   cfg.Tracer,
		metrics:  cfg.Metrics,
		state:    StateScanning,
	}, nil
}

// ID returns the environment-assigned instance ID.
func (r *Rover) ID() string { return r.id }

// Name returns the rover's name.
func (r *Rover) Name() string { return r.name }

// State returns the current FSM state.
func (r *Rover) State() State { return r.state }

// Finished reports whether the rover has reached the mission target.
func (r *Rover) Finished() bool { return r.state == StateFinished }

// Beliefs returns the rover's belief map, or nil before the first scan.
func (r *Rover) Beliefs() *belief.Map { return r.beliefs }

// Destination returns the destination the committed path leads to. The
// second return is false before the first analysis cycle has selected one.
func (r *Rover) Destination() (grid.Coordinate, bool) {
	if r.dest == nil {
		return grid.Coordinate{}, false
	}
	return *r.dest, true
}

// Step runs one external decision cycle.
//
// Internally this is a trampoline over the FSM: scanning always chains into
// analyzing within the same cycle, and charging chains into scanning once
// the battery is full. Analyzing, planning, a movement step, and a charging
// stay each end the cycle. Only the movement step and the charging stay
// issue an environment action; the other outcomes leave the turn to pass
// without one.
func (r *Rover) Step(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "rover.step")
	defer span.End()

	for {
		switch r.state {
		case StateScanning:
			if err := r.scan(ctx); err != nil {
				return err
			}
			r.state = StateAnalyzing
			// Sensing is free: fall through to analysis in the same cycle.
			continue

		case StateAnalyzing:
			return r.analyze(ctx)

		case StatePlanning:
			return r.plan(ctx)

		case StateMoving:
			return r.move(ctx)

		case StateCharging:
			energy, err := r.env.Energy(ctx, r.id)
			if err != nil {
				return fmt.Errorf("query energy: %w", err)
			}
			if energy >= r.selector.FullEnergy {
				r.logger.Info("battery full, resuming mission")
				r.state = StateScanning
				continue
			}
			return r.stay(ctx)

		case StateFinished:
			return nil

		default:
			return fmt.Errorf("rover: invalid state %q", r.state)
		}
	}
}

// scan senses the local surroundings and folds them into the belief map,
// sizing the map on the first call.
func (r *Rover) scan(ctx context.Context) error {
	if r.beliefs == nil {
		w, h, err := r.env.Dimensions(ctx)
		if err != nil {
			return fmt.Errorf("query dimensions: %w", err)
		}
		m, err := belief.New(w, h)
		if err != nil {
			return err
		}
		r.beliefs = m
	}

	pos, err := r.env.Position(ctx, r.id)
	if err != nil {
		return fmt.Errorf("query position: %w", err)
	}
	view, err := r.env.LocalView(ctx, r.id, r.radius)
	if err != nil {
		return fmt.Errorf("sense local view: %w", err)
	}

	knownCells := r.beliefs.Observed()
	knownChargers := len(r.beliefs.KnownChargers())
	r.beliefs.Observe(view, pos)
	r.metrics.RecordCellsObserved(ctx, int64(r.beliefs.Observed()-knownCells))

	if chargers := r.beliefs.KnownChargers(); len(chargers) > knownChargers {
		for _, c := range chargers[knownChargers:] {
			r.logger.Info("discovered charger", "at", c)
		}
	}
	return nil
}

// analyze checks victory and energy conditions, selects the destination for
// this cycle, and routes to planning, moving, or charging.
func (r *Rover) analyze(ctx context.Context) error {
	pos, err := r.env.Position(ctx, r.id)
	if err != nil {
		return fmt.Errorf("query position: %w", err)
	}
	target, err := r.env.Goal(ctx)
	if err != nil {
		return fmt.Errorf("query goal: %w", err)
	}
	if pos == target {
		r.logger.Info("mission target reached", "at", pos)
		r.state = StateFinished
		return nil
	}

	energy, err := r.env.Energy(ctx, r.id)
	if err != nil {
		return fmt.Errorf("query energy: %w", err)
	}
	terrain, _ := r.beliefs.TerrainAt(pos)
	onCharger := terrain == grid.TerrainCharger
	if onCharger && energy < r.selector.FullEnergy {
		r.logger.Info("arrived at charger, recharging", "energy", energy)
		r.state = StateCharging
		return nil
	}

	dest := r.selector.Select(pos, energy, target, r.beliefs.KnownChargers(), onCharger)
	destChanged := r.dest == nil || *r.dest != dest

	if r.path.Empty() || destChanged || r.nextMoveBlocked(pos) {
		r.dest = &dest
		r.state = StatePlanning
	} else {
		r.state = StateMoving
	}
	return nil
}

// nextMoveBlocked reports whether the next committed move would enter a cell
// now known to be an obstacle. Lava never blocks here; the planner already
// weighed it.
func (r *Rover) nextMoveBlocked(pos grid.Coordinate) bool {
	if r.path.Empty() {
		return false
	}
	next := pos.Step(r.path.Peek())
	terrain, known := r.beliefs.TerrainAt(next)
	return known && terrain == grid.TerrainObstacle
}

// plan invokes the planner toward the selected destination and replaces the
// committed path. A failed search returns to scanning for a retry next
// cycle; that is an expected outcome, not a fault.
func (r *Rover) plan(ctx context.Context) error {
	pos, err := r.env.Position(ctx, r.id)
	if err != nil {
		return fmt.Errorf("query position: %w", err)
	}

	r.logger.Info("planning path", "from", pos, "to", *r.dest)
	r.metrics.RecordReplan(ctx)
	r.path = r.planner.FindPath(r.beliefs, pos, *r.dest)

	if r.path.Empty() {
		r.logger.Info("no path found, rescanning")
		r.state = StateScanning
		return nil
	}
	r.metrics.RecordPathCost(ctx, float64(planning.PathCost(r.beliefs, pos, r.path.Moves())))
	r.state = StateMoving
	return nil
}

// move pops and executes the next committed move, always returning to
// scanning afterwards so newly revealed terrain is reacted to after every
// single step. An unexpectedly illegal move invalidates the whole path and
// is recovered from by rescanning.
func (r *Rover) move(ctx context.Context) error {
	if r.path.Empty() {
		r.state = StateScanning
		return nil
	}

	next := r.path.Pop()
	ok, err := r.env.CanMove(ctx, r.id, next)
	if err != nil {
		return fmt.Errorf("precheck move: %w", err)
	}
	if !ok {
		r.logger.Warn("path blocked unexpectedly, replanning", "dir", next)
		r.path.Clear()
		r.state = StateScanning
		return nil
	}

	if err := r.env.Move(ctx, r.id, next); err != nil {
		return fmt.Errorf("execute move %s: %w", next, err)
	}
	r.metrics.RecordMove(ctx)
	r.state = StateScanning
	return nil
}

// stay issues the no-op move that lets the environment apply one turn of
// charging.
func (r *Rover) stay(ctx context.Context) error {
	if err := r.env.Move(ctx, r.id, grid.DirectionNone); err != nil {
		return fmt.Errorf("charge in place: %w", err)
	}
	return nil
}
