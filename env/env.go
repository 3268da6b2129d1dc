// Package env provides an in-memory implementation of the rover.Environment
// contract: grid storage, movement legality, terrain energy effects, and
// turn accounting.
//
// The world is the single owner of all shared ground truth. Rovers interact
// with it only through read-only sensing views and the one mutation entry
// point, Move, so no rover ever holds a direct mutable reference to shared
// terrain. A mutex guards the world, which makes it safe to host several
// rovers even though each keeps its own independent belief state.
package env

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gridrover/sdk/grid"
	"github.com/gridrover/sdk/rover"
)

// Default physics constants, on the same scale as goal.DefaultFullEnergy.
const (
	// DefaultChargeRate is the energy restored per turn spent on a charger.
	DefaultChargeRate = 20

	// DefaultLavaDrain is the energy lost per turn spent on lava.
	DefaultLavaDrain = 20

	// DefaultFullEnergy caps charging.
	DefaultFullEnergy = 100
)

// roverState is the environment-owned state of one registered rover.
type roverState struct {
	name   string
	pos    grid.Coordinate
	energy int
}

// Local is an in-memory world hosting one or more rovers.
type Local struct {
	mu sync.RWMutex

	cells  [][]grid.Terrain
	width  int
	height int
	start  grid.Coordinate
	target grid.Coordinate

	initialEnergy int
	fullEnergy    int
	chargeRate    int
	lavaDrain     int

	turn     int
	maxTurns int

	rovers map[string]*roverState
	logger *slog.Logger
}

// Option configures a Local world.
type Option func(*Local)

// WithInitialEnergy sets the energy each rover spawns with.
func WithInitialEnergy(energy int) Option {
	return func(l *Local) { l.initialEnergy = energy }
}

// WithMaxTurns sets the turn limit after which IsOver reports true.
// Zero means no limit.
func WithMaxTurns(turns int) Option {
	return func(l *Local) { l.maxTurns = turns }
}

// WithChargeRate sets the energy restored per turn on a charger.
func WithChargeRate(rate int) Option {
	return func(l *Local) { l.chargeRate = rate }
}

// WithLavaDrain sets the energy lost per turn on lava.
func WithLavaDrain(drain int) Option {
	return func(l *Local) { l.lavaDrain = drain }
}

// WithFullEnergy sets the charging cap.
func WithFullEnergy(full int) Option {
	return func(l *Local) { l.fullEnergy = full }
}

// WithLogger sets the world's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Local) { l.logger = logger }
}

// NewLocal creates a world from a ground-truth terrain grid. The grid must
// be rectangular and contain exactly one start and one target cell.
func NewLocal(cells [][]grid.Terrain, opts ...Option) (*Local, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("env: empty grid")
	}
	width := len(cells[0])

	l := &Local{
		cells:         cells,
		width:         width,
		height:        len(cells),
		initialEnergy: DefaultFullEnergy,
		fullEnergy:    DefaultFullEnergy,
		chargeRate:    DefaultChargeRate,
		lavaDrain:     DefaultLavaDrain,
		rovers:        make(map[string]*roverState),
	}

	foundStart, foundTarget := false, false
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("env: ragged grid at row %d", y)
		}
		for x, t := range row {
			if !t.IsValid() {
				return nil, fmt.Errorf("env: invalid terrain at (%d,%d)", x, y)
			}
			switch t {
			case grid.TerrainStart:
				if foundStart {
					return nil, fmt.Errorf("env: multiple start cells")
				}
				l.start = grid.Coordinate{X: x, Y: y}
				foundStart = true
			case grid.TerrainTarget:
				if foundTarget {
					return nil, fmt.Errorf("env: multiple target cells")
				}
				l.target = grid.Coordinate{X: x, Y: y}
				foundTarget = true
			}
		}
	}
	if !foundStart {
		return nil, fmt.Errorf("env: no start cell")
	}
	if !foundTarget {
		return nil, fmt.Errorf("env: no target cell")
	}

	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l, nil
}

// AddRover registers a rover at the start cell with the initial energy and
// returns its instance ID.
func (l *Local) AddRover(name string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := uuid.NewString()
	l.rovers[id] = &roverState{
		name:   name,
		pos:    l.start,
		energy: l.initialEnergy,
	}
	l.logger.Info("rover registered", "name", name, "id", id, "at", l.start)
	return id, nil
}

// lookup must be called with the lock held.
func (l *Local) lookup(roverID string) (*roverState, error) {
	r, ok := l.rovers[roverID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", rover.ErrUnknownRover, roverID)
	}
	return r, nil
}

func (l *Local) inBounds(c grid.Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < l.width && c.Y < l.height
}

// LocalView returns a square snapshot of side 2*radius+1 centered on the
// rover, with out-of-bounds cells reported as obstacles.
func (l *Local) LocalView(ctx context.Context, roverID string, radius int) (grid.View, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, err := l.lookup(roverID)
	if err != nil {
		return grid.View{}, err
	}

	view := grid.NewView(radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c := grid.Coordinate{X: r.pos.X + dx, Y: r.pos.Y + dy}
			if l.inBounds(c) {
				view.Set(dx, dy, l.cells[c.Y][c.X])
			} else {
				view.Set(dx, dy, grid.TerrainObstacle)
			}
		}
	}
	return view, nil
}

// CanMove reports whether the move is legal: the destination is in bounds
// and not an obstacle. DirectionNone is always legal.
func (l *Local) CanMove(ctx context.Context, roverID string, dir grid.Direction) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, err := l.lookup(roverID)
	if err != nil {
		return false, err
	}
	if dir == grid.DirectionNone {
		return true, nil
	}
	dest := r.pos.Step(dir)
	return l.inBounds(dest) && l.cells[dest.Y][dest.X] != grid.TerrainObstacle, nil
}

// Move executes a move for the rover.
//
// The terrain effect of the currently occupied cell applies first: a charger
// restores energy up to the cap, lava drains it down to zero. Then, if any
// energy remains, a directional move relocates the rover and costs one
// energy; DirectionNone costs nothing. Moving with an empty battery fails
// with ErrNoEnergy, an illegal move with ErrIllegalMove.
func (l *Local) Move(ctx context.Context, roverID string, dir grid.Direction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.lookup(roverID)
	if err != nil {
		return err
	}
	if !dir.IsValid() {
		return fmt.Errorf("%w: %q", rover.ErrIllegalMove, dir)
	}
	if dir != grid.DirectionNone {
		dest := r.pos.Step(dir)
		if !l.inBounds(dest) || l.cells[dest.Y][dest.X] == grid.TerrainObstacle {
			return fmt.Errorf("%w: %s from %s", rover.ErrIllegalMove, dir, r.pos)
		}
	}

	switch l.cells[r.pos.Y][r.pos.X] {
	case grid.TerrainCharger:
		r.energy = min(l.fullEnergy, r.energy+l.chargeRate)
	case grid.TerrainLava:
		r.energy = max(0, r.energy-l.lavaDrain)
	}

	if r.energy <= 0 {
		return fmt.Errorf("%w: %s", rover.ErrNoEnergy, r.name)
	}
	if dir != grid.DirectionNone {
		r.pos = r.pos.Step(dir)
		r.energy--
	}
	return nil
}

// Goal returns the fixed mission target.
func (l *Local) Goal(ctx context.Context) (grid.Coordinate, error) {
	return l.target, nil
}

// Dimensions returns the true grid size.
func (l *Local) Dimensions(ctx context.Context) (int, int, error) {
	return l.width, l.height, nil
}

// Position returns the rover's current coordinate.
func (l *Local) Position(ctx context.Context, roverID string) (grid.Coordinate, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, err := l.lookup(roverID)
	if err != nil {
		return grid.Coordinate{}, err
	}
	return r.pos, nil
}

// Energy returns the rover's current energy level.
func (l *Local) Energy(ctx context.Context, roverID string) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, err := l.lookup(roverID)
	if err != nil {
		return 0, err
	}
	return r.energy, nil
}

// Start returns the spawn cell.
func (l *Local) Start() grid.Coordinate {
	return l.start
}

// Turn returns the current turn count.
func (l *Local) Turn() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.turn
}

// NextTurn advances the simulation clock by one turn.
func (l *Local) NextTurn() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turn++
}

// IsOver reports whether the turn limit has been reached.
func (l *Local) IsOver() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.maxTurns > 0 && l.turn >= l.maxTurns
}

// AtTarget reports whether the rover stands on the mission target.
func (l *Local) AtTarget(roverID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, err := l.lookup(roverID)
	if err != nil {
		return false, err
	}
	return r.pos == l.target, nil
}

// MapString renders the ground-truth grid as ASCII, overlaying registered
// rovers as '@'.
func (l *Local) MapString() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	occupied := make(map[grid.Coordinate]bool, len(l.rovers))
	for _, r := range l.rovers {
		occupied[r.pos] = true
	}

	var b strings.Builder
	for y, row := range l.cells {
		for x, t := range row {
			if occupied[grid.Coordinate{X: x, Y: y}] {
				b.WriteRune('@')
			} else {
				b.WriteRune(t.Symbol())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
