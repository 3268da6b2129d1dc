// Package belief implements an agent's private, monotonically growing record
// of the terrain it has directly observed.
//
// A belief map starts fully unknown and is filled in from local sensor views
// as the agent moves. Knowledge is never forgotten: once a cell has been
// observed its value can only be overwritten by a later observation of the
// same cell, which under noiseless sensing is idempotent. Charger cells are
// additionally tracked in a deduplicated, first-seen-ordered set so the agent
// can divert to the nearest known charger when energy runs low.
//
// Every belief map is exclusively owned by a single agent. Agents sharing one
// environment never share belief state.
package belief

import (
	"errors"

	"github.com/gridrover/sdk/grid"
)

// Common errors returned by belief-map operations.
var (
	// ErrInvalidSize is returned when constructing a map with non-positive
	// dimensions.
	ErrInvalidSize = errors.New("belief: invalid map size")
)

// Map is an agent's belief about the world: one terrain value per cell, with
// grid.TerrainUnknown for cells never observed.
type Map struct {
	width  int
	height int
	cells  [][]grid.Terrain

	// chargers holds observed charger coordinates in first-seen order.
	chargers []grid.Coordinate
	observed int
}

// New creates a belief map sized to the true grid's dimensions with every
// cell unknown. The dimensions come from the environment's one allowed
// size query; the agent cannot assume them before its first sensing step.
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	cells := make([][]grid.Terrain, height)
	for y := range cells {
		cells[y] = make([]grid.Terrain, width)
	}
	return &Map{width: width, height: height, cells: cells}, nil
}

// Width returns the map width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the map height in cells.
func (m *Map) Height() int { return m.height }

// InBounds reports whether the coordinate lies on the map.
func (m *Map) InBounds(c grid.Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.width && c.Y < m.height
}

// TerrainAt returns the believed terrain at a coordinate and whether the
// cell has been observed. Out-of-bounds coordinates are reported unknown.
func (m *Map) TerrainAt(c grid.Coordinate) (grid.Terrain, bool) {
	if !m.InBounds(c) {
		return grid.TerrainUnknown, false
	}
	t := m.cells[c.Y][c.X]
	return t, t != grid.TerrainUnknown
}

// Observe folds a sensor view centered on the given coordinate into the map.
// Cells of the view that fall outside the map bounds are skipped. Any
// charger seen for the first time is appended to the known-charger set;
// re-observing a known charger is a no-op.
func (m *Map) Observe(view grid.View, center grid.Coordinate) {
	for dy := -view.Radius; dy <= view.Radius; dy++ {
		for dx := -view.Radius; dx <= view.Radius; dx++ {
			c := grid.Coordinate{X: center.X + dx, Y: center.Y + dy}
			if !m.InBounds(c) {
				continue
			}
			seen := view.At(dx, dy)
			if m.cells[c.Y][c.X] == grid.TerrainUnknown && seen != grid.TerrainUnknown {
				m.observed++
			}
			m.cells[c.Y][c.X] = seen
			if seen == grid.TerrainCharger {
				m.addCharger(c)
			}
		}
	}
}

// addCharger appends the coordinate unless it is already known.
func (m *Map) addCharger(c grid.Coordinate) {
	for _, known := range m.chargers {
		if known == c {
			return
		}
	}
	m.chargers = append(m.chargers, c)
}

// KnownChargers returns a copy of the observed charger coordinates in
// first-seen order.
func (m *Map) KnownChargers() []grid.Coordinate {
	out := make([]grid.Coordinate, len(m.chargers))
	copy(out, m.chargers)
	return out
}

// Observed returns the number of cells observed at least once.
func (m *Map) Observed() int { return m.observed }
