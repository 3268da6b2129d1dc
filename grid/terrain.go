package grid

// Terrain identifies the kind of a grid cell.
//
// The zero value TerrainUnknown represents a cell an agent has not yet
// observed. It is never present in ground-truth grids, only in belief maps.
type Terrain string

const (
	// TerrainUnknown is an unobserved cell. Planners treat it as
	// optimistically traversable at normal cost.
	TerrainUnknown Terrain = ""

	// TerrainEmpty is plain traversable ground.
	TerrainEmpty Terrain = "empty"

	// TerrainObstacle is impassable and excluded from search expansion.
	TerrainObstacle Terrain = "obstacle"

	// TerrainLava is traversable at a heavy movement cost. The environment
	// drains energy from agents standing on it.
	TerrainLava Terrain = "lava"

	// TerrainCharger restores energy to agents standing on it.
	TerrainCharger Terrain = "charger"

	// TerrainStart marks the agent spawn cell. Traversable at normal cost.
	TerrainStart Terrain = "start"

	// TerrainTarget marks the mission target cell.
	TerrainTarget Terrain = "target"
)

// Movement costs used by path search.
const (
	CostNormal = 1
	CostLava   = 100
)

// String returns the string representation of the terrain.
func (t Terrain) String() string {
	if t == TerrainUnknown {
		return "unknown"
	}
	return string(t)
}

// IsValid checks if the terrain is a recognized ground-truth value.
// TerrainUnknown is not a valid ground-truth terrain.
func (t Terrain) IsValid() bool {
	switch t {
	case TerrainEmpty, TerrainObstacle, TerrainLava, TerrainCharger, TerrainStart, TerrainTarget:
		return true
	default:
		return false
	}
}

// Traversable reports whether an agent may enter a cell of this terrain.
// Unknown cells count as traversable: belief-map planning is optimistic and
// re-validates at execution time.
func (t Terrain) Traversable() bool {
	return t != TerrainObstacle
}

// MovementCost returns the cost of entering a cell of this terrain.
// It is meaningless for TerrainObstacle, which must be excluded from
// expansion via Traversable before costing.
func (t Terrain) MovementCost() int {
	if t == TerrainLava {
		return CostLava
	}
	return CostNormal
}

// Symbol returns the single-character map representation of the terrain.
func (t Terrain) Symbol() rune {
	switch t {
	case TerrainEmpty:
		return '.'
	case TerrainObstacle:
		return '#'
	case TerrainLava:
		return 'L'
	case TerrainCharger:
		return 'C'
	case TerrainStart:
		return 'S'
	case TerrainTarget:
		return 'T'
	default:
		return '?'
	}
}

// TerrainFromSymbol parses a map symbol into its terrain value.
func TerrainFromSymbol(r rune) (Terrain, bool) {
	switch r {
	case '.':
		return TerrainEmpty, true
	case '#':
		return TerrainObstacle, true
	case 'L':
		return TerrainLava, true
	case 'C':
		return TerrainCharger, true
	case 'S':
		return TerrainStart, true
	case 'T':
		return TerrainTarget, true
	default:
		return TerrainUnknown, false
	}
}
