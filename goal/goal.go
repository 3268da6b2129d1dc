// Package goal arbitrates between the mission target and energy recovery.
//
// Selection is a pure function of its inputs: the same position, energy
// level, and charger knowledge always produce the same destination. That
// purity is what prevents goal flapping across consecutive decision cycles
// when neither energy nor knowledge has changed.
package goal

import "github.com/gridrover/sdk/grid"

// Default energy settings, matching the environment's charge scale.
const (
	// DefaultLowEnergy is the level below which the agent diverts to a
	// known charger.
	DefaultLowEnergy = 40

	// DefaultFullEnergy is the level at which charging stops.
	DefaultFullEnergy = 100
)

// Selector decides the single active destination for a decision cycle.
type Selector struct {
	// LowEnergy is the threshold below which a known charger takes
	// priority over the mission target.
	LowEnergy int

	// FullEnergy is the energy level considered a full battery.
	FullEnergy int
}

// NewSelector returns a selector with the default thresholds.
func NewSelector() Selector {
	return Selector{LowEnergy: DefaultLowEnergy, FullEnergy: DefaultFullEnergy}
}

// Select returns the destination for this cycle.
//
// If the agent stands on a charger with less than a full battery, the
// destination is its own cell: a stay-and-charge signal the controller
// answers by entering its charging state rather than by planning. Otherwise,
// when energy is below the low threshold and at least one charger is known,
// the destination is the nearest known charger by Manhattan distance.
// Otherwise it is the mission target.
func (s Selector) Select(pos grid.Coordinate, energy int, missionTarget grid.Coordinate, chargers []grid.Coordinate, onCharger bool) grid.Coordinate {
	if onCharger && energy < s.FullEnergy {
		return pos
	}
	if energy < s.LowEnergy {
		if nearest, ok := NearestCharger(pos, chargers); ok {
			return nearest
		}
	}
	return missionTarget
}

// NearestCharger returns the charger closest to pos by Manhattan distance.
// Ties are broken by first-found order, which for a belief map is the order
// chargers were discovered in. The second return is false when no chargers
// are known.
func NearestCharger(pos grid.Coordinate, chargers []grid.Coordinate) (grid.Coordinate, bool) {
	if len(chargers) == 0 {
		return grid.Coordinate{}, false
	}
	best := chargers[0]
	bestDist := pos.Manhattan(best)
	for _, c := range chargers[1:] {
		if d := pos.Manhattan(c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
