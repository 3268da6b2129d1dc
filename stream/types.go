package stream

import (
	"github.com/gridrover/sdk/grid"
	"github.com/gridrover/sdk/rover"
)

// TurnEvent is one rover's public state at the end of an external turn.
// Events carry everything a detached visualizer needs to draw the run;
// belief maps stay private to their rovers and are never published.
type TurnEvent struct {
	// Turn is the simulation turn the event describes.
	Turn int `json:"turn"`

	// RoverID is the environment-assigned instance ID.
	RoverID string `json:"rover_id"`

	// RoverName is the human-readable rover name.
	RoverName string `json:"rover_name"`

	// State is the rover's FSM state after the turn.
	State rover.State `json:"state"`

	// Position is the rover's coordinate after the turn.
	Position grid.Coordinate `json:"position"`

	// Energy is the rover's energy level after the turn.
	Energy int `json:"energy"`

	// Destination is the coordinate the rover is currently heading for,
	// mission target or charger. Nil before the first decision cycle.
	Destination *grid.Coordinate `json:"destination,omitempty"`
}
