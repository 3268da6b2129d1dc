package rover

// State is the controller's execution state. Exactly one state is active at
// a time; StateFinished is terminal.
type State string

const (
	// StateScanning senses the local surroundings and folds them into the
	// belief map. Sensing alone never consumes a turn.
	StateScanning State = "scanning"

	// StateAnalyzing checks victory and energy conditions and decides the
	// destination for this cycle.
	StateAnalyzing State = "analyzing"

	// StatePlanning invokes the planner toward the selected destination.
	StatePlanning State = "planning"

	// StateMoving executes the next committed move.
	StateMoving State = "moving"

	// StateCharging holds position on a charger until the battery is full.
	StateCharging State = "charging"

	// StateFinished means the mission target has been reached.
	StateFinished State = "finished"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// IsValid checks if the state is a recognized value.
func (s State) IsValid() bool {
	switch s {
	case StateScanning, StateAnalyzing, StatePlanning, StateMoving, StateCharging, StateFinished:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the state represents a final state.
func (s State) IsTerminal() bool {
	return s == StateFinished
}
