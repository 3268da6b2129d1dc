package rover

import "errors"

// Sentinel errors for the Environment contract. Implementations return
// these so callers can classify failures with errors.Is().
var (
	// ErrUnknownRover is returned when a rover ID is not registered with
	// the environment. This is a fatal configuration error: the ID either
	// never came from AddRover or belongs to a different environment.
	ErrUnknownRover = errors.New("rover: unknown rover id")

	// ErrIllegalMove is returned when a move would leave the grid or enter
	// an obstacle. A controller that prechecks with CanMove never triggers
	// it in practice.
	ErrIllegalMove = errors.New("rover: illegal move")

	// ErrNoEnergy is returned when a rover attempts to act with an empty
	// battery. Avoiding this is the controller's charging logic's job, but
	// it is best effort, not a guarantee.
	ErrNoEnergy = errors.New("rover: no usable energy")

	// ErrNotRegistered is returned when constructing a rover without the
	// instance ID its environment assigned at registration.
	ErrNotRegistered = errors.New("rover: not registered with environment")
)
