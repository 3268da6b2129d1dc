// Package rover implements the decision subsystem of an autonomous grid
// rover: a finite-state controller that keeps belief state, committed path,
// and active destination mutually consistent under partial observability.
//
// Each external simulation turn the controller runs one decision cycle via
// [Rover.Step]. A cycle is an explicit trampoline over the FSM states:
// sensing chains straight into analysis without consuming a turn, and a
// completed charge chains back into sensing, while analysis, planning, a
// movement step, and a charging stay each end the cycle.
//
// The controller's only side effects are calls into its [Environment]:
// sensing, legality prechecks, and move execution. It never touches
// environment-owned physics such as terrain energy effects or the turn
// counter.
package rover
