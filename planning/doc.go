// Package planning computes minimum-weighted-cost routes over a belief map.
//
// The planner runs weighted A* with a Manhattan-distance heuristic over the
// 4-connected grid. Obstacles are excluded from expansion entirely, lava is
// entered at a heavy cost, and unobserved cells are optimistically assumed
// traversable at normal cost; the controller re-validates that assumption at
// execution time, not the planner.
//
// A failed search is a normal outcome, not an error: FindPath returns an
// empty Path when the goal is unreachable given current knowledge, and the
// caller retries after more of the world has been observed.
//
// Search nodes live in a flat arena indexed by integer handles, with parent
// links stored as indices. Nothing from a search outlives the FindPath call
// except the reconstructed Path.
package planning
