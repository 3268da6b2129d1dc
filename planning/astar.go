package planning

import (
	"container/heap"

	"github.com/gridrover/sdk/belief"
	"github.com/gridrover/sdk/grid"
)

// Planner computes weighted shortest paths over a belief map.
// The zero value is ready to use.
type Planner struct{}

// node is one entry in the search arena. Parent links are arena indices,
// never pointers, so a whole search is two flat slices.
type node struct {
	coord  grid.Coordinate
	parent int            // arena index of the predecessor, -1 for the start
	move   grid.Direction // move that produced this node from its parent
	g      int            // accumulated cost from the start
	f      int            // g plus the Manhattan estimate to the goal
}

// frontier is a min-heap of arena indices ordered by f-cost. Ties are broken
// by insertion sequence, which is the arena index itself, keeping results
// reproducible for identical inputs.
type frontier struct {
	arena *[]node
	items []int
}

func (q frontier) Len() int { return len(q.items) }

func (q frontier) Less(i, j int) bool {
	a := (*q.arena)[q.items[i]]
	b := (*q.arena)[q.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	return q.items[i] < q.items[j]
}

func (q frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *frontier) Push(x any) {
	q.items = append(q.items, x.(int))
}

func (q *frontier) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// FindPath searches the belief map for a minimum-cost route from start to
// goal and returns it as a front-consumed move sequence. An empty path means
// the goal is currently unreachable; that is an expected outcome, not a
// fault.
//
// Expansion follows the 4-neighborhood. A neighbor is skipped when it is out
// of bounds, already closed, or known to be an obstacle. The cost of an edge
// is the movement cost of the cell being entered, so the search prefers long
// detours over crossing lava unless no alternative exists. Unobserved cells
// cost the same as empty ones.
func (Planner) FindPath(m *belief.Map, start, goal grid.Coordinate) Path {
	if !m.InBounds(start) || !m.InBounds(goal) {
		return Path{}
	}

	arena := []node{{
		coord:  start,
		parent: -1,
		move:   grid.DirectionNone,
		g:      0,
		f:      start.Manhattan(goal),
	}}
	open := &frontier{arena: &arena, items: []int{0}}
	closed := make(map[grid.Coordinate]bool, m.Width()*m.Height())

	for open.Len() > 0 {
		idx := heap.Pop(open).(int)
		current := arena[idx]

		if closed[current.coord] {
			// A cheaper route to this coordinate was already expanded;
			// this entry is stale.
			continue
		}

		if current.coord == goal {
			return reconstruct(arena, idx)
		}
		closed[current.coord] = true

		for _, dir := range grid.Directions {
			next := current.coord.Step(dir)
			if !m.InBounds(next) || closed[next] {
				continue
			}
			terrain, _ := m.TerrainAt(next)
			if !terrain.Traversable() {
				continue
			}

			g := current.g + terrain.MovementCost()
			arena = append(arena, node{
				coord:  next,
				parent: idx,
				move:   dir,
				g:      g,
				f:      g + next.Manhattan(goal),
			})
			heap.Push(open, len(arena)-1)
		}
	}
	return Path{}
}

// reconstruct walks parent indices from the goal node back to the start and
// reverses the collected moves into execution order.
func reconstruct(arena []node, idx int) Path {
	var moves []grid.Direction
	for idx >= 0 && arena[idx].parent >= 0 {
		moves = append(moves, arena[idx].move)
		idx = arena[idx].parent
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return Path{moves: moves}
}

// PathCost returns the total weighted cost of walking the given moves from
// start over the belief map, costing each entered cell by its believed
// terrain. It is mainly useful for tests and telemetry.
func PathCost(m *belief.Map, start grid.Coordinate, moves []grid.Direction) int {
	cost := 0
	pos := start
	for _, d := range moves {
		pos = pos.Step(d)
		terrain, _ := m.TerrainAt(pos)
		cost += terrain.MovementCost()
	}
	return cost
}
