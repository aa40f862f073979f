package pathfinding

import (
	"github.com/zyedidia/generic/queue"

	"gridmaze/pkg/engine/world"
)

// Distances runs a breadth-first search from the given position and returns the
// step distance to every reachable walkable cell. The map is empty when from is not walkable.
func Distances(g Graph, from world.Position) map[world.Position]int {
	dist := make(map[world.Position]int)
	walk(g, from, dist, nil)
	return dist
}

// Furthest returns the reachable cell with the greatest distance from the origin.
// Ties go to the cell visited first. Returns -1 when from is not walkable.
func Furthest(g Graph, from world.Position) (world.Position, int) {
	best, bestDist := from, -1
	walk(g, from, make(map[world.Position]int), func(pos world.Position, d int) {
		if d > bestDist {
			best, bestDist = pos, d
		}
	})
	return best, bestDist
}

// walk visits reachable cells in BFS order, recording distances into dist
func walk(g Graph, from world.Position, dist map[world.Position]int, visit func(world.Position, int)) {
	if !g.Walkable(from) {
		return
	}

	dist[from] = 0
	q := queue.New[world.Position]()
	q.Enqueue(from)
	for !q.Empty() {
		cur := q.Dequeue()
		if visit != nil {
			visit(cur, dist[cur])
		}
		for _, nb := range g.Neighbors4(cur) {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			q.Enqueue(nb)
		}
	}
}
