// Package pathfinding provides shortest-path search over maze grids.
package pathfinding

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"gridmaze/pkg/engine/world"
)

const (
	// DefaultBatchSize is the number of expansions between progress reports
	DefaultBatchSize = 8

	// DefaultFrontierLimit caps the frontier prefix handed to progress reports
	DefaultFrontierLimit = 80
)

// Graph is the read-only view of a grid that search needs.
// *world.Grid satisfies it.
type Graph interface {
	InBounds(pos world.Position) bool
	Walkable(pos world.Position) bool
	Neighbors4(pos world.Position) []world.Position
}

// Batch is a progress snapshot taken every BatchSize expansions
type Batch struct {
	Expanded    int
	NewlyClosed []world.Position
	Frontier    []world.Position
}

// Options tunes progress reporting. Reporting never changes the search result.
type Options struct {
	BatchSize     int
	FrontierLimit int
	OnBatch       func(Batch)
}

// Result is the outcome of a full search
type Result struct {
	// Found is false when the frontier emptied without reaching the goal
	Found bool

	// Path runs from start to goal inclusive, empty when start equals goal
	Path []world.Position

	// Closed lists expanded positions in expansion order
	Closed []world.Position
}

// Steps returns the positions to move through, excluding the start
func (r Result) Steps() []world.Position {
	if len(r.Path) < 2 {
		return nil
	}
	return r.Path[1:]
}

// Length returns the number of moves along the path
func (r Result) Length() int {
	return len(r.Steps())
}

// frontierItem is a heap entry; seq orders equal-f entries first in, first out
type frontierItem struct {
	pos world.Position
	f   int
	seq int
}

// FullPath runs A* with a Manhattan heuristic from start to goal.
// Stale heap entries are skipped on pop rather than decreased in place.
func FullPath(g Graph, start, goal world.Position, opts *Options) (Result, error) {
	for _, p := range []world.Position{start, goal} {
		if !g.InBounds(p) {
			return Result{}, fmt.Errorf("%w: search endpoint %v", world.ErrOutOfRange, p)
		}
	}
	if !g.Walkable(start) || !g.Walkable(goal) {
		return Result{}, nil
	}
	if start == goal {
		return Result{Found: true, Path: []world.Position{}}, nil
	}

	batchSize, frontierLimit := DefaultBatchSize, DefaultFrontierLimit
	var onBatch func(Batch)
	if opts != nil {
		if opts.BatchSize > 0 {
			batchSize = opts.BatchSize
		}
		if opts.FrontierLimit > 0 {
			frontierLimit = opts.FrontierLimit
		}
		onBatch = opts.OnBatch
	}

	gScore := map[world.Position]int{start: 0}
	cameFrom := make(map[world.Position]world.Position)
	closed := mapset.New[world.Position]()
	frontier := heap.New(func(a, b frontierItem) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})

	seq := 0
	discovered := []world.Position{start}
	frontier.Push(frontierItem{pos: start, f: world.Manhattan(start, goal), seq: seq})

	var closedOrder []world.Position
	reported := 0

	for frontier.Size() > 0 {
		cur, _ := frontier.Pop()
		if closed.Has(cur.pos) {
			continue
		}
		closed.Put(cur.pos)
		closedOrder = append(closedOrder, cur.pos)

		if cur.pos == goal {
			return Result{
				Found:  true,
				Path:   reconstruct(cameFrom, start, goal),
				Closed: closedOrder,
			}, nil
		}

		for _, nb := range g.Neighbors4(cur.pos) {
			if closed.Has(nb) {
				continue
			}
			tentative := gScore[cur.pos] + 1
			if old, ok := gScore[nb]; ok && tentative >= old {
				continue
			}
			cameFrom[nb] = cur.pos
			gScore[nb] = tentative
			seq++
			frontier.Push(frontierItem{pos: nb, f: tentative + world.Manhattan(nb, goal), seq: seq})
			discovered = append(discovered, nb)
		}

		if onBatch != nil && len(closedOrder)%batchSize == 0 {
			onBatch(Batch{
				Expanded:    len(closedOrder),
				NewlyClosed: append([]world.Position(nil), closedOrder[reported:]...),
				Frontier:    frontierPrefix(discovered, closed, frontierLimit),
			})
			reported = len(closedOrder)
		}
	}

	return Result{Closed: closedOrder}, nil
}

// NextStep returns the first cell to move into on a shortest path from start to goal.
// It reports false when start equals goal or no path exists.
func NextStep(g Graph, start, goal world.Position) (world.Position, bool) {
	res, err := FullPath(g, start, goal, nil)
	if err != nil || !res.Found {
		return world.Position{}, false
	}
	steps := res.Steps()
	if len(steps) == 0 {
		return world.Position{}, false
	}
	return steps[0], true
}

func reconstruct(cameFrom map[world.Position]world.Position, start, goal world.Position) []world.Position {
	path := []world.Position{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// frontierPrefix returns up to limit open positions in discovery order
func frontierPrefix(discovered []world.Position, closed mapset.Set[world.Position], limit int) []world.Position {
	seen := mapset.New[world.Position]()
	prefix := make([]world.Position, 0, limit)
	for _, p := range discovered {
		if len(prefix) >= limit {
			break
		}
		if closed.Has(p) || seen.Has(p) {
			continue
		}
		seen.Put(p)
		prefix = append(prefix, p)
	}
	return prefix
}
