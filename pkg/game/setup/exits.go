package setup

import (
	"fmt"
	"math/rand"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/generator"
	"gridmaze/pkg/game/pathfinding"
)

// Opening is a border cell whose interior neighbor is open
type Opening struct {
	Border world.Position
	Inner  world.Position
}

// Placement describes where the entrance and exit of a maze ended up
type Placement struct {
	Entrance Opening
	Exit     Opening

	// Distance is the BFS distance between the two inner cells, -1 when the exit is unreachable
	Distance int

	// Degenerate is set when a fallback fired and the maze may not be solvable
	Degenerate bool
	Reason     string
}

// BorderOpenings lists the border openings of the grid. Columns are scanned top then bottom,
// then rows left then right. Corners have no single interior neighbor and are skipped.
func BorderOpenings(grid *world.Grid) []Opening {
	rows, cols := grid.Rows(), grid.Cols()
	var openings []Opening
	seen := make(map[world.Position]bool)

	add := func(border, inner world.Position) {
		if seen[border] || !grid.Walkable(inner) {
			return
		}
		seen[border] = true
		openings = append(openings, Opening{Border: border, Inner: inner})
	}

	for col := 1; col < cols-1; col++ {
		add(world.Pos(0, col), world.Pos(1, col))
		add(world.Pos(rows-1, col), world.Pos(rows-2, col))
	}
	for row := 1; row < rows-1; row++ {
		add(world.Pos(row, 0), world.Pos(row, 1))
		add(world.Pos(row, cols-1), world.Pos(row, cols-2))
	}
	return openings
}

// PlaceExits picks an entrance at random and the exit whose interior neighbor is furthest
// from the entrance by BFS. Both are carved open; the entrance gets Start and Player, the exit Goal.
func PlaceExits(grid *world.Grid, rng *rand.Rand) (Placement, error) {
	rows, cols := grid.Rows(), grid.Cols()
	if rows < generator.MinDimension || cols < generator.MinDimension {
		return Placement{}, fmt.Errorf("%w: cannot place exits in %dx%d", generator.ErrGridTooSmall, rows, cols)
	}

	var p Placement
	openings := BorderOpenings(grid)
	if len(openings) == 0 {
		// Best effort: the interior below the forced opening may still be walled
		col := rng.Intn((cols-1)/2)*2 + 1
		openings = []Opening{{Border: world.Pos(0, col), Inner: world.Pos(1, col)}}
		p.Degenerate = true
		p.Reason = "no border openings, forced one"
	}

	p.Entrance = openings[rng.Intn(len(openings))]
	if err := grid.SetTerrain(p.Entrance.Border, world.Open); err != nil {
		return Placement{}, err
	}

	dist := pathfinding.Distances(grid, p.Entrance.Inner)

	best := -1
	var ties []Opening
	for _, o := range BorderOpenings(grid) {
		if o.Border == p.Entrance.Border {
			continue
		}
		d, ok := dist[o.Inner]
		if !ok {
			continue
		}
		switch {
		case d > best:
			best = d
			ties = append(ties[:0], o)
		case d == best:
			ties = append(ties, o)
		}
	}

	switch {
	case len(ties) == 1:
		p.Exit = ties[0]
	case len(ties) > 1:
		p.Exit = ties[rng.Intn(len(ties))]
	default:
		p.Exit = fallbackExit(openings, p.Entrance, rng)
		p.Degenerate = true
		if p.Reason == "" {
			p.Reason = "no reachable exit candidate"
		}
	}
	p.Distance = best
	if d, ok := dist[p.Exit.Inner]; ok {
		p.Distance = d
	}

	if err := grid.SetTerrain(p.Exit.Border, world.Open); err != nil {
		return Placement{}, err
	}
	if err := grid.SetRole(p.Entrance.Border, world.RoleStart|world.RolePlayer); err != nil {
		return Placement{}, err
	}
	if err := grid.SetGoal(p.Exit.Border); err != nil {
		return Placement{}, err
	}

	if p.Degenerate {
		logger.Warning("degenerate maze exits", "entrance", p.Entrance.Border, "exit", p.Exit.Border, "reason", p.Reason)
	} else {
		logger.Debug("placed exits", "entrance", p.Entrance.Border, "exit", p.Exit.Border, "distance", p.Distance)
	}
	return p, nil
}

// fallbackExit picks any opening other than the entrance, or the entrance itself when it is
// the only one. In that case start and goal share the cell and the placement is degenerate.
func fallbackExit(openings []Opening, entrance Opening, rng *rand.Rand) Opening {
	others := make([]Opening, 0, len(openings))
	for _, o := range openings {
		if o.Border != entrance.Border {
			others = append(others, o)
		}
	}
	if len(others) == 0 {
		return entrance
	}
	return others[rng.Intn(len(others))]
}
