// Package setup prepares a freshly carved maze for play.
package setup

import (
	"math/rand"

	"gridmaze/pkg/engine/world"
)

// SetupMaze clears stale visualization, places the entrance and exit, and
// confirms the goal can be reached from the start. An unsolvable result is
// reported through Placement.Degenerate rather than as an error.
func SetupMaze(grid *world.Grid, rng *rand.Rand) (Placement, error) {
	grid.ClearMarkers()

	p, err := PlaceExits(grid, rng)
	if err != nil {
		return Placement{}, err
	}

	if err := CheckSolvable(grid); err != nil {
		p.Degenerate = true
		if p.Reason == "" {
			p.Reason = err.Error()
		}
	}
	return p, nil
}
