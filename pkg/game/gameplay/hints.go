package gameplay

import (
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/pathfinding"
	"gridmaze/pkg/game/state"
)

// RequestHint marks the next cell on a shortest path from the player to the goal.
// The previous hint is cleared first. The hint is never drawn on the player or
// the goal; found is false when the goal is unreachable.
func RequestHint(g *state.Game) (next world.Position, found bool, err error) {
	if g.Generating() {
		return world.Position{}, false, ErrBusy
	}
	player, ok := g.Grid.Player()
	if !ok {
		return world.Position{}, false, ErrNoPlayer
	}
	goal, ok := g.Grid.Goal()
	if !ok {
		return world.Position{}, false, ErrNoGoal
	}

	clearHint(g)

	next, found = pathfinding.NextStep(g.Grid, player, goal)
	if !found {
		if player != goal {
			logMessage(g, i18n.T("NO_PATH", "No path to the goal."))
		}
		return world.Position{}, false, nil
	}

	if next != goal {
		if err := g.Grid.SetMarker(next, world.MarkerHint); err != nil {
			return world.Position{}, false, err
		}
		hint := next
		g.HintCell = &hint
	}
	return next, true, nil
}

// clearHint removes the hint marker if it is still showing
func clearHint(g *state.Game) {
	if g.HintCell == nil {
		return
	}
	if cell, err := g.Grid.Cell(*g.HintCell); err == nil && cell.Marker == world.MarkerHint {
		g.Grid.SetMarker(*g.HintCell, world.MarkerNone)
	}
	g.HintCell = nil
}
