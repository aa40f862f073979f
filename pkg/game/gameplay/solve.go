package gameplay

import (
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/pathfinding"
	"gridmaze/pkg/game/state"
)

// RequestSolve searches from the start to the goal, painting the closed set and
// frontier as the search progresses and the path once found. Markers never
// cover role cells. When the goal is unreachable the visualization is cleared.
func RequestSolve(g *state.Game) (pathfinding.Result, error) {
	if g.Generating() {
		return pathfinding.Result{}, ErrBusy
	}
	start, ok := g.Grid.Start()
	if !ok {
		return pathfinding.Result{}, ErrNoStart
	}
	goal, ok := g.Grid.Goal()
	if !ok {
		return pathfinding.Result{}, ErrNoGoal
	}

	g.Grid.ClearMarkers()
	g.HintCell = nil

	paint := func(pos world.Position, m world.Marker, over ...world.Marker) {
		cell, err := g.Grid.Cell(pos)
		if err != nil || cell.HasRole() || cell.IsWall() {
			return
		}
		if cell.Marker != world.MarkerNone && !containsMarker(over, cell.Marker) {
			return
		}
		g.Grid.SetMarker(pos, m)
	}

	opts := &pathfinding.Options{
		OnBatch: func(b pathfinding.Batch) {
			for _, p := range b.NewlyClosed {
				paint(p, world.MarkerClosed)
			}
			for _, p := range b.Frontier {
				paint(p, world.MarkerFrontier, world.MarkerClosed)
			}
		},
	}

	result, err := pathfinding.FullPath(g.Grid, start, goal, opts)
	if err != nil {
		return result, err
	}

	if !result.Found {
		g.Grid.ClearMarkers()
		logMessage(g, i18n.T("NO_PATH", "No path to the goal."))
		logger.Infof("maze %s: no path from %v to %v after %d expansions", g.ID, start, goal, len(result.Closed))
		return result, nil
	}

	for _, p := range result.Path {
		paint(p, world.MarkerPath, world.MarkerClosed, world.MarkerFrontier)
	}
	logMessage(g, i18n.F("SOLVED", "Shortest path: %d steps (%d cells explored).", result.Length(), len(result.Closed)))
	logger.Debugf("maze %s: path of %d steps, %d expansions", g.ID, result.Length(), len(result.Closed))
	return result, nil
}

func containsMarker(list []world.Marker, m world.Marker) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}
