package devtools

import (
	"github.com/google/uuid"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/pathfinding"
	"gridmaze/pkg/game/state"
)

// SwitchToDevMap replaces the maze with a fixed developer arena of the same size:
// a walled perimeter with two staggered partial barriers, the start in the top-left
// interior corner and the goal on the reachable cell farthest from it. The player
// stands on the start.
func SwitchToDevMap(g *state.Game) {
	grid := g.Grid
	rows, cols := grid.Rows(), grid.Cols()

	grid.Clear()
	BuildArena(grid)

	start := world.Pos(1, 1)
	if rows < 3 || cols < 3 {
		start = world.Pos(0, 0)
	}
	goal, _ := pathfinding.Furthest(grid, start)
	if err := grid.SetStart(start); err != nil {
		logger.Warningf("dev map: start: %v", err)
	}
	if err := grid.SetPlayer(start); err != nil {
		logger.Warningf("dev map: player: %v", err)
	}
	if goal != start {
		if err := grid.SetGoal(goal); err != nil {
			logger.Warningf("dev map: goal: %v", err)
		}
	}

	g.ID = uuid.New()
	g.Placement = nil
	g.HintCell = nil
	g.NextRole = world.RoleStart
	if !grid.InBounds(g.Cursor) {
		g.Cursor = world.Pos(rows/2, cols/2)
	}
	g.Session.Reset()
	g.AddMessage(i18n.T("DEV_MAP", "Switched to the developer arena."))
	logger.Infof("maze %s: developer arena %dx%d", g.ID, rows, cols)
}

// BuildArena walls the perimeter of grid and adds two partial barriers: one
// hanging from the top a third of the way across, one rising from the bottom
// two thirds across. The interior stays connected around both. Grids too small
// for the barriers only get the perimeter.
func BuildArena(grid *world.Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	if rows < 3 || cols < 3 {
		return
	}

	for col := 0; col < cols; col++ {
		grid.SetTerrain(world.Pos(0, col), world.Wall)
		grid.SetTerrain(world.Pos(rows-1, col), world.Wall)
	}
	for row := 0; row < rows; row++ {
		grid.SetTerrain(world.Pos(row, 0), world.Wall)
		grid.SetTerrain(world.Pos(row, cols-1), world.Wall)
	}

	if rows < 5 || cols < 7 {
		return
	}
	left, right := cols/3, 2*cols/3
	if left <= 1 || right >= cols-2 || left == right {
		return
	}
	for row := 0; row <= rows-3; row++ {
		grid.SetTerrain(world.Pos(row, left), world.Wall)
	}
	for row := 2; row < rows; row++ {
		grid.SetTerrain(world.Pos(row, right), world.Wall)
	}
}
