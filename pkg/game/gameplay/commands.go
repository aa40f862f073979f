package gameplay

import (
	"errors"
	"fmt"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/state"
)

var (
	// ErrBusy rejects grid commands while a maze is being generated
	ErrBusy = errors.New("maze generation in progress")

	// ErrProtectedCell rejects edits to a cell holding the start, goal or player
	ErrProtectedCell = errors.New("cell holds a role")

	ErrNoPlayer = errors.New("no player on the grid")
	ErrNoStart  = errors.New("no start on the grid")
	ErrNoGoal   = errors.New("no goal on the grid")
)

// ToggleWall flips the terrain at pos and returns the new terrain.
// The new terrain becomes the paint terrain for a following drag; a rejected
// toggle leaves no paint terrain.
func ToggleWall(g *state.Game, pos world.Position) (world.Terrain, error) {
	g.Painting = false
	cell, err := editableCell(g, pos)
	if err != nil {
		return 0, err
	}

	next := world.Wall
	if cell.IsWall() {
		next = world.Open
	}
	if err := setTerrain(g, pos, next); err != nil {
		return 0, err
	}
	g.PaintTerrain = next
	g.Painting = true
	return next, nil
}

// PaintWall applies the paint terrain at pos as part of a drag. A drag that
// began on a role cell toggles the first editable cell it reaches, which then
// sets the paint terrain. Role cells are skipped silently so a drag can pass over them.
func PaintWall(g *state.Game, pos world.Position) error {
	if !g.Painting {
		_, err := ToggleWall(g, pos)
		if errors.Is(err, ErrProtectedCell) {
			return nil
		}
		return err
	}

	_, err := editableCell(g, pos)
	if errors.Is(err, ErrProtectedCell) {
		return nil
	}
	if err != nil {
		return err
	}
	return setTerrain(g, pos, g.PaintTerrain)
}

// AssignRole alternates between placing the start and the goal, starting with the start.
// The alternation only advances when the placement succeeds.
func AssignRole(g *state.Game, pos world.Position) (world.Role, error) {
	role := g.NextRole
	if role != world.RoleGoal {
		role = world.RoleStart
	}

	var err error
	if role == world.RoleStart {
		err = SetStart(g, pos)
	} else {
		err = SetGoal(g, pos)
	}
	if err != nil {
		return world.RoleNone, err
	}

	if role == world.RoleStart {
		g.NextRole = world.RoleGoal
	} else {
		g.NextRole = world.RoleStart
	}
	return role, nil
}

// SetStart moves the start and the player to pos and restarts the session
func SetStart(g *state.Game, pos world.Position) error {
	if err := checkRolePlacement(g, pos, world.RoleGoal); err != nil {
		return err
	}
	if err := g.Grid.SetStart(pos); err != nil {
		return err
	}
	if err := g.Grid.SetPlayer(pos); err != nil {
		return err
	}

	resetVisualization(g)
	g.Session.Reset()
	logger.Debugf("start set to %v", pos)
	return nil
}

// SetGoal moves the goal to pos
func SetGoal(g *state.Game, pos world.Position) error {
	if err := checkRolePlacement(g, pos, world.RoleStart); err != nil {
		return err
	}
	if err := g.Grid.SetGoal(pos); err != nil {
		return err
	}

	resetVisualization(g)
	logger.Debugf("goal set to %v", pos)
	return nil
}

// checkRolePlacement rejects placing a role onto a wall or onto the cell holding other
func checkRolePlacement(g *state.Game, pos world.Position, other world.Role) error {
	if g.Generating() {
		return ErrBusy
	}
	cell, err := g.Grid.Cell(pos)
	if err != nil {
		return err
	}
	if cell.IsWall() {
		return fmt.Errorf("%w: %v", world.ErrWallCell, pos)
	}
	if cell.Role.Has(other) {
		return fmt.Errorf("%w: %v is the %v", ErrProtectedCell, pos, other)
	}
	return nil
}

// editableCell returns the cell at pos if manual editing may change it
func editableCell(g *state.Game, pos world.Position) (world.Cell, error) {
	if g.Generating() {
		return world.Cell{}, ErrBusy
	}
	cell, err := g.Grid.Cell(pos)
	if err != nil {
		return world.Cell{}, err
	}
	if cell.HasRole() {
		return cell, fmt.Errorf("%w: %v is %v", ErrProtectedCell, pos, cell.Role)
	}
	return cell, nil
}

func setTerrain(g *state.Game, pos world.Position, t world.Terrain) error {
	if err := g.Grid.SetTerrain(pos, t); err != nil {
		return err
	}
	if t == world.Wall && g.HintCell != nil && *g.HintCell == pos {
		g.HintCell = nil
	}
	return nil
}

// resetVisualization drops search markers made stale by a role change
func resetVisualization(g *state.Game) {
	g.Grid.ClearMarkers()
	g.HintCell = nil
}

// MoveCursor shifts the keyboard editing cursor, staying on the grid
func MoveCursor(g *state.Game, dir world.Direction) {
	next := g.Cursor.Neighbor(dir)
	if !g.Grid.InBounds(next) {
		return
	}
	prev := g.Cursor
	g.Cursor = next
	g.Changes.CellChanged(prev)
	g.Changes.CellChanged(next)
}
