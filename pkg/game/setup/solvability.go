package setup

import (
	"errors"
	"fmt"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/pathfinding"
)

var (
	// ErrMissingRole is returned when the grid has no start or no goal
	ErrMissingRole = errors.New("start or goal not placed")

	// ErrUnsolvable is returned when no path joins start and goal
	ErrUnsolvable = errors.New("goal unreachable from start")
)

// CheckSolvable reports whether a path exists from the start to the goal
func CheckSolvable(grid *world.Grid) error {
	start, ok := grid.Start()
	if !ok {
		return fmt.Errorf("%w: no start", ErrMissingRole)
	}
	goal, ok := grid.Goal()
	if !ok {
		return fmt.Errorf("%w: no goal", ErrMissingRole)
	}

	res, err := pathfinding.FullPath(grid, start, goal, nil)
	if err != nil {
		return err
	}
	if !res.Found {
		return fmt.Errorf("%w: %v to %v", ErrUnsolvable, start, goal)
	}
	return nil
}
