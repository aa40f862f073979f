// Package gameplay applies user commands to the maze: movement, editing, hints, solving and generation.
package gameplay

import (
	"errors"
	"fmt"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/state"
)

// MoveResult classifies the outcome of a move request
type MoveResult int

const (
	MoveRejected MoveResult = iota
	MoveMoved
	MoveGoalReached
)

// String returns the string representation of a move result
func (r MoveResult) String() string {
	switch r {
	case MoveRejected:
		return "Rejected"
	case MoveMoved:
		return "Moved"
	case MoveGoalReached:
		return "GoalReached"
	default:
		return "Unknown"
	}
}

// MoveOutcome reports where a move request left the player
type MoveOutcome struct {
	Result MoveResult
	From   world.Position
	To     world.Position
}

// Moved reports whether the player changed cell
func (o MoveOutcome) Moved() bool {
	return o.Result != MoveRejected
}

// TryMove moves the player one cell in dir. Walls and the grid edge reject the
// move without touching the grid. The player flag moves on its own, so a start
// or goal marking and any marker under the player stay in place.
func TryMove(grid *world.Grid, dir world.Direction) (MoveOutcome, error) {
	if !dir.IsValid() {
		return MoveOutcome{}, fmt.Errorf("invalid direction %d", dir)
	}
	from, ok := grid.Player()
	if !ok {
		return MoveOutcome{}, ErrNoPlayer
	}

	to := from.Neighbor(dir)
	if !grid.Walkable(to) {
		return MoveOutcome{Result: MoveRejected, From: from, To: from}, nil
	}

	if err := grid.SetPlayer(to); err != nil {
		return MoveOutcome{}, err
	}

	outcome := MoveOutcome{Result: MoveMoved, From: from, To: to}
	if goal, ok := grid.Goal(); ok && goal == to {
		outcome.Result = MoveGoalReached
	}
	return outcome, nil
}

// Move applies a player move and reports it to the session
func Move(g *state.Game, dir world.Direction) (MoveOutcome, error) {
	if g.Generating() {
		return MoveOutcome{}, ErrBusy
	}

	outcome, err := TryMove(g.Grid, dir)
	if err != nil {
		return outcome, err
	}
	if !outcome.Moved() {
		return outcome, nil
	}

	if g.Session.RecordMove() {
		logger.Debugf("session %s: timer started", g.Session.ID)
	}

	// Stepping onto the hint consumes it
	if g.HintCell != nil && *g.HintCell == outcome.To {
		clearHint(g)
	}

	if outcome.Result == MoveGoalReached && !g.Session.Finished() {
		g.Session.Finish()
		logger.Infof("maze %s solved in %d moves (%.1fs)", g.ID, g.Session.Moves(), g.Session.Elapsed().Seconds())
		logMessage(g, i18n.F("GOAL_REACHED", "Goal reached in %d moves!", g.Session.Moves()))
	}
	return outcome, nil
}

// IsRejection reports whether err is a normal command rejection rather than a fault
func IsRejection(err error) bool {
	return errors.Is(err, ErrBusy) || errors.Is(err, ErrProtectedCell) ||
		errors.Is(err, world.ErrWallCell) || errors.Is(err, world.ErrOutOfRange)
}

// logMessage adds a message to the game's message log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
