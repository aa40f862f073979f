package gameplay

import (
	"context"
	"errors"
	"time"

	engineinput "gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/state"
)

// CaptionInterval is how often the caption refreshes while the timer runs
const CaptionInterval = 200 * time.Millisecond

// Frontend is the part of a renderer the game loop drives
type Frontend interface {
	// RenderFrame presents the game; changes lists the cells to redraw
	RenderFrame(g *state.Game, changes world.Changes)

	// Intents delivers user input. A closed channel ends the loop.
	Intents() <-chan engineinput.Intent
}

// Run owns the game until the user quits, the frontend closes its intents or ctx ends.
// All game mutation happens on the calling goroutine.
func Run(ctx context.Context, g *state.Game, fe Frontend, tickInterval time.Duration) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	g.Changes.Redraw()
	fe.RenderFrame(g, g.Changes.Take())
	lastCaption := time.Now()

	for !g.Quit {
		render := false

		select {
		case <-ctx.Done():
			return ctx.Err()

		case intent, ok := <-fe.Intents():
			if !ok {
				return nil
			}
			if err := ProcessIntent(g, intent); err != nil {
				reportError(g, err)
			}
			render = true

		case <-ticker.C:
			if _, err := Tick(g); err != nil {
				reportError(g, err)
				render = true
			}
		}

		if g.Session.Running() && time.Since(lastCaption) >= CaptionInterval {
			render = true
		}
		if render || g.Changes.Pending() {
			fe.RenderFrame(g, g.Changes.Take())
			lastCaption = time.Now()
		}
	}

	logger.Info("quit requested")
	return nil
}

// reportError surfaces a failed command to the user
func reportError(g *state.Game, err error) {
	switch {
	case errors.Is(err, ErrBusy):
		logMessage(g, i18n.T("BUSY", "Wait for the maze to finish generating."))
	case errors.Is(err, ErrProtectedCell):
		logMessage(g, i18n.T("PROTECTED_CELL", "That cell holds a role and cannot be edited."))
	case errors.Is(err, world.ErrWallCell):
		logMessage(g, i18n.T("WALL_CELL", "Roles can only be placed on open cells."))
	case errors.Is(err, ErrNoPlayer), errors.Is(err, ErrNoStart), errors.Is(err, ErrNoGoal):
		logMessage(g, i18n.T("NEED_START_GOAL", "Place a start and a goal first."))
	default:
		logger.Warningf("command failed: %v", err)
		logMessage(g, i18n.F("COMMAND_FAILED", "Error: %v", err))
		return
	}
	logger.Debugf("command rejected: %v", err)
}
