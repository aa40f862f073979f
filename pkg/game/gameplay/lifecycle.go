package gameplay

import (
	"math"
	"time"

	"github.com/google/uuid"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/game/config"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/setup"
	"gridmaze/pkg/game/state"
)

// BuildGame creates a game from the configuration. Generation is started but
// not run; the host advances it with Tick. A zero seed picks one from the clock.
func BuildGame(cfg *config.Config) (*state.Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := state.NewGame(cfg.Rows, cfg.Cols, seed)
	g.StepsPerTick = cfg.StepsPerTick
	g.TickAdjustFactor = cfg.TickAdjustFactor

	logger.Infof("maze %s: %dx%d grid, seed %d, %s", g.ID, cfg.Rows, cfg.Cols, seed, g.Generator.Name())

	if cfg.GenerateOnStart {
		if err := RequestGenerate(g); err != nil {
			return g, err
		}
	}
	return g, nil
}

// RequestGenerate walls the grid and begins carving a new maze
func RequestGenerate(g *state.Game) error {
	if g.Generating() {
		return ErrBusy
	}

	if err := g.Generator.Begin(g.Grid); err != nil {
		return err
	}
	g.ID = uuid.New()
	g.Placement = nil
	g.HintCell = nil
	g.NextRole = 0
	g.Session.Reset()
	logMessage(g, i18n.T("GENERATING", "Carving a new maze..."))
	logger.Debugf("maze %s: generation started", g.ID)
	return nil
}

// Tick advances a running generation by StepsPerTick operations and places the
// exits once carving finishes. It reports whether the grid changed.
func Tick(g *state.Game) (bool, error) {
	if !g.Generating() {
		return false, nil
	}
	if !g.Generator.Step(g.StepsPerTick) {
		return true, nil
	}

	placement, err := setup.SetupMaze(g.Grid, g.Rand)
	if err != nil {
		return true, err
	}
	g.Placement = &placement
	g.Session.Reset()

	if placement.Degenerate {
		logger.Warningf("maze %s: degenerate placement: %s", g.ID, placement.Reason)
		logMessage(g, i18n.T("DEGENERATE_MAZE", "Warning: this maze may not be solvable."))
	} else {
		logMessage(g, i18n.F("MAZE_READY", "Maze ready. Exit is %d steps away.", placement.Distance+2))
	}
	logger.Infof("maze %s: generated, entrance %v exit %v", g.ID, placement.Entrance.Border, placement.Exit.Border)
	return true, nil
}

// Clear cancels any generation and returns the grid to an open field
func Clear(g *state.Game) {
	if g.Generating() {
		g.Generator.Cancel()
		logger.Infof("maze %s: generation cancelled", g.ID)
	}
	g.Grid.Clear()
	g.Placement = nil
	g.HintCell = nil
	g.NextRole = 0
	g.Session.Reset()
	g.ClearMessages()
}

// AdjustTickBudget scales StepsPerTick by factor within [1, 2000]. Growth rounds
// up and shrinking rounds down so every adjustment moves the budget until a bound is hit.
func AdjustTickBudget(g *state.Game, factor float64) int {
	if factor <= 0 || factor == 1 {
		return g.StepsPerTick
	}

	scaled := float64(g.StepsPerTick) * factor
	next := int(math.Floor(scaled))
	if factor > 1 {
		next = int(math.Ceil(scaled))
	}
	g.StepsPerTick = max(config.MinStepsPerTick, min(config.MaxStepsPerTick, next))

	logMessage(g, i18n.F("TICK_BUDGET", "Generation speed: %d steps per tick.", g.StepsPerTick))
	return g.StepsPerTick
}

// Slower halves the generation speed
func Slower(g *state.Game) int {
	return AdjustTickBudget(g, 1/g.TickAdjustFactor)
}

// Faster doubles the generation speed
func Faster(g *state.Game) int {
	return AdjustTickBudget(g, g.TickAdjustFactor)
}

// GenerateNow runs a full generation and exit placement synchronously
func GenerateNow(g *state.Game) error {
	if err := RequestGenerate(g); err != nil {
		return err
	}
	for g.Generating() {
		if _, err := Tick(g); err != nil {
			return err
		}
	}
	return nil
}
