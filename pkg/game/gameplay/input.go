package gameplay

import (
	engineinput "gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/devtools"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/state"
)

var moveDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth: world.North,
	engineinput.ActionMoveSouth: world.South,
	engineinput.ActionMoveWest:  world.West,
	engineinput.ActionMoveEast:  world.East,
}

var cursorDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionCursorNorth: world.North,
	engineinput.ActionCursorSouth: world.South,
	engineinput.ActionCursorWest:  world.West,
	engineinput.ActionCursorEast:  world.East,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
// Editing intents without a pointer target act on the keyboard cursor.
func ProcessIntent(g *state.Game, intent engineinput.Intent) error {
	target := g.Cursor
	if intent.HasTarget {
		target = intent.Target
	}

	if dir, ok := moveDirections[intent.Action]; ok {
		_, err := Move(g, dir)
		return err
	}
	if dir, ok := cursorDirections[intent.Action]; ok {
		MoveCursor(g, dir)
		return nil
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return nil

	case engineinput.ActionToggleWall:
		_, err := ToggleWall(g, target)
		return err

	case engineinput.ActionPaintWall:
		return PaintWall(g, target)

	case engineinput.ActionAssignRole:
		_, err := AssignRole(g, target)
		return err

	case engineinput.ActionSetStart:
		return SetStart(g, target)

	case engineinput.ActionSetGoal:
		return SetGoal(g, target)

	case engineinput.ActionHint:
		_, _, err := RequestHint(g)
		return err

	case engineinput.ActionSolve:
		_, err := RequestSolve(g)
		return err

	case engineinput.ActionGenerate:
		return RequestGenerate(g)

	case engineinput.ActionClear:
		Clear(g)
		return nil

	case engineinput.ActionSlower:
		Slower(g)
		return nil

	case engineinput.ActionFaster:
		Faster(g)
		return nil

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			return err
		}
		logMessage(g, i18n.F("MAP_DUMPED", "Map dumped to %s", path))
		return nil

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(g)
		if err != nil {
			return err
		}
		logMessage(g, i18n.F("SCREENSHOT_SAVED", "Screenshot saved to %s", path))
		return nil

	case engineinput.ActionDevMap:
		if g.Generating() {
			return ErrBusy
		}
		devtools.SwitchToDevMap(g)
		return nil

	case engineinput.ActionQuit:
		g.Quit = true
		return nil
	}

	logger.Debugf("unhandled action %s", engineinput.ActionName(intent.Action))
	return nil
}
