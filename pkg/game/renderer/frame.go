package renderer

import (
	"fmt"
	"sort"
	"strings"

	"gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/state"
)

// StyleOf derives the style of a cell: role over marker over terrain.
// Among roles the player is drawn over the goal, and the goal over the start.
func StyleOf(c world.Cell) CellStyle {
	switch {
	case c.Role.Has(world.RolePlayer):
		return StylePlayer
	case c.Role.Has(world.RoleGoal):
		return StyleGoal
	case c.Role.Has(world.RoleStart):
		return StyleStart
	}

	switch c.Marker {
	case world.MarkerHint:
		return StyleHint
	case world.MarkerPath:
		return StylePath
	case world.MarkerFrontier:
		return StyleFrontier
	case world.MarkerClosed:
		return StyleClosed
	}

	if c.IsWall() {
		return StyleWall
	}
	return StyleOpen
}

// StatusLine summarizes generation progress and the tick budget
func StatusLine(g *state.Game) string {
	status := i18n.F("STATUS_SPEED", "speed ITEM{%d}/tick", g.StepsPerTick)
	switch {
	case g.Generating():
		status += "  " + i18n.F("STATUS_GENERATING", "DENIED{generating} with %s", g.Generator.Name())
	case g.Placement != nil && g.Placement.Degenerate:
		status += "  " + i18n.T("STATUS_DEGENERATE", "DENIED{degenerate maze}")
	}
	return status
}

// helpActions lists the actions shown in the help line, in display order
var helpActions = []input.Action{
	input.ActionSolve,
	input.ActionHint,
	input.ActionGenerate,
	input.ActionClear,
	input.ActionSlower,
	input.ActionFaster,
	input.ActionToggleWall,
	input.ActionAssignRole,
	input.ActionQuit,
}

// HelpLine lists the key bindings of the main actions, skipping pointer codes
func HelpLine() string {
	byAction := input.GetBindingsByAction()
	var parts []string
	for _, act := range helpActions {
		var keys []string
		for _, code := range byAction[act] {
			if strings.HasPrefix(code, "mouse_") {
				continue
			}
			keys = append(keys, code)
		}
		if len(keys) == 0 {
			continue
		}
		sort.Strings(keys)
		parts = append(parts, fmt.Sprintf("ACTION{%s} %s", strings.Join(keys, "/"), strings.ToLower(input.ActionName(act))))
	}
	return strings.Join(parts, "  ")
}
