package input

import (
	"maps"
	"sort"
	"strings"
	"time"

	"gridmaze/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the explorer.
type Action int

const (
	ActionNone Action = iota

	// Player movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Editing cursor (keyboard editing in the terminal)
	ActionCursorNorth
	ActionCursorSouth
	ActionCursorWest
	ActionCursorEast

	// Editing
	ActionToggleWall // Toggle wall at target (left click, x)
	ActionPaintWall  // Continue a drag paint at target (left drag)
	ActionAssignRole // Alternate start/goal at target (right click, r)
	ActionSetStart
	ActionSetGoal

	// Search and generation
	ActionHint
	ActionSolve
	ActionGenerate
	ActionClear
	ActionSlower // Halve generation steps per tick
	ActionFaster // Double generation steps per tick

	// Meta / developer
	ActionDumpMap
	ActionScreenshot
	ActionDevMap
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
// Pointer-driven intents carry the grid cell they target.
type Intent struct {
	Action    Action
	Target    world.Position
	HasTarget bool
}

// At returns a copy of the intent aimed at pos
func (i Intent) At(pos world.Position) Intent {
	i.Target = pos
	i.HasTarget = true
	return i
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Key repeat is left to the terminal and Ebiten, so this is a thin layer that
// normalizes the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	code := raw.Code
	if len(code) == 1 {
		code = strings.ToLower(code)
	}
	return DebouncedInput{
		Device: raw.Device,
		Code:   code,
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	// Editing cursor
	"i": ActionCursorNorth,
	"k": ActionCursorSouth,
	"j": ActionCursorWest,
	"l": ActionCursorEast,

	// Editing
	"x":           ActionToggleWall,
	"enter":       ActionToggleWall,
	"mouse_left":  ActionToggleWall,
	"mouse_drag":  ActionPaintWall,
	"r":           ActionAssignRole,
	"mouse_right": ActionAssignRole,
	"1":           ActionSetStart,
	"2":           ActionSetGoal,

	// Search and generation
	"h":     ActionHint,
	"space": ActionSolve,
	"m":     ActionGenerate,
	"c":     ActionClear,
	"[":     ActionSlower,
	"]":     ActionFaster,

	// Developer
	"p":  ActionDumpMap,
	"o":  ActionScreenshot,
	"f9": ActionDevMap,
	"v":  ActionDevMap,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// reserved codes keep their binding whatever the user configures
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"mouse_left": true, "mouse_drag": true, "mouse_right": true,
	"ctrl_c": true,
}

var bindings = maps.Clone(defaultBindings)

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = maps.Clone(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

var actionNames = map[Action]string{
	ActionMoveNorth:   "Move North",
	ActionMoveSouth:   "Move South",
	ActionMoveWest:    "Move West",
	ActionMoveEast:    "Move East",
	ActionCursorNorth: "Cursor North",
	ActionCursorSouth: "Cursor South",
	ActionCursorWest:  "Cursor West",
	ActionCursorEast:  "Cursor East",
	ActionToggleWall:  "Toggle Wall",
	ActionPaintWall:   "Paint Wall",
	ActionAssignRole:  "Assign Role",
	ActionSetStart:    "Set Start",
	ActionSetGoal:     "Set Goal",
	ActionHint:        "Hint",
	ActionSolve:       "Solve",
	ActionGenerate:    "Generate",
	ActionClear:       "Clear",
	ActionSlower:      "Slower",
	ActionFaster:      "Faster",
	ActionDumpMap:     "Dump Map",
	ActionScreenshot:  "Screenshot",
	ActionDevMap:      "Dev Map",
	ActionQuit:        "Quit",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ActionByName resolves a config key such as "solve" or "move_north" to an action.
func ActionByName(name string) (Action, bool) {
	want := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(name)))
	for act, n := range actionNames {
		if strings.ToLower(n) == want {
			return act, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all rebindable codes for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
