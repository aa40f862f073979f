package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.ctx.Done():
		return ebiten.Termination
	default:
	}

	snap := e.snapshot()
	if !snap.valid {
		return nil
	}
	e.syncWindow(&snap)
	e.handleZoom()

	for _, intent := range e.checkKeyboard(time.Now().UnixMilli()) {
		e.send(intent)
	}
	if intent, ok := e.checkMouse(&snap); ok {
		e.send(intent)
	}
	return nil
}

// send queues an intent without blocking the frame
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.intents <- intent:
	default:
		logger.Debugf("intent queue full, dropped %s", engineinput.ActionName(intent.Action))
	}
}

// syncWindow sizes the window once and mirrors the caption into the title
func (e *EbitenRenderer) syncWindow(snap *renderSnapshot) {
	if !e.windowSized {
		ebiten.SetWindowSize(layoutSize(snap.rows, snap.cols, e.tileSize))
		e.windowSized = true
	}
	if snap.caption != e.title {
		e.title = snap.caption
		ebiten.SetWindowTitle(snap.caption)
	}
}

// handleZoom handles =/- for tile size adjustment and 0 to reset it to the configured size
func (e *EbitenRenderer) handleZoom() {
	size := e.tileSize
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		size = min(size+tileSizeStep, maxTileSize)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		size = max(size-tileSizeStep, minTileSize)
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		size = configuredTileSize()
	}
	if size != e.tileSize {
		e.tileSize = size
		e.windowSized = false
	}
}

// keyCode returns the raw input code of an Ebiten key, or "" for keys the explorer ignores
func keyCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	case ebiten.KeySpace:
		return "space"
	case ebiten.KeyEscape:
		return "escape"
	case ebiten.KeyBackspace:
		return "backspace"
	case ebiten.KeyBracketLeft:
		return "["
	case ebiten.KeyBracketRight:
		return "]"
	case ebiten.KeyF9:
		return "f9"
	case ebiten.KeyDigit1:
		return "1"
	case ebiten.KeyDigit2:
		return "2"
	}
	if name := k.String(); len(name) == 1 {
		return strings.ToLower(name)
	}
	return ""
}

// repeats reports whether holding the key bound to a repeats it
func repeats(a engineinput.Action) bool {
	switch a {
	case engineinput.ActionMoveNorth, engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest, engineinput.ActionMoveEast,
		engineinput.ActionCursorNorth, engineinput.ActionCursorSouth,
		engineinput.ActionCursorWest, engineinput.ActionCursorEast:
		return true
	}
	return false
}

// checkKeyboard returns the intents of keys pressed or repeating this frame
func (e *EbitenRenderer) checkKeyboard(now int64) []engineinput.Intent {
	e.pressedKeys = inpututil.AppendPressedKeys(e.pressedKeys[:0])

	var intents []engineinput.Intent
	held := make(map[string]bool, len(e.pressedKeys))
	for _, k := range e.pressedKeys {
		code := keyCode(k)
		if code == "" {
			continue
		}
		held[code] = true

		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.UnixMilli(now),
		}))
		if intent.Action == engineinput.ActionNone {
			continue
		}
		if repeats(intent.Action) {
			if !e.shouldRepeatKey(code, now) {
				continue
			}
		} else if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		intents = append(intents, intent)
	}
	e.releaseKeys(held)
	return intents
}

// shouldRepeatKey checks if a held key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(code string, now int64) bool {
	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed < keyRepeatInitialDelay || now-state.lastRepeat < keyRepeatInterval {
		return false
	}
	state.lastRepeat = now
	e.keyRepeatState[code] = state
	return true
}

// releaseKeys forgets the repeat state of keys no longer held
func (e *EbitenRenderer) releaseKeys(held map[string]bool) {
	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	for code := range e.keyRepeatState {
		if !held[code] {
			delete(e.keyRepeatState, code)
		}
	}
}

// checkMouse turns clicks and left-button drags over the maze into targeted intents
func (e *EbitenRenderer) checkMouse(snap *renderSnapshot) (engineinput.Intent, bool) {
	x, y := ebiten.CursorPosition()
	pos, inside := cellAt(x, y, snap.rows, snap.cols, e.tileSize)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !inside {
			return engineinput.Intent{}, false
		}
		e.dragging = true
		e.lastDrag = pos
		return mouseIntent("mouse_left", pos)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if code, ok := e.dragStep(pos, inside); ok {
			return mouseIntent(code, pos)
		}
		return engineinput.Intent{}, false
	default:
		e.dragging = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inside {
		return mouseIntent("mouse_right", pos)
	}
	return engineinput.Intent{}, false
}

// dragStep reports whether a held left button moved onto a new cell
func (e *EbitenRenderer) dragStep(pos world.Position, inside bool) (string, bool) {
	if !e.dragging || !inside || pos == e.lastDrag {
		return "", false
	}
	e.lastDrag = pos
	return "mouse_drag", true
}

func mouseIntent(code string, pos world.Position) (engineinput.Intent, bool) {
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceMouse,
		Code:      code,
		Timestamp: time.Now(),
	}))
	if intent.Action == engineinput.ActionNone {
		return intent, false
	}
	return intent.At(pos), true
}
