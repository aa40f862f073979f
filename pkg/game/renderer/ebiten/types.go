// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze explorer.
package ebiten

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/renderer"
)

// renderSnapshot holds a consistent copy of the game for drawing.
// The game loop writes it; Draw reads it on the display goroutine.
type renderSnapshot struct {
	valid    bool
	rows     int
	cols     int
	cells    []renderer.CellStyle
	cursor   world.Position
	caption  string
	status   string
	messages []string
	help     string
}

// styleAt returns the style of the cell at pos
func (s *renderSnapshot) styleAt(pos world.Position) renderer.CellStyle {
	return s.cells[pos.Row*s.cols+pos.Col]
}

// keyRepeatInfo tracks a held key for repeat timing
type keyRepeatInfo struct {
	firstPressed int64 // Unix millis of the initial press
	lastRepeat   int64 // Unix millis of the last trigger
}

// EbitenRenderer draws the maze in a window and turns keyboard and mouse input into intents
type EbitenRenderer struct {
	tileSize int
	title    string

	fontSource *text.GoTextFaceSource
	face       *text.GoTextFace

	intents chan engineinput.Intent
	ctx     context.Context

	snapMu sync.Mutex
	snap   renderSnapshot

	// Key repeat state, keyed by raw code
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex
	pressedKeys         []ebiten.Key

	// Drag painting state
	dragging bool
	lastDrag world.Position

	windowSized bool
	closeOnce   sync.Once
}
