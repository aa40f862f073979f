package ebiten

import (
	"bytes"
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	engineinput "gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/config"
	"gridmaze/pkg/game/renderer"
	"gridmaze/pkg/game/state"
)

// New creates a new Ebiten renderer drawing cells tileSize pixels wide
func New(tileSize int) *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:       clampTileSize(tileSize),
		intents:        make(chan engineinput.Intent, intentBuffer),
		ctx:            context.Background(),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// clampTileSize falls back to the default for sizes outside the zoom range
func clampTileSize(size int) int {
	if size < minTileSize || size > maxTileSize {
		return defaultTileSize
	}
	return size
}

// configuredTileSize is the tile size zoom resets to
func configuredTileSize() int {
	return clampTileSize(config.Current().TileSize)
}

// Init loads the font and configures the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.fontSource = src
	e.face = &text.GoTextFace{Source: src, Size: fontSize}

	ebiten.SetWindowTitle("Maze Game")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Intents delivers keyboard and mouse input
func (e *EbitenRenderer) Intents() <-chan engineinput.Intent {
	return e.intents
}

// RenderFrame copies the game into the snapshot drawn on the next frame.
// The whole grid is copied since every frame is repainted.
func (e *EbitenRenderer) RenderFrame(g *state.Game, _ world.Changes) {
	snap := snapshotOf(g)

	e.snapMu.Lock()
	e.snap = snap
	e.snapMu.Unlock()
}

// snapshotOf captures everything Draw needs from g
func snapshotOf(g *state.Game) renderSnapshot {
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	snap := renderSnapshot{
		valid:    true,
		rows:     rows,
		cols:     cols,
		cells:    make([]renderer.CellStyle, rows*cols),
		cursor:   g.Cursor,
		caption:  g.Session.Caption(),
		status:   renderer.StatusLine(g),
		messages: append([]string(nil), g.Messages...),
		help:     renderer.HelpLine(),
	}
	g.Grid.ForEachCell(func(pos world.Position, cell world.Cell) {
		snap.cells[pos.Row*cols+pos.Col] = renderer.StyleOf(cell)
	})
	return snap
}

// snapshot returns the latest snapshot
func (e *EbitenRenderer) snapshot() renderSnapshot {
	e.snapMu.Lock()
	defer e.snapMu.Unlock()
	return e.snap
}

// Run opens the window and drives it until ctx ends or the window is closed.
// It must be called from the main goroutine.
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	defer e.closeIntents()

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err == nil {
		logger.Info("window closed")
	}
	return err
}

// Close releases the intent channel
func (e *EbitenRenderer) Close() {
	e.closeIntents()
}

func (e *EbitenRenderer) closeIntents() {
	e.closeOnce.Do(func() {
		close(e.intents)
	})
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := e.snapshot()
	if !snap.valid {
		return outsideWidth, outsideHeight
	}
	return layoutSize(snap.rows, snap.cols, e.tileSize)
}

// layoutSize returns the pixel size of a rows x cols maze plus the status panel
func layoutSize(rows, cols, tileSize int) (width, height int) {
	width = cols * tileSize
	if width < minPanelWidth {
		width = minPanelWidth
	}
	return width, rows*tileSize + panelHeight()
}

// panelHeight is the height of the status panel under the maze
func panelHeight() int {
	return panelPadding*2 + lineHeight*(messageRows+2)
}

// cellAt maps a logical pixel to the maze cell under it
func cellAt(x, y, rows, cols, tileSize int) (world.Position, bool) {
	if x < 0 || y < 0 || tileSize <= 0 {
		return world.Position{}, false
	}
	pos := world.Pos(y/tileSize, x/tileSize)
	if pos.Row >= rows || pos.Col >= cols {
		return world.Position{}, false
	}
	return pos, true
}
