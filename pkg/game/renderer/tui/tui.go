// Package tui renders the maze in a raw-mode terminal with ANSI colours.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"

	"gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/terminal"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/renderer"
	"gridmaze/pkg/game/state"
)

// Each cell is drawn two columns wide so the maze keeps a square aspect
const cellWidth = 2

// messageRows is the number of message lines shown under the maze
const messageRows = 5

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	in     io.Reader
	screen *terminal.Screen

	cellStyles  map[renderer.CellStyle]*color.RGBStyle
	colorCursor color.Style
	colorAction color.Style
	colorItem   color.Style
	colorDenied color.Style
	colorSubtle color.Style

	intents chan input.Intent
	restore func()

	mu         sync.Mutex
	drawn      bool
	rows       int
	cols       int
	lastCursor world.Position

	closeOnce sync.Once
}

// New creates a terminal renderer reading keys from in and drawing to out
func New(out io.Writer, in io.Reader) *TUIRenderer {
	return &TUIRenderer{
		out:     out,
		in:      in,
		screen:  terminal.NewScreen(out),
		intents: make(chan input.Intent, 16),
		restore: func() {},
	}
}

// Init sets up colours and puts the terminal in raw mode
func (t *TUIRenderer) Init() error {
	t.cellStyles = make(map[renderer.CellStyle]*color.RGBStyle)
	for s := renderer.StyleOpen; s <= renderer.StyleHint; s++ {
		c := s.RGBA()
		t.cellStyles[s] = color.NewRGBStyle(color.RGB(0, 0, 0), color.RGB(c.R, c.G, c.B))
	}
	t.colorCursor = color.Style{color.FgWhite, color.OpBold, color.OpReverse}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}

	if input.IsTerminal() {
		restore, err := input.EnableRawMode()
		if err != nil {
			return err
		}
		t.restore = restore
	}

	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Intents delivers decoded key presses
func (t *TUIRenderer) Intents() <-chan input.Intent {
	return t.intents
}

// Run reads keys until ctx ends or input is exhausted
func (t *TUIRenderer) Run(ctx context.Context) error {
	keys := make(chan string)
	errs := make(chan error, 1)

	go func() {
		reader := input.NewKeyReader(t.in)
		for {
			code, err := reader.ReadKey()
			if err != nil {
				errs <- err
				return
			}
			if code == "" {
				continue
			}
			select {
			case keys <- code:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			close(t.intents)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case code := <-keys:
			intent := input.MapToIntent(input.NewDebouncedInput(input.RawInput{
				Device:    input.DeviceTerminal,
				Code:      code,
				Timestamp: time.Now(),
			}))
			if intent.Action == input.ActionNone {
				continue
			}
			select {
			case t.intents <- intent:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	t.closeOnce.Do(func() {
		t.screen.ShowCursor()
		t.screen.MoveTo(t.rows+messageRows+4, 0)
		io.WriteString(t.out, "\r\n")
		t.restore()
	})
}

// RenderFrame draws the changed cells, the cursor and the status area
func (t *TUIRenderer) RenderFrame(g *state.Game, changes world.Changes) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	full := changes.Full || !t.drawn || rows != t.rows || cols != t.cols
	if full {
		t.screen.Clear()
		if !terminal.Fits(cols*cellWidth, rows+messageRows+3) {
			logger.Warningf("terminal smaller than %dx%d maze", rows, cols)
		}
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				t.drawCell(g, world.Pos(row, col))
			}
		}
	} else {
		for _, pos := range changes.Cells {
			t.drawCell(g, pos)
		}
		if t.lastCursor != g.Cursor {
			t.drawCell(g, t.lastCursor)
		}
	}
	t.drawCell(g, g.Cursor)
	t.lastCursor = g.Cursor
	t.rows, t.cols = rows, cols
	t.drawn = true

	t.drawStatus(g, rows)
}

func (t *TUIRenderer) drawCell(g *state.Game, pos world.Position) {
	cell, err := g.Grid.Cell(pos)
	if err != nil {
		return
	}
	style := renderer.StyleOf(cell)

	glyph := "  "
	switch style {
	case renderer.StylePlayer:
		glyph = "@@"
	case renderer.StyleStart:
		glyph = "S "
	case renderer.StyleGoal:
		glyph = "G "
	}

	text := t.cellStyles[style].Sprint(glyph)
	if pos == g.Cursor {
		text = t.colorCursor.Sprint("[]")
	}
	t.screen.WriteAt(pos.Row, pos.Col*cellWidth, text)
}

func (t *TUIRenderer) drawStatus(g *state.Game, rows int) {
	width, _ := terminal.GetSize()
	line := rows + 1

	t.screen.ClearLine(line, t.FormatText(g.Session.Caption()+"  "+renderer.StatusLine(g)))
	line++
	for i := 0; i < messageRows; i++ {
		msg := ""
		if i < len(g.Messages) {
			msg = "  " + t.FormatText(g.Messages[i])
		}
		t.screen.ClearLine(line+i, msg)
	}
	line += messageRows
	help := renderer.HelpLine()
	if renderer.VisibleLen(help) > width {
		help = renderer.Truncate(renderer.StripMarkup(help), width)
	}
	t.screen.ClearLine(line, t.FormatText(help))
}

// FormatText applies the renderer's colours to message markup
func (t *TUIRenderer) FormatText(msg string) string {
	return renderer.ApplyMarkup(msg, func(function, operand string) string {
		switch function {
		case "ACTION":
			return t.colorAction.Sprint(operand)
		case "ITEM":
			return t.colorItem.Sprint(operand)
		case "DENIED":
			return t.colorDenied.Sprint(operand)
		case "SUBTLE":
			return t.colorSubtle.Sprint(operand)
		default:
			return strings.ToUpper(function) + ":" + operand
		}
	})
}
