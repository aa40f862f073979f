// Package terminal wraps terminal size queries and the ANSI sequences the
// terminal renderer draws with.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a block of the given character size fits on screen
func Fits(width, height int) bool {
	w, h := GetSize()
	return width <= w && height <= h
}

// Screen writes cursor-addressed output. Rows and columns are zero based.
type Screen struct {
	w io.Writer
}

// NewScreen returns a screen writing to w
func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

// Clear erases the screen and homes the cursor
func (s *Screen) Clear() {
	fmt.Fprint(s.w, "\x1b[2J\x1b[H")
}

// MoveTo positions the cursor
func (s *Screen) MoveTo(row, col int) {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", row+1, col+1)
}

// WriteAt writes text starting at row, col
func (s *Screen) WriteAt(row, col int, text string) {
	s.MoveTo(row, col)
	fmt.Fprint(s.w, text)
}

// ClearLine writes text at the start of row and erases the rest of the line
func (s *Screen) ClearLine(row int, text string) {
	s.MoveTo(row, 0)
	fmt.Fprint(s.w, text, "\x1b[K")
}

// HideCursor hides the terminal cursor
func (s *Screen) HideCursor() {
	fmt.Fprint(s.w, "\x1b[?25l")
}

// ShowCursor shows the terminal cursor
func (s *Screen) ShowCursor() {
	fmt.Fprint(s.w, "\x1b[?25h")
}
