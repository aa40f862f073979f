// Package renderer maps maze cells to visual styles and defines the renderer backends' contract.
package renderer

import (
	"fmt"
	"image/color"
	"strconv"
)

// CellStyle is the single visual class a cell is drawn with
type CellStyle int

const (
	StyleOpen CellStyle = iota
	StyleWall
	StyleStart
	StyleGoal
	StylePlayer
	StyleFrontier
	StyleClosed
	StylePath
	StyleHint
)

// String returns the string representation of a style
func (s CellStyle) String() string {
	switch s {
	case StyleOpen:
		return "Open"
	case StyleWall:
		return "Wall"
	case StyleStart:
		return "Start"
	case StyleGoal:
		return "Goal"
	case StylePlayer:
		return "Player"
	case StyleFrontier:
		return "Frontier"
	case StyleClosed:
		return "Closed"
	case StylePath:
		return "Path"
	case StyleHint:
		return "Hint"
	default:
		return "Unknown"
	}
}

// palette holds the fill colour of each style
var palette = map[CellStyle]string{
	StyleOpen:     "#1e1e1e",
	StyleWall:     "#444444",
	StyleStart:    "#2ecc71",
	StyleGoal:     "#e74c3c",
	StyleFrontier: "#2980b9",
	StyleClosed:   "#8e44ad",
	StylePath:     "#f1c40f",
	StylePlayer:   "#00d1ff",
	StyleHint:     "#f9e79f",
}

// Background and grid line colours
const (
	BackgroundHex = "#000000"
	OutlineHex    = "#222222"
)

// Hex returns the style's fill colour as #rrggbb
func (s CellStyle) Hex() string {
	if h, ok := palette[s]; ok {
		return h
	}
	return palette[StyleOpen]
}

// RGBA returns the style's fill colour
func (s CellStyle) RGBA() color.RGBA {
	return HexColor(s.Hex())
}

// HexColor parses a #rrggbb colour, returning black on malformed input
func HexColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Glyph returns the character used for the style in text output
func (s CellStyle) Glyph() rune {
	switch s {
	case StyleWall:
		return '#'
	case StyleStart:
		return 'S'
	case StyleGoal:
		return 'G'
	case StylePlayer:
		return '@'
	case StyleFrontier:
		return 'o'
	case StyleClosed:
		return 'x'
	case StylePath:
		return '*'
	case StyleHint:
		return '+'
	default:
		return '.'
	}
}

// Legend describes the glyphs of every style
func Legend() string {
	s := ""
	for style := StyleOpen; style <= StyleHint; style++ {
		if s != "" {
			s += "  "
		}
		s += fmt.Sprintf("%c = %s", style.Glyph(), style)
	}
	return s
}
