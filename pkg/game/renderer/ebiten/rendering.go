package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/renderer"
)

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.HexColor(renderer.BackgroundHex))

	snap := e.snapshot()
	if !snap.valid || e.face == nil {
		return
	}

	e.drawGrid(screen, &snap)
	e.drawPanel(screen, &snap)
}

func (e *EbitenRenderer) drawGrid(screen *ebiten.Image, snap *renderSnapshot) {
	tile := float32(e.tileSize)
	fill := tile - 2*cellMargin
	glyphFace := &text.GoTextFace{Source: e.fontSource, Size: float64(e.tileSize) * 0.6}

	for row := 0; row < snap.rows; row++ {
		for col := 0; col < snap.cols; col++ {
			pos := world.Pos(row, col)
			style := snap.styleAt(pos)
			x, y := float32(col)*tile, float32(row)*tile

			vector.DrawFilledRect(screen, x+cellMargin, y+cellMargin, fill, fill, style.RGBA(), false)

			switch style {
			case renderer.StyleStart, renderer.StyleGoal, renderer.StylePlayer:
				glyph := string(style.Glyph())
				op := &text.DrawOptions{}
				op.GeoM.Translate(float64(x+tile/2), float64(y+tile/2))
				op.PrimaryAlign = text.AlignCenter
				op.SecondaryAlign = text.AlignCenter
				op.ColorScale.ScaleWithColor(color.Black)
				text.Draw(screen, glyph, glyphFace, op)
			}
		}
	}

	cx, cy := float32(snap.cursor.Col)*tile, float32(snap.cursor.Row)*tile
	vector.StrokeRect(screen, cx+0.5, cy+0.5, tile-1, tile-1, 2, colorCursor, false)
}

func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, snap *renderSnapshot) {
	width, _ := layoutSize(snap.rows, snap.cols, e.tileSize)
	top := snap.rows * e.tileSize
	vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(panelHeight()), colorPanelBackground, false)

	x := float64(panelPadding)
	y := float64(top + panelPadding)

	e.drawMarkup(screen, snap.caption+"  "+snap.status, x, y)
	y += lineHeight
	for i := 0; i < messageRows && i < len(snap.messages); i++ {
		e.drawMarkup(screen, snap.messages[i], x, y+float64(i*lineHeight))
	}
	y += float64(messageRows * lineHeight)
	e.drawMarkup(screen, snap.help, x, y)
}

// drawMarkup draws msg left to right, colouring each markup span
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, msg string, x, y float64) {
	for _, span := range renderer.Spans(msg) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(spanColor(span.Function))
		text.Draw(screen, span.Text, e.face, op)
		x += text.Advance(span.Text, e.face)
	}
}

// spanColor returns the colour of a markup function
func spanColor(function string) color.Color {
	switch function {
	case "ACTION":
		return colorAction
	case "ITEM":
		return colorItem
	case "DENIED":
		return colorDenied
	case "SUBTLE":
		return colorSubtle
	default:
		return colorText
	}
}
