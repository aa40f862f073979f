package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/renderer"
	"gridmaze/pkg/game/state"
)

// screenshotName returns the file name of a screenshot taken at t
func screenshotName(t time.Time) string {
	return fmt.Sprintf("screenshot-%s.html", t.Format("20060102-150405"))
}

// RenderHTML renders the maze, caption and messages as a standalone HTML page
func RenderHTML(g *state.Game) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze Game - Screenshot</title>
    <style>
        body {
            background-color: ` + renderer.BackgroundHex + `;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .status { color: #888; margin-bottom: 20px; }
        .map-container { display: inline-block; border: 1px solid ` + renderer.OutlineHex + `; }
        .map-row { display: flex; }
        .cell { width: 16px; height: 16px; margin: 1px; }
`)
	for style := renderer.StyleOpen; style <= renderer.StyleHint; style++ {
		fmt.Fprintf(&b, "        .%s { background-color: %s; }\n", cssClass(style), style.Hex())
	}
	b.WriteString(`        .cursor { outline: 2px solid #fff; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, "    <div class=\"header\">%s</div>\n", html.EscapeString(renderer.StripMarkup(g.Session.Caption())))
	fmt.Fprintf(&b, "    <div class=\"status\">%s</div>\n", html.EscapeString(renderer.StripMarkup(renderer.StatusLine(g))))

	b.WriteString("    <div class=\"map-container\">\n")
	for row := 0; row < g.Grid.Rows(); row++ {
		b.WriteString(`        <div class="map-row">`)
		for col := 0; col < g.Grid.Cols(); col++ {
			pos := world.Pos(row, col)
			cell, _ := g.Grid.Cell(pos)
			class := "cell " + cssClass(renderer.StyleOf(cell))
			if pos == g.Cursor {
				class += " cursor"
			}
			fmt.Fprintf(&b, `<div class="%s" title="%d,%d"></div>`, class, row, col)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("    </div>\n")

	if len(g.Messages) > 0 {
		b.WriteString("    <div class=\"messages\">\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, "        <div class=\"message\">%s</div>\n", html.EscapeString(renderer.StripMarkup(msg)))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// cssClass returns the CSS class of a style
func cssClass(s renderer.CellStyle) string {
	return "cell-" + strings.ToLower(s.String())
}

// SaveScreenshotHTML saves the current maze as an HTML file and returns its absolute path
func SaveScreenshotHTML(g *state.Game) (string, error) {
	absPath, err := outputPath(screenshotName(time.Now()))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, []byte(RenderHTML(g)), 0o644); err != nil {
		return "", err
	}
	return absPath, nil
}
