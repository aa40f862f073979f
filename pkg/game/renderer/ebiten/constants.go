package ebiten

import "image/color"

// Tile sizing
const (
	defaultTileSize = 24
	minTileSize     = 8
	maxTileSize     = 64
	tileSizeStep    = 4

	// cellMargin is the gap left around each cell's fill, in pixels
	cellMargin = 1
)

// Status panel
const (
	fontSize      = 13
	lineHeight    = 18
	panelPadding  = 6
	messageRows   = 5
	minPanelWidth = 480
)

// Key repeat timing in milliseconds
const (
	keyRepeatInitialDelay = 250
	keyRepeatInterval     = 60
)

// intentBuffer bounds the intents queued between frames
const intentBuffer = 32

var (
	colorPanelBackground = color.RGBA{20, 20, 28, 255}
	colorCursor          = color.RGBA{255, 255, 255, 255}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorAction          = color.RGBA{180, 150, 250, 255}
	colorItem            = color.RGBA{100, 255, 150, 255}
	colorDenied          = color.RGBA{255, 100, 100, 255}
)
