package renderer

import (
	"context"

	"gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/state"
)

// Renderer defines the interface for maze rendering backends.
// RenderFrame is called from the game loop goroutine; Run blocks on the
// goroutine that owns the display until ctx ends or the user closes it.
type Renderer interface {
	// Init prepares the display (colors, raw mode, window)
	Init() error

	// RenderFrame presents the game, redrawing only the changed cells when possible
	RenderFrame(g *state.Game, changes world.Changes)

	// Intents delivers user input to the game loop
	Intents() <-chan input.Intent

	// Run drives the display until ctx is cancelled or the user closes it
	Run(ctx context.Context) error

	// Close restores the terminal or releases the window
	Close()
}
