// Package state holds the mutable state of a maze explorer session.
package state

import (
	"math/rand"

	"github.com/google/uuid"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/generator"
	"gridmaze/pkg/game/session"
	"gridmaze/pkg/game/setup"
)

// Game represents the whole explorer: grid, generation, session and UI-facing state
type Game struct {
	// ID identifies the current maze; regenerated on every generation
	ID uuid.UUID

	Seed int64
	Rand *rand.Rand

	Grid      *world.Grid
	Generator generator.GridGenerator

	// Placement is the exit placement of the last completed generation
	Placement *setup.Placement

	Session *session.Session

	StepsPerTick     int
	TickAdjustFactor float64

	// HintCell is the cell currently carrying the hint marker
	HintCell *world.Position

	// NextRole is the role the next role assignment gives (alternates start/goal)
	NextRole world.Role

	// Cursor is the keyboard editing cursor
	Cursor world.Position

	// PaintTerrain is the terrain applied while drag painting
	PaintTerrain world.Terrain

	// Painting is set while PaintTerrain belongs to the drag in progress
	Painting bool

	Changes *world.ChangeTracker

	Messages []string

	Quit bool
}

// NewGame creates a game over an open rows x cols grid seeded with seed
func NewGame(rows, cols int, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	grid := world.NewGrid(rows, cols)
	changes := world.NewChangeTracker()
	grid.SetObserver(changes)

	return &Game{
		ID:               uuid.New(),
		Seed:             seed,
		Rand:             rng,
		Grid:             grid,
		Generator:        generator.DefaultGenerator(rng),
		Session:          session.New(),
		StepsPerTick:     40,
		TickAdjustFactor: 2,
		NextRole:         world.RoleStart,
		Cursor:           world.Pos(rows/2, cols/2),
		Changes:          changes,
		Messages:         make([]string, 0),
	}
}

// Generating reports whether a maze is being carved
func (g *Game) Generating() bool {
	return g.Generator != nil && g.Generator.State() == generator.StateGenerating
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
