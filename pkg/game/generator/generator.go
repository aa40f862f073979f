// Package generator carves mazes into a world grid.
package generator

import (
	"errors"
	"math/rand"

	"gridmaze/pkg/engine/world"
)

// ErrGridTooSmall is returned when a grid cannot hold a single room with walls around it
var ErrGridTooSmall = errors.New("grid too small for maze generation")

// MinDimension is the smallest row or column count a maze can be carved into
const MinDimension = 3

// State is the lifecycle of a generation run
type State int

// Generator states
const (
	StateIdle State = iota
	StateGenerating
	StateDone
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateGenerating:
		return "Generating"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// GridGenerator is an interface for resumable maze generation algorithms.
// Begin prepares the grid, Step advances by at most n operations and reports completion.
type GridGenerator interface {
	Name() string
	Begin(grid *world.Grid) error
	Step(n int) bool
	State() State
	Cancel()
}

// DefaultGenerator returns the default maze generator drawing from rng
func DefaultGenerator(rng *rand.Rand) GridGenerator {
	return NewBacktracker(rng)
}

// Run drives a generator to completion in one call
func Run(gen GridGenerator, grid *world.Grid, stepsPerBatch int) error {
	if err := gen.Begin(grid); err != nil {
		return err
	}
	if stepsPerBatch < 1 {
		stepsPerBatch = 1
	}
	for !gen.Step(stepsPerBatch) {
	}
	return nil
}
