package generator

import (
	"fmt"
	"math/rand"

	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/engine/world"
)

// Backtracker carves a perfect maze with randomized depth-first search over the
// odd-coordinate room lattice. The backtracking path lives on an explicit stack
// so carving can be paused between steps.
type Backtracker struct {
	rng   *rand.Rand
	grid  *world.Grid
	stack []world.Position
	state State
	seed  world.Position
	ops   int
}

// NewBacktracker creates a backtracker drawing all randomness from rng
func NewBacktracker(rng *rand.Rand) *Backtracker {
	return &Backtracker{rng: rng}
}

// Name returns the name of this generator
func (b *Backtracker) Name() string {
	return "Recursive Backtracker"
}

// State returns the current generation state
func (b *Backtracker) State() State {
	return b.state
}

// SeedCell returns the room the current or last run started from
func (b *Backtracker) SeedCell() world.Position {
	return b.seed
}

// Operations returns the number of carve or backtrack operations performed in the current run
func (b *Backtracker) Operations() int {
	return b.ops
}

// Begin walls off the whole grid and opens a random room as the seed
func (b *Backtracker) Begin(grid *world.Grid) error {
	rows, cols := grid.Rows(), grid.Cols()
	if rows < MinDimension || cols < MinDimension {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, rows, cols, MinDimension, MinDimension)
	}

	b.grid = grid
	b.ops = 0
	grid.Fill(world.Wall)

	b.seed = world.Pos(b.rng.Intn((rows-1)/2)*2+1, b.rng.Intn((cols-1)/2)*2+1)
	if err := grid.SetTerrain(b.seed, world.Open); err != nil {
		return err
	}
	b.stack = append(b.stack[:0], b.seed)
	b.state = StateGenerating

	logger.Debugf("%s: %dx%d from seed %v", b.Name(), rows, cols, b.seed)
	return nil
}

// Step performs up to n carve or backtrack operations and reports whether generation is finished.
// A generator that is not running reports true.
func (b *Backtracker) Step(n int) bool {
	if b.state != StateGenerating {
		return true
	}

	for ; n > 0 && len(b.stack) > 0; n-- {
		top := b.stack[len(b.stack)-1]
		if next, ok := b.carveFrom(top); ok {
			b.stack = append(b.stack, next)
		} else {
			b.stack = b.stack[:len(b.stack)-1]
		}
		b.ops++
	}

	if len(b.stack) == 0 {
		b.state = StateDone
		b.stack = nil
		logger.Debugf("%s: finished after %d operations", b.Name(), b.ops)
		return true
	}
	return false
}

// carveFrom tries the room neighbors of pos in a fresh random order and opens the
// first one still walled, along with the connector between them
func (b *Backtracker) carveFrom(pos world.Position) (world.Position, bool) {
	dirs := world.AllDirections()
	b.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		next := pos.Step(dir, 2)
		if !b.inLattice(next) {
			continue
		}
		if cell, err := b.grid.Cell(next); err != nil || !cell.IsWall() {
			continue
		}
		_ = b.grid.SetTerrain(pos.Neighbor(dir), world.Open)
		_ = b.grid.SetTerrain(next, world.Open)
		return next, true
	}
	return world.Position{}, false
}

// inLattice reports whether pos is strictly inside the border ring
func (b *Backtracker) inLattice(pos world.Position) bool {
	return pos.Row >= 1 && pos.Row < b.grid.Rows()-1 && pos.Col >= 1 && pos.Col < b.grid.Cols()-1
}

// Cancel abandons a running generation, leaving the grid partially carved
func (b *Backtracker) Cancel() {
	if b.state == StateGenerating {
		logger.Debugf("%s: cancelled after %d operations", b.Name(), b.ops)
	}
	b.stack = nil
	b.grid = nil
	b.state = StateIdle
}
