// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/generator"
	"gridmaze/pkg/game/renderer"
	"gridmaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// OutputDir is where dumps and screenshots are written; empty means the working directory
var OutputDir = ""

// outputPath returns the absolute path of a devtools output file
func outputPath(name string) (string, error) {
	return filepath.Abs(filepath.Join(OutputDir, name))
}

// WriteMap writes the grid as one glyph per cell, one line per row
func WriteMap(w io.Writer, grid *world.Grid) error {
	var b strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell, _ := grid.Cell(world.Pos(row, col))
			b.WriteRune(renderer.StyleOf(cell).Glyph())
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// positionOf formats the holder of a role, or "none"
func positionOf(grid *world.Grid, role world.Role) string {
	pos, ok := grid.RoleAt(role)
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d,%d", pos.Row, pos.Col)
}

// WriteDump writes a debug dump of the game: metadata, legend and map.
// Format is human-readable (sections, key: value).
func WriteDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return errors.New("no grid")
	}

	var b strings.Builder
	fmt.Fprintln(&b, "=== MAP DUMP (layout, roles, search markers) ===")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "maze_id: %s\n", g.ID)
	fmt.Fprintf(&b, "seed: %d\n", g.Seed)
	fmt.Fprintf(&b, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(&b, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintln(&b, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	if g.Generator != nil {
		fmt.Fprintf(&b, "generator: %s\n", g.Generator.Name())
		fmt.Fprintf(&b, "generator_state: %s\n", g.Generator.State())
	}
	fmt.Fprintf(&b, "steps_per_tick: %d\n", g.StepsPerTick)
	fmt.Fprintf(&b, "start_cell: %s\n", positionOf(g.Grid, world.RoleStart))
	fmt.Fprintf(&b, "goal_cell: %s\n", positionOf(g.Grid, world.RoleGoal))
	fmt.Fprintf(&b, "player_cell: %s\n", positionOf(g.Grid, world.RolePlayer))
	if p := g.Placement; p != nil {
		fmt.Fprintf(&b, "entrance_opening: %d,%d\n", p.Entrance.Border.Row, p.Entrance.Border.Col)
		fmt.Fprintf(&b, "exit_opening: %d,%d\n", p.Exit.Border.Row, p.Exit.Border.Col)
		fmt.Fprintf(&b, "inner_distance: %d\n", p.Distance)
		fmt.Fprintf(&b, "degenerate: %v\n", p.Degenerate)
		if p.Reason != "" {
			fmt.Fprintf(&b, "degenerate_reason: %s\n", p.Reason)
		}
	}
	if err := generator.VerifyPerfect(g.Grid); err != nil {
		fmt.Fprintf(&b, "perfect: false (%v)\n", err)
	} else {
		fmt.Fprintln(&b, "perfect: true")
	}
	if s := g.Session; s != nil {
		fmt.Fprintf(&b, "session_id: %s\n", s.ID)
		fmt.Fprintf(&b, "moves: %d\n", s.Moves())
		fmt.Fprintf(&b, "elapsed_seconds: %.1f\n", s.Elapsed().Seconds())
		fmt.Fprintf(&b, "finished: %v\n", s.Finished())
	}
	fmt.Fprintf(&b, "walls: %d\n", g.Grid.Count(func(c world.Cell) bool { return c.IsWall() }))
	fmt.Fprintf(&b, "path_cells: %d\n", g.Grid.Count(func(c world.Cell) bool { return c.Marker == world.MarkerPath }))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "--- Legend (cell symbols) ---")
	fmt.Fprintln(&b, renderer.Legend())
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "--- Map ---")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return WriteMap(w, g.Grid)
}

// DumpMapToFile writes the debug dump to map.txt and returns its absolute path
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := outputPath(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
