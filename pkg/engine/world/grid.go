package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by every position-taking operation for positions outside the grid
	ErrOutOfRange = errors.New("position out of range")

	// ErrWallCell is returned when a role or marker is placed on a wall
	ErrWallCell = errors.New("cell is a wall")
)

// Observer is notified after grid mutations.
// CellChanged follows single-cell edits, Redraw follows bulk operations.
type Observer interface {
	CellChanged(pos Position)
	Redraw()
}

// Grid represents the maze map with encapsulated cell storage.
// Dimensions are fixed after Build; only contents change.
type Grid struct {
	cells []Cell
	rows  int
	cols  int

	// roles holds the unique position of each role flag currently placed
	roles map[Role]Position

	observer Observer
}

// NewGrid creates a new grid with the given dimensions, all cells Open
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]Cell, rows*cols)
	g.roles = make(map[Role]Position, 3)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// SetObserver registers the observer notified after mutations. nil disables notifications.
func (g *Grid) SetObserver(o Observer) {
	g.observer = o
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// IsOnPerimeter checks if a position is on the outer edge of the grid
func (g *Grid) IsOnPerimeter(pos Position) bool {
	return g.InBounds(pos) && (pos.Row == 0 || pos.Row == g.rows-1 || pos.Col == 0 || pos.Col == g.cols-1)
}

func (g *Grid) index(pos Position) int {
	return pos.Row*g.cols + pos.Col
}

func (g *Grid) check(pos Position) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfRange, pos, g.rows, g.cols)
	}
	return nil
}

// Cell returns the cell at the given position
func (g *Grid) Cell(pos Position) (Cell, error) {
	if err := g.check(pos); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(pos)], nil
}

// Walkable reports whether pos is in bounds and not a wall
func (g *Grid) Walkable(pos Position) bool {
	return g.InBounds(pos) && g.cells[g.index(pos)].Terrain != Wall
}

// Neighbors4 returns the in-bounds walkable neighbors of pos in North, East, South, West order
func (g *Grid) Neighbors4(pos Position) []Position {
	neighbors := make([]Position, 0, 4)
	for _, dir := range AllDirections() {
		n := pos.Neighbor(dir)
		if g.Walkable(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// SetTerrain changes the terrain of a cell. Turning a cell into a wall strips its role and marker.
func (g *Grid) SetTerrain(pos Position, t Terrain) error {
	if err := g.check(pos); err != nil {
		return err
	}
	c := &g.cells[g.index(pos)]
	if c.Terrain == t {
		return nil
	}
	c.Terrain = t
	if t == Wall {
		g.releaseRoles(pos, c.Role)
		c.Role = RoleNone
		c.Marker = MarkerNone
	}
	g.notify(pos)
	return nil
}

// SetMarker annotates a cell for visualization. Walls are never marked.
func (g *Grid) SetMarker(pos Position, m Marker) error {
	if err := g.check(pos); err != nil {
		return err
	}
	c := &g.cells[g.index(pos)]
	if c.Terrain == Wall && m != MarkerNone {
		return fmt.Errorf("%w: cannot mark %v as %v", ErrWallCell, pos, m)
	}
	if c.Marker == m {
		return nil
	}
	c.Marker = m
	g.notify(pos)
	return nil
}

// SetRole replaces the full role set of a cell. Each flag in r moves from its
// previous holder; flags the cell held that are not in r are released.
func (g *Grid) SetRole(pos Position, r Role) error {
	if err := g.check(pos); err != nil {
		return err
	}
	c := g.cells[g.index(pos)]
	if c.Terrain == Wall && r != RoleNone {
		return fmt.Errorf("%w: cannot assign %v to %v", ErrWallCell, r, pos)
	}
	g.releaseRoles(pos, c.Role&^r)
	g.cells[g.index(pos)].Role &= r
	for _, flag := range []Role{RoleStart, RoleGoal, RolePlayer} {
		if r.Has(flag) {
			g.placeRole(pos, flag)
		}
	}
	g.notify(pos)
	return nil
}

// PlaceRole moves a single role flag to pos, clearing it from its previous holder
func (g *Grid) PlaceRole(pos Position, flag Role) error {
	if err := g.check(pos); err != nil {
		return err
	}
	if g.cells[g.index(pos)].Terrain == Wall {
		return fmt.Errorf("%w: cannot assign %v to %v", ErrWallCell, flag, pos)
	}
	if prev, ok := g.roles[flag]; ok && prev == pos {
		return nil
	}
	g.placeRole(pos, flag)
	g.notify(pos)
	return nil
}

// ClearRole removes a role flag from whichever cell holds it
func (g *Grid) ClearRole(flag Role) {
	prev, ok := g.roles[flag]
	if !ok {
		return
	}
	g.cells[g.index(prev)].Role &^= flag
	delete(g.roles, flag)
	g.notify(prev)
}

// RoleAt returns the position holding the given role flag
func (g *Grid) RoleAt(flag Role) (Position, bool) {
	pos, ok := g.roles[flag]
	return pos, ok
}

// Start returns the start position, if any
func (g *Grid) Start() (Position, bool) {
	return g.RoleAt(RoleStart)
}

// Goal returns the goal position, if any
func (g *Grid) Goal() (Position, bool) {
	return g.RoleAt(RoleGoal)
}

// Player returns the player position, if any
func (g *Grid) Player() (Position, bool) {
	return g.RoleAt(RolePlayer)
}

// SetStart places the start role at pos
func (g *Grid) SetStart(pos Position) error {
	return g.PlaceRole(pos, RoleStart)
}

// SetGoal places the goal role at pos
func (g *Grid) SetGoal(pos Position) error {
	return g.PlaceRole(pos, RoleGoal)
}

// SetPlayer places the player role at pos
func (g *Grid) SetPlayer(pos Position) error {
	return g.PlaceRole(pos, RolePlayer)
}

func (g *Grid) placeRole(pos Position, flag Role) {
	if prev, ok := g.roles[flag]; ok && prev != pos {
		g.cells[g.index(prev)].Role &^= flag
		g.notify(prev)
	}
	g.cells[g.index(pos)].Role |= flag
	g.roles[flag] = pos
}

func (g *Grid) releaseRoles(pos Position, r Role) {
	for _, flag := range []Role{RoleStart, RoleGoal, RolePlayer} {
		if r.Has(flag) && g.roles[flag] == pos {
			delete(g.roles, flag)
		}
	}
}

// Fill resets every cell to the given terrain with no role and no marker
func (g *Grid) Fill(t Terrain) {
	for i := range g.cells {
		g.cells[i] = Cell{Terrain: t}
	}
	clear(g.roles)
	g.redraw()
}

// Clear returns the grid to its construction state: all Open, no roles, no markers
func (g *Grid) Clear() {
	g.Fill(Open)
}

// ClearMarkers removes the given markers from every cell, or every marker when none are given
func (g *Grid) ClearMarkers(kinds ...Marker) {
	changed := false
	for i := range g.cells {
		m := g.cells[i].Marker
		if m == MarkerNone {
			continue
		}
		if len(kinds) > 0 && !containsMarker(kinds, m) {
			continue
		}
		g.cells[i].Marker = MarkerNone
		changed = true
	}
	if changed {
		g.redraw()
	}
}

func containsMarker(kinds []Marker, m Marker) bool {
	for _, k := range kinds {
		if k == m {
			return true
		}
	}
	return false
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(pos Position, cell Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Position{Row: row, Col: col}, g.cells[row*g.cols+col])
		}
	}
}

// Count returns the number of cells matching the predicate
func (g *Grid) Count(match func(cell Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if match(c) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid without its observer
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cells: make([]Cell, len(g.cells)),
		rows:  g.rows,
		cols:  g.cols,
		roles: make(map[Role]Position, len(g.roles)),
	}
	copy(c.cells, g.cells)
	for k, v := range g.roles {
		c.roles[k] = v
	}
	return c
}

// Equal reports whether two grids have the same dimensions and cell contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) notify(pos Position) {
	if g.observer != nil {
		g.observer.CellChanged(pos)
	}
}

func (g *Grid) redraw() {
	if g.observer != nil {
		g.observer.Redraw()
	}
}
