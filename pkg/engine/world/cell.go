// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based maze.
package world

// Terrain is the structural passability of a cell
type Terrain uint8

// Terrain values. The zero value is Open so a freshly built grid is walkable.
const (
	Open Terrain = iota
	Wall
)

// String returns the string representation of a terrain value
func (t Terrain) String() string {
	switch t {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Role is a bit set of the unique roles a cell may hold.
// Player may coincide with Start or Goal.
type Role uint8

// Role flags
const (
	RoleStart Role = 1 << iota
	RoleGoal
	RolePlayer

	RoleNone Role = 0
)

// Has reports whether every flag in r2 is set in r
func (r Role) Has(r2 Role) bool {
	return r2 != RoleNone && r&r2 == r2
}

// String returns the string representation of a role set
func (r Role) String() string {
	if r == RoleNone {
		return "None"
	}
	s := ""
	for _, part := range []struct {
		flag Role
		name string
	}{{RoleStart, "Start"}, {RoleGoal, "Goal"}, {RolePlayer, "Player"}} {
		if r.Has(part.flag) {
			if s != "" {
				s += "|"
			}
			s += part.name
		}
	}
	return s
}

// Marker is a transient search-visualization annotation
type Marker uint8

// Marker values
const (
	MarkerNone Marker = iota
	MarkerFrontier
	MarkerClosed
	MarkerPath
	MarkerHint
)

// String returns the string representation of a marker
func (m Marker) String() string {
	switch m {
	case MarkerNone:
		return "None"
	case MarkerFrontier:
		return "Frontier"
	case MarkerClosed:
		return "Closed"
	case MarkerPath:
		return "Path"
	case MarkerHint:
		return "Hint"
	default:
		return "Unknown"
	}
}

// Cell represents a single cell/tile in the grid.
// Terrain, role and marker are independent so overwriting one never loses another.
type Cell struct {
	Terrain Terrain
	Role    Role
	Marker  Marker
}

// IsWall returns true if the cell blocks movement
func (c Cell) IsWall() bool {
	return c.Terrain == Wall
}

// HasRole returns true if the cell holds any role
func (c Cell) HasRole() bool {
	return c.Role != RoleNone
}
