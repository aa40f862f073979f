package world

import "fmt"

// Position is a (row, col) coordinate in a grid
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the "(row,col)" form of a position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position n cells away in the given direction
func (p Position) Step(dir Direction, n int) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Neighbor returns the adjacent position in the given direction
func (p Position) Neighbor(dir Direction) Position {
	return p.Step(dir, 1)
}

// Manhattan returns |Δrow| + |Δcol| between two positions
func Manhattan(a, b Position) int {
	rowDist := a.Row - b.Row
	colDist := a.Col - b.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}

// Direction represents a cardinal direction
type Direction int

// Direction constants, in the compass order used for neighbor enumeration
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions in compass order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
