package generator

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"

	"gridmaze/pkg/engine/world"
)

// ErrNotPerfect is returned by VerifyPerfect when the interior is not a spanning tree of rooms
var ErrNotPerfect = errors.New("maze is not perfect")

// IsRoom reports whether pos lies on the odd-coordinate room lattice
func IsRoom(pos world.Position) bool {
	return pos.Row%2 == 1 && pos.Col%2 == 1
}

// VerifyPerfect checks that the open interior cells form a spanning tree over the open rooms.
// Border cells are ignored so entrances and exits do not affect the result.
func VerifyPerfect(grid *world.Grid) error {
	rooms, connectors := 0, 0
	var first world.Position
	var problem error

	grid.ForEachCell(func(pos world.Position, cell world.Cell) {
		if problem != nil || cell.IsWall() || grid.IsOnPerimeter(pos) {
			return
		}
		switch {
		case IsRoom(pos):
			if rooms == 0 {
				first = pos
			}
			rooms++
		case pos.Row%2 == 0 && pos.Col%2 == 0:
			problem = fmt.Errorf("%w: open lattice corner at %v", ErrNotPerfect, pos)
		default:
			a, b := connectorEnds(pos)
			if !grid.Walkable(a) || !grid.Walkable(b) {
				problem = fmt.Errorf("%w: connector %v does not join two open rooms", ErrNotPerfect, pos)
				return
			}
			connectors++
		}
	})
	if problem != nil {
		return problem
	}
	if rooms == 0 {
		return fmt.Errorf("%w: no open rooms", ErrNotPerfect)
	}
	if connectors != rooms-1 {
		return fmt.Errorf("%w: %d connectors for %d rooms", ErrNotPerfect, connectors, rooms)
	}

	reached := 0
	seen := map[world.Position]bool{first: true}
	q := queue.New[world.Position]()
	q.Enqueue(first)
	for !q.Empty() {
		cur := q.Dequeue()
		if IsRoom(cur) {
			reached++
		}
		for _, nb := range grid.Neighbors4(cur) {
			if seen[nb] || grid.IsOnPerimeter(nb) {
				continue
			}
			seen[nb] = true
			q.Enqueue(nb)
		}
	}
	if reached != rooms {
		return fmt.Errorf("%w: %d of %d rooms reachable", ErrNotPerfect, reached, rooms)
	}
	return nil
}

// connectorEnds returns the two rooms a connector cell sits between
func connectorEnds(pos world.Position) (world.Position, world.Position) {
	if pos.Row%2 == 1 {
		return pos.Neighbor(world.West), pos.Neighbor(world.East)
	}
	return pos.Neighbor(world.North), pos.Neighbor(world.South)
}
