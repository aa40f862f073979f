package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridmaze/pkg/engine/world"
)

func TestDistances(t *testing.T) {
	g := gridFromRows(t,
		"...",
		"##.",
		"...",
	)
	dist := Distances(g, world.Pos(0, 0))

	tests := []struct {
		pos  world.Position
		want int
	}{
		{world.Pos(0, 0), 0},
		{world.Pos(0, 2), 2},
		{world.Pos(1, 2), 3},
		{world.Pos(2, 0), 6},
	}
	for _, tt := range tests {
		if got, ok := dist[tt.pos]; !ok || got != tt.want {
			t.Errorf("Distances[%v] = %d (reached %v), want %d", tt.pos, got, ok, tt.want)
		}
	}
	if _, ok := dist[world.Pos(1, 0)]; ok {
		t.Error("Distances reached wall (1,0)")
	}
	assert.Len(t, dist, 7)
}

func TestDistances_FromWall(t *testing.T) {
	g := gridFromRows(t, "#..")
	assert.Empty(t, Distances(g, world.Pos(0, 0)))
}

func TestFurthest(t *testing.T) {
	g := gridFromRows(t,
		"...",
		"##.",
		"...",
	)
	pos, d := Furthest(g, world.Pos(0, 0))
	assert.Equal(t, world.Pos(2, 0), pos)
	assert.Equal(t, 6, d)

	_, d = Furthest(gridFromRows(t, "#"), world.Pos(0, 0))
	assert.Equal(t, -1, d)
}
