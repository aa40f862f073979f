package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/state"
)

func countMarker(g *state.Game, m world.Marker) int {
	return g.Grid.Count(func(c world.Cell) bool { return c.Marker == m })
}

func TestRequestHint_MarksNextStep(t *testing.T) {
	g := newOpenGame(t, 1, 5, world.Pos(0, 0), world.Pos(0, 4))

	next, found, err := RequestHint(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, world.Pos(0, 1), next)
	require.NotNil(t, g.HintCell)
	assert.Equal(t, next, *g.HintCell)
	assert.Equal(t, 1, countMarker(g, world.MarkerHint))

	// repeating the request replaces the hint rather than adding one
	_, _, err = RequestHint(g)
	require.NoError(t, err)
	assert.Equal(t, 1, countMarker(g, world.MarkerHint))
}

func TestRequestHint_ConsumedByStepping(t *testing.T) {
	g := newOpenGame(t, 1, 5, world.Pos(0, 0), world.Pos(0, 4))
	_, _, err := RequestHint(g)
	require.NoError(t, err)

	_, err = Move(g, world.East)
	require.NoError(t, err)
	assert.Nil(t, g.HintCell)
	assert.Zero(t, countMarker(g, world.MarkerHint))

	next, found, err := RequestHint(g)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, world.Pos(0, 2), next)
}

func TestRequestHint_NextToGoalDrawsNothing(t *testing.T) {
	g := newOpenGame(t, 1, 2, world.Pos(0, 0), world.Pos(0, 1))

	next, found, err := RequestHint(g)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, world.Pos(0, 1), next)
	assert.Nil(t, g.HintCell)
	assert.Zero(t, countMarker(g, world.MarkerHint))
}

func TestRequestHint_NoPath(t *testing.T) {
	g := newOpenGame(t, 1, 5, world.Pos(0, 0), world.Pos(0, 4))
	wall(t, g, world.Pos(0, 2))

	_, found, err := RequestHint(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "No path to the goal.", lastMessage(g))
}

func TestRequestHint_NeedsGoal(t *testing.T) {
	g := state.NewGame(3, 3, 1)
	require.NoError(t, g.Grid.SetPlayer(world.Pos(0, 0)))
	_, _, err := RequestHint(g)
	assert.ErrorIs(t, err, ErrNoGoal)
}

func TestRequestSolve_PaintsPath(t *testing.T) {
	g := newOpenGame(t, 5, 5, world.Pos(0, 0), world.Pos(4, 4))

	result, err := RequestSolve(g)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 8, result.Length())

	// path markers never cover the start or goal
	assert.Equal(t, 7, countMarker(g, world.MarkerPath))
	for _, pos := range result.Steps()[:7] {
		cell, _ := g.Grid.Cell(pos)
		assert.Equal(t, world.MarkerPath, cell.Marker, "%v", pos)
	}
	start, _ := g.Grid.Cell(world.Pos(0, 0))
	assert.Equal(t, world.MarkerNone, start.Marker)
	assert.Contains(t, lastMessage(g), "Shortest path: 8 steps (")
}

func TestRequestSolve_NoPathClearsMarkers(t *testing.T) {
	g := newOpenGame(t, 3, 5, world.Pos(1, 0), world.Pos(1, 4))
	wall(t, g, world.Pos(0, 2), world.Pos(1, 2), world.Pos(2, 2))
	require.NoError(t, g.Grid.SetMarker(world.Pos(0, 0), world.MarkerPath))

	result, err := RequestSolve(g)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Zero(t, g.Grid.Count(func(c world.Cell) bool { return c.Marker != world.MarkerNone }))
	assert.Equal(t, "No path to the goal.", lastMessage(g))
}

func TestRequestSolve_NeedsStart(t *testing.T) {
	g := state.NewGame(3, 3, 1)
	require.NoError(t, g.Grid.SetGoal(world.Pos(2, 2)))
	_, err := RequestSolve(g)
	assert.ErrorIs(t, err, ErrNoStart)
}

func TestRequestSolve_ClearsHint(t *testing.T) {
	g := newOpenGame(t, 1, 5, world.Pos(0, 0), world.Pos(0, 4))
	_, _, err := RequestHint(g)
	require.NoError(t, err)

	_, err = RequestSolve(g)
	require.NoError(t, err)
	assert.Nil(t, g.HintCell)
	assert.Zero(t, countMarker(g, world.MarkerHint))
}
