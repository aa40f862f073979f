package gameplay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/state"
)

// newOpenGame builds an open rows x cols game with the start and player on start
// and the goal on goal
func newOpenGame(t *testing.T, rows, cols int, start, goal world.Position) *state.Game {
	t.Helper()
	g := state.NewGame(rows, cols, 1)
	require.NoError(t, g.Grid.SetStart(start))
	require.NoError(t, g.Grid.SetPlayer(start))
	require.NoError(t, g.Grid.SetGoal(goal))
	g.Changes.Take()
	return g
}

// wall puts walls on the given cells
func wall(t *testing.T, g *state.Game, cells ...world.Position) {
	t.Helper()
	for _, pos := range cells {
		require.NoError(t, g.Grid.SetTerrain(pos, world.Wall))
	}
}

// lastMessage returns the newest message, or ""
func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

// startGenerating begins carving a maze into g without finishing it
func startGenerating(t *testing.T, g *state.Game) {
	t.Helper()
	g.StepsPerTick = 1
	require.NoError(t, RequestGenerate(g))
	require.True(t, g.Generating())
}
