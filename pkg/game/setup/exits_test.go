package setup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/generator"
	"gridmaze/pkg/game/pathfinding"
)

// carvedMaze returns a generated maze and the source used to build it
func carvedMaze(t *testing.T, seed int64, rows, cols int) (*world.Grid, *rand.Rand) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := world.NewGrid(rows, cols)
	require.NoError(t, generator.Run(generator.NewBacktracker(rng), grid, 40))
	return grid, rng
}

// wallGrid returns an all-wall grid with the given cells opened
func wallGrid(t *testing.T, rows, cols int, open ...world.Position) *world.Grid {
	t.Helper()
	grid := world.NewGrid(rows, cols)
	grid.Fill(world.Wall)
	for _, pos := range open {
		require.NoError(t, grid.SetTerrain(pos, world.Open))
	}
	return grid
}

func TestBorderOpenings_Order(t *testing.T) {
	grid := wallGrid(t, 5, 5, world.Pos(1, 1), world.Pos(1, 2), world.Pos(1, 3), world.Pos(3, 3))
	got := BorderOpenings(grid)
	want := []Opening{
		{world.Pos(0, 1), world.Pos(1, 1)},
		{world.Pos(0, 2), world.Pos(1, 2)},
		{world.Pos(0, 3), world.Pos(1, 3)},
		{world.Pos(4, 3), world.Pos(3, 3)},
		{world.Pos(1, 0), world.Pos(1, 1)},
		{world.Pos(1, 4), world.Pos(1, 3)},
		{world.Pos(3, 4), world.Pos(3, 3)},
	}
	assert.Equal(t, want, got)
}

func TestPlaceExits_MaximizesDistance(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		grid, rng := carvedMaze(t, seed, 15, 21)
		p, err := PlaceExits(grid, rng)
		require.NoError(t, err)
		require.False(t, p.Degenerate, "seed %d: %s", seed, p.Reason)

		dist := pathfinding.Distances(grid, p.Entrance.Inner)
		for _, o := range BorderOpenings(grid) {
			if o.Border == p.Entrance.Border {
				continue
			}
			if d, ok := dist[o.Inner]; ok && d > p.Distance {
				t.Errorf("seed %d: opening %v at distance %d beats exit %v at %d",
					seed, o.Border, d, p.Exit.Border, p.Distance)
			}
		}
	}
}

func TestPlaceExits_AssignsRoles(t *testing.T) {
	grid, rng := carvedMaze(t, 3, 11, 11)
	p, err := PlaceExits(grid, rng)
	require.NoError(t, err)

	start, ok := grid.Start()
	require.True(t, ok)
	player, ok := grid.Player()
	require.True(t, ok)
	goal, ok := grid.Goal()
	require.True(t, ok)

	assert.Equal(t, p.Entrance.Border, start)
	assert.Equal(t, start, player)
	assert.Equal(t, p.Exit.Border, goal)
	assert.NotEqual(t, start, goal)
	assert.True(t, grid.IsOnPerimeter(start))
	assert.True(t, grid.IsOnPerimeter(goal))

	res, err := pathfinding.FullPath(grid, start, goal, nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, p.Distance+2, res.Length(), "path runs border, inner ... inner, border")
	assert.NoError(t, generator.VerifyPerfect(grid))
}

func TestPlaceExits_Reproducible(t *testing.T) {
	a, rngA := carvedMaze(t, 77, 13, 17)
	b, rngB := carvedMaze(t, 77, 13, 17)
	pa, err := PlaceExits(a, rngA)
	require.NoError(t, err)
	pb, err := PlaceExits(b, rngB)
	require.NoError(t, err)

	assert.Equal(t, pa, pb)
	assert.True(t, a.Equal(b))
}

func TestPlaceExits_NoOpeningsFallback(t *testing.T) {
	grid := wallGrid(t, 5, 5)
	p, err := PlaceExits(grid, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.True(t, p.Degenerate)
	assert.Equal(t, 0, p.Entrance.Border.Row)
	assert.Equal(t, 1, p.Entrance.Border.Col%2)
	assert.Equal(t, -1, p.Distance)
	assert.Equal(t, p.Entrance, p.Exit)

	cell, err := grid.Cell(p.Entrance.Border)
	require.NoError(t, err)
	assert.False(t, cell.IsWall())
	assert.True(t, cell.Role.Has(world.RoleStart|world.RoleGoal|world.RolePlayer))
}

func TestPlaceExits_UnreachableFallback(t *testing.T) {
	// two dead-end stubs with no connection between them
	grid := wallGrid(t, 5, 5, world.Pos(1, 2), world.Pos(3, 2))
	p, err := PlaceExits(grid, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	assert.True(t, p.Degenerate)
	assert.Equal(t, -1, p.Distance)
	assert.NotEqual(t, p.Entrance.Border, p.Exit.Border)
	assert.ElementsMatch(t,
		[]world.Position{world.Pos(0, 2), world.Pos(4, 2)},
		[]world.Position{p.Entrance.Border, p.Exit.Border})
}

func TestPlaceExits_TooSmall(t *testing.T) {
	_, err := PlaceExits(world.NewGrid(2, 2), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, generator.ErrGridTooSmall)
}

func TestSetupMaze_FlagsUnsolvable(t *testing.T) {
	grid := wallGrid(t, 5, 5, world.Pos(1, 2), world.Pos(3, 2))
	require.NoError(t, grid.SetMarker(world.Pos(1, 2), world.MarkerPath))

	p, err := SetupMaze(grid, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.True(t, p.Degenerate)
	assert.Zero(t, grid.Count(func(c world.Cell) bool { return c.Marker != world.MarkerNone }))
	assert.ErrorIs(t, CheckSolvable(grid), ErrUnsolvable)
}

func TestSetupMaze_GeneratedMazeIsSolvable(t *testing.T) {
	grid, rng := carvedMaze(t, 12, 25, 41)
	p, err := SetupMaze(grid, rng)
	require.NoError(t, err)
	assert.False(t, p.Degenerate)
	assert.NoError(t, CheckSolvable(grid))
}

func TestCheckSolvable_MissingRole(t *testing.T) {
	grid := world.NewGrid(3, 3)
	assert.ErrorIs(t, CheckSolvable(grid), ErrMissingRole)
}
