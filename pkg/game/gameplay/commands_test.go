package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmaze/pkg/engine/world"
	"gridmaze/pkg/game/state"
)

func TestToggleWall(t *testing.T) {
	g := newOpenGame(t, 3, 3, world.Pos(0, 0), world.Pos(2, 2))
	pos := world.Pos(1, 1)

	terrain, err := ToggleWall(g, pos)
	require.NoError(t, err)
	assert.Equal(t, world.Wall, terrain)
	assert.Equal(t, world.Wall, g.PaintTerrain)
	assert.False(t, g.Grid.Walkable(pos))

	terrain, err = ToggleWall(g, pos)
	require.NoError(t, err)
	assert.Equal(t, world.Open, terrain)
	assert.Equal(t, world.Open, g.PaintTerrain)
	assert.True(t, g.Grid.Walkable(pos))

	assert.Equal(t, world.Changes{Cells: []world.Position{pos}}, g.Changes.Take())
}

func TestToggleWall_ProtectsRoleCells(t *testing.T) {
	g := newOpenGame(t, 3, 3, world.Pos(0, 0), world.Pos(2, 2))
	before := g.Grid.Clone()

	for _, pos := range []world.Position{world.Pos(0, 0), world.Pos(2, 2)} {
		_, err := ToggleWall(g, pos)
		assert.ErrorIs(t, err, ErrProtectedCell)
	}
	assert.True(t, g.Grid.Equal(before))
}

func TestToggleWall_OutOfRange(t *testing.T) {
	g := newOpenGame(t, 3, 3, world.Pos(0, 0), world.Pos(2, 2))
	_, err := ToggleWall(g, world.Pos(5, 5))
	assert.ErrorIs(t, err, world.ErrOutOfRange)
}

func TestPaintWall_SkipsRoleCells(t *testing.T) {
	g := newOpenGame(t, 1, 4, world.Pos(0, 0), world.Pos(0, 3))

	_, err := ToggleWall(g, world.Pos(0, 1))
	require.NoError(t, err)
	for col := 0; col < 4; col++ {
		require.NoError(t, PaintWall(g, world.Pos(0, col)))
	}
	assert.Equal(t, 2, g.Grid.Count(func(c world.Cell) bool { return c.IsWall() }))
	_, ok := g.Grid.Start()
	assert.True(t, ok)
	_, ok = g.Grid.Goal()
	assert.True(t, ok)
}

func TestPaintWall_DragFromRoleCell(t *testing.T) {
	g := newOpenGame(t, 3, 3, world.Pos(0, 0), world.Pos(2, 2))
	wall(t, g, world.Pos(0, 1))

	_, err := ToggleWall(g, world.Pos(1, 1))
	require.NoError(t, err)
	require.Equal(t, world.Wall, g.PaintTerrain)

	// a drag starting on the start cell carries no paint terrain from the earlier toggle
	_, err = ToggleWall(g, world.Pos(0, 0))
	require.ErrorIs(t, err, ErrProtectedCell)
	assert.False(t, g.Painting)

	require.NoError(t, PaintWall(g, world.Pos(0, 1)))
	assert.True(t, g.Grid.Walkable(world.Pos(0, 1)), "first editable cell of the drag is toggled")
	assert.Equal(t, world.Open, g.PaintTerrain)

	require.NoError(t, PaintWall(g, world.Pos(0, 2)))
	assert.True(t, g.Grid.Walkable(world.Pos(0, 2)), "rest of the drag paints the toggled terrain")
}

func TestEditing_BusyWhileGenerating(t *testing.T) {
	g := state.NewGame(9, 9, 1)
	startGenerating(t, g)

	_, err := ToggleWall(g, world.Pos(1, 1))
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, PaintWall(g, world.Pos(1, 1)), ErrBusy)
	_, err = AssignRole(g, world.Pos(1, 1))
	assert.ErrorIs(t, err, ErrBusy)
}

func TestAssignRole_AlternatesStartAndGoal(t *testing.T) {
	g := state.NewGame(3, 3, 1)

	steps := []struct {
		pos  world.Position
		want world.Role
	}{
		{world.Pos(0, 0), world.RoleStart},
		{world.Pos(2, 2), world.RoleGoal},
		{world.Pos(1, 0), world.RoleStart},
		{world.Pos(0, 2), world.RoleGoal},
	}
	for _, s := range steps {
		got, err := AssignRole(g, s.pos)
		require.NoError(t, err)
		if got != s.want {
			t.Errorf("AssignRole(%v) = %v, want %v", s.pos, got, s.want)
		}
	}

	start, _ := g.Grid.Start()
	goal, _ := g.Grid.Goal()
	player, _ := g.Grid.Player()
	assert.Equal(t, world.Pos(1, 0), start)
	assert.Equal(t, world.Pos(0, 2), goal)
	assert.Equal(t, start, player, "placing the start moves the player")
}

func TestAssignRole_FailureKeepsAlternation(t *testing.T) {
	g := state.NewGame(3, 3, 1)
	wall(t, g, world.Pos(1, 1))

	_, err := AssignRole(g, world.Pos(1, 1))
	assert.ErrorIs(t, err, world.ErrWallCell)
	assert.Equal(t, world.RoleStart, g.NextRole)

	role, err := AssignRole(g, world.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, world.RoleStart, role)
}

func TestSetGoal_RejectsStartCell(t *testing.T) {
	g := newOpenGame(t, 3, 3, world.Pos(0, 0), world.Pos(2, 2))
	assert.ErrorIs(t, SetGoal(g, world.Pos(0, 0)), ErrProtectedCell)
	assert.ErrorIs(t, SetStart(g, world.Pos(2, 2)), ErrProtectedCell)
}

func TestSetStart_ResetsSessionAndMarkers(t *testing.T) {
	g := newOpenGame(t, 3, 3, world.Pos(0, 0), world.Pos(2, 2))
	_, err := Move(g, world.East)
	require.NoError(t, err)
	_, err = RequestSolve(g)
	require.NoError(t, err)
	require.NotZero(t, g.Grid.Count(func(c world.Cell) bool { return c.Marker != world.MarkerNone }))
	oldSession := g.Session.ID

	require.NoError(t, SetStart(g, world.Pos(1, 0)))

	assert.Zero(t, g.Session.Moves())
	assert.False(t, g.Session.Running())
	assert.NotEqual(t, oldSession, g.Session.ID)
	assert.Zero(t, g.Grid.Count(func(c world.Cell) bool { return c.Marker != world.MarkerNone }))
	player, _ := g.Grid.Player()
	assert.Equal(t, world.Pos(1, 0), player)
}

func TestMoveCursor_StaysOnGrid(t *testing.T) {
	g := state.NewGame(3, 3, 1)
	g.Cursor = world.Pos(0, 0)

	MoveCursor(g, world.North)
	assert.Equal(t, world.Pos(0, 0), g.Cursor)

	g.Changes.Take()
	MoveCursor(g, world.South)
	assert.Equal(t, world.Pos(1, 0), g.Cursor)
	assert.Equal(t, []world.Position{world.Pos(0, 0), world.Pos(1, 0)}, g.Changes.Take().Cells)
}
