package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures notifications for assertions.
type recordingObserver struct {
	changed []Position
	redraws int
}

func (r *recordingObserver) CellChanged(pos Position) { r.changed = append(r.changed, pos) }
func (r *recordingObserver) Redraw()                  { r.redraws++ }

func TestNewGrid_AllOpen(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("NewGrid(3, 4) dims = %dx%d, want 3x4", g.Rows(), g.Cols())
	}
	g.ForEachCell(func(pos Position, cell Cell) {
		if cell != (Cell{}) {
			t.Errorf("cell %v = %+v, want zero cell", pos, cell)
		}
	})
}

func TestNewGrid_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 5) })
	assert.Panics(t, func() { NewGrid(5, -1) })
}

func TestCell_OutOfRange(t *testing.T) {
	g := NewGrid(2, 2)
	for _, pos := range []Position{Pos(-1, 0), Pos(0, -1), Pos(2, 0), Pos(0, 2)} {
		if _, err := g.Cell(pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Cell(%v) err = %v, want ErrOutOfRange", pos, err)
		}
		if err := g.SetTerrain(pos, Wall); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetTerrain(%v) err = %v, want ErrOutOfRange", pos, err)
		}
		if err := g.SetMarker(pos, MarkerPath); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetMarker(%v) err = %v, want ErrOutOfRange", pos, err)
		}
		if err := g.SetStart(pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetStart(%v) err = %v, want ErrOutOfRange", pos, err)
		}
	}
}

func TestWalkable(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.SetTerrain(Pos(0, 1), Wall))

	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(0, 1), false},
		{Pos(1, 1), true},
		{Pos(2, 0), false},
		{Pos(-1, 0), false},
	}
	for _, tt := range tests {
		if got := g.Walkable(tt.pos); got != tt.want {
			t.Errorf("Walkable(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestNeighbors4_CompassOrder(t *testing.T) {
	g := NewGrid(3, 3)
	got := g.Neighbors4(Pos(1, 1))
	want := []Position{Pos(0, 1), Pos(1, 2), Pos(2, 1), Pos(1, 0)}
	assert.Equal(t, want, got)

	require.NoError(t, g.SetTerrain(Pos(1, 2), Wall))
	assert.Equal(t, []Position{Pos(0, 1), Pos(2, 1), Pos(1, 0)}, g.Neighbors4(Pos(1, 1)))

	// corner only has in-bounds neighbors
	assert.Equal(t, []Position{Pos(0, 1), Pos(1, 0)}, g.Neighbors4(Pos(0, 0)))
}

func TestRoles_UniqueHolder(t *testing.T) {
	g := NewGrid(3, 3)
	require.NoError(t, g.SetStart(Pos(0, 0)))
	require.NoError(t, g.SetStart(Pos(2, 2)))

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, Pos(2, 2), start)

	old, _ := g.Cell(Pos(0, 0))
	assert.Equal(t, RoleNone, old.Role, "previous start holder keeps role")
	assert.Equal(t, 1, g.Count(func(c Cell) bool { return c.Role.Has(RoleStart) }))
}

func TestRoles_PlayerCoincidesWithStart(t *testing.T) {
	g := NewGrid(3, 3)
	require.NoError(t, g.SetRole(Pos(1, 1), RoleStart|RolePlayer))

	cell, _ := g.Cell(Pos(1, 1))
	assert.True(t, cell.Role.Has(RoleStart))
	assert.True(t, cell.Role.Has(RolePlayer))

	require.NoError(t, g.SetPlayer(Pos(1, 2)))
	cell, _ = g.Cell(Pos(1, 1))
	assert.Equal(t, RoleStart, cell.Role)

	player, ok := g.Player()
	require.True(t, ok)
	assert.Equal(t, Pos(1, 2), player)
}

func TestSetRole_ReleasesDroppedFlags(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.SetRole(Pos(0, 0), RoleStart|RolePlayer))
	require.NoError(t, g.SetRole(Pos(0, 0), RoleGoal))

	_, hasStart := g.Start()
	_, hasPlayer := g.Player()
	goal, hasGoal := g.Goal()
	assert.False(t, hasStart)
	assert.False(t, hasPlayer)
	assert.True(t, hasGoal)
	assert.Equal(t, Pos(0, 0), goal)
}

func TestWallRejectsRoleAndMarker(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.SetTerrain(Pos(0, 0), Wall))

	if err := g.SetGoal(Pos(0, 0)); !errors.Is(err, ErrWallCell) {
		t.Errorf("SetGoal(wall) err = %v, want ErrWallCell", err)
	}
	if err := g.SetMarker(Pos(0, 0), MarkerPath); !errors.Is(err, ErrWallCell) {
		t.Errorf("SetMarker(wall, Path) err = %v, want ErrWallCell", err)
	}
	if err := g.SetMarker(Pos(0, 0), MarkerNone); err != nil {
		t.Errorf("SetMarker(wall, None) err = %v, want nil", err)
	}
}

func TestSetTerrainWall_StripsRoleAndMarker(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.SetGoal(Pos(1, 1)))
	require.NoError(t, g.SetMarker(Pos(1, 1), MarkerHint))
	require.NoError(t, g.SetTerrain(Pos(1, 1), Wall))

	cell, _ := g.Cell(Pos(1, 1))
	assert.Equal(t, Cell{Terrain: Wall}, cell)
	_, ok := g.Goal()
	assert.False(t, ok, "goal should be released when its cell becomes a wall")
}

func TestClear_RestoresConstructionState(t *testing.T) {
	g := NewGrid(3, 3)
	require.NoError(t, g.SetTerrain(Pos(0, 1), Wall))
	require.NoError(t, g.SetStart(Pos(0, 0)))
	require.NoError(t, g.SetMarker(Pos(2, 2), MarkerClosed))

	g.Clear()
	assert.True(t, g.Equal(NewGrid(3, 3)))
	_, ok := g.Start()
	assert.False(t, ok)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

func TestClearMarkers_Selective(t *testing.T) {
	g := NewGrid(1, 3)
	require.NoError(t, g.SetMarker(Pos(0, 0), MarkerHint))
	require.NoError(t, g.SetMarker(Pos(0, 1), MarkerPath))
	require.NoError(t, g.SetMarker(Pos(0, 2), MarkerClosed))

	g.ClearMarkers(MarkerHint)
	c0, _ := g.Cell(Pos(0, 0))
	c1, _ := g.Cell(Pos(0, 1))
	assert.Equal(t, MarkerNone, c0.Marker)
	assert.Equal(t, MarkerPath, c1.Marker)

	g.ClearMarkers()
	assert.Zero(t, g.Count(func(c Cell) bool { return c.Marker != MarkerNone }))
}

func TestObserverNotifications(t *testing.T) {
	g := NewGrid(2, 2)
	obs := &recordingObserver{}
	g.SetObserver(obs)

	require.NoError(t, g.SetTerrain(Pos(0, 1), Wall))
	require.NoError(t, g.SetTerrain(Pos(0, 1), Wall)) // no change, no notification
	require.NoError(t, g.SetStart(Pos(0, 0)))
	require.NoError(t, g.SetStart(Pos(1, 1)))

	assert.Equal(t, []Position{Pos(0, 1), Pos(0, 0), Pos(0, 0), Pos(1, 1)}, obs.changed)
	assert.Zero(t, obs.redraws)

	g.Fill(Wall)
	assert.Equal(t, 1, obs.redraws)

	// failed mutations notify nothing
	before := len(obs.changed)
	_ = g.SetGoal(Pos(0, 0))
	_ = g.SetTerrain(Pos(5, 5), Open)
	assert.Equal(t, before, len(obs.changed))
}

func TestClone_IsDeep(t *testing.T) {
	g := NewGrid(2, 2)
	require.NoError(t, g.SetStart(Pos(0, 0)))
	c := g.Clone()
	require.True(t, g.Equal(c))

	require.NoError(t, c.SetTerrain(Pos(1, 1), Wall))
	require.NoError(t, c.SetStart(Pos(0, 1)))
	assert.False(t, g.Equal(c))

	start, _ := g.Start()
	assert.Equal(t, Pos(0, 0), start)
}

func TestIsOnPerimeter(t *testing.T) {
	g := NewGrid(3, 3)
	assert.True(t, g.IsOnPerimeter(Pos(0, 1)))
	assert.True(t, g.IsOnPerimeter(Pos(2, 2)))
	assert.False(t, g.IsOnPerimeter(Pos(1, 1)))
	assert.False(t, g.IsOnPerimeter(Pos(3, 0)))
}
