package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestBuild_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name        string
		rows, width int
	}{
		{"zero rows", 0, 100},
		{"negative rows", -3, 100},
		{"zero width", 5, 0},
		{"width not a multiple", 5, 501},
		{"width smaller than rows", 5, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Build(tc.rows, tc.width)
			require.ErrorIs(t, err, grid.ErrInvalidDimension)
			assert.Nil(t, g)
		})
	}
}

func TestBuild_Dimensions(t *testing.T) {
	g, err := grid.Build(50, 800)
	require.NoError(t, err)
	assert.Equal(t, 50, g.Rows())
	assert.Equal(t, 16, g.CellSize())
	assert.Equal(t, 2500, g.Len())

	// Every cell knows its own coordinate and starts Empty and unmarked.
	for idx := 0; idx < g.Len(); idx++ {
		c := g.At(idx)
		require.Equal(t, g.Coordinate(idx), c.Pos())
		require.Equal(t, idx, g.Index(c.Pos()))
		require.Equal(t, grid.Empty, c.Role())
		require.Equal(t, grid.MarkNone, c.Mark())
	}
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.End()
	assert.False(t, ok)
}

func TestCellAt_OutOfBounds(t *testing.T) {
	g, err := grid.Build(4, 40)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, err = g.CellAt(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "coord %v", rc)
	}
	c, err := g.CellAt(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Row())
	assert.Equal(t, 2, c.Col())
}

// ------------------------------------------------------------------------
// 2. Roles
// ------------------------------------------------------------------------

func TestSetRole_StartEndUniqueness(t *testing.T) {
	g, err := grid.Build(4, 40)
	require.NoError(t, err)

	require.NoError(t, g.SetRole(0, 0, grid.Start))
	require.NoError(t, g.SetRole(3, 3, grid.End))

	// A second holder is rejected and nothing changes.
	err = g.SetRole(1, 1, grid.Start)
	require.ErrorIs(t, err, grid.ErrRoleConflict)
	c, _ := g.CellAt(1, 1)
	assert.Equal(t, grid.Empty, c.Role())

	err = g.SetRole(2, 2, grid.End)
	require.ErrorIs(t, err, grid.ErrRoleConflict)

	// Re-assigning the same holder is a no-op, not a conflict.
	require.NoError(t, g.SetRole(0, 0, grid.Start))

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, start)
	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{Row: 3, Col: 3}, end)
}

func TestSetRole_OverwriteReleasesEndpoint(t *testing.T) {
	g, err := grid.Build(3, 30)
	require.NoError(t, err)
	require.NoError(t, g.SetRole(0, 0, grid.Start))
	require.NoError(t, g.SetRole(0, 0, grid.Barrier))

	_, ok := g.Start()
	assert.False(t, ok, "overwriting the start holder releases start")
	require.NoError(t, g.SetRole(2, 2, grid.Start))

	require.NoError(t, g.SetRole(1, 1, grid.End))
	require.NoError(t, g.ClearCell(1, 1))
	_, ok = g.End()
	assert.False(t, ok)
	c, _ := g.CellAt(1, 1)
	assert.Equal(t, grid.Empty, c.Role())
}

func TestSetRole_Errors(t *testing.T) {
	g, err := grid.Build(3, 30)
	require.NoError(t, err)

	require.ErrorIs(t, g.SetRole(3, 0, grid.Barrier), grid.ErrOutOfBounds)
	require.ErrorIs(t, g.SetRole(0, 0, grid.Role(42)), grid.ErrInvalidRole)
	require.ErrorIs(t, g.ClearCell(-1, 0), grid.ErrOutOfBounds)
}

func TestRoleAndMarkStrings(t *testing.T) {
	assert.Equal(t, "empty", grid.Empty.String())
	assert.Equal(t, "barrier", grid.Barrier.String())
	assert.Equal(t, "start", grid.Start.String())
	assert.Equal(t, "end", grid.End.String())
	assert.Equal(t, "path", grid.OnPath.String())
	assert.Equal(t, "role(9)", grid.Role(9).String())

	assert.Equal(t, "none", grid.MarkNone.String())
	assert.Equal(t, "open", grid.MarkOpen.String())
	assert.Equal(t, "closed", grid.MarkClosed.String())
	assert.Equal(t, "mark(7)", grid.Mark(7).String())

	assert.Equal(t, "(2,5)", grid.Coord{Row: 2, Col: 5}.String())
}

// ------------------------------------------------------------------------
// 3. Path marking and reset
// ------------------------------------------------------------------------

func TestMarkPath_SkipsEndpointsAndBarriers(t *testing.T) {
	g, err := grid.Parse(`
		S#.
		...
		..E`, 10)
	require.NoError(t, err)

	path := []grid.Coord{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}
	require.NoError(t, g.MarkPath(path))
	assert.Equal(t, "S#.\n.*.\n.*E\n", g.String())

	g.ClearPath()
	assert.Equal(t, "S#.\n...\n..E\n", g.String())
}

func TestMarkPath_ValidatesBeforeWriting(t *testing.T) {
	g, err := grid.Build(3, 30)
	require.NoError(t, err)

	err = g.MarkPath([]grid.Coord{{1, 1}, {5, 5}})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	c, _ := g.CellAt(1, 1)
	assert.Equal(t, grid.Empty, c.Role(), "no cell changes on error")
}

func TestMarksAndReset(t *testing.T) {
	g, err := grid.Parse("S.\n.E", 10)
	require.NoError(t, err)

	g.SetMark(1, grid.MarkOpen)
	g.SetMark(2, grid.MarkClosed)
	assert.Equal(t, "So\nxE\n", g.String())

	g.ClearMarks()
	assert.Equal(t, "S.\n.E\n", g.String())

	g.Reset()
	assert.Equal(t, "..\n..\n", g.String())
	assert.Equal(t, 2, g.Rows())
	_, ok := g.Start()
	assert.False(t, ok)
	assert.Nil(t, g.Neighbors(0), "reset drops neighbor caches")
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		grid.ErrInvalidDimension, grid.ErrOutOfBounds, grid.ErrRoleConflict,
		grid.ErrInvalidRole, grid.ErrEmptyGrid, grid.ErrNonRectangular,
		grid.ErrBadLayout, grid.ErrInvalidDensity,
	}
	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Fatalf("%v must not match %v", all[i], all[j])
			}
		}
	}
}
