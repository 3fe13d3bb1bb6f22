package grid

import (
	"fmt"
)

// Build constructs an empty rows×rows grid whose cells are pixelWidth/rows
// pixels wide.
// Returns ErrInvalidDimension if rows <= 0, pixelWidth <= 0, or rows does not
// evenly partition pixelWidth into cells at least one pixel wide.
// Neighbor caches start empty; call RefreshAllNeighbors before searching.
// Algorithmic complexity: O(rows²) time and memory.
func Build(rows, pixelWidth int) (*Grid, error) {
	if rows <= 0 || pixelWidth <= 0 {
		return nil, fmt.Errorf("%w: rows=%d, width=%d must be positive", ErrInvalidDimension, rows, pixelWidth)
	}
	if pixelWidth < rows || pixelWidth%rows != 0 {
		return nil, fmt.Errorf("%w: width=%d is not a multiple of rows=%d", ErrInvalidDimension, pixelWidth, rows)
	}
	g := &Grid{
		rows:     rows,
		cellSize: pixelWidth / rows,
	}
	g.Reset()

	return g, nil
}

// Reset replaces every cell with a fresh Empty cell and forgets the
// endpoints. Dimensions are kept.
func (g *Grid) Reset() {
	g.cells = make([]Cell, g.rows*g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			g.cells[g.index(r, c)] = Cell{row: r, col: c}
		}
	}
	g.start, g.end = -1, -1
}

// Rows returns the number of rows, which equals the number of columns.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the side length of one cell in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// Index maps (row,col) to its row-major arena index. The caller must ensure
// the coordinate is in bounds.
func (g *Grid) Index(c Coord) int {
	return g.index(c.Row, c.Col)
}

// Coordinate converts an arena index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.rows, Col: idx % g.rows}
}

// CellAt returns the cell at (row,col), or ErrOutOfBounds.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, g.outOfBounds(row, col)
	}
	return &g.cells[g.index(row, col)], nil
}

// At returns the cell stored at arena index idx. It panics if idx is out of
// range, like a slice access.
func (g *Grid) At(idx int) *Cell {
	return &g.cells[idx]
}

// Start returns the coordinate of the Start cell, if any.
func (g *Grid) Start() (Coord, bool) {
	if g.start < 0 {
		return Coord{}, false
	}
	return g.Coordinate(g.start), true
}

// End returns the coordinate of the End cell, if any.
func (g *Grid) End() (Coord, bool) {
	if g.end < 0 {
		return Coord{}, false
	}
	return g.Coordinate(g.end), true
}

// SetRole assigns role to the cell at (row,col).
//
// Errors (nothing is modified on error):
//   - ErrOutOfBounds if the coordinate lies outside the grid.
//   - ErrInvalidRole if role is not a known Role.
//   - ErrRoleConflict if role is Start or End and another cell already holds it;
//     the caller must clear the previous holder first.
//
// Overwriting the current Start or End holder with another role releases it.
// Changing a cell to or from Barrier does not touch neighbor caches:
// RefreshAllNeighbors must run again before the next search, otherwise the
// search sees the grid as it was at the last refresh.
func (g *Grid) SetRole(row, col int, role Role) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	if !role.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRole, uint8(role))
	}
	idx := g.index(row, col)
	switch {
	case role == Start && g.start >= 0 && g.start != idx:
		return fmt.Errorf("%w: start is at %v", ErrRoleConflict, g.Coordinate(g.start))
	case role == End && g.end >= 0 && g.end != idx:
		return fmt.Errorf("%w: end is at %v", ErrRoleConflict, g.Coordinate(g.end))
	}

	cell := &g.cells[idx]
	if g.start == idx {
		g.start = -1
	}
	if g.end == idx {
		g.end = -1
	}
	cell.role = role
	switch role {
	case Start:
		g.start = idx
	case End:
		g.end = idx
	}

	return nil
}

// ClearCell resets the cell at (row,col) to Empty, releasing Start or End
// if it held one.
func (g *Grid) ClearCell(row, col int) error {
	return g.SetRole(row, col, Empty)
}

// SetMark stores a visualization mark on the cell at arena index idx.
func (g *Grid) SetMark(idx int, m Mark) {
	g.cells[idx].mark = m
}

// ClearMarks resets every cell's mark to MarkNone.
func (g *Grid) ClearMarks() {
	for i := range g.cells {
		g.cells[i].mark = MarkNone
	}
}

// MarkPath sets OnPath on every cell of path except the Start and End
// holders and Barrier cells (a path computed from stale neighbor caches may
// cross one; it keeps its role). All coordinates are validated before any
// cell changes.
func (g *Grid) MarkPath(path []Coord) error {
	for _, c := range path {
		if !g.InBounds(c.Row, c.Col) {
			return g.outOfBounds(c.Row, c.Col)
		}
	}
	for _, c := range path {
		idx := g.index(c.Row, c.Col)
		if idx == g.start || idx == g.end || g.cells[idx].role == Barrier {
			continue
		}
		g.cells[idx].role = OnPath
	}

	return nil
}

// ClearPath turns every OnPath cell back into Empty and clears all marks,
// leaving barriers and endpoints untouched.
func (g *Grid) ClearPath() {
	for i := range g.cells {
		if g.cells[i].role == OnPath {
			g.cells[i].role = Empty
		}
		g.cells[i].mark = MarkNone
	}
}

// index maps (row,col) to a row-major index: row*rows + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.rows + col
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) not in [0,%d)", ErrOutOfBounds, row, col, g.rows)
}
