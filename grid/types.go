package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a non-positive row count, or a pixel width
	// that rows do not evenly partition into non-empty cells.
	ErrInvalidDimension = errors.New("grid: invalid dimension")
	// ErrOutOfBounds indicates a row or column outside [0, rows).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrRoleConflict indicates an attempt to place a second Start or End.
	ErrRoleConflict = errors.New("grid: role already held by another cell")
	// ErrInvalidRole indicates a Role value outside the known enumeration.
	ErrInvalidRole = errors.New("grid: unknown role")
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrBadLayout indicates an unrecognized rune in a layout.
	ErrBadLayout = errors.New("grid: unrecognized layout rune")
	// ErrInvalidDensity indicates a barrier density outside [0,1].
	ErrInvalidDensity = errors.New("grid: barrier density must lie in [0,1]")
)

// Role is the algorithmic state of a cell. Exactly one holds at any time.
type Role uint8

const (
	// Empty is a passable cell.
	Empty Role = iota
	// Barrier is an impassable cell; it never appears in a neighbor list.
	Barrier
	// Start is the unique search origin.
	Start
	// End is the unique search goal.
	End
	// OnPath is a passable cell that lies on the last reconstructed path.
	OnPath
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Empty:
		return "empty"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	case OnPath:
		return "path"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

func (r Role) valid() bool { return r <= OnPath }

// Mark is a visualization-only annotation written by the search engine.
// Nothing in this module reads it back to make algorithmic decisions.
type Mark uint8

const (
	// MarkNone means the cell has not been touched by a search.
	MarkNone Mark = iota
	// MarkOpen means the cell was pushed onto the frontier.
	MarkOpen
	// MarkClosed means the cell was finalized.
	MarkClosed
)

// String returns the lower-case mark name.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkOpen:
		return "open"
	case MarkClosed:
		return "closed"
	default:
		return fmt.Sprintf("mark(%d)", uint8(m))
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single addressable grid position. Row and column are fixed at
// construction; the role changes only through Grid methods so that the
// Start/End uniqueness invariant holds.
type Cell struct {
	row, col  int
	role      Role
	mark      Mark
	neighbors []int // cached arena indices; see Grid.RefreshNeighbors
}

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column.
func (c *Cell) Col() int { return c.col }

// Pos returns the cell's coordinate.
func (c *Cell) Pos() Coord { return Coord{Row: c.row, Col: c.col} }

// Role returns the cell's current role.
func (c *Cell) Role() Role { return c.role }

// Mark returns the cell's visualization annotation.
func (c *Cell) Mark() Mark { return c.mark }

// IsBarrier reports whether the cell blocks movement.
func (c *Cell) IsBarrier() bool { return c.role == Barrier }

// Grid is a square arena of rows×rows cells stored row-major.
// Adjacency is kept as indices into the arena, never as cell pointers.
//
// Grid is not safe for concurrent use; callers serialize edits and searches.
type Grid struct {
	rows     int
	cellSize int
	cells    []Cell
	start    int // arena index of the Start holder, or -1
	end      int // arena index of the End holder, or -1
}
