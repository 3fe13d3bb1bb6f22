package grid

import (
	"fmt"
	"strings"
)

// Layout runes used by Parse and String.
const (
	runeEmpty   = '.'
	runeBarrier = '#'
	runeStart   = 'S'
	runeEnd     = 'E'
	runePath    = '*'
	runeOpen    = 'o'
	runeClosed  = 'x'
)

// Parse builds a grid from an ASCII layout, one line per row:
//
//	'.' empty    '#' barrier    'S' start    'E' end    '*' on path
//	'o' empty, marked open      'x' empty, marked closed
//
// Blank lines and surrounding spaces are ignored. The layout must be
// square; every cell is cellSize pixels wide. Neighbor caches are refreshed
// before returning.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrInvalidDimension (not square or
// cellSize <= 0), ErrBadLayout, ErrRoleConflict (two S or two E).
func Parse(layout string, cellSize int) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	for _, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
	}
	if len(lines) != w {
		return nil, fmt.Errorf("%w: layout is %d×%d, want square", ErrInvalidDimension, len(lines), w)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %d must be positive", ErrInvalidDimension, cellSize)
	}

	g, err := Build(w, w*cellSize)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range []byte(line) {
			role, mark, ok := decodeRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadLayout, ch, r, c)
			}
			if err = g.SetRole(r, c, role); err != nil {
				return nil, err
			}
			g.cells[g.index(r, c)].mark = mark
		}
	}
	g.RefreshAllNeighbors()

	return g, nil
}

// String renders the grid with the same runes Parse accepts, one row per
// line, each line terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.rows + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			sb.WriteByte(encodeCell(&g.cells[g.index(r, c)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func decodeRune(ch byte) (Role, Mark, bool) {
	switch ch {
	case runeEmpty:
		return Empty, MarkNone, true
	case runeBarrier:
		return Barrier, MarkNone, true
	case runeStart:
		return Start, MarkNone, true
	case runeEnd:
		return End, MarkNone, true
	case runePath:
		return OnPath, MarkNone, true
	case runeOpen:
		return Empty, MarkOpen, true
	case runeClosed:
		return Empty, MarkClosed, true
	}
	return Empty, MarkNone, false
}

func encodeCell(c *Cell) byte {
	switch c.role {
	case Barrier:
		return runeBarrier
	case Start:
		return runeStart
	case End:
		return runeEnd
	case OnPath:
		return runePath
	}
	switch c.mark {
	case MarkOpen:
		return runeOpen
	case MarkClosed:
		return runeClosed
	}
	return runeEmpty
}
