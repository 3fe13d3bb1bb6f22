package grid

// neighborOffsets lists the 4-connected moves as (dRow, dCol) in the order
// neighbors are cached: down, up, right, left. The order decides which of
// several equal-cost paths a search discovers first.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// RefreshNeighbors recomputes the cached neighbor list of the cell at
// (row,col): in-bounds, non-Barrier cells reachable by one orthogonal step.
// Returns ErrOutOfBounds for an invalid coordinate.
// Complexity: O(1).
func (g *Grid) RefreshNeighbors(row, col int) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	g.refresh(g.index(row, col))

	return nil
}

// RefreshAllNeighbors recomputes every cell's neighbor cache. It must run
// after the last Barrier edit and before a search; the engine trusts the
// caches and never re-reads roles while expanding.
// Complexity: O(rows²).
func (g *Grid) RefreshAllNeighbors() {
	for i := range g.cells {
		g.refresh(i)
	}
}

// Neighbors returns the cached neighbor indices of the cell at arena index
// idx. The slice is owned by the grid and must not be modified.
func (g *Grid) Neighbors(idx int) []int {
	return g.cells[idx].neighbors
}

func (g *Grid) refresh(idx int) {
	cell := &g.cells[idx]
	nbrs := cell.neighbors[:0]
	for _, d := range neighborOffsets {
		r, c := cell.row+d[0], cell.col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		j := g.index(r, c)
		if g.cells[j].role == Barrier {
			continue
		}
		nbrs = append(nbrs, j)
	}
	cell.neighbors = nbrs
}
