package grid

// Distances runs an exhaustive breadth-first search from `from` and returns,
// for every arena index, the number of orthogonal steps on a shortest route,
// or -1 when the cell is unreachable.
//
// Unlike the search engine, Distances reads live roles instead of the
// neighbor caches, so it reflects the grid as it is now even if
// RefreshAllNeighbors was skipped. This makes it a reference oracle for
// shortest-path lengths.
//
// Returns ErrOutOfBounds for an invalid origin.
// Time:   O(rows²).
// Memory: O(rows²) for the distance slice and queue.
func (g *Grid) Distances(from Coord) ([]int, error) {
	if !g.InBounds(from.Row, from.Col) {
		return nil, g.outOfBounds(from.Row, from.Col)
	}
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	src := g.index(from.Row, from.Col)
	dist[src] = 0
	queue := make([]int, 0, len(g.cells))
	queue = append(queue, src)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		cu := &g.cells[u]
		for _, d := range neighborOffsets {
			r, c := cu.row+d[0], cu.col+d[1]
			if !g.InBounds(r, c) {
				continue
			}
			v := g.index(r, c)
			if g.cells[v].role == Barrier || dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist, nil
}
