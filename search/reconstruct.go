package search

// Reconstruct walks cameFrom backwards from end until it reaches a cell with
// no predecessor (the start) and returns the arena indices from start to end,
// both inclusive.
//
// cameFrom[i] is the predecessor of i, or -1. Reconstruct returns nil when
// end is out of range or has no predecessor, which happens only if it is
// called before a search reached end. A predecessor chain longer than
// len(cameFrom) is treated as corrupt and also yields nil.
//
// Complexity: O(path length).
func Reconstruct(cameFrom []int, end int) []int {
	if end < 0 || end >= len(cameFrom) || cameFrom[end] < 0 {
		return nil
	}
	path := []int{end}
	for cur := cameFrom[end]; cur >= 0; cur = cameFrom[cur] {
		if len(path) >= len(cameFrom) {
			return nil
		}
		path = append(path, cur)
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
