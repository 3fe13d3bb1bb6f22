// Package grid models the square search area of gridpath as an arena of
// cells addressed by (row, col).
//
// What:
//
//   - Grid owns a flat, row-major slice of Cells; adjacency is stored as
//     arena indices, so cells never point at each other.
//   - Each Cell carries one Role (Empty, Barrier, Start, End, OnPath) and a
//     separate visualization Mark (None, Open, Closed) written by searches.
//   - At most one Start and one End exist; SetRole reports ErrRoleConflict
//     instead of silently moving an endpoint.
//   - Neighbor lists are 4-connected (down, up, right, left) and cached.
//
// Caller obligation (stale neighbor caches):
//
//	Neighbor caches are rebuilt only by RefreshNeighbors/RefreshAllNeighbors.
//	After adding or removing a Barrier, call RefreshAllNeighbors before the
//	next search. Skipping it does not fail: the search silently walks the
//	grid as it was at the last refresh, possibly through new barriers.
//
// Helpers:
//
//   - Parse / String: ASCII layouts for tests, examples, and scenario files.
//   - Distances:      breadth-first step counts from live roles (oracle).
//   - ScatterBarriers: deterministic random obstacles.
//
// Complexity:
//
//   - Build, Reset, RefreshAllNeighbors, Distances: O(rows²) time and memory.
//   - CellAt, SetRole, RefreshNeighbors:            O(1).
//
// Errors:
//
//   - ErrInvalidDimension: rows <= 0, or width not a positive multiple of rows.
//   - ErrOutOfBounds:      coordinate outside [0, rows).
//   - ErrRoleConflict:     a second Start or End.
//   - ErrInvalidRole:      unknown Role value.
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadLayout: malformed layouts.
//   - ErrInvalidDensity:   ScatterBarriers density outside [0,1].
package grid
