// Package search implements uniform-cost (Dijkstra) and heuristic (A*)
// shortest-path search on a grid.Grid.
//
// Overview:
//
//   - Run pops the cheapest frontier entry, stops when it is the end cell,
//     finalizes it, and relaxes its cached neighbors, until success,
//     exhaustion, or cancellation.
//   - The cost.Model passed to Run selects the algorithm: cost.Uniform gives
//     Dijkstra, cost.Manhattan gives A*. Both charge 1 per step, so every
//     returned path has the minimum number of steps.
//   - Reconstruct turns the predecessor table into a start..end path.
//
// State machine:
//
//	Initialized ──Run──▶ Running ──end popped──────▶ Succeeded
//	                        │ ────frontier empty───▶ Exhausted
//	                        └─────ctx / poll───────▶ Cancelled
//
// Exhausted and Cancelled are ordinary results with a nil error.
//
// Determinism:
//
//   - The frontier breaks priority ties by push order (earliest first).
//   - Neighbors are expanded in the grid's fixed order: down, up, right, left.
//   - Relaxation requires a strictly smaller cost, so among equal-cost routes
//     the first one discovered is kept.
//
//	Identical grids and endpoints therefore always yield identical paths.
//
// Lazy deletion:
//
//	Improving a cell's cost pushes a new frontier entry; the old one stays and
//	is discarded when popped because the cell is already finalized. This
//	trades frontier size for the absence of decrease-key.
//
// Caller obligations:
//
//   - Call g.RefreshAllNeighbors after the last Barrier edit. The engine reads
//     only the neighbor caches; a stale cache silently yields paths through
//     cells that have since become barriers.
//   - Do not edit the grid while Run executes.
//
// Side effects (visualization only):
//
//   - Pushed cells get grid.MarkOpen, finalized cells grid.MarkClosed.
//   - With path marking (default), path cells other than the endpoints get
//     the grid.OnPath role, and previous OnPath cells are cleared at start.
//   - The OnStep hook runs after each expansion, for rendering.
//
// Complexity:
//
//   - Time:  O(N log N) with N = rows²; each cell enters the frontier at most
//     once per neighbor.
//   - Space: O(N) for scores, predecessors, closed flags, and the frontier.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilModel: nil arguments.
//   - ErrInvalidEndpoints:     out of bounds, identical, or wrong roles.
//   - ErrOptionViolation:      e.g. WithMaxExpansions(-1).
//
// Thread safety:
//
//	Each Run owns its state exclusively. The grid itself is not synchronized;
//	serialize edits and searches externally.
package search
