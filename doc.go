// Package gridpath finds shortest paths on square grids of cells with
// Dijkstra's algorithm or A*.
//
// What is gridpath?
//
//	A small, deterministic path-finding toolkit that brings together:
//		• grid:     square cell arena, roles, barriers, cached 4-neighbors
//		• cost:     step-cost and heuristic models (Uniform, Manhattan)
//		• frontier: min-priority open set with FIFO tie-breaking
//		• search:   one engine for both algorithms, with hooks and cancellation
//		• scenario: YAML scenario files for repeatable runs
//
// The gridpath command (cmd/gridpath) loads a scenario, runs the search,
// and prints the result next to the annotated grid.
//
// Quick start:
//
//	g, _ := grid.Parse(`
//		S.#
//		..#
//		..E`, 10)
//	start, _ := g.Start()
//	end, _ := g.End()
//	res, _ := search.AStar(g, start, end)
//	fmt.Println(res.Cost, res.Path)
//
// Neighbor caches are refreshed by grid.Parse. After editing barriers by
// hand call Grid.RefreshAllNeighbors before the next search: the engine
// trusts the caches and never re-reads roles while it runs.
package gridpath
