package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleAStar finds the way around a wall with a single gap at the bottom.
// Closed cells are printed as 'x', open ones as 'o', the path as '*'.
func ExampleAStar() {
	g, err := grid.Parse(`
		S.#..
		..#..
		..#..
		..#..
		....E`, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.Start()
	end, _ := g.End()

	res, err := search.AStar(g, start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Cost, res.Expanded)
	fmt.Println(res.Path)
	fmt.Print(g)
	// Output:
	// succeeded 8 12
	// [(0,0) (1,0) (2,0) (3,0) (4,0) (4,1) (4,2) (4,3) (4,4)]
	// Sx#..
	// *x#..
	// *x#..
	// *x#o.
	// ****E
}

// ExampleDijkstra shows that an unreachable end is a normal outcome.
func ExampleDijkstra() {
	g, _ := grid.Parse(`
		S#.
		#..
		..E`, 10)
	res, err := search.Dijkstra(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	fmt.Println(res.Status, res.Found(), err)
	// Output:
	// exhausted false <nil>
}
