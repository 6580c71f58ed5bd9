package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsearch/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous regions of open cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = open, anything ≥1 = wall
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two regions, listed in breadth-first order.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland computes the fewest walls to remove so the two
// regions above touch.
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("remove %d wall(s), path of %d cells\n", cost, len(path))
	// Output:
	// remove 1 wall(s), path of 3 cells
}

////////////////////////////////////////////////////////////////////////////////
// Example: BestRoute
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_BestRouteTiles prices turns far above steps.
func ExampleGridGraph_BestRouteTiles() {
	gg, _ := gridgraph.Parse(strings.NewReader(`
#######
#....E#
#.###.#
#S....#
#######
`), gridgraph.DefaultGridOptions())

	cost, tiles, _ := gg.BestRouteTiles(gridgraph.DefaultTurnCosts())
	fmt.Println(cost, tiles)
	// Output: 1006 7
}
