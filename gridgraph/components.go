package gridgraph

import (
	"github.com/katalvlaran/lvlsearch/bfs"
)

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] < WallThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in breadth-first order from its lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if !gg.Open(p) || seen[gg.index(x, y)] {
				continue
			}
			// Walk never fails without options.
			res, _ := bfs.Walk(p, gg.OpenNeighbors)
			comp := make([]int, 0, len(res.Order))
			for _, c := range res.Order {
				i := gg.index(c.X, c.Y)
				seen[i] = true
				comp = append(comp, i)
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
