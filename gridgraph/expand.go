package gridgraph

import (
	"github.com/katalvlaran/lvlsearch/search"
)

// source is the virtual state linking every cell of the source component.
var source = Point{-1, -1}

// ExpandIsland finds a minimum‐conversion path of wall cells to connect any
// cell in component srcComp to any cell in component dstComp, as identified by
// ConnectedComponents(). Each wall‐cell conversion costs 1.
// Returns the sequence of cell‐indices (row‐major) representing the path
// (including the start and end open cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Search from a virtual source joined to every srcComp cell at cost 0:
//     • Moving into an open cell → cost 0
//     • Moving into a wall cell  → cost 1
//  3. Stop when any dstComp cell is settled.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H · log(W·H)).
// Memory:     O(W·H) for distance and predecessor maps.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	seeds := make([]search.Edge[Point, int], 0, len(comps[srcComp]))
	for _, i := range comps[srcComp] {
		x, y := gg.Coordinate(i)
		seeds = append(seeds, search.Edge[Point, int]{To: Point{x, y}})
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	res, err := search.FindShortest(search.Problem[Point, int]{
		Start: source,
		IsGoal: func(p Point) bool {
			if p == source {
				return false
			}
			_, ok := dstSet[gg.index(p.X, p.Y)]
			return ok
		},
		Neighbors: func(p Point) []search.Edge[Point, int] {
			if p == source {
				return seeds
			}
			return gg.breachMoves(p)
		},
	}, search.WithPredecessors())
	if err != nil {
		return nil, 0, err
	}
	if !res.Found {
		return nil, 0, ErrNoPath
	}

	cells := res.Path()[1:]
	path = make([]int, len(cells))
	for i, p := range cells {
		path[i] = gg.index(p.X, p.Y)
	}

	return path, res.Cost, nil
}

// breachMoves lists every in-bounds neighbor, charging 1 for entering a wall.
func (gg *GridGraph) breachMoves(p Point) []search.Edge[Point, int] {
	out := make([]search.Edge[Point, int], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Point{p.X + d[0], p.Y + d[1]}
		if !gg.InBounds(n.X, n.Y) {
			continue
		}
		step := 0
		if !gg.Open(n) {
			step = 1
		}
		out = append(out, search.Edge[Point, int]{To: n, Cost: step})
	}

	return out
}
