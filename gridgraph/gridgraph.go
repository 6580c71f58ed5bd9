package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/search"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Open(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] < gg.WallThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// StartPoint returns the 'S' tile, or ErrNoStart.
func (gg *GridGraph) StartPoint() (Point, error) {
	if !gg.hasStart {
		return Point{}, ErrNoStart
	}
	return gg.Start, nil
}

// EndPoint returns the 'E' tile, or ErrNoEnd.
func (gg *GridGraph) EndPoint() (Point, error) {
	if !gg.hasEnd {
		return Point{}, ErrNoEnd
	}
	return gg.End, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Moves is the unit-cost state graph adapter over open cells.
func (gg *GridGraph) Moves(p Point) []search.Edge[Point, int] {
	out := make([]search.Edge[Point, int], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Point{p.X + d[0], p.Y + d[1]}
		if gg.Open(n) {
			out = append(out, search.Edge[Point, int]{To: n, Cost: 1})
		}
	}
	return out
}

// OpenNeighbors lists the open cells adjacent to p.
func (gg *GridGraph) OpenNeighbors(p Point) []Point {
	out := make([]Point, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Point{p.X + d[0], p.Y + d[1]}
		if gg.Open(n) {
			out = append(out, n)
		}
	}
	return out
}

// distanceEstimate is an admissible heuristic toward target for unit moves.
func (gg *GridGraph) distanceEstimate(target Point) func(Point) int {
	if gg.Conn == Conn8 {
		return func(p Point) int { return Chebyshev(p, target) }
	}
	return func(p Point) int { return Manhattan(p, target) }
}

// checkEndpoint validates a route endpoint.
func (gg *GridGraph) checkEndpoint(p Point) error {
	if !gg.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !gg.Open(p) {
		return fmt.Errorf("%w: %v", ErrBlocked, p)
	}
	return nil
}

// ShortestPath returns the fewest-move route between two open cells, guided by
// a Manhattan (Conn4) or Chebyshev (Conn8) heuristic.
// Returns ErrNoPath when to cannot be reached.
func (gg *GridGraph) ShortestPath(from, to Point) (int, []Point, error) {
	for _, p := range []Point{from, to} {
		if err := gg.checkEndpoint(p); err != nil {
			return 0, nil, err
		}
	}
	res, err := search.FindShortest(search.Problem[Point, int]{
		Start:     from,
		IsGoal:    func(p Point) bool { return p == to },
		Neighbors: gg.Moves,
		Heuristic: gg.distanceEstimate(to),
	}, search.WithPredecessors())
	if err != nil {
		return 0, nil, err
	}
	if !res.Found {
		return 0, nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	return res.Cost, res.Path(), nil
}

// Distances returns the move count from from to every reachable open cell.
func (gg *GridGraph) Distances(from Point) (map[Point]int, error) {
	if err := gg.checkEndpoint(from); err != nil {
		return nil, err
	}
	return search.Distances(from, gg.Moves)
}

// OptimalCells returns every cell lying on at least one fewest-move route.
func (gg *GridGraph) OptimalCells(from, to Point) (map[Point]struct{}, error) {
	for _, p := range []Point{from, to} {
		if err := gg.checkEndpoint(p); err != nil {
			return nil, err
		}
	}
	res, err := search.FindShortest(search.Problem[Point, int]{
		Start:     from,
		IsGoal:    func(p Point) bool { return p == to },
		Neighbors: gg.Moves,
		Heuristic: gg.distanceEstimate(to),
	}, search.WithMode(search.AllOptimal), search.WithPredecessors())
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	return res.Touched, nil
}
