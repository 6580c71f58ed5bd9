package gridgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlsearch/bfs"
)

// FirstBlocking returns the index of the first drop after which to can no
// longer be reached from from on a width×height grid where drops fall one by one.
//
// Reachability is monotone in the number of drops, so the prefix length is
// found by binary search with one breadth-first probe per step.
// Returns ErrNeverBlocked when every drop has fallen and to is still
// reachable, and ErrOutOfBounds for endpoints or drops outside the grid.
func FirstBlocking(width, height int, drops []Point, from, to Point) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrEmptyGrid
	}
	inside := func(p Point) bool { return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height }
	for _, p := range []Point{from, to} {
		if !inside(p) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	// blockedAt holds the index of the earliest drop on each cell.
	blockedAt := make([]int, width*height)
	for i := range blockedAt {
		blockedAt[i] = math.MaxInt
	}
	for i, p := range drops {
		if !inside(p) {
			return 0, fmt.Errorf("%w: drop %d at %v", ErrOutOfBounds, i, p)
		}
		if j := p.Y*width + p.X; i < blockedAt[j] {
			blockedAt[j] = i
		}
	}

	reachable := func(k int) bool {
		open := func(p Point) bool { return inside(p) && blockedAt[p.Y*width+p.X] >= k }
		if !open(from) || !open(to) {
			return false
		}
		// Walk never fails without options.
		res, _ := bfs.Walk(from, func(p Point) []Point {
			out := make([]Point, 0, 4)
			for _, d := range deltas {
				if n := p.Add(d); open(n) {
					out = append(out, n)
				}
			}
			return out
		})
		return res.Reached(to)
	}

	if reachable(len(drops)) {
		return 0, ErrNeverBlocked
	}
	if !reachable(0) {
		return 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}
	// Smallest k in (0, len] with reachable(k) false.
	k := sort.Search(len(drops)+1, func(k int) bool { return !reachable(k) })

	return k - 1, nil
}
