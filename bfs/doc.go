// Package bfs provides breadth-first search over implicit graphs.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from a start state.
//   - The graph is any func(S) []S over a comparable state type S.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (edges) from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unweighted shortest paths and reachability in O(V + E) time, without the
//     heap of the weighted search engine.
//   - Flood fills and connected regions for grid adapters.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is reproducible for a deterministic adapter.
//
// Complexity (V = reachable states, E = edges out of them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.Walk(start, neighbors, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrNilNeighbors, ErrOptionViolation, ctx.Err() or a hook error
//	}
//	path, err := res.PathTo(target)
package bfs
