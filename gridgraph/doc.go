// Package gridgraph treats a 2D grid of cells as a state graph for the
// search engine.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable WallThreshold.
//   - Parse reads ASCII maps ('#', '.', 'S', 'E'); ParsePoints and NewCorrupted
//     build grids from falling obstacles.
//   - Moves and PoseMoves adapt cells and facing-aware poses to search.Edge lists.
//   - ShortestPath, OptimalCells, BestRoute and BestRouteTiles run the engine
//     with admissible distance heuristics.
//   - ConnectedComponents and ExpandIsland analyze open regions and the
//     cheapest wall breaches joining them.
//   - FirstBlocking and Shortcuts probe how the Start→End route changes when
//     walls appear or can be jumped.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ShortestPath, ExpandIsland: O(W×H×d×log(W×H)), Memory: O(W×H).
//   - BestRoute(Tiles): O(4×W×H×log(W×H)).
//   - FirstBlocking: O(W×H×log N) for N drops.
//   - Shortcuts: O(W×H×J²) for jump length J.
//
// Options:
//
//   - GridOptions.WallThreshold: minimum value considered a wall.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadTile, ErrBadPoint: malformed input.
//   - ErrNoStart, ErrNoEnd: map lacks a start or end tile.
//   - ErrOutOfBounds, ErrBlocked: endpoint outside the grid or on a wall.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: the target cannot be reached.
//   - ErrNeverBlocked: no prefix of the drops cuts the route.
package gridgraph
