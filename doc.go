// Package lvlsearch is a generic best-first shortest-path engine for
// implicitly defined state graphs, with adapters for the problem families it
// was built around.
//
// What is in the box?
//
//	A small, pure-Go toolkit that brings together:
//		• search/   : one loop for Dijkstra and A*: lazy decrease-key frontier,
//		               predecessor sets, closure over every optimal path,
//		               re-opening under inconsistent admissible heuristics
//		• bfs/      : unweighted breadth-first walk with depths and parents
//		• gridgraph/: ASCII mazes, facing-aware moves with turn penalties,
//		               open regions, blocking probes and shortcut counting
//		• keypad/   : key-press costs through chains of keypad robots
//		• network/  : node/link topologies, routes, triangles, largest clique
//		• cmd/lvlsearch: CLI running each family over an input file
//
// States are any comparable Go value, costs any integer or float type:
//
//	res, err := search.FindShortest(search.Problem[Point, int]{
//		Start:     start,
//		IsGoal:    func(p Point) bool { return p == end },
//		Neighbors: moves,
//		Heuristic: manhattanTo(end),
//	}, search.WithMode(search.AllOptimal), search.WithPredecessors())
//
// An unreachable goal is a regular result (res.Found == false); negative
// edge costs and negative heuristic values are reported as errors.
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
