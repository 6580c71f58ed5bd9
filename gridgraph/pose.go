package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/search"
)

// TurnCosts prices moves on a facing-aware grid.
type TurnCosts struct {
	// Step is charged for moving one cell forward.
	Step int
	// Turn is charged for rotating 90° in place.
	Turn int
}

// DefaultTurnCosts returns Step=1, Turn=1000.
func DefaultTurnCosts() TurnCosts {
	return TurnCosts{Step: 1, Turn: 1000}
}

// PoseMoves returns the neighbor function over poses: step forward into an
// open cell, or rotate left or right in place.
func (gg *GridGraph) PoseMoves(tc TurnCosts) func(Pose) []search.Edge[Pose, int] {
	return func(s Pose) []search.Edge[Pose, int] {
		out := make([]search.Edge[Pose, int], 0, 3)
		if next := s.Pos.Add(s.Dir.Delta()); gg.Open(next) {
			out = append(out, search.Edge[Pose, int]{To: Pose{next, s.Dir}, Cost: tc.Step})
		}
		out = append(out,
			search.Edge[Pose, int]{To: Pose{s.Pos, s.Dir.Left()}, Cost: tc.Turn},
			search.Edge[Pose, int]{To: Pose{s.Pos, s.Dir.Right()}, Cost: tc.Turn},
		)
		return out
	}
}

// poseProblem builds the Start→End problem facing East at the start.
func (gg *GridGraph) poseProblem(tc TurnCosts) (search.Problem[Pose, int], error) {
	var p search.Problem[Pose, int]
	if tc.Step < 0 || tc.Turn < 0 {
		return p, fmt.Errorf("%w: step=%d turn=%d", ErrBadCosts, tc.Step, tc.Turn)
	}
	start, err := gg.StartPoint()
	if err != nil {
		return p, err
	}
	end, err := gg.EndPoint()
	if err != nil {
		return p, err
	}
	p.Start = Pose{start, East}
	p.IsGoal = func(s Pose) bool { return s.Pos == end }
	p.Neighbors = gg.PoseMoves(tc)
	// Each forward move shrinks the Manhattan distance by at most one.
	p.Heuristic = func(s Pose) int { return Manhattan(s.Pos, end) * tc.Step }

	return p, nil
}

// BestRoute returns the cheapest Start→End cost when every forward move costs
// tc.Step and every quarter turn costs tc.Turn. The walker starts facing East.
func (gg *GridGraph) BestRoute(tc TurnCosts) (int, error) {
	p, err := gg.poseProblem(tc)
	if err != nil {
		return 0, err
	}
	res, err := search.FindShortest(p)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, gg.Start, gg.End)
	}

	return res.Cost, nil
}

// BestRouteTiles returns the cheapest cost together with the number of
// distinct cells lying on at least one cheapest route.
func (gg *GridGraph) BestRouteTiles(tc TurnCosts) (cost, tiles int, err error) {
	p, err := gg.poseProblem(tc)
	if err != nil {
		return 0, 0, err
	}
	res, err := search.FindShortest(p, search.WithMode(search.AllOptimal), search.WithPredecessors())
	if err != nil {
		return 0, 0, err
	}
	if !res.Found {
		return 0, 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, gg.Start, gg.End)
	}
	cells := make(map[Point]struct{}, len(res.Touched))
	for s := range res.Touched {
		cells[s.Pos] = struct{}{}
	}

	return res.Cost, len(cells), nil
}
