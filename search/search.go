// Package search implements a generic best-first shortest-path engine over
// implicitly defined state graphs.
//
// One loop covers Dijkstra's algorithm (no heuristic) and A* (admissible
// heuristic). States are any comparable Go value; the caller supplies a neighbor
// function yielding (next state, cost) pairs, an optional goal predicate and an
// optional heuristic.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for consistent heuristics (each state expanded once,
//     each relaxation may push one heap entry).
//   - Space: O(V + E) for the settled/best maps and the lazy heap.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved states are pushed again, stale entries are
//     dropped on pop by comparing against the best-known cost.
//   - "Settled" is not a barrier. A state reached again at a strictly lower cost
//     is re-opened, which keeps A* optimal under admissible but inconsistent
//     heuristics.
//   - Predecessors are sets: every state reaching a neighbor at its best cost is
//     retained, so the closure from the goals covers all optimal paths.
package search

import (
	"fmt"
	"log/slog"
)

// FindShortest computes the minimal cost from p.Start to any state satisfying
// p.IsGoal.
//
// Returns:
//
//   - res.Found == false with a nil error when no goal is reachable.
//   - ErrNilNeighbors or ErrOptionViolation for invalid input.
//   - ErrNegativeCost or ErrNegativeHeuristic when the adapter breaks its contract.
//   - ErrBudgetExceeded or ctx.Err() when the caller-imposed limits stop the search.
//
// In AllOptimal mode every goal settled at the optimal cost is collected, and
// with WithPredecessors the closure over all optimal paths is exact. In
// SingleOptimal mode the search stops on the first goal pop, so states that tie
// with the goal but were not yet expanded are absent from the closure.
func FindShortest[S comparable, C Cost](p Problem[S, C], opts ...Option) (*Result[S, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if p.Neighbors == nil {
		return nil, ErrNilNeighbors
	}

	r := &runner[S, C]{
		p:       p,
		opts:    cfg,
		log:     cfg.Logger.With(slog.String("component", "search")),
		best:    make(map[S]C),
		settled: make(map[S]C),
		res:     &Result[S, C]{start: p.Start},
	}
	if cfg.TrackPredecessors {
		r.preds = make(map[S][]S)
	}

	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.finish(), nil
}

// Distances runs an exhaustive search from start and returns the minimal cost
// of every reachable state. Options such as WithMaxCost bound the exploration.
func Distances[S comparable, C Cost](start S, neighbors func(S) []Edge[S, C], opts ...Option) (map[S]C, error) {
	res, err := FindShortest(Problem[S, C]{Start: start, Neighbors: neighbors}, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Closure walks backward from the given states along preds and returns every
// state reached, the seeds included. It uses an explicit stack, so arbitrarily
// long predecessor chains are safe.
func Closure[S comparable](preds map[S][]S, from ...S) map[S]struct{} {
	out := make(map[S]struct{}, len(from))
	stack := make([]S, 0, len(from))
	for _, s := range from {
		if _, ok := out[s]; ok {
			continue
		}
		out[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		for _, prev := range preds[cur] {
			if _, ok := out[prev]; ok {
				continue
			}
			out[prev] = struct{}{}
			stack = append(stack, prev)
		}
	}

	return out
}

// runner holds the mutable state of a single search.
type runner[S comparable, C Cost] struct {
	p       Problem[S, C]
	opts    Options
	log     *slog.Logger
	pq      frontier[S, C]
	best    map[S]C   // best known cost, frontier or settled
	settled map[S]C   // cost at which a state was last expanded
	preds   map[S][]S // nil unless tracking
	res     *Result[S, C]
}

// init pushes the start state with cost zero.
func (r *runner[S, C]) init() error {
	var zero C
	h, err := r.estimate(r.p.Start)
	if err != nil {
		return err
	}
	r.best[r.p.Start] = zero
	r.pq.insert(r.p.Start, zero, h)
	r.log.Debug("search started",
		slog.String("mode", r.opts.Mode.String()),
		slog.Bool("predecessors", r.opts.TrackPredecessors),
		slog.Bool("heuristic", r.p.Heuristic != nil))

	return nil
}

// process is the main loop. It terminates when the frontier empties, when a
// goal is popped in SingleOptimal mode, or when the minimum priority exceeds the
// best goal cost in AllOptimal mode.
func (r *runner[S, C]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		if r.res.Found && r.pq.peek().priority > r.res.Cost {
			break
		}

		it := r.pq.extract()
		u, g := it.state, it.cost

		if g > r.best[u] {
			continue // superseded by a cheaper entry
		}
		if done, ok := r.settled[u]; ok && g >= done {
			continue
		}

		if r.p.IsGoal != nil && r.p.IsGoal(u) {
			switch {
			case !r.res.Found || g < r.res.Cost:
				r.res.Found = true
				r.res.Cost = g
				r.res.Goals = []S{u}
			case g == r.res.Cost:
				r.res.Goals = append(r.res.Goals, u)
			}
			if r.opts.Mode == SingleOptimal {
				r.settle(u, g)
				return nil
			}
		}

		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.res.Expanded)
		}
		r.settle(u, g)

		if err := r.relax(u, g); err != nil {
			return err
		}
	}

	return nil
}

// settle records u as expanded at cost g.
func (r *runner[S, C]) settle(u S, g C) {
	if prev, ok := r.settled[u]; ok {
		r.res.Resettled++
		r.log.Debug("state re-settled",
			slog.Any("state", u),
			slog.Any("was", prev),
			slog.Any("now", g))
	}
	r.settled[u] = g
	r.res.Expanded++
	r.opts.OnSettle(u, float64(g))
}

// relax examines every edge out of u, settled at cost g.
// A strictly better cost re-opens the neighbor, settled or not; an equal cost
// only extends its predecessor set. The start never gets a predecessor, and an
// equal-cost link that would close a cycle through u's predecessors is dropped,
// so predecessor sets stay acyclic under zero-cost cycles.
func (r *runner[S, C]) relax(u S, g C) error {
	for _, e := range r.p.Neighbors(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v -> %v cost=%v", ErrNegativeCost, u, e.To, e.Cost)
		}
		v := e.To
		next := g + e.Cost
		if float64(next) > r.opts.MaxCost {
			continue
		}

		cur, seen := r.best[v]
		switch {
		case !seen || next < cur:
			h, err := r.estimate(v)
			if err != nil {
				return err
			}
			r.best[v] = next
			if r.preds != nil {
				r.preds[v] = []S{u}
			}
			r.pq.insert(v, next, next+h)
		case next == cur && r.preds != nil && v != u && v != r.p.Start:
			if r.reaches(u, v, next) {
				continue
			}
			r.addPred(v, u)
		}
	}

	return nil
}

// addPred appends u to the predecessor set of v unless already present.
func (r *runner[S, C]) addPred(v, u S) {
	for _, p := range r.preds[v] {
		if p == u {
			return
		}
	}
	r.preds[v] = append(r.preds[v], u)
}

// reaches reports whether target is u or one of its recorded ancestors.
// Only ancestors whose best cost is at least g can equal a target at cost g,
// so cheaper branches are pruned.
func (r *runner[S, C]) reaches(u, target S, g C) bool {
	seen := map[S]struct{}{u: {}}
	stack := []S{u}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if cur == target {
			return true
		}
		for _, prev := range r.preds[cur] {
			if _, ok := seen[prev]; ok || r.best[prev] < g {
				continue
			}
			seen[prev] = struct{}{}
			stack = append(stack, prev)
		}
	}

	return false
}

// estimate evaluates the heuristic, zero when none is configured.
func (r *runner[S, C]) estimate(s S) (C, error) {
	var zero C
	if r.p.Heuristic == nil {
		return zero, nil
	}
	h := r.p.Heuristic(s)
	if h < 0 {
		return zero, fmt.Errorf("%w: h(%v)=%v", ErrNegativeHeuristic, s, h)
	}

	return h, nil
}

// finish assembles the Result.
func (r *runner[S, C]) finish() *Result[S, C] {
	res := r.res
	res.Dist = r.settled
	if r.preds != nil {
		res.Preds = r.preds
		if res.Found {
			res.Touched = Closure(r.preds, res.Goals...)
		}
	}
	r.log.Debug("search finished",
		slog.Bool("found", res.Found),
		slog.Any("cost", res.Cost),
		slog.Int("goals", len(res.Goals)),
		slog.Int("expanded", res.Expanded),
		slog.Int("resettled", res.Resettled))

	return res
}
