// Package search defines the types, options and sentinel errors of the
// best-first search engine.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by FindShortest and Distances.
var (
	// ErrNilNeighbors indicates that the Problem carries no neighbor function.
	ErrNilNeighbors = errors.New("search: neighbor function is nil")

	// ErrNegativeCost indicates that the neighbor function yielded an edge with a
	// negative cost. Best-first search is undefined on such graphs.
	ErrNegativeCost = errors.New("search: negative edge cost")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("search: negative heuristic estimate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when the expansion budget set by
	// WithMaxExpansions runs out before the search resolves.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)

// Cost is the set of numeric types usable as edge costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is one outgoing transition produced by a neighbor function:
// the state it leads to and the non-negative cost of taking it.
type Edge[S comparable, C Cost] struct {
	To   S
	Cost C
}

// Problem describes an implicit state graph and the query run on it.
//
// Neighbors must be pure: deterministic for a given state, free of side effects,
// and returning a finite list. IsGoal may be nil, in which case the search is
// exhaustive and only Result.Dist is meaningful. Heuristic may be nil (zero
// estimate, plain Dijkstra); when set it must never overestimate the remaining
// cost to the nearest goal.
type Problem[S comparable, C Cost] struct {
	Start     S
	IsGoal    func(S) bool
	Neighbors func(S) []Edge[S, C]
	Heuristic func(S) C
}

// Mode selects when the search stops after reaching a goal.
type Mode int

const (
	// SingleOptimal stops at the first goal popped from the frontier.
	SingleOptimal Mode = iota

	// AllOptimal keeps popping until the frontier priority exceeds the best goal
	// cost, collecting every goal state settled at that cost.
	AllOptimal
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case SingleOptimal:
		return "single-optimal"
	case AllOptimal:
		return "all-optimal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a single search.
type Options struct {
	// Ctx allows cancellation; it is checked once per expansion.
	Ctx context.Context

	// Mode selects single-goal or all-optimal-goals termination.
	Mode Mode

	// TrackPredecessors enables predecessor sets and the optimal-path closure.
	TrackPredecessors bool

	// MaxCost caps the cost of any state placed on the frontier.
	MaxCost float64

	// MaxExpansions, if > 0, bounds the number of expansions.
	MaxExpansions int

	// OnSettle is called every time a state is expanded, with its cost.
	OnSettle func(state any, cost float64)

	// Logger receives debug-level traces.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - SingleOptimal mode, no predecessor tracking
//   - no cost cap and no expansion budget
//   - a no-op OnSettle hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Mode:          SingleOptimal,
		MaxCost:       math.Inf(1),
		MaxExpansions: 0,
		OnSettle:      func(any, float64) {},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the termination mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != SingleOptimal && m != AllOptimal {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithPredecessors enables predecessor tracking. The result then carries
// Preds, Touched and a usable Path.
func WithPredecessors() Option {
	return func(o *Options) {
		o.TrackPredecessors = true
	}
}

// WithMaxCost stops states costlier than limit from entering the frontier.
//
//	limit >= 0: cap
//	limit < 0 or NaN: ErrOptionViolation
func WithMaxCost(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, limit)
			return
		}
		o.MaxCost = limit
	}
}

// WithMaxExpansions fails the search with ErrBudgetExceeded after n expansions.
//
//	n > 0: budget
//	n == 0: explicit no budget
//	n < 0: ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnSettle registers a hook run on every expansion.
func WithOnSettle(fn func(state any, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithLogger routes debug traces to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search.
//
//   - Found: a goal state was reached.
//   - Cost: optimal cost to the nearest goal (zero value when !Found).
//   - Goals: goal states settled at Cost; exactly one in SingleOptimal mode.
//   - Dist: cost at which each expanded state was (last) settled.
//   - Preds: predecessor sets, tracking mode only.
//   - Touched: every state on some optimal path, tracking mode with Found only.
type Result[S comparable, C Cost] struct {
	Found     bool
	Cost      C
	Goals     []S
	Dist      map[S]C
	Preds     map[S][]S
	Touched   map[S]struct{}
	Expanded  int
	Resettled int

	start S
}

// DistanceTo reports the settled cost of s.
func (r *Result[S, C]) DistanceTo(s S) (C, bool) {
	d, ok := r.Dist[s]
	return d, ok
}

// OnOptimalPath reports whether s lies on at least one optimal path.
// It is always false unless predecessors were tracked and a goal was found.
func (r *Result[S, C]) OnOptimalPath(s S) bool {
	_, ok := r.Touched[s]
	return ok
}

// Path returns one optimal path from the start to the first goal, following the
// first recorded predecessor of every state. It returns nil when no goal was
// found or predecessors were not tracked.
func (r *Result[S, C]) Path() []S {
	if !r.Found || r.Preds == nil || len(r.Goals) == 0 {
		return nil
	}
	path := []S{r.Goals[0]}
	seen := map[S]bool{r.Goals[0]: true}
	for cur := r.Goals[0]; cur != r.start; {
		ps := r.Preds[cur]
		if len(ps) == 0 {
			break
		}
		cur = ps[0]
		if seen[cur] {
			// zero-cost cycle in the predecessor graph
			break
		}
		seen[cur] = true
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
