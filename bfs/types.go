// Package bfs provides tunable options and error definitions
// for breadth-first walks over a generic neighbor function.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighbors is returned when no neighbor function is supplied.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a state is dequeued, with its depth.
	// Returning an error aborts the walk and propagates that error.
	OnVisit func(state any, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(any, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in edges) from the start.
//   - Parent: map from state to its predecessor in the BFS tree.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was discovered by the walk.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from the start state to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
