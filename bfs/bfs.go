// Package bfs provides breadth-first search over any comparable state type,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores states in increasing distance from a start state,
// with an optional visit hook, depth limiting, and cancellation.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	neighbors func(S) []S
	opts      Options
	ctx       context.Context
	queue     []queueItem[S]
	head      int
	res       *Result[S]
}

// Walk runs breadth-first search from start, applying any number of
// functional Options. neighbors must be pure and return a finite list.
// Returns ErrNilNeighbors, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or any OnVisit hook error.
func Walk[S comparable](start S, neighbors func(S) []S, opts ...Option) (*Result[S], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start state (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[S]{state: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.state) {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.state
		w.queue = append(w.queue, queueItem[S]{state: nbr, depth: next})
	}
}
