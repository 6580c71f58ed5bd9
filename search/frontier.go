package search

import "container/heap"

// entry is one frontier record: a state, its cost-so-far and its priority.
// seq is the insertion order, used as the final tie-break.
type entry[S comparable, C Cost] struct {
	state    S
	cost     C
	priority C
	seq      uint64
}

// frontier is a min-heap of *entry ordered by priority, then cost, then seq.
// Decrease-key is lazy: an improved state is pushed again and the outdated
// entry is dropped when popped.
type frontier[S comparable, C Cost] struct {
	items []*entry[S, C]
	next  uint64
}

// Len returns the number of entries in the heap.
func (f *frontier[S, C]) Len() int { return len(f.items) }

// Less orders by priority, then by smaller cost-so-far, then FIFO.
func (f *frontier[S, C]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (f *frontier[S, C]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push is called by heap.Push; x must be of type *entry.
func (f *frontier[S, C]) Push(x any) { f.items = append(f.items, x.(*entry[S, C])) }

// Pop is called by heap.Pop.
func (f *frontier[S, C]) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]

	return it
}

// insert stamps the next sequence number and pushes the entry.
func (f *frontier[S, C]) insert(state S, cost, priority C) {
	heap.Push(f, &entry[S, C]{state: state, cost: cost, priority: priority, seq: f.next})
	f.next++
}

// extract removes and returns the entry of minimum priority.
func (f *frontier[S, C]) extract() *entry[S, C] {
	return heap.Pop(f).(*entry[S, C])
}

// peek returns the entry of minimum priority without removing it.
func (f *frontier[S, C]) peek() *entry[S, C] {
	return f.items[0]
}
