package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlsearch/bfs"
	"github.com/katalvlaran/lvlsearch/search"
)

// AddNode inserts id if absent.
// Complexity: O(1)
func (n *Network) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ensure(id)

	return nil
}

func (n *Network) ensure(id string) {
	if _, ok := n.adjacency[id]; !ok {
		n.adjacency[id] = make(map[string]int64)
	}
}

// AddLink connects a to b, and b to a unless the network is directed.
// Missing nodes are created.
//
// Errors: ErrEmptyNodeID, ErrBadWeight, ErrLoopNotAllowed, ErrDuplicateLink.
// Complexity: O(1) amortized.
func (n *Network) AddLink(a, b string, weight int64) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 || (!n.weighted && weight != 0) {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrBadWeight, a, b, weight)
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, a)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.adjacency[a][b]; ok {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateLink, a, b)
	}
	n.ensure(a)
	n.ensure(b)
	n.adjacency[a][b] = weight
	if !n.directed {
		n.adjacency[b][a] = weight
	}

	return nil
}

// Parse reads one "a-b" link per line. Blank lines and repeated links are
// skipped. Parse rejects weights, so only unweighted networks can be read.
func Parse(r io.Reader, opts ...Option) (*Network, error) {
	n := New(opts...)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		a, b, ok := strings.Cut(text, "-")
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		if !ok || a == "" || b == "" || strings.Contains(b, "-") {
			return nil, fmt.Errorf("%w on line %d: %q", ErrBadLink, line, text)
		}
		if err := n.AddLink(a, b, 0); err != nil {
			if errors.Is(err, ErrDuplicateLink) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read links: %w", err)
	}

	return n, nil
}

// Nodes returns every node ID in sorted order.
func (n *Network) Nodes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.adjacency))
	for id := range n.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasNode reports whether id exists.
func (n *Network) HasNode(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.adjacency[id]
	return ok
}

// HasLink reports whether a link a→b exists.
func (n *Network) HasLink(a, b string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.adjacency[a][b]
	return ok
}

// LinkCount returns the number of links, counting an undirected link once.
func (n *Network) LinkCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	total := 0
	for _, out := range n.adjacency {
		total += len(out)
	}
	if !n.directed {
		total /= 2
	}
	return total
}

// Neighbors adapts the network to the search engine. Edges are sorted by
// target ID; unweighted links cost 1.
func (n *Network) Neighbors(id string) []search.Edge[string, int64] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]search.Edge[string, int64], 0, len(n.adjacency[id]))
	for to, w := range n.adjacency[id] {
		if !n.weighted {
			w = 1
		}
		out = append(out, search.Edge[string, int64]{To: to, Cost: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// adjacent lists the sorted neighbor IDs of id.
func (n *Network) adjacent(id string) []string {
	edges := n.Neighbors(id)
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

// Reachable lists the nodes reachable from id in breadth-first order.
func (n *Network) Reachable(id string) ([]string, error) {
	if !n.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	res, err := bfs.Walk(id, n.adjacent)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

// Route returns the cheapest route from one node to another and its cost.
func (n *Network) Route(from, to string) (int64, []string, error) {
	for _, id := range []string{from, to} {
		if !n.HasNode(id) {
			return 0, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	res, err := search.FindShortest(search.Problem[string, int64]{
		Start:     from,
		IsGoal:    func(id string) bool { return id == to },
		Neighbors: n.Neighbors,
	}, search.WithPredecessors())
	if err != nil {
		return 0, nil, err
	}
	if !res.Found {
		return 0, nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, from, to)
	}

	return res.Cost, res.Path(), nil
}
