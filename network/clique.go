package network

import (
	"sort"
	"strings"
)

// undirected returns a snapshot of links ignoring direction.
func (n *Network) undirected() map[string]map[string]struct{} {
	n.mu.RLock()
	defer n.mu.RUnlock()
	adj := make(map[string]map[string]struct{}, len(n.adjacency))
	for a := range n.adjacency {
		adj[a] = make(map[string]struct{})
	}
	for a, out := range n.adjacency {
		for b := range out {
			adj[a][b] = struct{}{}
			adj[b][a] = struct{}{}
		}
	}
	return adj
}

// Triangles returns every triple of mutually linked nodes where at least one
// member starts with prefix. An empty prefix matches every triangle.
// Members are sorted inside each triple and triples are sorted.
// Link direction is ignored.
func (n *Network) Triangles(prefix string) [][3]string {
	adj := n.undirected()
	nodes := sortedKeys(adj)

	var out [][3]string
	for _, a := range nodes {
		for _, b := range sortedKeys(adj[a]) {
			if b <= a {
				continue
			}
			for _, c := range sortedKeys(adj[b]) {
				if c <= b {
					continue
				}
				if _, ok := adj[a][c]; !ok {
					continue
				}
				if strings.HasPrefix(a, prefix) || strings.HasPrefix(b, prefix) || strings.HasPrefix(c, prefix) {
					out = append(out, [3]string{a, b, c})
				}
			}
		}
	}

	return out
}

// cliqueFrame is one pending Bron–Kerbosch call.
type cliqueFrame struct {
	r, p, x []string
}

// LargestClique returns the members of a maximum clique in sorted order.
// Among cliques of equal size the one with the smallest joined name wins.
// Link direction is ignored.
//
// Bron–Kerbosch with pivoting runs on an explicit stack.
// Complexity: O(3^(V/3)) worst case.
func (n *Network) LargestClique() []string {
	adj := n.undirected()
	var best []string
	stack := []cliqueFrame{{p: sortedKeys(adj)}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.p) == 0 {
			if len(f.x) == 0 && better(f.r, best) {
				best = f.r
			}
			continue
		}
		if len(f.r)+len(f.p) < len(best) {
			continue
		}

		pivot := choosePivot(adj, f.p, f.x)
		p, x := f.p, f.x
		for _, v := range f.p {
			if _, ok := adj[pivot][v]; ok {
				continue
			}
			r := make([]string, len(f.r), len(f.r)+1)
			copy(r, f.r)
			stack = append(stack, cliqueFrame{
				r: append(r, v),
				p: intersect(p, adj[v]),
				x: intersect(x, adj[v]),
			})
			p = remove(p, v)
			x = append(append([]string(nil), x...), v)
		}
	}
	sort.Strings(best)

	return best
}

// Password joins the largest clique with commas.
func (n *Network) Password() string {
	return strings.Join(n.LargestClique(), ",")
}

// better reports whether clique a beats b.
func better(a, b []string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	return strings.Join(sa, ",") < strings.Join(sb, ",")
}

// choosePivot picks the node of p ∪ x with the most neighbors in p.
func choosePivot(adj map[string]map[string]struct{}, p, x []string) string {
	pivot, most := "", -1
	for _, set := range [][]string{p, x} {
		for _, u := range set {
			cnt := 0
			for _, v := range p {
				if _, ok := adj[u][v]; ok {
					cnt++
				}
			}
			if cnt > most {
				pivot, most = u, cnt
			}
		}
	}
	return pivot
}

func intersect(s []string, with map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := with[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func remove(s []string, v string) []string {
	out := make([]string, 0, len(s))
	for _, w := range s {
		if w != v {
			out = append(out, w)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
