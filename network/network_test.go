package network_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/network"
)

const lan = `kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn
`

func parseLAN(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.Parse(strings.NewReader(lan))
	require.NoError(t, err)
	return n
}

func TestParse(t *testing.T) {
	n := parseLAN(t)
	assert.Len(t, n.Nodes(), 16)
	assert.Equal(t, 32, n.LinkCount())
	assert.True(t, n.HasLink("kh", "tc"))
	assert.True(t, n.HasLink("tc", "kh"), "undirected links are mirrored")
	assert.False(t, n.HasLink("kh", "aq"))

	_, err := network.Parse(strings.NewReader("a-b\nbogus\n"))
	assert.ErrorIs(t, err, network.ErrBadLink)
	_, err = network.Parse(strings.NewReader("a-b-c\n"))
	assert.ErrorIs(t, err, network.ErrBadLink)
	_, err = network.Parse(strings.NewReader("a-a\n"))
	assert.ErrorIs(t, err, network.ErrLoopNotAllowed)

	dup, err := network.Parse(strings.NewReader("a-b\nb-a\n\na-b\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, dup.LinkCount())
}

func TestTriangles(t *testing.T) {
	n := parseLAN(t)
	assert.Len(t, n.Triangles(""), 12)

	withT := n.Triangles("t")
	require.Len(t, withT, 7)
	assert.Equal(t, [3]string{"co", "de", "ta"}, withT[0])
	for _, tri := range withT {
		assert.True(t, tri[0] < tri[1] && tri[1] < tri[2], "%v not sorted", tri)
	}
}

func TestLargestClique(t *testing.T) {
	n := parseLAN(t)
	assert.Equal(t, []string{"co", "de", "ka", "ta"}, n.LargestClique())
	assert.Equal(t, "co,de,ka,ta", n.Password())

	assert.Empty(t, network.New().Password())

	// Two disjoint triangles: the alphabetically first one wins.
	tie, err := network.Parse(strings.NewReader("x-y\ny-z\nx-z\nb-c\nc-a\na-b\n"))
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", tie.Password())
}

// TestLargestClique_Complete checks a complete graph is returned whole.
func TestLargestClique_Complete(t *testing.T) {
	n := network.New()
	const size = 9
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			require.NoError(t, n.AddLink(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", j), 0))
		}
	}
	require.NoError(t, n.AddLink("n0", "spur", 0))
	assert.Len(t, n.LargestClique(), size)
}

func TestRoute_Hops(t *testing.T) {
	n := parseLAN(t)
	cost, path, err := n.Route("kh", "ka")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)
	assert.Equal(t, []string{"kh", "ta", "ka"}, path)

	cost, path, err = n.Route("kh", "kh")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
	assert.Equal(t, []string{"kh"}, path)

	_, _, err = n.Route("kh", "zz")
	assert.ErrorIs(t, err, network.ErrNodeNotFound)
}

func TestRoute_WeightedDirected(t *testing.T) {
	n := network.New(network.WithDirected(), network.WithWeighted())
	require.True(t, n.Directed())
	require.True(t, n.Weighted())
	require.NoError(t, n.AddLink("a", "b", 5))
	require.NoError(t, n.AddLink("a", "c", 1))
	require.NoError(t, n.AddLink("c", "b", 1))
	require.NoError(t, n.AddNode("island"))

	cost, path, err := n.Route("a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)
	assert.Equal(t, []string{"a", "c", "b"}, path)

	_, _, err = n.Route("b", "a")
	assert.ErrorIs(t, err, network.ErrNoRoute)
	_, _, err = n.Route("a", "island")
	assert.ErrorIs(t, err, network.ErrNoRoute)
}

func TestAddLink_Errors(t *testing.T) {
	n := network.New()
	assert.ErrorIs(t, n.AddLink("", "b", 0), network.ErrEmptyNodeID)
	assert.ErrorIs(t, n.AddLink("a", "b", 3), network.ErrBadWeight)
	assert.ErrorIs(t, n.AddLink("a", "a", 0), network.ErrLoopNotAllowed)
	require.NoError(t, n.AddLink("a", "b", 0))
	assert.ErrorIs(t, n.AddLink("b", "a", 0), network.ErrDuplicateLink)
	assert.ErrorIs(t, n.AddNode(""), network.ErrEmptyNodeID)

	w := network.New(network.WithWeighted())
	assert.ErrorIs(t, w.AddLink("a", "b", -1), network.ErrBadWeight)
}

func TestReachable(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddLink("a", "b", 0))
	require.NoError(t, n.AddLink("b", "c", 0))
	require.NoError(t, n.AddLink("x", "y", 0))

	got, err := n.Reachable("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, err = n.Reachable("zz")
	assert.ErrorIs(t, err, network.ErrNodeNotFound)
}

// TestConcurrentAddLink ensures concurrent AddLink calls are safe.
func TestConcurrentAddLink(t *testing.T) {
	n := network.New()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, n.AddLink("hub", fmt.Sprintf("v%d", id), 0))
		}(i)
	}
	wg.Wait()

	assert.Len(t, n.Neighbors("hub"), num)
	assert.Equal(t, num, n.LinkCount())
}
