// Package network defines the Network type, its options and sentinel errors.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrBadWeight       - non-zero weight on an unweighted network, or a negative weight.
//	ErrLoopNotAllowed  - link from a node to itself.
//	ErrDuplicateLink   - link already present.
//	ErrBadLink         - malformed "a-b" line.
//	ErrNoRoute         - destination unreachable.
package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyNodeID indicates that a link endpoint is the empty string.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrBadWeight indicates a weight the network cannot hold.
	ErrBadWeight = errors.New("network: bad link weight")

	// ErrLoopNotAllowed indicates a self-link.
	ErrLoopNotAllowed = errors.New("network: self-link not allowed")

	// ErrDuplicateLink indicates the link already exists.
	ErrDuplicateLink = errors.New("network: duplicate link")

	// ErrBadLink indicates a malformed link line.
	ErrBadLink = errors.New("network: malformed link")

	// ErrNoRoute indicates that no route joins the requested nodes.
	ErrNoRoute = errors.New("network: no route")
)

// Option configures a Network before creation.
type Option func(n *Network)

// WithDirected makes links one-way.
func WithDirected() Option {
	return func(n *Network) { n.directed = true }
}

// WithWeighted allows non-zero link weights. Unweighted links cost one hop.
func WithWeighted() Option {
	return func(n *Network) { n.weighted = true }
}

// Network is an explicit node/link topology.
//
// It is safe for concurrent use: mu guards nodes and adjacency.
type Network struct {
	mu sync.RWMutex

	directed bool
	weighted bool

	// adjacency[from][to] = weight
	adjacency map[string]map[string]int64
}

// New creates an empty Network. By default it is undirected and unweighted.
// Complexity: O(1)
func New(opts ...Option) *Network {
	n := &Network{adjacency: make(map[string]map[string]int64)}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Directed reports whether links are one-way.
func (n *Network) Directed() bool { return n.directed }

// Weighted reports whether links carry weights.
func (n *Network) Weighted() bool { return n.weighted }
