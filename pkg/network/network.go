package network

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyNodeID is returned by [Builder.Build] when a node was added
	// with an empty identifier. All nodes must have non-empty IDs.
	ErrEmptyNodeID = errors.New("node ID must not be empty")

	// ErrInvalidCategory is returned by [Builder.Build] when a node carries
	// a category outside depot, customer, junction.
	ErrInvalidCategory = errors.New("invalid node category")

	// ErrDuplicateNode is returned by [Builder.Build] when two nodes share
	// an ID. Node IDs must be unique across the network.
	ErrDuplicateNode = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [Builder.Build] when an edge references
	// a node that was never added, and by analysis operations when a query
	// names a node absent from the network.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidWeight is returned by [Builder.Build] when an edge weight
	// is zero or negative. Weights are traversal costs and must be > 0.
	ErrInvalidWeight = errors.New("edge weight must be positive")

	// ErrSelfLoop is returned by [Builder.Build] when an edge joins a node
	// to itself. The network is a simple graph.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrDuplicateEdge is returned by [Builder.Build] when a second edge is
	// declared between the same unordered pair of nodes.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Builder accumulates nodes and edges and validates them into an immutable
// [Network]. The zero value is not usable - use [NewBuilder].
//
// AddNode and AddEdge only record the declaration; all structural checks run
// in [Builder.Build] so that a malformed topology fails as a whole rather
// than leaving a half-built network behind. Builder is not safe for
// concurrent use.
type Builder struct {
	nodes []Node
	edges []Edge
}

// NewBuilder creates an empty network builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddNode records a node declaration. Validation happens in Build.
// Returns the builder for chaining.
func (b *Builder) AddNode(id string, category Category) *Builder {
	b.nodes = append(b.nodes, Node{ID: id, Category: category})
	return b
}

// AddEdge records an undirected edge declaration between u and v.
// The endpoint order does not matter. Validation happens in Build.
// Returns the builder for chaining.
func (b *Builder) AddEdge(u, v string, weight float64) *Builder {
	nu, nv := normalize(u, v)
	b.edges = append(b.edges, Edge{U: nu, V: nv, Weight: weight})
	return b
}

// Build validates the accumulated declarations and returns the finished
// network. On the first violation it returns a nil network and one of the
// sentinel errors above, wrapped with the offending node or edge:
//
//   - ErrEmptyNodeID, ErrInvalidCategory, ErrDuplicateNode for nodes
//   - ErrUnknownNode, ErrInvalidWeight, ErrSelfLoop, ErrDuplicateEdge for edges
//
// A failed Build produces nothing; the builder may be corrected and rebuilt.
func (b *Builder) Build() (*Network, error) {
	n := &Network{
		nodes: make(map[string]Node, len(b.nodes)),
		adj:   make(map[string][]Neighbor, len(b.nodes)),
	}

	for _, node := range b.nodes {
		if node.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if !node.Category.Valid() {
			return nil, fmt.Errorf("%w: node %q has category %q", ErrInvalidCategory, node.ID, node.Category)
		}
		if _, exists := n.nodes[node.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, node.ID)
		}
		n.nodes[node.ID] = node
		n.ids = append(n.ids, node.ID)
	}
	slices.Sort(n.ids)

	seen := make(map[[2]string]bool, len(b.edges))
	for _, e := range b.edges {
		if e.U == e.V {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.U)
		}
		if _, ok := n.nodes[e.U]; !ok {
			return nil, fmt.Errorf("%w: edge endpoint %q", ErrUnknownNode, e.U)
		}
		if _, ok := n.nodes[e.V]; !ok {
			return nil, fmt.Errorf("%w: edge endpoint %q", ErrUnknownNode, e.V)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: %s-%s weight=%v", ErrInvalidWeight, e.U, e.V, e.Weight)
		}
		key := [2]string{e.U, e.V}
		if seen[key] {
			return nil, fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, e.U, e.V)
		}
		seen[key] = true

		idx := len(n.edges)
		n.edges = append(n.edges, e)
		n.adj[e.U] = append(n.adj[e.U], Neighbor{To: e.V, Weight: e.Weight, Edge: idx})
		n.adj[e.V] = append(n.adj[e.V], Neighbor{To: e.U, Weight: e.Weight, Edge: idx})
	}

	return n, nil
}

// Network is an immutable weighted undirected graph of named locations.
//
// Networks are produced by [Builder.Build]. All methods are read-only and
// safe for concurrent use once Build has returned.
type Network struct {
	nodes map[string]Node
	ids   []string // sorted node IDs for deterministic iteration
	edges []Edge
	adj   map[string][]Neighbor
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// HasNode reports whether id names a node in the network.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]
	return ok
}

// Node returns the node with the given ID and true, or a zero Node and false.
func (n *Network) Node(id string) (Node, bool) {
	node, ok := n.nodes[id]
	return node, ok
}

// Category returns the category of the named node, or "" if it is unknown.
func (n *Network) Category(id string) Category {
	return n.nodes[id].Category
}

// NodeIDs returns all node IDs in lexicographic order.
// The returned slice is a copy and may be modified freely.
func (n *Network) NodeIDs() []string { return slices.Clone(n.ids) }

// NodesByCategory returns the IDs of all nodes with the given category,
// in lexicographic order.
func (n *Network) NodesByCategory(c Category) []string {
	var out []string
	for _, id := range n.ids {
		if n.nodes[id].Category == c {
			out = append(out, id)
		}
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (n *Network) Edges() []Edge { return slices.Clone(n.edges) }

// Neighbors returns the adjacency list of the named node: one entry per
// incident edge. Returns nil for unknown or isolated nodes. The returned
// slice is shared - treat it as read-only.
func (n *Network) Neighbors(id string) []Neighbor { return n.adj[id] }

// Degree returns the number of edges incident to the named node.
func (n *Network) Degree(id string) int { return len(n.adj[id]) }
