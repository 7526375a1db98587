package network

// Category classifies a node for presentation purposes (grouping, colors).
// Categories never influence route or criticality computations.
type Category string

const (
	// CategoryDepot marks a distribution center, the usual route origin.
	CategoryDepot Category = "depot"
	// CategoryCustomer marks a delivery destination.
	CategoryCustomer Category = "customer"
	// CategoryJunction marks an intersection with no demand of its own.
	CategoryJunction Category = "junction"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDepot, CategoryCustomer, CategoryJunction:
		return true
	}
	return false
}

// Node is a named location in the network.
type Node struct {
	ID       string   // Unique identifier (also used as display label)
	Category Category // Presentation grouping (depot, customer, junction)
}

// Edge is an undirected link between two distinct nodes.
// The (U, V) pair is stored in normalized order (U < V lexicographically)
// so that an edge compares equal regardless of insertion direction.
type Edge struct {
	U      string  // Smaller endpoint ID
	V      string  // Larger endpoint ID
	Weight float64 // Traversal cost, always > 0
}

// Touches reports whether id is one of the edge's endpoints.
func (e Edge) Touches(id string) bool { return e.U == id || e.V == id }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	}
	return ""
}

// Neighbor is one entry in a node's adjacency list: the node on the far end
// of an incident edge, the edge weight, and the index of that edge in the
// network's edge slice. The index lets traversals distinguish the edge they
// arrived through from a genuine back-edge.
type Neighbor struct {
	To     string
	Weight float64
	Edge   int
}

// normalize orders an endpoint pair so that u < v.
func normalize(u, v string) (string, string) {
	if u > v {
		return v, u
	}
	return u, v
}
