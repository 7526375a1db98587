// Package network models a weighted, undirected logistics network.
//
// A network is a simple graph: nodes are named locations (depots, customers,
// junctions), edges are two-way links with a positive traversal cost, and at
// most one edge joins any pair of nodes. Networks are assembled through a
// [Builder] and are immutable once built, so every query method on [Network]
// is safe for concurrent use.
//
// # Usage
//
//	b := network.NewBuilder()
//	b.AddNode("Depot", network.CategoryDepot)
//	b.AddNode("Customer_A", network.CategoryCustomer)
//	b.AddEdge("Depot", "Customer_A", 5)
//	net, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, n := range net.Neighbors("Depot") {
//	    fmt.Println(n.To, n.Weight)
//	}
//
// Construction errors (duplicate nodes, duplicate edges, unknown endpoints,
// non-positive weights) are reported by Build; a failed build yields no
// network. Analysis algorithms over networks live in package analyze.
package network
