// Package topology loads network definitions from TOML files and provides
// the canonical example network used by the CLI demo.
//
// A topology file declares nodes and edges:
//
//	name = "city-south"
//
//	[[nodes]]
//	id = "Depot"
//	category = "depot"
//
//	[[edges]]
//	from = "Depot"
//	to = "Junction_1"
//	weight = 5.0
//
// Malformed declarations surface the construction errors from package
// network (duplicate nodes or edges, unknown endpoints, non-positive
// weights); a file that fails to build yields no network at all.
package topology

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/routegraph/routegraph/pkg/network"
)

// Document is the on-disk TOML shape of a network definition.
type Document struct {
	Name  string     `toml:"name"`
	Nodes []NodeDecl `toml:"nodes"`
	Edges []EdgeDecl `toml:"edges"`
}

// NodeDecl declares one node.
type NodeDecl struct {
	ID       string `toml:"id"`
	Category string `toml:"category"`
}

// EdgeDecl declares one undirected weighted edge.
type EdgeDecl struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Build validates the document and assembles the network.
func (d Document) Build() (*network.Network, error) {
	b := network.NewBuilder()
	for _, n := range d.Nodes {
		b.AddNode(n.ID, network.Category(n.Category))
	}
	for _, e := range d.Edges {
		b.AddEdge(e.From, e.To, e.Weight)
	}
	return b.Build()
}

// Parse decodes a TOML topology document and builds the network.
func Parse(data []byte) (*network.Network, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode topology: %w", err)
	}
	return doc.Build()
}

// LoadFile reads and builds a network from a TOML topology file.
func LoadFile(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	net, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}

// Canonical returns the built-in demonstration network: one depot, three
// customers, three junctions, and ten weighted links. Weights are travel
// times in minutes.
func Canonical() *network.Network {
	b := network.NewBuilder()
	b.AddNode("Depot", network.CategoryDepot)
	b.AddNode("Customer_A", network.CategoryCustomer)
	b.AddNode("Customer_B", network.CategoryCustomer)
	b.AddNode("Customer_C", network.CategoryCustomer)
	b.AddNode("Junction_1", network.CategoryJunction)
	b.AddNode("Junction_2", network.CategoryJunction)
	b.AddNode("Junction_3", network.CategoryJunction)

	b.AddEdge("Depot", "Junction_1", 5)
	b.AddEdge("Depot", "Junction_2", 7)
	b.AddEdge("Junction_1", "Junction_3", 3)
	b.AddEdge("Junction_1", "Customer_A", 4)
	b.AddEdge("Junction_2", "Junction_3", 4)
	b.AddEdge("Junction_2", "Customer_B", 6)
	b.AddEdge("Junction_3", "Customer_A", 2)
	b.AddEdge("Junction_3", "Customer_B", 3)
	b.AddEdge("Junction_3", "Customer_C", 5)
	b.AddEdge("Customer_A", "Customer_B", 8)

	net, err := b.Build()
	if err != nil {
		// The canonical topology is fixed and always valid.
		panic(fmt.Sprintf("topology: canonical network failed to build: %v", err))
	}
	return net
}
