package render

import (
	"encoding/json"
	"fmt"

	"github.com/routegraph/routegraph/pkg/network"
)

// Layout is the serialized form of a prepared visualization: the DOT source
// plus the structured node and edge data it was generated from. It is what
// the pipeline caches between runs and what the JSON output format emits.
type Layout struct {
	Engine    string       `json:"engine"`
	DOT       string       `json:"dot"`
	Nodes     []LayoutNode `json:"nodes"`
	Edges     []LayoutEdge `json:"edges"`
	Highlight []string     `json:"highlight,omitempty"`
}

// LayoutNode is one node entry in a serialized layout.
type LayoutNode struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// LayoutEdge is one edge entry in a serialized layout.
type LayoutEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// BuildLayout generates the DOT source and structured data for a network.
func BuildLayout(net *network.Network, opts Options) Layout {
	engine := opts.Engine
	if engine == "" {
		engine = DefaultEngine
	}

	l := Layout{
		Engine:    engine,
		DOT:       ToDOT(net, opts),
		Highlight: opts.Highlight,
	}
	for _, id := range net.NodeIDs() {
		l.Nodes = append(l.Nodes, LayoutNode{ID: id, Category: string(net.Category(id))})
	}
	for _, e := range net.Edges() {
		l.Edges = append(l.Edges, LayoutEdge{From: e.U, To: e.V, Weight: e.Weight})
	}
	return l
}

// MarshalLayout serializes a layout to pretty-printed JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON into a layout, requiring the DOT source
// to be present.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.DOT == "" {
		return Layout{}, fmt.Errorf("layout must contain DOT source")
	}
	return l, nil
}
