package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/routegraph/routegraph/pkg/network"
)

// DefaultEngine is the Graphviz layout engine used when none is requested.
// neato gives the force-directed look familiar from spring layouts.
const DefaultEngine = "neato"

// Options configures node-link diagram generation.
type Options struct {
	// Engine names the Graphviz layout engine (neato, dot, fdp, ...).
	// Empty selects [DefaultEngine].
	Engine string

	// Highlight is an ordered node sequence whose edges are drawn bold and
	// red, typically a route from the shortest-path engine. Nil highlights
	// nothing.
	Highlight []string
}

// Node fill colors per category, matching the classic depot/customer/junction
// color scheme.
var categoryFill = map[network.Category]string{
	network.CategoryDepot:    "indianred1",
	network.CategoryCustomer: "palegreen",
	network.CategoryJunction: "lightblue",
}

// ToDOT converts a network to Graphviz DOT for node-link visualization.
// Nodes are colored by category, every edge carries its weight as a label,
// and edges along opts.Highlight are emphasized. The output is deterministic:
// nodes appear in lexicographic order, edges in insertion order.
func ToDOT(net *network.Network, opts Options) string {
	engine := opts.Engine
	if engine == "" {
		engine = DefaultEngine
	}

	highlighted := make(map[[2]string]bool, len(opts.Highlight))
	for i := 0; i+1 < len(opts.Highlight); i++ {
		u, v := opts.Highlight[i], opts.Highlight[i+1]
		if u > v {
			u, v = v, u
		}
		highlighted[[2]string{u, v}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", engine)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12, fixedsize=false];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, id := range net.NodeIDs() {
		fill := categoryFill[net.Category(id)]
		if fill == "" {
			fill = "white"
		}
		fmt.Fprintf(&buf, "  %q [fillcolor=%s];\n", id, fill)
	}

	buf.WriteString("\n")
	for _, e := range net.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", fmtWeight(e.Weight))}
		if highlighted[[2]string{e.U, e.V}] {
			attrs = append(attrs, "color=red", "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.U, e.V, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtWeight(w float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", w), "0"), ".")
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
