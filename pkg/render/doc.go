// Package render draws logistics networks as node-link diagrams.
//
// The renderer is a pure consumer of analysis outputs: it receives the
// network, an optional route to highlight, and produces Graphviz DOT with
// category color-coding and edge weight labels. DOT strings render to SVG
// or PNG through goccy/go-graphviz; node positions are computed by the
// Graphviz layout engine named in the DOT itself.
//
//	dot := render.ToDOT(net, render.Options{Highlight: route.Path})
//	svg, err := render.SVG(dot)
//	png, err := render.PNG(dot)
//
// No analytics happen here and the analysis engines never call into this
// package.
package render
