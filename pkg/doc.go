// Package pkg provides the core libraries for Routegraph network analysis.
//
// # Overview
//
// Routegraph models a logistics network as a weighted undirected graph:
// depots, customers, and junctions connected by links whose weights are
// travel costs. The pkg directory is organized into five main areas:
//
//  1. [network] - The immutable graph model and its builder
//  2. [analyze] - Routing, criticality, and centrality engines
//  3. [topology] - TOML topology loading and the canonical demo network
//  4. [report] / [render] - Text reports and Graphviz diagrams
//  5. [pipeline] - Orchestration (load → analyze → report → render)
//
// # Architecture
//
// The typical data flow through Routegraph:
//
//	TOML topology file
//	         ↓
//	    [topology] package (parse + validate)
//	         ↓
//	    [network] package (immutable graph)
//	         ↓
//	    [analyze] package (routes, critical points, centrality)
//	         ↓
//	    [report] / [render] packages
//	         ↓
//	    text report, SVG/PNG/JSON output
//
// # Quick Start
//
// Load a network and compute a route:
//
//	import (
//	    "github.com/routegraph/routegraph/pkg/analyze"
//	    "github.com/routegraph/routegraph/pkg/topology"
//	)
//
//	net, _ := topology.LoadFile("network.toml")
//	route, _ := analyze.ShortestPath(net, "Depot", "Customer_A")
//	fmt.Println(route.Path, route.Cost)
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    TopologyPath: "network.toml",
//	    Formats:      []string{"svg"},
//	})
//	fmt.Print(result.Report)
//
// # Main Packages
//
// [network] - Weighted undirected graph with category-tagged nodes (depot,
// customer, junction). Construction goes through a Builder that validates
// everything at Build time; the built Network is immutable and safe for
// concurrent reads.
//
// [analyze] - The three analysis engines: Dijkstra shortest paths with
// deterministic tie-breaking, articulation points and bridges via a single
// DFS, and Brandes betweenness centrality. All are pure functions over an
// immutable Network.
//
// [topology] - TOML topology documents, file loading, and the built-in
// canonical example network.
//
// [report] - Assembles analysis results into the formatted text report.
//
// [render] - Graphviz DOT generation and SVG/PNG rendering, with category
// coloring and route highlighting.
//
// [cache] - File-based and null caches with SHA-256 content keys, used to
// cache layouts and rendered artifacts.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// [pipeline] - Complete analysis pipeline used by the CLI. Ensures
// consistent behavior across all entry points.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/analyze/...      # Specific package
//	go test -run Example           # Examples only
//
// [network]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/network
// [analyze]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/analyze
// [topology]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/topology
// [report]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/report
// [render]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/render
// [cache]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/routegraph/routegraph/pkg/pipeline
package pkg
