// Package pipeline provides the core analysis pipeline for Routegraph.
//
// This package implements the complete load → analyze → report → render
// pipeline that can be used by CLI and library consumers. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Parse a network topology from a TOML file or inline document
//  2. Analyze: Compute delivery routes, critical points, and centrality
//  3. Report: Assemble the analysis into a formatted text summary
//  4. Render: Generate visual output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Analysis is pure computation and never cached; layout and rendered
// artifacts are cached keyed on the network content hash.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    TopologyPath: "network.toml",
//	    Source:       "Depot",
//	    Formats:      []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Report)
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/routegraph/routegraph/pkg/analyze"
	"github.com/routegraph/routegraph/pkg/cache"
	"github.com/routegraph/routegraph/pkg/network"
	"github.com/routegraph/routegraph/pkg/render"
	"github.com/routegraph/routegraph/pkg/report"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

// DefaultEngine is the default Graphviz layout engine.
const DefaultEngine = render.DefaultEngine

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidEngines is the set of supported Graphviz layout engines.
var ValidEngines = map[string]bool{
	"neato": true,
	"dot":   true,
	"fdp":   true,
	"sfdp":  true,
	"circo": true,
	"twopi": true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for programmatic use.
type Options struct {
	// Load options
	TopologyPath string `json:"topology_path,omitempty"` // Path to a TOML topology file
	TopologyTOML string `json:"topology_toml,omitempty"` // Inline TOML topology document

	// Analyze options
	Source       string   `json:"source,omitempty"`       // Origin node; defaults to the first depot
	Destinations []string `json:"destinations,omitempty"` // Target nodes; defaults to all customers

	// Report options
	Title string `json:"title,omitempty"`

	// Render options
	Engine    string   `json:"engine,omitempty"`
	Formats   []string `json:"formats,omitempty"` // Empty disables the render stage
	Highlight []string `json:"highlight,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Network is the loaded topology.
	Network *network.Network

	// NetworkHash is the content hash of the network.
	NetworkHash string

	// Source is the resolved origin node.
	Source string

	// Destinations are the resolved target nodes, sorted.
	Destinations []string

	// Routes maps each destination to its shortest route from Source.
	Routes map[string]analyze.Route

	// Critical holds articulation points and bridges.
	Critical analyze.CriticalPoints

	// Centrality maps every node to its betweenness centrality score.
	Centrality map[string]float64

	// Report is the assembled text summary.
	Report string

	// Layout contains the computed visualization layout (render stage only).
	Layout render.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	EdgeCount   int
	LoadTime    time.Duration
	AnalyzeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for the render stages. Load and analyze are
// never cached: loading is a local file read and analysis is pure.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that a layout engine is valid.
func ValidateEngine(engine string) error {
	if !ValidEngines[engine] {
		return fmt.Errorf("invalid engine: %q (must be one of: neato, dot, fdp, sfdp, circo, twopi)", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading a topology.
func (o *Options) ValidateForLoad() error {
	if o.TopologyPath == "" && o.TopologyTOML == "" {
		return fmt.Errorf("topology_path or topology_toml is required")
	}
	if o.TopologyPath != "" && o.TopologyTOML != "" {
		return fmt.Errorf("topology_path and topology_toml are mutually exclusive")
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// WantsRender returns true if any output formats are requested.
func (o *Options) WantsRender() bool {
	return len(o.Formats) > 0
}

// RenderOptions returns the render package options for these pipeline options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Engine:    o.Engine,
		Highlight: o.Highlight,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Engine:    o.Engine,
		Highlight: o.Highlight,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}

// =============================================================================
// Network Hashing
// =============================================================================

// networkDigest is the canonical serialized form used for content hashing.
// Nodes are already sorted by ID; edges are sorted by endpoints so that two
// topologies describing the same network hash identically regardless of
// declaration order.
type networkDigest struct {
	Nodes []digestNode   `json:"nodes"`
	Edges []network.Edge `json:"edges"`
}

type digestNode struct {
	ID       string           `json:"id"`
	Category network.Category `json:"category"`
}

// NetworkHash computes a stable content hash of a network.
func NetworkHash(net *network.Network) string {
	d := networkDigest{Edges: net.Edges()}
	for _, id := range net.NodeIDs() {
		d.Nodes = append(d.Nodes, digestNode{ID: id, Category: net.Category(id)})
	}
	slices.SortFunc(d.Edges, func(a, b network.Edge) int {
		if a.U != b.U {
			if a.U < b.U {
				return -1
			}
			return 1
		}
		if a.V < b.V {
			return -1
		}
		if a.V > b.V {
			return 1
		}
		return 0
	})

	data, err := json.Marshal(d)
	if err != nil {
		// Marshaling plain structs of strings and floats cannot fail.
		panic(fmt.Sprintf("hash network: %v", err))
	}
	return cache.Hash(data)
}

// =============================================================================
// Report Assembly
// =============================================================================

// BuildReport assembles the text report for a completed analysis.
func BuildReport(r *Result, title string) string {
	return report.Assemble(report.Summary{
		Title:      title,
		NodeCount:  r.Stats.NodeCount,
		EdgeCount:  r.Stats.EdgeCount,
		Source:     r.Source,
		Routes:     report.RoutesFromMap(r.Routes),
		Critical:   r.Critical,
		Centrality: report.RankScores(r.Centrality),
	})
}
