package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/routegraph/routegraph/pkg/analyze"
	"github.com/routegraph/routegraph/pkg/cache"
	"github.com/routegraph/routegraph/pkg/network"
	"github.com/routegraph/routegraph/pkg/observability"
	"github.com/routegraph/routegraph/pkg/render"
	"github.com/routegraph/routegraph/pkg/topology"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → analyze → report → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.TopologyPath)
	net, err := r.Load(ctx, opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.TopologyPath, 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.TopologyPath, net.NodeCount(), time.Since(loadStart), nil)
	result.Network = net
	result.NetworkHash = NetworkHash(net)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = net.NodeCount()
	result.Stats.EdgeCount = net.EdgeCount()

	r.Logger.Info("loaded topology",
		"nodes", net.NodeCount(),
		"edges", net.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Analyze
	analyzeStart := time.Now()
	observability.Pipeline().OnAnalyzeStart(ctx, opts.Source, len(opts.Destinations))
	if err := r.Analyze(net, opts, result); err != nil {
		observability.Pipeline().OnAnalyzeComplete(ctx, opts.Source, time.Since(analyzeStart), err)
		return nil, fmt.Errorf("analyze: %w", err)
	}
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	observability.Pipeline().OnAnalyzeComplete(ctx, result.Source, result.Stats.AnalyzeTime, nil)

	r.Logger.Info("analyzed network",
		"source", result.Source,
		"destinations", len(result.Destinations),
		"articulation_points", len(result.Critical.Articulation),
		"bridges", len(result.Critical.Bridges),
		"duration", result.Stats.AnalyzeTime)

	// Stage 3: Report
	result.Report = BuildReport(result, opts.Title)

	// Stage 4: Render (optional)
	if opts.WantsRender() {
		renderStart := time.Now()
		observability.Pipeline().OnRenderStart(ctx, opts.Formats)
		layout, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, net, result.NetworkHash, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("layout: %w", err)
		}
		result.Layout = layout
		result.CacheInfo.LayoutHit = layoutHit

		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.CacheInfo.RenderHit = renderHit

		r.Logger.Info("rendered outputs",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)
	}

	return result, nil
}

// Load parses the network topology from the configured source.
func (r *Runner) Load(ctx context.Context, opts Options) (*network.Network, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.TopologyPath != "" {
		return topology.LoadFile(opts.TopologyPath)
	}
	return topology.Parse([]byte(opts.TopologyTOML))
}

// Analyze runs the analysis engines and fills in the result.
// Source defaults to the first depot node; destinations default to all
// customer nodes.
func (r *Runner) Analyze(net *network.Network, opts Options, result *Result) error {
	source := opts.Source
	if source == "" {
		depots := net.NodesByCategory(network.CategoryDepot)
		if len(depots) == 0 {
			return fmt.Errorf("no source specified and network has no depot")
		}
		source = depots[0]
	}

	destinations := slices.Clone(opts.Destinations)
	if len(destinations) == 0 {
		destinations = net.NodesByCategory(network.CategoryCustomer)
	}
	slices.Sort(destinations)

	routes, err := analyze.PlanDeliveries(net, source, destinations)
	if err != nil {
		return err
	}

	result.Source = source
	result.Destinations = destinations
	result.Routes = routes
	result.Critical = analyze.FindCriticalPoints(net)
	result.Centrality = analyze.BetweennessCentrality(net)
	return nil
}

// GenerateLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info. The cache key combines the network content hash with the
// layout-affecting options.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, net *network.Network, networkHash string, opts Options) (render.Layout, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return render.Layout{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(networkHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := render.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	layout := render.BuildLayout(net, opts.RenderOptions())

	if data, err := render.MarshalLayout(layout); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout) == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return layout, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, net *network.Network, opts Options) (render.Layout, error) {
	layout, _, err := r.GenerateLayoutWithCacheInfo(ctx, net, NetworkHash(net), opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. Artifact keys are derived from the layout content hash so a cached
// layout and its artifacts invalidate together.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout render.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := render.MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderArtifact(layout, layoutData, format)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact) == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout render.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// renderArtifact produces a single output format from a layout.
// layoutData is the already-marshaled layout, reused for the JSON format.
func renderArtifact(layout render.Layout, layoutData []byte, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return layoutData, nil
	case FormatSVG:
		return render.SVG(layout.DOT)
	case FormatPNG:
		return render.PNG(layout.DOT)
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
