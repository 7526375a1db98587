package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routegraph/routegraph/pkg/analyze"
	"github.com/routegraph/routegraph/pkg/network"
	"github.com/routegraph/routegraph/pkg/pipeline"
)

// renderCommand creates the render command for generating network diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr   string
		output       string
		engine       string
		highlightStr string
		noCache      bool
		refresh      bool
	)

	cmd := &cobra.Command{
		Use:   "render [network.toml]",
		Short: "Render a network diagram",
		Long: `Render a network diagram.

The render command loads a TOML topology file and draws the network with
Graphviz: nodes colored by category (depot, customer, junction), edges
labeled with their weights. With --highlight the shortest route to the
given destination is drawn bold and red.

Layouts and rendered artifacts are cached locally for faster subsequent
runs; use --refresh to recompute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				TopologyPath: args[0],
				Engine:       engine,
				Formats:      parseFormats(formatsStr),
				Refresh:      refresh,
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, highlightStr, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&engine, "engine", "", "graphviz layout engine: neato (default), dot, fdp, sfdp, circo, twopi")
	cmd.Flags().StringVar(&highlightStr, "highlight", "", "destination whose route is emphasized")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// runRender executes the pipeline with rendering enabled and writes artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, highlight, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if highlight != "" {
		path, err := resolveHighlight(ctx, runner, opts, highlight)
		if err != nil {
			return err
		}
		if path == nil {
			printWarning("No route to %s; rendering without highlight", highlight)
		}
		opts.Highlight = path
		opts.Destinations = []string{highlight}
	}

	spinner := newSpinnerWithContext(ctx, "Rendering network...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.TopologyPath,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		nodes:     result.Stats.NodeCount,
		edges:     result.Stats.EdgeCount,
	})
}

// resolveHighlight computes the shortest route to the highlighted destination
// so its path can be emphasized in the diagram. Returns nil when no route
// exists.
func resolveHighlight(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, highlight string) ([]string, error) {
	net, err := runner.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	from := opts.Source
	if from == "" {
		depots := net.NodesByCategory(network.CategoryDepot)
		if len(depots) == 0 {
			return nil, fmt.Errorf("network has no depot to route from")
		}
		from = depots[0]
	}

	route, err := analyze.ShortestPath(net, from, highlight)
	if err != nil {
		return nil, err
	}
	if !route.Found() {
		return nil, nil
	}
	return route.Path, nil
}
