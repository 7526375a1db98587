package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routegraph/routegraph/pkg/pipeline"
)

// analyzeCommand creates the analyze command for full network analysis.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		source  string
		destStr string
		title   string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "analyze [network.toml]",
		Short: "Analyze a logistics network and print the report",
		Long: `Analyze a logistics network and print the report.

The analyze command loads a TOML topology file and computes optimal
delivery routes from the depot to every customer, articulation points
and bridges (single points of failure), and betweenness centrality
(flow importance) for every node. The result is printed as a text
report.

By default routes start at the network's depot and target all customer
nodes; use --source and --dest to override.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				TopologyPath: args[0],
				Source:       source,
				Destinations: parseList(destStr),
				Title:        title,
			}
			return c.runAnalyze(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "origin node (default: the depot)")
	cmd.Flags().StringVarP(&destStr, "dest", "d", "", "destination node(s), comma-separated (default: all customers)")
	cmd.Flags().StringVar(&title, "title", "", "report title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

// runAnalyze executes the analysis pipeline and writes the report.
func (c *CLI) runAnalyze(ctx context.Context, opts pipeline.Options, output string) error {
	// Analysis is pure computation; no cache needed.
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Analyzing network...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return fmt.Errorf("analyze: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := fmt.Fprint(out, result.Report); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Analysis complete")
		printFile(output)
		printStats(result.Stats.NodeCount, result.Stats.EdgeCount, false)
	}
	return nil
}
