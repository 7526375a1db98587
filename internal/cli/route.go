package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/routegraph/routegraph/pkg/analyze"
	"github.com/routegraph/routegraph/pkg/network"
	"github.com/routegraph/routegraph/pkg/topology"
)

// routeCommand creates the route command for point-to-point routing.
func (c *CLI) routeCommand() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "route [network.toml]",
		Short: "Compute the shortest route between two nodes",
		Long: `Compute the shortest route between two nodes.

The route command loads a TOML topology file and runs Dijkstra's
algorithm between --from and --to. Without --to it opens an interactive
picker listing every other node with its route cost.

Unreachable destinations are reported, not treated as errors: a network
can legitimately contain disconnected components.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd.Context(), args[0], from, to)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "origin node (default: the depot)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "destination node (default: interactive selection)")

	return cmd
}

// runRoute loads the network and computes a single shortest route.
func (c *CLI) runRoute(ctx context.Context, input, from, to string) error {
	net, err := topology.LoadFile(input)
	if err != nil {
		return err
	}

	if from == "" {
		depots := net.NodesByCategory(network.CategoryDepot)
		if len(depots) == 0 {
			return fmt.Errorf("no --from specified and network has no depot")
		}
		from = depots[0]
	}

	if to == "" {
		to, err = c.pickDestination(net, from)
		if err != nil {
			return err
		}
		if to == "" {
			printInfo("No destination selected")
			return nil
		}
	}

	route, err := analyze.ShortestPath(net, from, to)
	if err != nil {
		return err
	}

	if !route.Found() {
		printWarning("No route from %s to %s", from, to)
		return nil
	}

	printSuccess("Route found")
	printDetail("Path: %s", strings.Join(route.Path, " "+iconArrow+" "))
	printDetail("Total cost: %g", route.Cost)
	return nil
}

// pickDestination opens an interactive picker over every node except the
// origin, annotated with its route cost. Unreachable nodes are listed but
// cannot be selected.
func (c *CLI) pickDestination(net *network.Network, from string) (string, error) {
	candidates := otherNodes(net, from)
	if len(candidates) == 0 {
		return "", fmt.Errorf("network has no destinations other than %s", from)
	}

	routes, err := analyze.PlanDeliveries(net, from, candidates)
	if err != nil {
		return "", err
	}

	var choices []NodeChoice
	for _, id := range net.NodeIDs() {
		if id == from {
			continue
		}
		choices = append(choices, NodeChoice{
			ID:       id,
			Category: net.Category(id),
			Cost:     routes[id].Cost,
		})
	}

	model := NewNodePickerModel(from, choices)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("destination picker: %w", err)
	}

	picked, ok := final.(NodePickerModel)
	if !ok || picked.Selected == nil {
		return "", nil
	}
	return picked.Selected.ID, nil
}

// otherNodes returns every node ID except the given one.
func otherNodes(net *network.Network, except string) []string {
	ids := net.NodeIDs()
	out := ids[:0]
	for _, id := range ids {
		if id != except {
			out = append(out, id)
		}
	}
	return out
}
