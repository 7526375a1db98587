// Package report assembles analysis results into a formatted text summary.
//
// The assembler is a pure consumer: it receives routes, critical points,
// and centrality scores already computed by package analyze and only
// orders and formats them. Nothing is recomputed here.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routegraph/routegraph/pkg/analyze"
)

const lineWidth = 70

// DeliveryRoute pairs a destination with its computed route.
type DeliveryRoute struct {
	Destination string
	Route       analyze.Route
}

// NodeScore pairs a node with its betweenness centrality score.
type NodeScore struct {
	ID    string
	Score float64
}

// Summary gathers everything the report renders. Populate it from the
// analysis engines' outputs; the zero value renders a valid (empty) report.
type Summary struct {
	Title     string
	NodeCount int
	EdgeCount int
	Source    string

	Routes     []DeliveryRoute // rendered in slice order
	Critical   analyze.CriticalPoints
	Centrality []NodeScore // rendered in slice order
}

// RoutesFromMap converts a destination→route map into a slice ordered by
// destination name, the order the report renders.
func RoutesFromMap(routes map[string]analyze.Route) []DeliveryRoute {
	out := make([]DeliveryRoute, 0, len(routes))
	for dest, route := range routes {
		out = append(out, DeliveryRoute{Destination: dest, Route: route})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Destination < out[j].Destination })
	return out
}

// RankScores converts a node→score map into a slice ordered by descending
// score, ties broken by node ID.
func RankScores(scores map[string]float64) []NodeScore {
	out := make([]NodeScore, 0, len(scores))
	for id, score := range scores {
		out = append(out, NodeScore{ID: id, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Assemble renders the summary as a single text block.
func Assemble(s Summary) string {
	title := s.Title
	if title == "" {
		title = "LOGISTICS NETWORK ANALYSIS"
	}

	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Nodes: %d\n", s.NodeCount)
	fmt.Fprintf(&b, "Edges: %d\n", s.EdgeCount)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, "OPTIMIZED DELIVERY ROUTES")
	fmt.Fprintln(&b, thin)
	for _, dr := range s.Routes {
		fmt.Fprintf(&b, "\n%s:\n", dr.Destination)
		if dr.Route.Found() {
			fmt.Fprintf(&b, "  Path: %s\n", strings.Join(dr.Route.Path, " -> "))
			fmt.Fprintf(&b, "  Total cost: %g\n", dr.Route.Cost)
		} else {
			fmt.Fprintf(&b, "  No route from %s\n", s.Source)
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, "CRITICAL POINTS")
	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, "\nArticulation points (critical nodes):")
	if len(s.Critical.Articulation) > 0 {
		for _, id := range s.Critical.Articulation {
			fmt.Fprintf(&b, "  - %s\n", id)
		}
	} else {
		fmt.Fprintln(&b, "  No articulation points found")
	}
	fmt.Fprintln(&b, "\nBridges (critical edges):")
	if len(s.Critical.Bridges) > 0 {
		for _, e := range s.Critical.Bridges {
			fmt.Fprintf(&b, "  - %s <-> %s\n", e.U, e.V)
		}
	} else {
		fmt.Fprintln(&b, "  No bridges found")
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, thin)
	fmt.Fprintln(&b, "NODE CENTRALITY (flow importance)")
	fmt.Fprintln(&b, thin)
	for _, ns := range s.Centrality {
		fmt.Fprintf(&b, "  %s: %.4f\n", ns.ID, ns.Score)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)

	return b.String()
}
