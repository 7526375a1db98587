package analyze

import (
	"slices"
	"strings"

	"github.com/routegraph/routegraph/pkg/network"
)

// CriticalPoints holds the structural weak spots of a network: nodes and
// edges whose removal increases the number of connected components.
// Both slices are sorted for deterministic output and empty (never nil
// semantics aside) when the network has no cut vertices or bridges.
type CriticalPoints struct {
	Articulation []string       // Cut vertices, lexicographically sorted
	Bridges      []network.Edge // Cut edges, sorted by endpoint pair
}

// FindCriticalPoints locates all articulation points and bridges with a
// single depth-first traversal, restarted per connected component.
//
// Each node gets a discovery order and a low-link value: the smallest
// discovery order reachable from its subtree through at most one back-edge.
// For a DFS tree edge parent→child, the edge is a bridge iff
// low[child] > disc[parent], and parent is an articulation point iff it is
// a root with two or more tree children, or a non-root with some child
// satisfying low[child] >= disc[parent]. The edge used to enter a node is
// excluded from its own back-edge consideration by edge index, which keeps
// parallel traversal of the same undirected edge from masking bridges.
//
// Complexity: O(V+E).
func FindCriticalPoints(net *network.Network) CriticalPoints {
	disc := make(map[string]int, net.NodeCount())
	low := make(map[string]int, net.NodeCount())
	articulation := make(map[string]bool)
	var bridgeIdx []int
	timer := 0

	var dfs func(u string, parentEdge int)
	dfs = func(u string, parentEdge int) {
		timer++
		disc[u] = timer
		low[u] = timer
		children := 0

		for _, nb := range net.Neighbors(u) {
			if nb.Edge == parentEdge {
				continue
			}
			v := nb.To
			if _, seen := disc[v]; !seen {
				children++
				dfs(v, nb.Edge)
				low[u] = min(low[u], low[v])
				if low[v] > disc[u] {
					bridgeIdx = append(bridgeIdx, nb.Edge)
				}
				if parentEdge != -1 && low[v] >= disc[u] {
					articulation[u] = true
				}
			} else {
				low[u] = min(low[u], disc[v])
			}
		}

		if parentEdge == -1 && children >= 2 {
			articulation[u] = true
		}
	}

	for _, id := range net.NodeIDs() {
		if _, seen := disc[id]; !seen {
			dfs(id, -1)
		}
	}

	points := CriticalPoints{
		Articulation: make([]string, 0, len(articulation)),
		Bridges:      make([]network.Edge, 0, len(bridgeIdx)),
	}
	for id := range articulation {
		points.Articulation = append(points.Articulation, id)
	}
	slices.Sort(points.Articulation)

	edges := net.Edges()
	for _, i := range bridgeIdx {
		points.Bridges = append(points.Bridges, edges[i])
	}
	slices.SortFunc(points.Bridges, func(a, b network.Edge) int {
		if a.U != b.U {
			return strings.Compare(a.U, b.U)
		}
		return strings.Compare(a.V, b.V)
	})

	return points
}
