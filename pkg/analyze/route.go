package analyze

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/routegraph/routegraph/pkg/network"
)

// Route is the outcome of a shortest-path query. A zero-length Path means
// the target is unreachable; callers should check [Route.Found] before
// consuming Path or Cost.
type Route struct {
	Path []string // Node IDs from source to target, inclusive
	Cost float64  // Sum of traversed edge weights, +Inf when not found
}

// NoRoute is the distinguished "no path exists" result. It carries an
// infinite cost so that cost comparisons remain well defined.
var NoRoute = Route{Cost: math.Inf(1)}

// Found reports whether the route contains a usable path.
func (r Route) Found() bool { return len(r.Path) > 0 }

// ShortestPath computes the minimum-cost route between two nodes using
// Dijkstra's algorithm. Returns [network.ErrUnknownNode] if either endpoint
// is absent. An unreachable target yields [NoRoute] and a nil error:
// unreachability is an expected outcome, not a failure.
//
// When two paths tie on cost, the path whose predecessor node sorts first
// lexicographically wins, making results deterministic across runs.
//
// Complexity: O((V+E) log V).
func ShortestPath(net *network.Network, source, target string) (Route, error) {
	if !net.HasNode(source) {
		return NoRoute, fmt.Errorf("%w: source %q", network.ErrUnknownNode, source)
	}
	if !net.HasNode(target) {
		return NoRoute, fmt.Errorf("%w: target %q", network.ErrUnknownNode, target)
	}

	dist, prev := dijkstra(net, source)
	return reconstruct(source, target, dist, prev), nil
}

// PlanDeliveries computes one shortest route from source to each destination.
// A single Dijkstra pass from source serves all destinations. Unreachable
// destinations map to [NoRoute]; an unknown source or destination fails with
// [network.ErrUnknownNode].
func PlanDeliveries(net *network.Network, source string, destinations []string) (map[string]Route, error) {
	if !net.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", network.ErrUnknownNode, source)
	}
	for _, d := range destinations {
		if !net.HasNode(d) {
			return nil, fmt.Errorf("%w: destination %q", network.ErrUnknownNode, d)
		}
	}

	dist, prev := dijkstra(net, source)
	routes := make(map[string]Route, len(destinations))
	for _, d := range destinations {
		routes[d] = reconstruct(source, d, dist, prev)
	}
	return routes, nil
}

// dijkstra runs a single-source shortest-path pass and returns final
// distances and predecessor pointers. Unreached nodes are absent from dist.
//
// The heap stores (distance, node) pairs with lazy decrease-key: stale
// entries are skipped when popped. Ordering ties on distance break by node
// ID, and equal-cost relaxations keep the lexicographically smaller
// predecessor, so the traversal is fully deterministic.
func dijkstra(net *network.Network, source string) (map[string]float64, map[string]string) {
	dist := map[string]float64{source: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool, net.NodeCount())

	pq := frontier{{id: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		u := item.id
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, nb := range net.Neighbors(u) {
			v := nb.To
			nd := dist[u] + nb.Weight
			cur, seen := dist[v]
			switch {
			case !seen || nd < cur:
				dist[v] = nd
				prev[v] = u
				heap.Push(&pq, frontierItem{id: v, dist: nd})
			case nd == cur && u < prev[v]:
				prev[v] = u
			}
		}
	}

	return dist, prev
}

// reconstruct walks predecessor pointers backward from target to source.
func reconstruct(source, target string, dist map[string]float64, prev map[string]string) Route {
	cost, ok := dist[target]
	if !ok {
		return NoRoute
	}
	if source == target {
		return Route{Path: []string{source}, Cost: 0}
	}

	path := []string{target}
	for at := target; at != source; {
		at = prev[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return Route{Path: path, Cost: cost}
}

// frontierItem is one heap entry: a node and its tentative distance.
type frontierItem struct {
	id   string
	dist float64
}

// frontier is a min-heap of tentative distances, tie-broken by node ID.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].id < f[j].id
}
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
