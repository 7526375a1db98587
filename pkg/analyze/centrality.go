package analyze

import (
	"container/heap"

	"github.com/routegraph/routegraph/pkg/network"
)

// BetweennessCentrality computes weighted betweenness centrality for every
// node using Brandes' algorithm with a Dijkstra inner loop.
//
// For each source s, a shortest-path pass counts the number of shortest
// paths sigma[v] reaching each node and records the predecessors on those
// paths. Nodes are then processed in decreasing distance from s,
// accumulating pair dependencies backward through the predecessor lists.
//
// Raw accumulations count each unordered pair twice (once per direction),
// so scores are halved and then normalized by the (n-1)(n-2)/2 pairs that
// exclude the node itself, bounding every score to [0, 1]. Every node
// appears in the result; isolated and leaf nodes score 0.
//
// Complexity: O(V * (V+E) log V) for weighted networks.
func BetweennessCentrality(net *network.Network) map[string]float64 {
	ids := net.NodeIDs()
	cb := make(map[string]float64, len(ids))
	for _, id := range ids {
		cb[id] = 0
	}

	n := len(ids)
	if n < 3 {
		return cb
	}

	for _, s := range ids {
		order, sigma, preds := countPaths(net, s)

		delta := make(map[string]float64, len(order))
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Halve the double-counted pairs and rescale by pair count in one step:
	// raw/2 / ((n-1)(n-2)/2) == raw / ((n-1)(n-2)).
	scale := 1 / float64((n-1)*(n-2))
	for id := range cb {
		cb[id] *= scale
	}
	return cb
}

// countPaths runs the Dijkstra phase of Brandes' algorithm from source s.
// It returns nodes in settlement order (non-decreasing distance from s),
// the shortest-path counts sigma, and the predecessor lists.
func countPaths(net *network.Network, s string) ([]string, map[string]float64, map[string][]string) {
	dist := map[string]float64{s: 0}
	sigma := map[string]float64{s: 1}
	preds := make(map[string][]string)
	settled := make(map[string]bool)
	order := make([]string, 0, net.NodeCount())

	pq := frontier{{id: s, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		u := item.id
		if settled[u] {
			continue
		}
		settled[u] = true
		order = append(order, u)

		for _, nb := range net.Neighbors(u) {
			v := nb.To
			nd := dist[u] + nb.Weight
			cur, seen := dist[v]
			switch {
			case !seen || nd < cur:
				dist[v] = nd
				sigma[v] = sigma[u]
				preds[v] = []string{u}
				heap.Push(&pq, frontierItem{id: v, dist: nd})
			case nd == cur:
				sigma[v] += sigma[u]
				preds[v] = append(preds[v], u)
			}
		}
	}

	return order, sigma, preds
}
