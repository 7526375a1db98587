package analyze_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/pkg/analyze"
	"github.com/routegraph/routegraph/pkg/network"
	"github.com/routegraph/routegraph/pkg/topology"
)

// cycleNetwork builds a single cycle of n junctions with unit weights.
func cycleNetwork(t *testing.T, n int) *network.Network {
	t.Helper()
	b := network.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(fmt.Sprintf("n%d", i), network.CategoryJunction)
	}
	for i := 0; i < n; i++ {
		b.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", (i+1)%n), 1)
	}
	net, err := b.Build()
	require.NoError(t, err)
	return net
}

// chainNetwork builds a path a0-a1-...-a(n-1) with unit weights.
func chainNetwork(t *testing.T, n int) *network.Network {
	t.Helper()
	b := network.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddNode(fmt.Sprintf("a%d", i), network.CategoryJunction)
	}
	for i := 0; i+1 < n; i++ {
		b.AddEdge(fmt.Sprintf("a%d", i), fmt.Sprintf("a%d", i+1), 1)
	}
	net, err := b.Build()
	require.NoError(t, err)
	return net
}

func TestFindCriticalPointsCycle(t *testing.T) {
	points := analyze.FindCriticalPoints(cycleNetwork(t, 5))

	assert.Empty(t, points.Articulation)
	assert.Empty(t, points.Bridges)
}

func TestFindCriticalPointsChain(t *testing.T) {
	net := chainNetwork(t, 4)
	points := analyze.FindCriticalPoints(net)

	// Every internal node cuts the chain; every edge is a bridge.
	assert.Equal(t, []string{"a1", "a2"}, points.Articulation)
	require.Len(t, points.Bridges, 3)
	assert.Equal(t, net.EdgeCount(), len(points.Bridges))
}

func TestFindCriticalPointsStar(t *testing.T) {
	b := network.NewBuilder()
	b.AddNode("hub", network.CategoryDepot)
	for _, leaf := range []string{"x", "y", "z"} {
		b.AddNode(leaf, network.CategoryCustomer)
		b.AddEdge("hub", leaf, 1)
	}
	net, err := b.Build()
	require.NoError(t, err)

	points := analyze.FindCriticalPoints(net)
	assert.Equal(t, []string{"hub"}, points.Articulation)
	assert.Len(t, points.Bridges, 3)
}

func TestFindCriticalPointsCanonical(t *testing.T) {
	// Customer_C hangs off Junction_3 by a single link, so Junction_3 is
	// the one articulation point and that link is the one bridge. The rest
	// of the canonical network is cycle-covered.
	points := analyze.FindCriticalPoints(topology.Canonical())

	assert.Equal(t, []string{"Junction_3"}, points.Articulation)
	require.Len(t, points.Bridges, 1)
	assert.Equal(t, "Customer_C", points.Bridges[0].U)
	assert.Equal(t, "Junction_3", points.Bridges[0].V)
}

func TestFindCriticalPointsDisconnected(t *testing.T) {
	// Two separate chains of three nodes each: the DFS restarts per
	// component and finds the middle node of each.
	b := network.NewBuilder()
	for _, id := range []string{"a", "b", "c", "x", "y", "z"} {
		b.AddNode(id, network.CategoryJunction)
	}
	b.AddEdge("a", "b", 1)
	b.AddEdge("b", "c", 1)
	b.AddEdge("x", "y", 1)
	b.AddEdge("y", "z", 1)
	net, err := b.Build()
	require.NoError(t, err)

	points := analyze.FindCriticalPoints(net)
	assert.Equal(t, []string{"b", "y"}, points.Articulation)
	assert.Len(t, points.Bridges, 4)
}

func TestFindCriticalPointsTwoCycles(t *testing.T) {
	// Two cycles sharing a single node: the shared node is a cut vertex
	// but no edge is a bridge.
	b := network.NewBuilder()
	for _, id := range []string{"m", "p", "q", "r", "s"} {
		b.AddNode(id, network.CategoryJunction)
	}
	b.AddEdge("m", "p", 1)
	b.AddEdge("p", "q", 1)
	b.AddEdge("q", "m", 1)
	b.AddEdge("m", "r", 1)
	b.AddEdge("r", "s", 1)
	b.AddEdge("s", "m", 1)
	net, err := b.Build()
	require.NoError(t, err)

	points := analyze.FindCriticalPoints(net)
	assert.Equal(t, []string{"m"}, points.Articulation)
	assert.Empty(t, points.Bridges)
}

// componentCount counts connected components, optionally skipping one node
// or one edge. Used to verify the structural meaning of the results.
func componentCount(net *network.Network, skipNode string, skipEdge int) int {
	visited := make(map[string]bool)
	components := 0

	var flood func(u string)
	flood = func(u string) {
		visited[u] = true
		for _, nb := range net.Neighbors(u) {
			if nb.Edge == skipEdge || nb.To == skipNode || visited[nb.To] {
				continue
			}
			flood(nb.To)
		}
	}

	for _, id := range net.NodeIDs() {
		if id == skipNode || visited[id] {
			continue
		}
		components++
		flood(id)
	}
	return components
}

func TestCriticalPointsDisconnect(t *testing.T) {
	net := topology.Canonical()
	points := analyze.FindCriticalPoints(net)
	base := componentCount(net, "", -1)

	for _, id := range points.Articulation {
		assert.Greater(t, componentCount(net, id, -1), base,
			"removing articulation point %s must split the network", id)
	}

	edges := net.Edges()
	for _, bridge := range points.Bridges {
		for i, e := range edges {
			if e == bridge {
				assert.Greater(t, componentCount(net, "", i), base,
					"removing bridge %s-%s must split the network", e.U, e.V)
			}
		}
	}
}
