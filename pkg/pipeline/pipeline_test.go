package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegraph/routegraph/pkg/cache"
	"github.com/routegraph/routegraph/pkg/topology"
)

const canonicalTOML = `
name = "demo"

[[nodes]]
id = "Depot"
category = "depot"

[[nodes]]
id = "Customer_A"
category = "customer"

[[nodes]]
id = "Customer_B"
category = "customer"

[[nodes]]
id = "Customer_C"
category = "customer"

[[nodes]]
id = "Junction_1"
category = "junction"

[[nodes]]
id = "Junction_2"
category = "junction"

[[nodes]]
id = "Junction_3"
category = "junction"

[[edges]]
from = "Depot"
to = "Junction_1"
weight = 5.0

[[edges]]
from = "Depot"
to = "Junction_2"
weight = 7.0

[[edges]]
from = "Junction_1"
to = "Junction_3"
weight = 3.0

[[edges]]
from = "Junction_1"
to = "Customer_A"
weight = 4.0

[[edges]]
from = "Junction_2"
to = "Junction_3"
weight = 4.0

[[edges]]
from = "Junction_2"
to = "Customer_B"
weight = 6.0

[[edges]]
from = "Junction_3"
to = "Customer_A"
weight = 2.0

[[edges]]
from = "Junction_3"
to = "Customer_B"
weight = 3.0

[[edges]]
from = "Junction_3"
to = "Customer_C"
weight = 5.0

[[edges]]
from = "Customer_A"
to = "Customer_B"
weight = 8.0
`

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing topology",
			opts:    Options{},
			wantErr: "topology_path or topology_toml is required",
		},
		{
			name:    "both topology sources",
			opts:    Options{TopologyPath: "a.toml", TopologyTOML: "name = \"x\""},
			wantErr: "mutually exclusive",
		},
		{
			name:    "invalid format",
			opts:    Options{TopologyTOML: canonicalTOML, Formats: []string{"gif"}},
			wantErr: "invalid format",
		},
		{
			name:    "invalid engine",
			opts:    Options{TopologyTOML: canonicalTOML, Engine: "warp"},
			wantErr: "invalid engine",
		},
		{
			name: "valid",
			opts: Options{TopologyTOML: canonicalTOML, Formats: []string{FormatSVG, FormatJSON}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultEngine, tt.opts.Engine)
		})
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{TopologyTOML: canonicalTOML}
	require.NoError(t, opts.ValidateAndSetDefaults())
	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, DefaultEngine, opts.Engine)
}

func TestExecuteCanonical(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		TopologyTOML: canonicalTOML,
		Source:       "Depot",
		Destinations: []string{"Customer_A", "Customer_B", "Customer_C"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.NetworkHash, 64)
	assert.Equal(t, 7, result.Stats.NodeCount)
	assert.Equal(t, 10, result.Stats.EdgeCount)

	// Routes
	require.Len(t, result.Routes, 3)
	a := result.Routes["Customer_A"]
	assert.Equal(t, []string{"Depot", "Junction_1", "Customer_A"}, a.Path)
	assert.Equal(t, 9.0, a.Cost)
	assert.Equal(t, 11.0, result.Routes["Customer_B"].Cost)
	assert.Equal(t, 13.0, result.Routes["Customer_C"].Cost)

	// Critical points: Junction_3 cuts off Customer_C
	assert.Equal(t, []string{"Junction_3"}, result.Critical.Articulation)
	require.Len(t, result.Critical.Bridges, 1)
	assert.Equal(t, "Customer_C", result.Critical.Bridges[0].U)
	assert.Equal(t, "Junction_3", result.Critical.Bridges[0].V)

	// Centrality
	assert.InDelta(t, 10.0/15.0, result.Centrality["Junction_3"], 1e-12)
	assert.InDelta(t, 4.0/15.0, result.Centrality["Junction_1"], 1e-12)
	assert.Zero(t, result.Centrality["Customer_C"])

	// Report
	assert.Contains(t, result.Report, "LOGISTICS NETWORK ANALYSIS")
	assert.Contains(t, result.Report, "Depot -> Junction_1 -> Customer_A")
	assert.Contains(t, result.Report, "Junction_3")

	// No formats requested, so no render stage ran.
	assert.Empty(t, result.Artifacts)
	assert.Empty(t, result.Layout.DOT)
}

func TestExecuteDefaults(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		TopologyTOML: canonicalTOML,
	})
	require.NoError(t, err)

	assert.Equal(t, "Depot", result.Source, "source defaults to the depot")
	assert.Equal(t, []string{"Customer_A", "Customer_B", "Customer_C"}, result.Destinations,
		"destinations default to all customers")
	assert.Len(t, result.Routes, 3)
}

func TestExecuteDestinationsSorted(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	given := []string{"Customer_C", "Customer_A", "Customer_B"}
	result, err := runner.Execute(context.Background(), Options{
		TopologyTOML: canonicalTOML,
		Destinations: given,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer_A", "Customer_B", "Customer_C"}, result.Destinations,
		"caller-supplied destinations are sorted")
	assert.Equal(t, []string{"Customer_C", "Customer_A", "Customer_B"}, given,
		"caller's slice is not mutated")
	assert.Len(t, result.Routes, 3)
}

func TestExecuteFromFile(t *testing.T) {
	path := writeTopology(t, canonicalTOML)

	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{TopologyPath: path})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Stats.NodeCount)
}

func TestExecuteUnknownDestination(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		TopologyTOML: canonicalTOML,
		Destinations: []string{"Warehouse_9"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyze")
}

func TestExecuteRenderCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{
		TopologyTOML: canonicalTOML,
		Formats:      []string{FormatJSON},
	}

	first, err := runner.Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.LayoutHit)
	assert.False(t, first.CacheInfo.RenderHit)
	require.Contains(t, first.Artifacts, FormatJSON)
	assert.Contains(t, first.Layout.DOT, "graph G {")

	second, err := runner.Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.LayoutHit)
	assert.True(t, second.CacheInfo.RenderHit)
	assert.Equal(t, first.Artifacts[FormatJSON], second.Artifacts[FormatJSON])

	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, third.CacheInfo.LayoutHit)
	assert.False(t, third.CacheInfo.RenderHit)
}

func TestNetworkHash(t *testing.T) {
	fromTOML, err := topology.Parse([]byte(canonicalTOML))
	require.NoError(t, err)

	// Same network declared differently hashes identically.
	assert.Equal(t, NetworkHash(topology.Canonical()), NetworkHash(fromTOML))

	// A weight change produces a different hash.
	changed := strings.Replace(canonicalTOML, "weight = 8.0", "weight = 9.0", 1)
	other, err := topology.Parse([]byte(changed))
	require.NoError(t, err)
	assert.NotEqual(t, NetworkHash(fromTOML), NetworkHash(other))
}

func TestGenerateLayout(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	net := topology.Canonical()
	layout, err := runner.GenerateLayout(context.Background(), net, Options{
		TopologyTOML: canonicalTOML,
		Engine:       "dot",
		Highlight:    []string{"Depot", "Junction_1", "Customer_A"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dot", layout.Engine)
	assert.Contains(t, layout.DOT, "layout=dot;")
	assert.Contains(t, layout.DOT, "color=red")
}

func writeTopology(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
