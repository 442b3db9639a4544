package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/shortestpath"
)

// buildDirected adds n vertices and the given weighted edges (u,v,w), in
// order, returning the graph and a WeightFunc keyed by edge index.
func buildDirected(t *testing.T, n int, edges [][3]float64) (indexgraph.IndexGraph, graph.WeightFunc) {
	t.Helper()
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	weights := make([]float64, len(edges))
	for _, spec := range edges {
		e, err := g.AddEdge(int(spec[0]), int(spec[1]))
		require.NoError(t, err)
		weights[e] = spec[2]
	}
	return g, func(e int) float64 { return weights[e] }
}

func TestDijkstra_ShortestDistancesAndPath(t *testing.T) {
	// 0 -1-> 1 -2-> 3 ; 0 -4-> 2 -1-> 3
	g, w := buildDirected(t, 4, [][3]float64{
		{0, 1, 1}, {1, 3, 2}, {0, 2, 4}, {2, 3, 1},
	})
	r, err := shortestpath.Dijkstra(g, w, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Dist(0))
	require.Equal(t, 1.0, r.Dist(1))
	require.Equal(t, 4.0, r.Dist(2))
	require.Equal(t, 3.0, r.Dist(3))

	p, ok := r.PathTo(3)
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, p.Edges)
}

func TestDijkstra_UnreachableVertex(t *testing.T) {
	g, w := buildDirected(t, 3, [][3]float64{{0, 1, 1}})
	r, err := shortestpath.Dijkstra(g, w, 0)
	require.NoError(t, err)
	require.False(t, r.Reachable(2))
	_, ok := r.PathTo(2)
	require.False(t, ok)
}

func TestDijkstra_RejectsNegativeWeightOnRelaxedEdge(t *testing.T) {
	g, w := buildDirected(t, 2, [][3]float64{{0, 1, -5}})
	_, err := shortestpath.Dijkstra(g, w, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestBellmanFord_HandlesNegativeWeights(t *testing.T) {
	g, w := buildDirected(t, 3, [][3]float64{{0, 1, 4}, {0, 2, 5}, {1, 2, -2}})
	r, err := shortestpath.BellmanFord(g, w, 0)
	require.NoError(t, err)
	require.False(t, r.HasNegativeCycle())
	require.Equal(t, 4.0, r.Dist(1))
	require.Equal(t, 2.0, r.Dist(2))
}

func TestBellmanFord_DetectsNegativeCycle(t *testing.T) {
	g, w := buildDirected(t, 3, [][3]float64{{0, 1, 1}, {1, 2, -1}, {2, 0, -1}})
	r, err := shortestpath.BellmanFord(g, w, 0)
	require.NoError(t, err)
	require.True(t, r.HasNegativeCycle())
	require.NotEmpty(t, r.NegativeCycle)
}

func TestJohnson_MatchesDijkstraOnNonnegativeGraph(t *testing.T) {
	g, w := buildDirected(t, 4, [][3]float64{
		{0, 1, 1}, {1, 3, 2}, {0, 2, 4}, {2, 3, 1},
	})
	apsp, err := shortestpath.Johnson(g, w)
	require.NoError(t, err)
	require.False(t, apsp.HasNegativeCycle())
	require.Equal(t, 3.0, apsp.Dist(0, 3))
	require.Equal(t, 0.0, apsp.Dist(2, 2))
}

func TestJohnson_HandlesNegativeWeightsWithoutCycle(t *testing.T) {
	g, w := buildDirected(t, 3, [][3]float64{{0, 1, 4}, {0, 2, 5}, {1, 2, -2}})
	apsp, err := shortestpath.Johnson(g, w)
	require.NoError(t, err)
	require.Equal(t, 2.0, apsp.Dist(0, 2))
}

func TestJohnson_ReportsNegativeCycle(t *testing.T) {
	g, w := buildDirected(t, 3, [][3]float64{{0, 1, 1}, {1, 2, -1}, {2, 0, -1}})
	apsp, err := shortestpath.Johnson(g, w)
	require.NoError(t, err)
	require.True(t, apsp.HasNegativeCycle())
}

func TestDAG_LinearRelaxation(t *testing.T) {
	g, w := buildDirected(t, 4, [][3]float64{{0, 1, 2}, {1, 2, -3}, {0, 2, 10}, {2, 3, 1}})
	r, err := shortestpath.DAG(g, w, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, r.Dist(2))
	require.Equal(t, 0.0, r.Dist(3))
}

func TestDAG_RejectsCycle(t *testing.T) {
	g, w := buildDirected(t, 2, [][3]float64{{0, 1, 1}, {1, 0, 1}})
	_, err := shortestpath.DAG(g, w, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestDAG_RejectsUndirected(t *testing.T) {
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	g.AddVertex()
	g.AddVertex()
	_, err := shortestpath.DAG(g, graph.UnitWeight, 0)
	require.Error(t, err)
}
