package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/mst"
)

// weightedGraph builds an undirected graph with the given weighted
// edges (u, v, weight) and returns it alongside a weight function
// closing over the slice.
func weightedGraph(t *testing.T, n int, edges [][3]float64) (indexgraph.IndexGraph, graph.WeightFunc) {
	t.Helper()
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	weights := make([]float64, len(edges))
	for _, spec := range edges {
		id, err := g.AddEdge(int(spec[0]), int(spec[1]))
		require.NoError(t, err)
		weights[id] = spec[2]
	}
	return g, func(e int) float64 { return weights[e] }
}

// pentagonWithChords is a 5-vertex graph with a known MST weight of 9:
// a cycle 0-1-2-3-4-0 with weights 1,2,3,4,5, plus a chord 0-2 weight 1.
// Minimum spanning tree picks edges {0-1(1), 0-2(1), 2-3(3), 3-4(4)} = 9,
// as traced by hand in the comment on TestKruskal_Pentagon below.
func pentagonWithChords(t *testing.T) (indexgraph.IndexGraph, graph.WeightFunc) {
	return weightedGraph(t, 5, [][3]float64{
		{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 4, 4}, {4, 0, 5}, {0, 2, 1},
	})
}

// Hand trace: edges sorted ascending: (0,1,1),(0,2,1),(1,2,2),(2,3,3),
// (3,4,4),(4,0,5). Kruskal: accept (0,1) [{0,1}], accept (0,2) [{0,1,2}],
// skip (1,2) [cycle], accept (2,3) [{0,1,2,3}], accept (3,4)
// [{0,1,2,3,4}] -> 4 edges, weight 1+1+3+4=9.
func TestKruskal_Pentagon(t *testing.T) {
	g, w := pentagonWithChords(t)
	res, err := mst.Kruskal(g, w)
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.InDelta(t, 9.0, res.Weight, 1e-9)
	require.Equal(t, 1, res.Components)
}

func TestPrim_Pentagon_MatchesKruskalWeight(t *testing.T) {
	g, w := pentagonWithChords(t)
	res, err := mst.Prim(g, w, 0)
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.InDelta(t, 9.0, res.Weight, 1e-9)
}

func TestBoruvka_Pentagon_MatchesKruskalWeight(t *testing.T) {
	g, w := pentagonWithChords(t)
	res, err := mst.Boruvka(g, w)
	require.NoError(t, err)
	require.InDelta(t, 9.0, res.Weight, 1e-9)
}

func TestYaoBuckets_Pentagon_MatchesKruskalWeight(t *testing.T) {
	g, w := pentagonWithChords(t)
	res, err := mst.YaoBuckets(g, w)
	require.NoError(t, err)
	require.InDelta(t, 9.0, res.Weight, 1e-9)
}

func TestKargerKleinTarjan_Pentagon_MatchesKruskalWeight(t *testing.T) {
	g, w := pentagonWithChords(t)
	res, err := mst.KargerKleinTarjan(g, w)
	require.NoError(t, err)
	require.InDelta(t, 9.0, res.Weight, 1e-9)
}

// completeGraph builds an undirected complete graph on n vertices with
// pairwise distinct weights assigned in enumeration order, so there is
// a unique MST to compare against.
func completeGraph(t *testing.T, n int) (indexgraph.IndexGraph, graph.WeightFunc) {
	t.Helper()
	var edges [][3]float64
	next := 1.0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [3]float64{float64(u), float64(v), next})
			next++
		}
	}
	return weightedGraph(t, n, edges)
}

// TestKargerKleinTarjan_LargeGraph_MatchesKruskalWeight uses a 10-vertex
// complete graph (45 edges), well above kktSmallThreshold, so kktSolve
// must actually contract via kktBoruvkaRound and recurse into the
// sampling/light-edge branches rather than falling straight through to
// kktKruskal — the code path TestKargerKleinTarjan_Pentagon_MatchesKruskalWeight
// never reaches, since its 6-edge graph stays under the threshold.
func TestKargerKleinTarjan_LargeGraph_MatchesKruskalWeight(t *testing.T) {
	g, w := completeGraph(t, 10)
	want, err := mst.Kruskal(g, w)
	require.NoError(t, err)

	got, err := mst.KargerKleinTarjan(g, w)
	require.NoError(t, err)
	require.InDelta(t, want.Weight, got.Weight, 1e-9)
}

func TestKruskal_DisconnectedGraphProducesForest(t *testing.T) {
	// Two triangles, {0,1,2} and {3,4,5}, no edge between them.
	g, w := weightedGraph(t, 6, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 0, 9},
		{3, 4, 1}, {4, 5, 1}, {5, 3, 9},
	})
	res, err := mst.Kruskal(g, w)
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.Equal(t, 2, res.Components)
	require.InDelta(t, 4.0, res.Weight, 1e-9)
}

func TestPrim_DisconnectedGraphProducesForest(t *testing.T) {
	g, w := weightedGraph(t, 6, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 0, 9},
		{3, 4, 1}, {4, 5, 1}, {5, 3, 9},
	})
	res, err := mst.Prim(g, w, 0)
	require.NoError(t, err)
	require.Len(t, res.Edges, 4)
	require.Equal(t, 2, res.Components)
	require.InDelta(t, 4.0, res.Weight, 1e-9)
}

func TestKruskal_RejectsDirectedGraph(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	_, err := mst.Kruskal(g, func(int) float64 { return 0 })
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestPrim_RejectsRootOutOfRange(t *testing.T) {
	g, w := pentagonWithChords(t)
	_, err := mst.Prim(g, w, 99)
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}
