package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/matching"
)

// bipartiteGraph builds an undirected graph with leftSize vertices on
// the left and the rest on the right, edges given as (leftIdx,
// rightGlobalIdx, weight) triples.
func bipartiteGraph(t *testing.T, n, leftSize int, edges [][3]float64) (indexgraph.IndexGraph, graph.WeightFunc) {
	t.Helper()
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	weights := make([]float64, len(edges))
	for _, e := range edges {
		id, err := g.AddEdge(int(e[0]), int(e[1]))
		require.NoError(t, err)
		weights[id] = e[2]
	}
	return g, func(e int) float64 { return weights[e] }
}

// TestMaxWeight_TwoByTwo uses the cost matrix [[1,4],[4,2]] (left 0,1;
// right 2,3): pairing (0-3,1-2) totals 8, strictly beating (0-2,1-3)'s
// 3, so 8 is the unique maximum.
func TestMaxWeight_TwoByTwo(t *testing.T) {
	g, w := bipartiteGraph(t, 4, 2, [][3]float64{
		{0, 2, 1}, {0, 3, 4}, {1, 2, 4}, {1, 3, 2},
	})
	result, err := matching.MaxWeight(g, 2, w)
	require.NoError(t, err)
	require.Equal(t, 8.0, result.Weight)
	require.Equal(t, 3, result.Match[0])
	require.Equal(t, 2, result.Match[1])
}

// TestMaxWeight_SparseLeavesOneUnmatched: left {0,1,2}, right {3,4},
// edges (0-3,5),(1-3,3),(1-4,6),(2-4,2). Every full 2-pairing that
// respects the edge set tops out at (0-3,1-4)=11, leaving vertex 2
// unmatched since its only neighbor (4) is worth more to vertex 1.
func TestMaxWeight_SparseLeavesOneUnmatched(t *testing.T) {
	g, w := bipartiteGraph(t, 5, 3, [][3]float64{
		{0, 3, 5}, {1, 3, 3}, {1, 4, 6}, {2, 4, 2},
	})
	result, err := matching.MaxWeight(g, 3, w)
	require.NoError(t, err)
	require.Equal(t, 11.0, result.Weight)
	require.Equal(t, 3, result.Match[0])
	require.Equal(t, 4, result.Match[1])
	require.Equal(t, -1, result.Match[2])
}

// TestMinWeight_SkipsPositiveCostEdges: with only positive-cost edges,
// the empty matching (weight 0) is the true minimum, since adding any
// edge can only raise the total.
func TestMinWeight_SkipsPositiveCostEdges(t *testing.T) {
	g, w := bipartiteGraph(t, 4, 2, [][3]float64{
		{0, 2, 1}, {0, 3, 4}, {1, 2, 4}, {1, 3, 2},
	})
	result, err := matching.MinWeight(g, 2, w)
	require.NoError(t, err)
	require.Equal(t, 0.0, result.Weight)
	require.Equal(t, -1, result.Match[0])
	require.Equal(t, -1, result.Match[1])
}

// TestMinWeight_NegativeCostsAugment: negative costs represent
// profitable pairings, so the solver keeps augmenting while doing so
// lowers the total, landing on the cheapest full pairing (0-2,1-3)=-7
// over (0-3,1-2)'s -2.
func TestMinWeight_NegativeCostsAugment(t *testing.T) {
	g, w := bipartiteGraph(t, 4, 2, [][3]float64{
		{0, 2, -5}, {0, 3, -1}, {1, 2, -1}, {1, 3, -2},
	})
	result, err := matching.MinWeight(g, 2, w)
	require.NoError(t, err)
	require.Equal(t, -7.0, result.Weight)
	require.Equal(t, 2, result.Match[0])
	require.Equal(t, 3, result.Match[1])
}

func TestMatching_RejectsDirectedGraph(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	_, err = matching.MinWeight(g, 1, func(int) float64 { return 0 })
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestMatching_RejectsSameSideEdge(t *testing.T) {
	g, w := bipartiteGraph(t, 4, 2, [][3]float64{{0, 1, 1}})
	_, err := matching.MinWeight(g, 2, w)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestMatching_RejectsLeftSizeOutOfRange(t *testing.T) {
	g, w := bipartiteGraph(t, 4, 2, [][3]float64{{0, 2, 1}})
	_, err := matching.MinWeight(g, 99, w)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}
