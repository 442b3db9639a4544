package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/coloring"
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

func undirectedGraph(t *testing.T, n int, edges [][2]int) indexgraph.IndexGraph {
	t.Helper()
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func assertProperColoring(t *testing.T, g indexgraph.IndexGraph, result *coloring.Result, n, maxDegree int) {
	t.Helper()
	require.LessOrEqual(t, result.NumColors, maxDegree+1)
	for v := 0; v < n; v++ {
		for it := g.OutEdges(v); it.Next(); {
			e := it.Edge()
			u, w := g.EdgeSource(e), g.EdgeTarget(e)
			require.NotEqual(t, result.ColorOf(u), result.ColorOf(w))
		}
	}
}

func fiveCycle(t *testing.T) indexgraph.IndexGraph {
	return undirectedGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
}

func TestDSatur_FiveCycle(t *testing.T) {
	g := fiveCycle(t)
	result, err := coloring.DSatur(g)
	require.NoError(t, err)
	assertProperColoring(t, g, result, 5, 2)
	// An odd cycle is not bipartite: 2 colors can never suffice.
	require.GreaterOrEqual(t, result.NumColors, 3)
}

func TestRLF_FiveCycle(t *testing.T) {
	g := fiveCycle(t)
	result, err := coloring.RLF(g)
	require.NoError(t, err)
	assertProperColoring(t, g, result, 5, 2)
	require.GreaterOrEqual(t, result.NumColors, 3)
}

func completeGraph(t *testing.T, n int) indexgraph.IndexGraph {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return undirectedGraph(t, n, edges)
}

func TestDSatur_CompleteGraphNeedsNColors(t *testing.T) {
	g := completeGraph(t, 6)
	result, err := coloring.DSatur(g)
	require.NoError(t, err)
	assertProperColoring(t, g, result, 6, 5)
	require.Equal(t, 6, result.NumColors)
}

func TestRLF_CompleteGraphNeedsNColors(t *testing.T) {
	g := completeGraph(t, 6)
	result, err := coloring.RLF(g)
	require.NoError(t, err)
	assertProperColoring(t, g, result, 6, 5)
	require.Equal(t, 6, result.NumColors)
}

func TestDSatur_RejectsDirectedGraph(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	_, err = coloring.DSatur(g)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestDSatur_RejectsSelfLoop(t *testing.T) {
	caps := graph.DefaultCapabilities(false)
	caps.SelfEdges = true
	g := indexgraph.NewArrayUndirected(caps)
	g.AddVertex()
	_, err := g.AddEdge(0, 0)
	require.NoError(t, err)

	_, err = coloring.DSatur(g)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}
