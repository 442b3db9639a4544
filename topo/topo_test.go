package topo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/topo"
)

func digraph(t *testing.T, n int, edges [][2]int) indexgraph.IndexGraph {
	t.Helper()
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func position(order []int, v int) int {
	for i, u := range order {
		if u == v {
			return i
		}
	}
	return -1
}

func TestSort_DiamondDAG(t *testing.T) {
	g := digraph(t, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	order, err := topo.Sort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	require.Less(t, position(order, 0), position(order, 1))
	require.Less(t, position(order, 0), position(order, 2))
	require.Less(t, position(order, 1), position(order, 3))
	require.Less(t, position(order, 2), position(order, 3))
	require.True(t, topo.IsDAG(g))
}

func TestSort_RejectsCycle(t *testing.T) {
	g := digraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	_, err := topo.Sort(g)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
	require.False(t, topo.IsDAG(g))
}

func TestSort_RejectsUndirectedGraph(t *testing.T) {
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	_, err = topo.Sort(g)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestSort_DisconnectedVerticesAnyOrder(t *testing.T) {
	g := digraph(t, 3, nil)
	order, err := topo.Sort(g)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2}, order)
}
