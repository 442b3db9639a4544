package lca_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/lca"
)

func tree(t *testing.T, n int, edges [][2]int) indexgraph.IndexGraph {
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

// smallTree is rooted at 0 with children 1,2; 1 has children 3,4.
func smallTree(t *testing.T) indexgraph.IndexGraph {
	return tree(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}})
}

func TestQuery_Siblings(t *testing.T) {
	g := smallTree(t)
	l, err := lca.New(g, 0)
	require.NoError(t, err)

	v, err := l.Query(3, 4)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestQuery_CrossSubtree(t *testing.T) {
	g := smallTree(t)
	l, err := lca.New(g, 0)
	require.NoError(t, err)

	v, err := l.Query(3, 2)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestQuery_VertexIsAncestorOfItself(t *testing.T) {
	g := smallTree(t)
	l, err := lca.New(g, 0)
	require.NoError(t, err)

	v, err := l.Query(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = l.Query(3, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestNew_RejectsDirectedGraph(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	_, err = lca.New(g, 0)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestNew_RejectsDisconnectedGraph(t *testing.T) {
	g := tree(t, 4, [][2]int{{0, 1}, {2, 3}})
	_, err := lca.New(g, 0)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestNew_RejectsCycle(t *testing.T) {
	g := tree(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	_, err := lca.New(g, 0)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestNew_RejectsRootOutOfRange(t *testing.T) {
	g := smallTree(t)
	_, err := lca.New(g, 99)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestQuery_RejectsOutOfRangeVertex(t *testing.T) {
	g := smallTree(t)
	l, err := lca.New(g, 0)
	require.NoError(t, err)

	_, err = l.Query(0, 99)
	require.ErrorIs(t, err, graph.ErrNoSuchId)
}
