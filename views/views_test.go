package views_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/views"
)

func TestUnmodifiable_RejectsMutation(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	u := views.NewUnmodifiable(g)
	require.Equal(t, 2, u.N())
	require.Equal(t, 1, u.M())

	require.Error(t, u.RemoveEdge(0))
	require.ErrorIs(t, u.RemoveEdge(0), graph.ErrUnsupportedOperation)

	cp := u.Copy()
	_, err = cp.AddEdge(1, 0)
	require.NoError(t, err, "Copy() must return a mutable graph")
}

func TestReverse_SwapsDirection(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	r, err := views.NewReverse(g)
	require.NoError(t, err)

	it := r.OutEdges(1)
	require.True(t, it.Next())
	require.Equal(t, 1, it.Source())
	require.Equal(t, 0, it.Target())
	require.False(t, it.Next())

	require.Empty(t, drain(r.OutEdges(0)))

	_, err = r.AddEdge(1, 0) // adds (0,1) on the underlying graph
	require.NoError(t, err)
	require.Equal(t, 2, g.M())
	e, ok := g.GetEdge(0, 1)
	require.True(t, ok)
	_ = e
}

func TestReverse_RejectsUndirected(t *testing.T) {
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	_, err := views.NewReverse(g)
	require.Error(t, err)
}

func drain(it indexgraph.EdgeIter) [][2]int {
	var out [][2]int
	for it.Next() {
		out = append(out, [2]int{it.Source(), it.Target()})
	}
	return out
}

func TestCompleteGraph_Directed(t *testing.T) {
	n := 5
	c := views.NewCompleteDirected(n)
	require.Equal(t, n, c.N())
	require.Equal(t, n*(n-1), c.M())

	seen := make(map[int]bool)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			e, ok := c.GetEdge(u, v)
			require.True(t, ok)
			require.False(t, seen[e], "edge index %d reused for (%d,%d)", e, u, v)
			seen[e] = true
			require.Equal(t, u, c.EdgeSource(e))
			require.Equal(t, v, c.EdgeTarget(e))
		}
	}
	require.Len(t, seen, n*(n-1))
}

func TestCompleteGraph_Undirected(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7} {
		c := views.NewCompleteUndirected(n)
		require.Equal(t, n*(n-1)/2, c.M())

		seen := make(map[int]bool)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				e, ok := c.GetEdge(u, v)
				require.True(t, ok)
				require.False(t, seen[e], "n=%d edge index %d reused for (%d,%d)", n, e, u, v)
				seen[e] = true

				s, tg := c.EdgeSource(e), c.EdgeTarget(e)
				require.ElementsMatch(t, []int{u, v}, []int{s, tg}, "n=%d decode mismatch for edge %d", n, e)
			}
		}
		require.Len(t, seen, n*(n-1)/2)
	}
}

func TestCompleteGraph_OutEdgesEnumeratesAllOthers(t *testing.T) {
	n := 6
	c := views.NewCompleteUndirected(n)
	for v := 0; v < n; v++ {
		others := drain(c.OutEdges(v))
		require.Len(t, others, n-1)
		for _, pair := range others {
			require.Equal(t, v, pair[0])
			require.NotEqual(t, v, pair[1])
		}
	}
}

func TestCompleteGraph_MutationRejected(t *testing.T) {
	c := views.NewCompleteUndirected(4)
	_, err := c.AddEdge(0, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrUnsupportedOperation)
	require.Error(t, c.RemoveEdge(0))
}

func TestCompleteGraph_Copy(t *testing.T) {
	c := views.NewCompleteUndirected(4)
	cp := c.Copy()
	require.Equal(t, c.N(), cp.N())
	require.Equal(t, c.M(), cp.M())
	err := cp.RemoveEdge(0)
	require.NoError(t, err, "Copy() must return a mutable graph")
}
