package mdst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/mdst"
)

func weightedDigraph(t *testing.T, n int, edges [][3]float64) (indexgraph.IndexGraph, graph.WeightFunc) {
	t.Helper()
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
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

// assertArborescence checks that result.Edges forms a valid in-tree
// rooted at root: exactly one chosen in-edge per non-root vertex, and
// following chosen edges from any vertex eventually reaches root with
// no cycle.
func assertArborescence(t *testing.T, g indexgraph.IndexGraph, result *mdst.Result, n, root int) {
	t.Helper()
	require.Len(t, result.Edges, n-1)

	inEdgeOf := make(map[int]int, n)
	for _, e := range result.Edges {
		v := g.EdgeTarget(e)
		_, dup := inEdgeOf[v]
		require.Falsef(t, dup, "vertex %d has more than one chosen in-edge", v)
		inEdgeOf[v] = e
	}
	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		_, ok := inEdgeOf[v]
		require.Truef(t, ok, "vertex %d has no chosen in-edge", v)
	}

	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		seen := map[int]bool{v: true}
		cur := v
		for cur != root {
			e, ok := inEdgeOf[cur]
			require.Truef(t, ok, "broken chain starting at %d", v)
			cur = g.EdgeSource(e)
			require.Falsef(t, seen[cur], "cycle detected reaching back to %d from %d", cur, v)
			seen[cur] = true
		}
	}
}

// complete4 is the spec's own worked example: the complete directed
// graph on 4 vertices where every edge's weight equals its target
// vertex's id, rooted at 0. Every vertex's cheapest candidate edges
// tie among themselves (all edges into 1 weigh 1, into 2 weigh 2, into
// 3 weigh 3), which forces a full cycle contraction over {1,2,3}
// before the chase resolves; the minimum arborescence weight is 6
// regardless of which tied edges the contraction happens to keep.
func complete4(t *testing.T) (indexgraph.IndexGraph, graph.WeightFunc) {
	var edges [][3]float64
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			if u == v {
				continue
			}
			edges = append(edges, [3]float64{float64(u), float64(v), float64(v)})
		}
	}
	return weightedDigraph(t, 4, edges)
}

func TestTarjan_Complete4_MatchesKnownMinimum(t *testing.T) {
	g, w := complete4(t)
	result, err := mdst.Tarjan(g, w, 0)
	require.NoError(t, err)
	require.Equal(t, 6.0, result.Weight)
	assertArborescence(t, g, result, 4, 0)
}

// diamondWithCycle is a small graph with one real cycle contraction:
// 0->1 (1), 0->2 (4), 1->2 (1), 2->1 (1), 1->3 (1), 2->3 (1).
// Without root 0, vertices 1 and 2 would each pick each other as their
// cheapest in-edge (weight 1 both ways), forming a 2-cycle that must be
// contracted; the cycle's cheapest entry from outside is 0->1 (1), which
// breaks the cycle at 2->1 and keeps 1->2, and 3 still needs an in-edge,
// giving total weight 1 (0->1) + 1 (1->2) + 1 (into 3) = 3.
func diamondWithCycle(t *testing.T) (indexgraph.IndexGraph, graph.WeightFunc) {
	return weightedDigraph(t, 4, [][3]float64{
		{0, 1, 1}, {0, 2, 4}, {1, 2, 1}, {2, 1, 1}, {1, 3, 1}, {2, 3, 1},
	})
}

func TestTarjan_DiamondWithCycle(t *testing.T) {
	g, w := diamondWithCycle(t)
	result, err := mdst.Tarjan(g, w, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, result.Weight)
	assertArborescence(t, g, result, 4, 0)
}

// nestedContraction mirrors root 0, vertices {1,2,3}: the cycle {1,2}
// (1->2 and 2->1, both weight 1) contracts into a supervertex, which
// together with 3 (via 2->3 and 3->1) contracts again into a second
// supervertex. The true cheapest entry from root is 0->2 (weight 5),
// landing on vertex 2 nested inside the inner cycle, so it must
// propagate down through two unwind levels to be assigned correctly.
// Every vertex's candidate weights are pairwise distinct, so extraction
// order is fully determined and this nesting happens on every run.
func nestedContraction(t *testing.T) (indexgraph.IndexGraph, graph.WeightFunc) {
	return weightedDigraph(t, 4, [][3]float64{
		{0, 1, 100}, {0, 2, 5}, {1, 2, 1}, {2, 1, 1}, {2, 3, 1}, {3, 1, 2},
	})
}

func TestTarjan_NestedTwoLevelContraction(t *testing.T) {
	g, w := nestedContraction(t)
	result, err := mdst.Tarjan(g, w, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, result.Weight)
	assertArborescence(t, g, result, 4, 0)
}

func TestTarjan_RejectsUndirectedGraph(t *testing.T) {
	g := indexgraph.NewArrayUndirected(graph.DefaultCapabilities(false))
	g.AddVertex()
	g.AddVertex()
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	_, err = mdst.Tarjan(g, func(int) float64 { return 1 }, 0)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestTarjan_RejectsRootOutOfRange(t *testing.T) {
	g, w := complete4(t)
	_, err := mdst.Tarjan(g, w, 99)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestTarjan_RejectsUnreachableVertex(t *testing.T) {
	g, w := weightedDigraph(t, 3, [][3]float64{
		{0, 1, 1},
	})
	_, err := mdst.Tarjan(g, w, 0)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestTarjan_SingleVertex(t *testing.T) {
	g := indexgraph.NewArrayDirected(graph.DefaultCapabilities(true))
	g.AddVertex()
	result, err := mdst.Tarjan(g, func(int) float64 { return 0 }, 0)
	require.NoError(t, err)
	require.Empty(t, result.Edges)
	require.Equal(t, 0.0, result.Weight)
}
