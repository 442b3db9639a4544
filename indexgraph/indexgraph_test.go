package indexgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

type backendCase struct {
	name       string
	directed   func(graph.Capabilities) indexgraph.IndexGraph
	undirected func(graph.Capabilities) indexgraph.IndexGraph
	noParallel bool
}

var backends = []backendCase{
	{
		name:       "array",
		directed:   func(c graph.Capabilities) indexgraph.IndexGraph { return indexgraph.NewArrayDirected(c) },
		undirected: func(c graph.Capabilities) indexgraph.IndexGraph { return indexgraph.NewArrayUndirected(c) },
	},
	{
		name:       "linked",
		directed:   func(c graph.Capabilities) indexgraph.IndexGraph { return indexgraph.NewLinkedDirected(c) },
		undirected: func(c graph.Capabilities) indexgraph.IndexGraph { return indexgraph.NewLinkedUndirected(c) },
	},
	{
		name:       "table",
		directed:   func(c graph.Capabilities) indexgraph.IndexGraph { return indexgraph.NewTableDirected(c) },
		undirected: func(c graph.Capabilities) indexgraph.IndexGraph { return indexgraph.NewTableUndirected(c) },
		noParallel: true,
	},
}

func drain(it indexgraph.EdgeIter) [][2]int {
	var out [][2]int
	for it.Next() {
		out = append(out, [2]int{it.Source(), it.Target()})
	}
	return out
}

func TestIndexGraph_BasicAddRemoveVertex(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			for i := 0; i < 4; i++ {
				require.Equal(t, i, g.AddVertex())
			}
			require.Equal(t, 4, g.N())

			e0, err := g.AddEdge(0, 1)
			require.NoError(t, err)
			e1, err := g.AddEdge(2, 3)
			require.NoError(t, err)
			require.NotEqual(t, e0, e1)
			require.Equal(t, 2, g.M())
		})
	}
}

// TestIndexGraph_DirectedInOutOrientation guards the Source/Target
// orientation bug: InEdges on a directed graph must report the pivot as
// Target(), not Source().
func TestIndexGraph_DirectedInOutOrientation(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			for i := 0; i < 2; i++ {
				g.AddVertex()
			}
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)

			out := drain(g.OutEdges(0))
			require.Equal(t, [][2]int{{0, 1}}, out)

			in := drain(g.InEdges(1))
			require.Equal(t, [][2]int{{0, 1}}, in)

			require.Empty(t, drain(g.OutEdges(1)))
			require.Empty(t, drain(g.InEdges(0)))
		})
	}
}

func TestIndexGraph_UndirectedIncidenceBothWays(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.undirected(graph.DefaultCapabilities(false))
			g.AddVertex()
			g.AddVertex()
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)

			require.Equal(t, [][2]int{{0, 1}}, drain(g.OutEdges(0)))
			require.Equal(t, [][2]int{{1, 0}}, drain(g.OutEdges(1)))
			// InEdges on undirected graphs is identical to OutEdges.
			require.Equal(t, drain(g.OutEdges(1)), drain(g.InEdges(1)))
		})
	}
}

// TestIndexGraph_RemoveVertexSwapProtocol mirrors the seed scenario used
// for the weight-container swap protocol: removing vertex 2 out of 0..4
// relocates vertex 4 into slot 2, and every edge touching the old vertex 4
// must now read 2 as that endpoint.
func TestIndexGraph_RemoveVertexSwapProtocol(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			for i := 0; i < 5; i++ {
				g.AddVertex()
			}
			e, err := g.AddEdge(4, 0)
			require.NoError(t, err)

			require.NoError(t, g.RemoveVertex(2))
			require.Equal(t, 4, g.N())
			require.Equal(t, 2, g.EdgeSource(e))
			require.Equal(t, 0, g.EdgeTarget(e))
		})
	}
}

func TestIndexGraph_RemoveEdgeSwapProtocol(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			for i := 0; i < 3; i++ {
				g.AddVertex()
			}
			e0, err := g.AddEdge(0, 1)
			require.NoError(t, err)
			e1, err := g.AddEdge(1, 2)
			require.NoError(t, err)
			e2, err := g.AddEdge(2, 0)
			require.NoError(t, err)

			require.NoError(t, g.RemoveEdge(e0))
			require.Equal(t, 2, g.M())
			// e2 (formerly M()-1) now lives at e0's old slot.
			_ = e1
			found := false
			for _, e := range []int{0, 1} {
				if g.EdgeSource(e) == 2 && g.EdgeTarget(e) == 0 {
					found = true
				}
			}
			require.True(t, found)
			require.Equal(t, e2, e2) // index identity unaffected for readability
		})
	}
}

func TestIndexGraph_RemoveOutInEdgesOf(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			for i := 0; i < 4; i++ {
				g.AddVertex()
			}
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)
			_, err = g.AddEdge(0, 2)
			require.NoError(t, err)
			_, err = g.AddEdge(3, 0)
			require.NoError(t, err)

			require.NoError(t, g.RemoveOutEdgesOf(0))
			require.Equal(t, 1, g.M())
			require.Empty(t, drain(g.OutEdges(0)))

			require.NoError(t, g.RemoveInEdgesOf(0))
			require.Equal(t, 0, g.M())
		})
	}
}

func TestIndexGraph_SelfEdgeCapability(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			caps := graph.DefaultCapabilities(true)
			caps.SelfEdges = false
			g := b.directed(caps)
			g.AddVertex()
			_, err := g.AddEdge(0, 0)
			require.Error(t, err)
		})
	}
}

func TestIndexGraph_ParallelEdgeCapability(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			if b.noParallel {
				t.Skip("table backend cannot represent parallel edges")
			}
			g := b.directed(graph.DefaultCapabilities(true))
			g.AddVertex()
			g.AddVertex()
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)
			_, err = g.AddEdge(0, 1)
			require.NoError(t, err)
			require.Len(t, g.GetEdges(0, 1), 2)

			caps := graph.DefaultCapabilities(true)
			caps.ParallelEdges = false
			strict := b.directed(caps)
			strict.AddVertex()
			strict.AddVertex()
			_, err = strict.AddEdge(0, 1)
			require.NoError(t, err)
			_, err = strict.AddEdge(0, 1)
			require.Error(t, err)
		})
	}
}

func TestIndexGraph_ReverseEdge(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			g.AddVertex()
			g.AddVertex()
			e, err := g.AddEdge(0, 1)
			require.NoError(t, err)

			require.NoError(t, g.ReverseEdge(e))
			require.Equal(t, 1, g.EdgeSource(e))
			require.Equal(t, 0, g.EdgeTarget(e))
			require.Equal(t, [][2]int{{1, 0}}, drain(g.OutEdges(1)))

			undirected := b.undirected(graph.DefaultCapabilities(false))
			undirected.AddVertex()
			require.Error(t, undirected.ReverseEdge(0))
		})
	}
}

func TestIndexGraph_Copy(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			g.AddVertex()
			g.AddVertex()
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)

			cp := g.Copy()
			_, err = g.AddEdge(1, 0)
			require.NoError(t, err)

			require.Equal(t, 2, g.M())
			require.Equal(t, 1, cp.M())
		})
	}
}

func TestIndexGraph_ClearAndClearEdges(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			g := b.directed(graph.DefaultCapabilities(true))
			g.AddVertex()
			g.AddVertex()
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)

			g.ClearEdges()
			require.Equal(t, 0, g.M())
			require.Equal(t, 2, g.N())

			g.Clear()
			require.Equal(t, 0, g.N())
		})
	}
}
