package graphbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/graphbuilder"
)

func TestBuild_DefaultIsDirectedArray(t *testing.T) {
	g, err := graphbuilder.Build(nil, graphbuilder.Path(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 3, g.M())
	require.True(t, g.Capabilities().Directed)
}

func TestBuild_UndirectedTableBackend(t *testing.T) {
	g, err := graphbuilder.Build(
		[]graphbuilder.Option{
			graphbuilder.WithBackend(graphbuilder.BackendTable),
			graphbuilder.WithDirected(false),
		},
		graphbuilder.Cycle(5),
	)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 5, g.M())
	require.False(t, g.Capabilities().Directed)
}

func TestBuild_MultipleConstructorsCompose(t *testing.T) {
	g, err := graphbuilder.Build(nil, graphbuilder.Star(3), graphbuilder.Path(2))
	require.NoError(t, err)
	// Star(3) adds 3 vertices + 2 edges; Path(2) adds 2 more vertices + 1 edge.
	require.Equal(t, 5, g.N())
	require.Equal(t, 3, g.M())
}

func TestBuild_PathTooFewVerticesFails(t *testing.T) {
	_, err := graphbuilder.Build(nil, graphbuilder.Path(1))
	require.ErrorIs(t, err, graphbuilder.ErrTooFewVertices)
}

func TestBuild_CycleTooFewVerticesFails(t *testing.T) {
	_, err := graphbuilder.Build(nil, graphbuilder.Cycle(2))
	require.ErrorIs(t, err, graphbuilder.ErrTooFewVertices)
}

func TestBuild_SelfEdgesRejectedWhenDisallowed(t *testing.T) {
	g, err := graphbuilder.Build([]graphbuilder.Option{
		graphbuilder.WithSelfEdges(false),
	})
	require.NoError(t, err)
	g.AddVertex()
	_, err = g.AddEdge(0, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, graph.ErrIllegalInput)
}

func TestBuildID_AssignsGeneratedIDs(t *testing.T) {
	next := 0
	genID := func() string {
		next++
		return "v" + string(rune('0'+next))
	}
	g, err := graphbuilder.BuildID[string](genID, nil, graphbuilder.Path(3))
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 2, g.M())

	id0, err := g.VertexID(0)
	require.NoError(t, err)
	require.Equal(t, "v1", id0)

	eid, idx, ok, err := g.GetEdge("v1", "v2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, idx)
	require.Equal(t, 0, eid)
}
