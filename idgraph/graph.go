package idgraph

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/idstrat"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// EdgeID is the id type used for edges. Unlike vertices, edges are not
// generalized to an arbitrary comparable type: in practice callers either
// don't care about edge identity beyond "the edge I just added" (served
// fine by the index itself) or want a caller-chosen int id, which
// idstrat.MappedStrategy[int] already covers without a second exported
// type parameter threaded through every package that touches a Graph.
type EdgeID = int

// Graph wraps an indexgraph.IndexGraph and presents vertex ids of type V
// in place of raw indices. V is typically string (human-readable labels)
// or a small struct, but any comparable type works.
type Graph[V comparable] struct {
	idx         indexgraph.IndexGraph
	vertexStrat idstrat.Strategy[V]
	edgeStrat   idstrat.Strategy[EdgeID]

	vertexWeights map[string]any
	edgeWeights   map[string]any
	vertexViews   map[string]any
	edgeViews     map[string]any
}

// New wraps idx with the given vertex and edge id strategies. Both
// strategies must start empty and in sync with idx (idx itself must also
// be empty).
func New[V comparable](idx indexgraph.IndexGraph, vertexStrat idstrat.Strategy[V], edgeStrat idstrat.Strategy[EdgeID]) *Graph[V] {
	return &Graph[V]{
		idx:           idx,
		vertexStrat:   vertexStrat,
		edgeStrat:     edgeStrat,
		vertexWeights: make(map[string]any),
		edgeWeights:   make(map[string]any),
		vertexViews:   make(map[string]any),
		edgeViews:     make(map[string]any),
	}
}

// Underlying returns the wrapped index graph, for code that needs raw
// index access (algorithm packages run entirely in index space and
// translate back to ids only at their public boundary).
func (g *Graph[V]) Underlying() indexgraph.IndexGraph { return g.idx }

func (g *Graph[V]) N() int                          { return g.idx.N() }
func (g *Graph[V]) M() int                          { return g.idx.M() }
func (g *Graph[V]) Capabilities() graph.Capabilities { return g.idx.Capabilities() }

// VertexID translates index back to the id under which it was added.
func (g *Graph[V]) VertexID(index int) (V, error) { return g.vertexStrat.IndexToId(index) }

// VertexIndex translates id to its current index.
func (g *Graph[V]) VertexIndex(id V) (int, error) { return g.vertexStrat.IdToIndex(id) }

// EdgeIDOf translates an edge index back to its id.
func (g *Graph[V]) EdgeIDOf(index int) (EdgeID, error) { return g.edgeStrat.IndexToId(index) }

// EdgeIndex translates an edge id to its current index.
func (g *Graph[V]) EdgeIndex(id EdgeID) (int, error) { return g.edgeStrat.IdToIndex(id) }

// AddVertex registers id and adds the corresponding vertex to the
// wrapped index graph, returning its index. Fails with
// graph.ErrDuplicateId if id is already registered, leaving both the
// index graph and the strategy untouched.
func (g *Graph[V]) AddVertex(id V) (int, error) {
	idx := g.idx.AddVertex()
	if _, err := g.vertexStrat.NewIdxWith(id); err != nil {
		_ = g.idx.RemoveVertex(idx)
		return 0, err
	}
	return idx, nil
}

// RemoveVertexByID removes the vertex registered under id.
func (g *Graph[V]) RemoveVertexByID(id V) error {
	idx, err := g.vertexStrat.IdToIndex(id)
	if err != nil {
		return err
	}
	if err := g.idx.RemoveVertex(idx); err != nil {
		return err
	}
	return g.vertexStrat.RemoveIdx(idx)
}

// AddEdge registers id for the new edge u->v (by vertex id) and adds it
// to the wrapped index graph.
func (g *Graph[V]) AddEdge(u, v V, id EdgeID) (int, error) {
	ui, err := g.vertexStrat.IdToIndex(u)
	if err != nil {
		return 0, err
	}
	vi, err := g.vertexStrat.IdToIndex(v)
	if err != nil {
		return 0, err
	}
	ei, err := g.idx.AddEdge(ui, vi)
	if err != nil {
		return 0, err
	}
	if _, err := g.edgeStrat.NewIdxWith(id); err != nil {
		_ = g.idx.RemoveEdge(ei)
		return 0, err
	}
	return ei, nil
}

// RemoveEdgeByID removes the edge registered under id.
func (g *Graph[V]) RemoveEdgeByID(id EdgeID) error {
	idx, err := g.edgeStrat.IdToIndex(id)
	if err != nil {
		return err
	}
	if err := g.idx.RemoveEdge(idx); err != nil {
		return err
	}
	return g.edgeStrat.RemoveIdx(idx)
}

// GetEdge returns the edge id (and index) from u to v, if one exists.
func (g *Graph[V]) GetEdge(u, v V) (EdgeID, int, bool, error) {
	ui, err := g.vertexStrat.IdToIndex(u)
	if err != nil {
		return 0, 0, false, err
	}
	vi, err := g.vertexStrat.IdToIndex(v)
	if err != nil {
		return 0, 0, false, err
	}
	idx, ok := g.idx.GetEdge(ui, vi)
	if !ok {
		return 0, 0, false, nil
	}
	eid, err := g.edgeStrat.IndexToId(idx)
	return eid, idx, true, err
}

// OutEdges returns an id-translating iterator over v's out-edges.
func (g *Graph[V]) OutEdges(v V) (*EdgeIter[V], error) {
	vi, err := g.vertexStrat.IdToIndex(v)
	if err != nil {
		return nil, err
	}
	return &EdgeIter[V]{g: g, it: g.idx.OutEdges(vi)}, nil
}

// InEdges returns an id-translating iterator over v's in-edges.
func (g *Graph[V]) InEdges(v V) (*EdgeIter[V], error) {
	vi, err := g.vertexStrat.IdToIndex(v)
	if err != nil {
		return nil, err
	}
	return &EdgeIter[V]{g: g, it: g.idx.InEdges(vi)}, nil
}
