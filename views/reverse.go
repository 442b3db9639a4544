package views

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// Reverse presents a directed graph with every edge's direction swapped:
// OutEdges/InEdges trade places, EdgeSource/EdgeTarget trade places, and
// AddEdge(u,v) on the view adds (v,u) on the underlying graph. It is a
// live view, not a copy — mutating it mutates inner, and vice versa.
// Valid on directed graphs only.
type Reverse struct {
	inner indexgraph.IndexGraph
}

// NewReverse wraps inner, which must be directed.
func NewReverse(inner indexgraph.IndexGraph) (*Reverse, error) {
	if !inner.Capabilities().Directed {
		return nil, fmt.Errorf("views: Reverse requires a directed graph: %w", graph.ErrIllegalInput)
	}
	return &Reverse{inner: inner}, nil
}

func (r *Reverse) N() int                          { return r.inner.N() }
func (r *Reverse) M() int                          { return r.inner.M() }
func (r *Reverse) Capabilities() graph.Capabilities { return r.inner.Capabilities() }

func (r *Reverse) AddVertex() int             { return r.inner.AddVertex() }
func (r *Reverse) RemoveVertex(v int) error   { return r.inner.RemoveVertex(v) }
func (r *Reverse) AddEdge(u, v int) (int, error) { return r.inner.AddEdge(v, u) }
func (r *Reverse) RemoveEdge(e int) error     { return r.inner.RemoveEdge(e) }

func (r *Reverse) RemoveEdgesOf(v int) error    { return r.inner.RemoveEdgesOf(v) }
func (r *Reverse) RemoveOutEdgesOf(v int) error { return r.inner.RemoveInEdgesOf(v) }
func (r *Reverse) RemoveInEdgesOf(v int) error  { return r.inner.RemoveOutEdgesOf(v) }

func (r *Reverse) OutEdges(v int) indexgraph.EdgeIter { return &reversedIter{r.inner.InEdges(v)} }
func (r *Reverse) InEdges(v int) indexgraph.EdgeIter  { return &reversedIter{r.inner.OutEdges(v)} }

func (r *Reverse) GetEdge(u, v int) (int, bool) { return r.inner.GetEdge(v, u) }
func (r *Reverse) GetEdges(u, v int) []int      { return r.inner.GetEdges(v, u) }

func (r *Reverse) EdgeSource(e int) int             { return r.inner.EdgeTarget(e) }
func (r *Reverse) EdgeTarget(e int) int             { return r.inner.EdgeSource(e) }
func (r *Reverse) EdgeEndpoint(e, endpoint int) int { return r.inner.EdgeEndpoint(e, endpoint) }

func (r *Reverse) ReverseEdge(e int) error { return r.inner.ReverseEdge(e) }
func (r *Reverse) ClearEdges()             { r.inner.ClearEdges() }
func (r *Reverse) Clear()                  { r.inner.Clear() }

// Copy returns an independent IndexGraph with edges already reversed
// (not another Reverse view over a copy), since nothing further needs
// wrapping once the edges themselves are physically flipped.
func (r *Reverse) Copy() indexgraph.IndexGraph {
	cp := r.inner.Copy()
	out := indexgraph.NewArrayDirected(cp.Capabilities())
	for i := 0; i < cp.N(); i++ {
		out.AddVertex()
	}
	for e := 0; e < cp.M(); e++ {
		_, _ = out.AddEdge(cp.EdgeTarget(e), cp.EdgeSource(e))
	}
	return out
}

func (r *Reverse) AddVertexSwapListener(l graph.SwapListener)    { r.inner.AddVertexSwapListener(l) }
func (r *Reverse) RemoveVertexSwapListener(l graph.SwapListener) { r.inner.RemoveVertexSwapListener(l) }
func (r *Reverse) AddEdgeSwapListener(l graph.SwapListener)      { r.inner.AddEdgeSwapListener(l) }
func (r *Reverse) RemoveEdgeSwapListener(l graph.SwapListener)   { r.inner.RemoveEdgeSwapListener(l) }
func (r *Reverse) AddVertexListener(l graph.AddRemoveListener)   { r.inner.AddVertexListener(l) }
func (r *Reverse) RemoveVertexListener(l graph.AddRemoveListener) {
	r.inner.RemoveVertexListener(l)
}
func (r *Reverse) AddEdgeListener(l graph.AddRemoveListener) { r.inner.AddEdgeListener(l) }
func (r *Reverse) RemoveEdgeListener(l graph.AddRemoveListener) {
	r.inner.RemoveEdgeListener(l)
}

// reversedIter swaps Source/Target on top of an underlying EdgeIter,
// without touching Next/Edge.
type reversedIter struct {
	inner indexgraph.EdgeIter
}

func (it *reversedIter) Next() bool   { return it.inner.Next() }
func (it *reversedIter) Edge() int    { return it.inner.Edge() }
func (it *reversedIter) Source() int  { return it.inner.Target() }
func (it *reversedIter) Target() int  { return it.inner.Source() }
