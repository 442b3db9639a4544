package views

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/iweight"
)

func errUnmodifiable(op string) error {
	return fmt.Errorf("views: %s on an unmodifiable graph: %w", op, graph.ErrUnsupportedOperation)
}

// Unmodifiable wraps an indexgraph.IndexGraph, forwarding every read-only
// method and rejecting every mutator with graph.ErrUnsupportedOperation.
// Copy returns a fresh, independent, mutable IndexGraph rather than
// another Unmodifiable, per spec's documented copy-breaks-the-wrapper
// behavior.
type Unmodifiable struct {
	inner indexgraph.IndexGraph
}

// NewUnmodifiable wraps inner.
func NewUnmodifiable(inner indexgraph.IndexGraph) *Unmodifiable { return &Unmodifiable{inner: inner} }

func (u *Unmodifiable) N() int                           { return u.inner.N() }
func (u *Unmodifiable) M() int                           { return u.inner.M() }
func (u *Unmodifiable) Capabilities() graph.Capabilities  { return u.inner.Capabilities() }
func (u *Unmodifiable) OutEdges(v int) indexgraph.EdgeIter { return u.inner.OutEdges(v) }
func (u *Unmodifiable) InEdges(v int) indexgraph.EdgeIter  { return u.inner.InEdges(v) }
func (u *Unmodifiable) GetEdge(u2, v int) (int, bool)      { return u.inner.GetEdge(u2, v) }
func (u *Unmodifiable) GetEdges(u2, v int) []int           { return u.inner.GetEdges(u2, v) }
func (u *Unmodifiable) EdgeSource(e int) int               { return u.inner.EdgeSource(e) }
func (u *Unmodifiable) EdgeTarget(e int) int               { return u.inner.EdgeTarget(e) }
func (u *Unmodifiable) EdgeEndpoint(e, endpoint int) int   { return u.inner.EdgeEndpoint(e, endpoint) }

func (u *Unmodifiable) AddVertex() int                    { panic(errUnmodifiable("AddVertex")) }
func (u *Unmodifiable) RemoveVertex(int) error            { return errUnmodifiable("RemoveVertex") }
func (u *Unmodifiable) AddEdge(int, int) (int, error)     { return 0, errUnmodifiable("AddEdge") }
func (u *Unmodifiable) RemoveEdge(int) error              { return errUnmodifiable("RemoveEdge") }
func (u *Unmodifiable) RemoveEdgesOf(int) error           { return errUnmodifiable("RemoveEdgesOf") }
func (u *Unmodifiable) RemoveOutEdgesOf(int) error        { return errUnmodifiable("RemoveOutEdgesOf") }
func (u *Unmodifiable) RemoveInEdgesOf(int) error         { return errUnmodifiable("RemoveInEdgesOf") }
func (u *Unmodifiable) ReverseEdge(int) error             { return errUnmodifiable("ReverseEdge") }
func (u *Unmodifiable) ClearEdges()                       { panic(errUnmodifiable("ClearEdges")) }
func (u *Unmodifiable) Clear()                            { panic(errUnmodifiable("Clear")) }

// Copy returns a fresh, independent, mutable copy of the wrapped graph —
// intentionally NOT another Unmodifiable, since a caller asking to copy a
// read-only view is asking for something they can work with.
func (u *Unmodifiable) Copy() indexgraph.IndexGraph { return u.inner.Copy() }

func (u *Unmodifiable) AddVertexSwapListener(l graph.SwapListener)    { u.inner.AddVertexSwapListener(l) }
func (u *Unmodifiable) RemoveVertexSwapListener(l graph.SwapListener) { u.inner.RemoveVertexSwapListener(l) }
func (u *Unmodifiable) AddEdgeSwapListener(l graph.SwapListener)      { u.inner.AddEdgeSwapListener(l) }
func (u *Unmodifiable) RemoveEdgeSwapListener(l graph.SwapListener)   { u.inner.RemoveEdgeSwapListener(l) }
func (u *Unmodifiable) AddVertexListener(l graph.AddRemoveListener)   { u.inner.AddVertexListener(l) }
func (u *Unmodifiable) RemoveVertexListener(l graph.AddRemoveListener) {
	u.inner.RemoveVertexListener(l)
}
func (u *Unmodifiable) AddEdgeListener(l graph.AddRemoveListener) { u.inner.AddEdgeListener(l) }
func (u *Unmodifiable) RemoveEdgeListener(l graph.AddRemoveListener) {
	u.inner.RemoveEdgeListener(l)
}

// UnmodifiableContainer wraps an *iweight.Container[T], exposing only
// read access. Set/Clear/Expand are deliberately not forwarded at all
// (not even as error-returning stubs) since Container's own mutators
// return no error to wrap one in.
type UnmodifiableContainer[T any] struct {
	inner *iweight.Container[T]
}

// NewUnmodifiableContainer wraps inner.
func NewUnmodifiableContainer[T any](inner *iweight.Container[T]) *UnmodifiableContainer[T] {
	return &UnmodifiableContainer[T]{inner: inner}
}

func (c *UnmodifiableContainer[T]) Get(idx int) T { return c.inner.Get(idx) }
func (c *UnmodifiableContainer[T]) Len() int      { return c.inner.Len() }
func (c *UnmodifiableContainer[T]) Default() T    { return c.inner.Default() }

// Copy returns an independent, mutable *iweight.Container[T].
func (c *UnmodifiableContainer[T]) Copy() *iweight.Container[T] { return c.inner.Copy() }
