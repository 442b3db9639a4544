package views

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// CompleteGraph is a fixed-size directed or undirected graph over
// {0,...,n-1} with every possible edge present and no adjacency storage
// at all: GetEdge, EdgeSource, and EdgeTarget are pure arithmetic over
// the endpoint pair. Mutation is forbidden (the vertex and edge sets are
// both fixed by construction); weight containers may still be attached,
// but since vertices never arrive via AddVertex events, a container must
// be Expand()-ed to N() once after attaching rather than relying on
// IndexAdded callbacks it will never receive.
//
// The undirected numbering here is the standard triangular ("row major
// over u<v") scheme rather than the balanced round-robin/circle-method
// variant that would give every vertex an equal share of low-numbered
// edge indices: the triangular scheme keeps GetEdge and the
// index-to-endpoint decode both simple closed forms, at the cost of
// vertex 0's incident edges clustering at the low end of the index
// range. Documented as a deliberate simplification in DESIGN.md.
type CompleteGraph struct {
	n        int
	directed bool

	vertexSwap  []graph.SwapListener
	vertexAddRm []graph.AddRemoveListener
	edgeSwap    []graph.SwapListener
	edgeAddRm   []graph.AddRemoveListener
}

// NewCompleteDirected returns the complete directed graph on n vertices
// (n*(n-1) edges, one in each direction between every pair).
func NewCompleteDirected(n int) *CompleteGraph { return &CompleteGraph{n: n, directed: true} }

// NewCompleteUndirected returns the complete undirected graph on n
// vertices (n*(n-1)/2 edges).
func NewCompleteUndirected(n int) *CompleteGraph { return &CompleteGraph{n: n, directed: false} }

func (c *CompleteGraph) N() int { return c.n }

func (c *CompleteGraph) M() int {
	if c.directed {
		return c.n * (c.n - 1)
	}
	return c.n * (c.n - 1) / 2
}

func (c *CompleteGraph) Capabilities() graph.Capabilities {
	return graph.Capabilities{Directed: c.directed, SelfEdges: false, ParallelEdges: false}
}

func errFixedSize(op string) error {
	return fmt.Errorf("views: %s on a CompleteGraph: %w", op, graph.ErrUnsupportedOperation)
}

func (c *CompleteGraph) AddVertex() int           { panic(errFixedSize("AddVertex")) }
func (c *CompleteGraph) RemoveVertex(int) error   { return errFixedSize("RemoveVertex") }
func (c *CompleteGraph) AddEdge(int, int) (int, error) {
	return 0, errFixedSize("AddEdge")
}
func (c *CompleteGraph) RemoveEdge(int) error       { return errFixedSize("RemoveEdge") }
func (c *CompleteGraph) RemoveEdgesOf(int) error    { return errFixedSize("RemoveEdgesOf") }
func (c *CompleteGraph) RemoveOutEdgesOf(int) error { return errFixedSize("RemoveOutEdgesOf") }
func (c *CompleteGraph) RemoveInEdgesOf(int) error  { return errFixedSize("RemoveInEdgesOf") }
func (c *CompleteGraph) ReverseEdge(int) error      { return errFixedSize("ReverseEdge") }
func (c *CompleteGraph) ClearEdges()                { panic(errFixedSize("ClearEdges")) }
func (c *CompleteGraph) Clear()                     { panic(errFixedSize("Clear")) }

// triangularOffset returns S(u), the number of undirected edges whose row
// owner (the smaller endpoint) is strictly less than u, for an n-vertex
// complete graph: S(u) = u*(n-1) - u*(u-1)/2.
func (c *CompleteGraph) triangularOffset(u int) int {
	return u*(c.n-1) - u*(u-1)/2
}

// edgeUndirected returns the edge index for the unordered pair {u,v}.
func (c *CompleteGraph) edgeUndirected(u, v int) int {
	if u > v {
		u, v = v, u
	}
	return c.triangularOffset(u) + (v - u - 1)
}

// edgeDirected returns the edge index for the ordered pair u->v.
func (c *CompleteGraph) edgeDirected(u, v int) int {
	offset := v
	if v > u {
		offset = v - 1
	}
	return u*(c.n-1) + offset
}

func (c *CompleteGraph) GetEdge(u, v int) (int, bool) {
	if u < 0 || u >= c.n || v < 0 || v >= c.n || u == v {
		return 0, false
	}
	if c.directed {
		return c.edgeDirected(u, v), true
	}
	return c.edgeUndirected(u, v), true
}

func (c *CompleteGraph) GetEdges(u, v int) []int {
	if e, ok := c.GetEdge(u, v); ok {
		return []int{e}
	}
	return nil
}

// decodeUndirected inverts edgeUndirected via binary search over the
// monotonically increasing triangularOffset function: O(log n), traded
// for the closed-form quadratic inverse to avoid floating-point
// round-trip risk in an index decode that callers rely on for
// correctness, not just convenience.
func (c *CompleteGraph) decodeUndirected(e int) (u, v int) {
	lo, hi := 0, c.n-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.triangularOffset(mid) <= e {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	u = lo
	v = e - c.triangularOffset(u) + u + 1
	return u, v
}

func (c *CompleteGraph) EdgeSource(e int) int {
	if c.directed {
		return e / (c.n - 1)
	}
	u, _ := c.decodeUndirected(e)
	return u
}

func (c *CompleteGraph) EdgeTarget(e int) int {
	if c.directed {
		u := e / (c.n - 1)
		offset := e % (c.n - 1)
		if offset < u {
			return offset
		}
		return offset + 1
	}
	_, v := c.decodeUndirected(e)
	return v
}

func (c *CompleteGraph) EdgeEndpoint(e, endpoint int) int {
	s, t := c.EdgeSource(e), c.EdgeTarget(e)
	if s == endpoint {
		return t
	}
	return s
}

type completeIter struct {
	c        *CompleteGraph
	pivot    int
	cur      int
	asTarget bool
}

func (it *completeIter) Next() bool {
	for it.cur++; it.cur < it.c.n; it.cur++ {
		if it.cur != it.pivot {
			return true
		}
	}
	return false
}

func (it *completeIter) edge() int {
	if it.asTarget {
		e, _ := it.c.GetEdge(it.cur, it.pivot)
		return e
	}
	e, _ := it.c.GetEdge(it.pivot, it.cur)
	return e
}

func (it *completeIter) Edge() int { return it.edge() }
func (it *completeIter) Source() int {
	if it.asTarget {
		return it.cur
	}
	return it.pivot
}
func (it *completeIter) Target() int {
	if it.asTarget {
		return it.pivot
	}
	return it.cur
}

func (c *CompleteGraph) OutEdges(v int) indexgraph.EdgeIter {
	return &completeIter{c: c, pivot: v, cur: -1}
}

func (c *CompleteGraph) InEdges(v int) indexgraph.EdgeIter {
	if !c.directed {
		return c.OutEdges(v)
	}
	return &completeIter{c: c, pivot: v, cur: -1, asTarget: true}
}

func (c *CompleteGraph) Copy() indexgraph.IndexGraph {
	var out indexgraph.IndexGraph
	if c.directed {
		out = indexgraph.NewArrayDirected(c.Capabilities())
	} else {
		out = indexgraph.NewArrayUndirected(c.Capabilities())
	}
	for i := 0; i < c.n; i++ {
		out.AddVertex()
	}
	for u := 0; u < c.n; u++ {
		start := 0
		if !c.directed {
			start = u + 1
		}
		for v := start; v < c.n; v++ {
			if v == u {
				continue
			}
			_, _ = out.AddEdge(u, v)
		}
	}
	return out
}

// Listener registration is accepted but never fires: a CompleteGraph's
// vertex and edge sets never change after construction, so there is no
// swap or add/remove event to deliver. Registered listeners are kept
// only so attached weight containers don't panic on registration.
func (c *CompleteGraph) AddVertexSwapListener(l graph.SwapListener) {
	c.vertexSwap = append(c.vertexSwap, l)
}
func (c *CompleteGraph) RemoveVertexSwapListener(l graph.SwapListener) {
	c.vertexSwap = removeSwap(c.vertexSwap, l)
}
func (c *CompleteGraph) AddEdgeSwapListener(l graph.SwapListener) {
	c.edgeSwap = append(c.edgeSwap, l)
}
func (c *CompleteGraph) RemoveEdgeSwapListener(l graph.SwapListener) {
	c.edgeSwap = removeSwap(c.edgeSwap, l)
}
func (c *CompleteGraph) AddVertexListener(l graph.AddRemoveListener) {
	c.vertexAddRm = append(c.vertexAddRm, l)
}
func (c *CompleteGraph) RemoveVertexListener(l graph.AddRemoveListener) {
	c.vertexAddRm = removeAddRm(c.vertexAddRm, l)
}
func (c *CompleteGraph) AddEdgeListener(l graph.AddRemoveListener) {
	c.edgeAddRm = append(c.edgeAddRm, l)
}
func (c *CompleteGraph) RemoveEdgeListener(l graph.AddRemoveListener) {
	c.edgeAddRm = removeAddRm(c.edgeAddRm, l)
}

func removeSwap(ls []graph.SwapListener, l graph.SwapListener) []graph.SwapListener {
	out := ls[:0]
	for _, cur := range ls {
		if cur != l {
			out = append(out, cur)
		}
	}
	return out
}

func removeAddRm(ls []graph.AddRemoveListener, l graph.AddRemoveListener) []graph.AddRemoveListener {
	out := ls[:0]
	for _, cur := range ls {
		if cur != l {
			out = append(out, cur)
		}
	}
	return out
}
