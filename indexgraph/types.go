package indexgraph

import "github.com/dmishra-go/graphkit/graph"

// EdgeIter walks the edges incident to one vertex (the pivot the iterator
// was created for). It is an explicit cursor, not a channel or callback,
// per this module's general rule: model iteration as a struct holding its
// own position rather than a coroutine-like construct.
//
// Usage:
//
//	for it := g.OutEdges(v); it.Next(); {
//	    e := it.Edge()
//	    _ = it.Source()
//	    _ = it.Target()
//	}
//
// An EdgeIter is invalidated by any mutation of the graph it was obtained
// from; continuing to use one after a mutation has undefined behavior
// (spec §5, "iterators are documented as fail-fast where practical").
type EdgeIter interface {
	// Next advances the cursor to the next edge, returning false once
	// exhausted. Must be called before the first Edge()/Source()/Target().
	Next() bool

	// Edge returns the current edge's index.
	Edge() int

	// Source returns the current edge's source as seen from the pivot:
	// for a directed out-edge iterator this is always the pivot; for an
	// undirected incidence iterator it is the pivot as well (the edge is
	// presented oriented away from the vertex it was requested for).
	Source() int

	// Target returns the endpoint opposite Source() for this edge as
	// presented by this iterator.
	Target() int
}

// IndexGraph is the contract implemented by every backend in this
// package: a directed or undirected graph whose vertices are exactly
// {0,...,N()-1} and edges exactly {0,...,M()-1}, contiguous after every
// mutation.
type IndexGraph interface {
	// N returns the current vertex count.
	N() int

	// M returns the current edge count.
	M() int

	// Capabilities returns the immutable capabilities this graph was
	// constructed with.
	Capabilities() graph.Capabilities

	// AddVertex appends a new vertex and returns its index (== old N()).
	AddVertex() int

	// RemoveVertex removes vertex v, following the swap protocol: every
	// edge incident to N()-1 is rewritten to use v in its place, internal
	// adjacency for v and N()-1 is exchanged, then vertex id-strategy
	// listeners are notified of the swap before N() shrinks.
	RemoveVertex(v int) error

	// AddEdge adds an edge u->v (or the undirected edge {u,v}) and
	// returns its index (== old M()). Fails with graph.ErrIllegalInput if
	// the capabilities forbid the result (self edge, parallel edge) or u
	// or v is out of range.
	AddEdge(u, v int) (int, error)

	// RemoveEdge removes edge e, following the same swap protocol as
	// RemoveVertex but over the edge index space.
	RemoveEdge(e int) error

	// RemoveEdgesOf removes every edge incident to v (both directions for
	// a directed graph).
	RemoveEdgesOf(v int) error

	// RemoveOutEdgesOf removes every edge with source v. For undirected
	// graphs this is identical to RemoveEdgesOf.
	RemoveOutEdgesOf(v int) error

	// RemoveInEdgesOf removes every edge with target v. For undirected
	// graphs this is identical to RemoveEdgesOf.
	RemoveInEdgesOf(v int) error

	// OutEdges returns an iterator over edges with source v (all edges
	// incident to v, for undirected graphs).
	OutEdges(v int) EdgeIter

	// InEdges returns an iterator over edges with target v. For
	// undirected graphs this is identical to OutEdges.
	InEdges(v int) EdgeIter

	// GetEdge returns one edge u->v if it exists (the first by internal
	// iteration order for parallel edges).
	GetEdge(u, v int) (int, bool)

	// GetEdges returns every edge u->v.
	GetEdges(u, v int) []int

	// EdgeSource returns e's source endpoint.
	EdgeSource(e int) int

	// EdgeTarget returns e's target endpoint.
	EdgeTarget(e int) int

	// EdgeEndpoint returns e's endpoint other than the one given, i.e. if
	// endpoint == EdgeSource(e) it returns EdgeTarget(e) and vice versa.
	// Used when a caller knows one side of an edge (typically from an
	// OutEdges/InEdges iteration pivot) and wants the other without
	// branching on direction.
	EdgeEndpoint(e, endpoint int) int

	// ReverseEdge swaps e's source and target in place, preserving e's
	// index. Valid on directed graphs only.
	ReverseEdge(e int) error

	// ClearEdges removes every edge, leaving vertices intact.
	ClearEdges()

	// Clear removes every vertex and edge.
	Clear()

	// Copy returns an independent deep copy with the same capabilities,
	// vertices, and edges (new index graph instance; listeners are not
	// copied).
	Copy() IndexGraph

	// AddVertexSwapListener / AddEdgeSwapListener expose the underlying
	// id strategies' swap notifications so other packages (idgraph,
	// iweight-backed caches) can mirror this graph's index space.
	AddVertexSwapListener(l graph.SwapListener)
	RemoveVertexSwapListener(l graph.SwapListener)
	AddEdgeSwapListener(l graph.SwapListener)
	RemoveEdgeSwapListener(l graph.SwapListener)

	// AddVertexListener / AddEdgeListener expose add/remove notifications
	// for the same reason.
	AddVertexListener(l graph.AddRemoveListener)
	RemoveVertexListener(l graph.AddRemoveListener)
	AddEdgeListener(l graph.AddRemoveListener)
	RemoveEdgeListener(l graph.AddRemoveListener)
}
