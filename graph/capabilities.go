package graph

// Capabilities records what a graph representation permits. It is set at
// construction time and immutable for the lifetime of the graph; directed
// vs undirected can never flip once a graph exists.
type Capabilities struct {
	// Directed is true for directed graphs, false for undirected.
	Directed bool

	// SelfEdges permits addEdge(u, u). When false, AddEdge rejects
	// self-loops with ErrIllegalInput before any mutation.
	SelfEdges bool

	// ParallelEdges permits more than one edge between the same ordered
	// (directed) or unordered (undirected) endpoint pair. When false,
	// AddEdge(u, v) rejects a second u->v edge with ErrIllegalInput.
	ParallelEdges bool
}

// DefaultCapabilities returns the most permissive capabilities with the
// given directedness: self edges and parallel edges allowed. Callers
// narrow from here.
func DefaultCapabilities(directed bool) Capabilities {
	return Capabilities{
		Directed:      directed,
		SelfEdges:     true,
		ParallelEdges: true,
	}
}
