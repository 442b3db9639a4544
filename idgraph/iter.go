package idgraph

// EdgeIter wraps an indexgraph.EdgeIter, translating index→id lazily: the
// translation only happens when Source/Target/EdgeID is actually called,
// not eagerly per Next, since most callers only read the endpoint they
// care about.
type EdgeIter[V comparable] struct {
	g  *Graph[V]
	it interface {
		Next() bool
		Edge() int
		Source() int
		Target() int
	}
}

// Next advances the cursor. Must be called before the first accessor.
func (it *EdgeIter[V]) Next() bool { return it.it.Next() }

// EdgeID returns the current edge's id.
func (it *EdgeIter[V]) EdgeID() (EdgeID, error) { return it.g.edgeStrat.IndexToId(it.it.Edge()) }

// EdgeIndex returns the current edge's raw index, for callers that want
// to key a weight container directly without a further id lookup.
func (it *EdgeIter[V]) EdgeIndex() int { return it.it.Edge() }

// Source returns the current edge's source vertex id.
func (it *EdgeIter[V]) Source() (V, error) { return it.g.vertexStrat.IndexToId(it.it.Source()) }

// Target returns the current edge's target vertex id.
func (it *EdgeIter[V]) Target() (V, error) { return it.g.vertexStrat.IndexToId(it.it.Target()) }
