package indexgraph

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/idstrat"
)

// base holds the pieces every backend shares: the vertex and edge id
// strategies (identity strategies here — an IndexGraph's ids are defined
// to equal its indices) and the redundant (source, target) endpoint
// arrays spec §4.C calls for. It implements the listener passthrough
// methods of the IndexGraph interface so each backend only has to embed
// it rather than repeat six one-line forwarding methods.
type base struct {
	caps graph.Capabilities

	vertexStrat *idstrat.DefaultStrategy
	edgeStrat   *idstrat.DefaultStrategy

	edgeSource []int
	edgeTarget []int
}

func newBase(caps graph.Capabilities) base {
	return base{
		caps:        caps,
		vertexStrat: idstrat.NewDefaultStrategy(),
		edgeStrat:   idstrat.NewDefaultStrategy(),
	}
}

func (b *base) N() int                            { return b.vertexStrat.Size() }
func (b *base) M() int                             { return b.edgeStrat.Size() }
func (b *base) Capabilities() graph.Capabilities   { return b.caps }
func (b *base) EdgeSource(e int) int               { return b.edgeSource[e] }
func (b *base) EdgeTarget(e int) int               { return b.edgeTarget[e] }

func (b *base) EdgeEndpoint(e, endpoint int) int {
	if b.edgeSource[e] == endpoint {
		return b.edgeTarget[e]
	}
	return b.edgeSource[e]
}

func (b *base) pushEdge(u, v int) int {
	e, _ := b.edgeStrat.NewIdx()
	b.edgeSource = append(b.edgeSource, u)
	b.edgeTarget = append(b.edgeTarget, v)
	return e
}

// swapEdgeEndpoints is registered as the edge strategy's swap listener so
// the redundant endpoint arrays always track the edge index space; it
// fires before backend-specific adjacency listeners that are registered
// afterwards, per spec's documented "fixed subscription order".
func (b *base) swapEdgeEndpoints(i, j int) {
	b.edgeSource[i], b.edgeSource[j] = b.edgeSource[j], b.edgeSource[i]
	b.edgeTarget[i], b.edgeTarget[j] = b.edgeTarget[j], b.edgeTarget[i]
}

func (b *base) popEdge() {
	last := len(b.edgeSource) - 1
	b.edgeSource = b.edgeSource[:last]
	b.edgeTarget = b.edgeTarget[:last]
}

func (b *base) AddVertexSwapListener(l graph.SwapListener)       { b.vertexStrat.AddSwapListener(l) }
func (b *base) RemoveVertexSwapListener(l graph.SwapListener)    { b.vertexStrat.RemoveSwapListener(l) }
func (b *base) AddEdgeSwapListener(l graph.SwapListener)         { b.edgeStrat.AddSwapListener(l) }
func (b *base) RemoveEdgeSwapListener(l graph.SwapListener)      { b.edgeStrat.RemoveSwapListener(l) }
func (b *base) AddVertexListener(l graph.AddRemoveListener)      { b.vertexStrat.AddAddRemoveListener(l) }
func (b *base) RemoveVertexListener(l graph.AddRemoveListener)   { b.vertexStrat.RemoveAddRemoveListener(l) }
func (b *base) AddEdgeListener(l graph.AddRemoveListener)        { b.edgeStrat.AddAddRemoveListener(l) }
func (b *base) RemoveEdgeListener(l graph.AddRemoveListener)     { b.edgeStrat.RemoveAddRemoveListener(l) }
