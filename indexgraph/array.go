package indexgraph

import "github.com/dmishra-go/graphkit/graph"

// ArrayGraph is the Array-backend IndexGraph: each vertex owns a dynamic
// slice of incident edge indices. AddEdge is amortized O(1); RemoveEdge
// and GetEdge are O(deg(u)+deg(v)). This is the default backend — dense
// enumeration over a vertex's incident edges is the common case and a
// slice gives the best constants for it.
type ArrayGraph struct {
	base
	directed bool
	out      [][]int // out[v]: edges with source v (all incident edges, for undirected)
	in       [][]int // in[v]: edges with target v (directed only; nil when undirected)
}

// NewArrayDirected returns an empty directed Array-backend graph.
func NewArrayDirected(caps graph.Capabilities) *ArrayGraph {
	caps.Directed = true
	return newArrayGraph(caps, true)
}

// NewArrayUndirected returns an empty undirected Array-backend graph.
func NewArrayUndirected(caps graph.Capabilities) *ArrayGraph {
	caps.Directed = false
	return newArrayGraph(caps, false)
}

func newArrayGraph(caps graph.Capabilities, directed bool) *ArrayGraph {
	g := &ArrayGraph{base: newBase(caps), directed: directed}
	g.vertexStrat.AddSwapListener(graph.SwapListenerFunc(g.swapVertexAdjacency))
	g.vertexStrat.AddAddRemoveListener(graph.AddRemoveListenerFuncs{
		OnAdd:    g.growVertexAdjacency,
		OnRemove: g.shrinkVertexAdjacency,
	})
	g.edgeStrat.AddSwapListener(graph.SwapListenerFunc(g.swapEdgeEndpoints))
	g.edgeStrat.AddAddRemoveListener(graph.AddRemoveListenerFuncs{OnRemove: func(int) { g.popEdge() }})
	return g
}

func (g *ArrayGraph) growVertexAdjacency(idx int) {
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}
}

func (g *ArrayGraph) shrinkVertexAdjacency(idx int) {
	g.out = g.out[:len(g.out)-1]
	if g.directed {
		g.in = g.in[:len(g.in)-1]
	}
}

func (g *ArrayGraph) swapVertexAdjacency(i, j int) {
	g.out[i], g.out[j] = g.out[j], g.out[i]
	if g.directed {
		g.in[i], g.in[j] = g.in[j], g.in[i]
	}
}

func (g *ArrayGraph) AddVertex() int {
	_, idx := g.vertexStrat.NewIdx()
	return idx
}

func removeFromSlice(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}

func replaceInSlice(s []int, old, newv int) {
	for i, x := range s {
		if x == old {
			s[i] = newv
		}
	}
}

func (g *ArrayGraph) RemoveVertex(v int) error {
	if v < 0 || v >= g.N() {
		return errOutOfRange("vertex", v, g.N())
	}
	last := g.N() - 1
	if v != last {
		g.renameVertexInEdges(last, v)
	}
	return g.vertexStrat.RemoveIdx(v)
}

// renameVertexInEdges rewrites every edge incident to `old` so its
// endpoint reads `new` instead, per spec §4.C step 1 (run before the
// vertex swap so adjacency lists being swapped already describe the
// renamed vertex consistently).
func (g *ArrayGraph) renameVertexInEdges(old, newv int) {
	for _, e := range g.out[old] {
		if g.edgeSource[e] == old {
			g.edgeSource[e] = newv
		}
		if g.edgeTarget[e] == old {
			g.edgeTarget[e] = newv
		}
	}
	if g.directed {
		for _, e := range g.in[old] {
			if g.edgeSource[e] == old {
				g.edgeSource[e] = newv
			}
			if g.edgeTarget[e] == old {
				g.edgeTarget[e] = newv
			}
		}
	}
}

func (g *ArrayGraph) AddEdge(u, v int) (int, error) {
	if u < 0 || u >= g.N() {
		return 0, errOutOfRange("vertex", u, g.N())
	}
	if v < 0 || v >= g.N() {
		return 0, errOutOfRange("vertex", v, g.N())
	}
	if u == v && !g.caps.SelfEdges {
		return 0, errSelfEdgeForbidden(u)
	}
	if !g.caps.ParallelEdges {
		if _, exists := g.GetEdge(u, v); exists {
			return 0, errParallelEdgeForbidden(u, v)
		}
	}
	e := g.pushEdge(u, v)
	g.out[u] = append(g.out[u], e)
	if g.directed {
		g.in[v] = append(g.in[v], e)
	} else if v != u {
		g.out[v] = append(g.out[v], e)
	}
	return e, nil
}

func (g *ArrayGraph) RemoveEdge(e int) error {
	if e < 0 || e >= g.M() {
		return errOutOfRange("edge", e, g.M())
	}
	u, v := g.edgeSource[e], g.edgeTarget[e]
	g.detachEdge(e, u, v)

	last := g.M() - 1
	if e != last {
		u2, v2 := g.edgeSource[last], g.edgeTarget[last]
		g.renameEdgeInAdjacency(last, e, u2, v2)
	}
	return g.edgeStrat.RemoveIdx(e)
}

func (g *ArrayGraph) detachEdge(e, u, v int) {
	g.out[u] = removeFromSlice(g.out[u], e)
	if g.directed {
		g.in[v] = removeFromSlice(g.in[v], e)
	} else if v != u {
		g.out[v] = removeFromSlice(g.out[v], e)
	}
}

func (g *ArrayGraph) renameEdgeInAdjacency(old, newIdx, u, v int) {
	replaceInSlice(g.out[u], old, newIdx)
	if g.directed {
		replaceInSlice(g.in[v], old, newIdx)
	} else if v != u {
		replaceInSlice(g.out[v], old, newIdx)
	}
}

// Removal always pulls the *current* last element of the live adjacency
// slice rather than iterating a pre-snapshotted list of edge indices:
// RemoveEdge renumbers the edge at M()-1 into the freed slot, so a frozen
// snapshot of edge indices collected up front can go stale mid-loop.
// Always reading g.out[v]/g.in[v] fresh each iteration sidesteps that.

func (g *ArrayGraph) RemoveOutEdgesOf(v int) error {
	for len(g.out[v]) > 0 {
		e := g.out[v][len(g.out[v])-1]
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func (g *ArrayGraph) RemoveInEdgesOf(v int) error {
	if !g.directed {
		return g.RemoveOutEdgesOf(v)
	}
	for len(g.in[v]) > 0 {
		e := g.in[v][len(g.in[v])-1]
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func (g *ArrayGraph) RemoveEdgesOf(v int) error {
	if err := g.RemoveOutEdgesOf(v); err != nil {
		return err
	}
	return g.RemoveInEdgesOf(v)
}

type sliceEdgeIter struct {
	edges    []int
	pos      int
	pivot    int
	asTarget bool
	src, tgt []int
}

func (it *sliceEdgeIter) Next() bool {
	it.pos++
	return it.pos < len(it.edges)
}

func (it *sliceEdgeIter) Edge() int { return it.edges[it.pos] }

func (it *sliceEdgeIter) Source() int {
	s, _ := orient(it.edges[it.pos], it.pivot, it.asTarget, it.src, it.tgt)
	return s
}

func (it *sliceEdgeIter) Target() int {
	_, t := orient(it.edges[it.pos], it.pivot, it.asTarget, it.src, it.tgt)
	return t
}

func newSliceEdgeIter(edges []int, pivot int, asTarget bool, src, tgt []int) *sliceEdgeIter {
	return &sliceEdgeIter{edges: edges, pos: -1, pivot: pivot, asTarget: asTarget, src: src, tgt: tgt}
}

func (g *ArrayGraph) OutEdges(v int) EdgeIter {
	return newSliceEdgeIter(g.out[v], v, false, g.edgeSource, g.edgeTarget)
}

func (g *ArrayGraph) InEdges(v int) EdgeIter {
	if !g.directed {
		return g.OutEdges(v)
	}
	return newSliceEdgeIter(g.in[v], v, true, g.edgeSource, g.edgeTarget)
}

func (g *ArrayGraph) GetEdge(u, v int) (int, bool) {
	for it := g.OutEdges(u); it.Next(); {
		if it.Target() == v {
			return it.Edge(), true
		}
	}
	return 0, false
}

func (g *ArrayGraph) GetEdges(u, v int) []int {
	var out []int
	for it := g.OutEdges(u); it.Next(); {
		if it.Target() == v {
			out = append(out, it.Edge())
		}
	}
	return out
}

func (g *ArrayGraph) ReverseEdge(e int) error {
	if !g.directed {
		return errDirectedOnly("ReverseEdge")
	}
	if e < 0 || e >= g.M() {
		return errOutOfRange("edge", e, g.M())
	}
	u, v := g.edgeSource[e], g.edgeTarget[e]
	g.out[u] = removeFromSlice(g.out[u], e)
	g.in[v] = removeFromSlice(g.in[v], e)
	g.edgeSource[e], g.edgeTarget[e] = v, u
	g.out[v] = append(g.out[v], e)
	g.in[u] = append(g.in[u], e)
	return nil
}

func (g *ArrayGraph) ClearEdges() {
	for i := range g.out {
		g.out[i] = nil
	}
	if g.directed {
		for i := range g.in {
			g.in[i] = nil
		}
	}
	g.edgeSource = nil
	g.edgeTarget = nil
	g.edgeStrat.Clear()
}

func (g *ArrayGraph) Clear() {
	g.ClearEdges()
	g.out = nil
	g.in = nil
	g.vertexStrat.Clear()
}

func (g *ArrayGraph) Copy() IndexGraph {
	cp := newArrayGraph(g.caps, g.directed)
	for i := 0; i < g.N(); i++ {
		cp.AddVertex()
	}
	for e := 0; e < g.M(); e++ {
		_, _ = cp.AddEdge(g.edgeSource[e], g.edgeTarget[e])
	}
	return cp
}
