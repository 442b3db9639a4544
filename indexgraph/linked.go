package indexgraph

import (
	"container/list"

	"github.com/dmishra-go/graphkit/graph"
)

// LinkedGraph is the Linked-backend IndexGraph: each vertex owns a
// doubly-linked list of incident edges (container/list), and every edge
// keeps a direct pointer to its own list element on each side it
// touches. AddEdge and RemoveEdge are O(1); only operations that must
// walk a vertex's full incidence (RemoveVertex, RemoveEdgesOf, GetEdge)
// pay O(deg).
type LinkedGraph struct {
	base
	directed bool
	outList  []*list.List
	inList   []*list.List // directed only

	// elemA[e] is e's element in the list belonging to edgeSource(e).
	// elemB[e] is e's element in the list belonging to edgeTarget(e) —
	// for directed graphs this is inList[target]; for undirected graphs
	// it is outList[target], or nil when e is a self-loop (the edge
	// touches only one distinct vertex, so it occupies one list node,
	// not two, mirroring spec's "self edges appear once per endpoint").
	elemA []*list.Element
	elemB []*list.Element
}

// NewLinkedDirected returns an empty directed Linked-backend graph.
func NewLinkedDirected(caps graph.Capabilities) *LinkedGraph {
	caps.Directed = true
	return newLinkedGraph(caps, true)
}

// NewLinkedUndirected returns an empty undirected Linked-backend graph.
func NewLinkedUndirected(caps graph.Capabilities) *LinkedGraph {
	caps.Directed = false
	return newLinkedGraph(caps, false)
}

func newLinkedGraph(caps graph.Capabilities, directed bool) *LinkedGraph {
	g := &LinkedGraph{base: newBase(caps), directed: directed}
	g.vertexStrat.AddSwapListener(graph.SwapListenerFunc(g.swapVertexAdjacency))
	g.vertexStrat.AddAddRemoveListener(graph.AddRemoveListenerFuncs{
		OnAdd:    g.growVertexAdjacency,
		OnRemove: g.shrinkVertexAdjacency,
	})
	g.edgeStrat.AddSwapListener(graph.SwapListenerFunc(g.swapEdgeBookkeeping))
	g.edgeStrat.AddAddRemoveListener(graph.AddRemoveListenerFuncs{
		OnAdd:    g.growEdgeBookkeeping,
		OnRemove: g.shrinkEdgeBookkeeping,
	})
	return g
}

func (g *LinkedGraph) growVertexAdjacency(int) {
	g.outList = append(g.outList, list.New())
	if g.directed {
		g.inList = append(g.inList, list.New())
	}
}

func (g *LinkedGraph) shrinkVertexAdjacency(int) {
	g.outList = g.outList[:len(g.outList)-1]
	if g.directed {
		g.inList = g.inList[:len(g.inList)-1]
	}
}

func (g *LinkedGraph) swapVertexAdjacency(i, j int) {
	g.outList[i], g.outList[j] = g.outList[j], g.outList[i]
	if g.directed {
		g.inList[i], g.inList[j] = g.inList[j], g.inList[i]
	}
}

func (g *LinkedGraph) growEdgeBookkeeping(int) {
	g.elemA = append(g.elemA, nil)
	g.elemB = append(g.elemB, nil)
}

func (g *LinkedGraph) shrinkEdgeBookkeeping(int) {
	g.popEdge()
	g.elemA = g.elemA[:len(g.elemA)-1]
	g.elemB = g.elemB[:len(g.elemB)-1]
}

// swapEdgeBookkeeping keeps elemA/elemB aligned with the edgeSource /
// edgeTarget swap the base dispatcher performs for the same event.
func (g *LinkedGraph) swapEdgeBookkeeping(i, j int) {
	g.base.swapEdgeEndpoints(i, j)
	g.elemA[i], g.elemA[j] = g.elemA[j], g.elemA[i]
	g.elemB[i], g.elemB[j] = g.elemB[j], g.elemB[i]
}

func (g *LinkedGraph) AddVertex() int {
	_, idx := g.vertexStrat.NewIdx()
	return idx
}

func (g *LinkedGraph) renameVertexInEdges(old, newv int) {
	for _, e := range iterList(g.outList[old]) {
		if g.edgeSource[e] == old {
			g.edgeSource[e] = newv
		}
		if g.edgeTarget[e] == old {
			g.edgeTarget[e] = newv
		}
	}
	if g.directed {
		for _, e := range iterList(g.inList[old]) {
			if g.edgeSource[e] == old {
				g.edgeSource[e] = newv
			}
			if g.edgeTarget[e] == old {
				g.edgeTarget[e] = newv
			}
		}
	}
}

// iterListSlice yields the edge indices currently stored in l as a slice
// snapshot (not a live iterator), since callers rewrite edgeSource /
// edgeTarget while walking and must not observe a list mutated mid-scan.
func iterListSlice(l *list.List) []int {
	out := make([]int, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}
	return out
}

// iterList is a convenience range-producing wrapper around
// iterListSlice, used where the caller only reads (never mutates list
// membership) during the loop.
func iterList(l *list.List) []int { return iterListSlice(l) }

func (g *LinkedGraph) RemoveVertex(v int) error {
	if v < 0 || v >= g.N() {
		return errOutOfRange("vertex", v, g.N())
	}
	last := g.N() - 1
	if v != last {
		g.renameVertexInEdges(last, v)
	}
	return g.vertexStrat.RemoveIdx(v)
}

func (g *LinkedGraph) AddEdge(u, v int) (int, error) {
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
	g.elemA[e] = g.outList[u].PushBack(e)
	if g.directed {
		g.elemB[e] = g.inList[v].PushBack(e)
	} else if v != u {
		g.elemB[e] = g.outList[v].PushBack(e)
	}
	return e, nil
}

func (g *LinkedGraph) RemoveEdge(e int) error {
	if e < 0 || e >= g.M() {
		return errOutOfRange("edge", e, g.M())
	}
	u, v := g.edgeSource[e], g.edgeTarget[e]
	g.outList[u].Remove(g.elemA[e])
	if g.directed {
		g.inList[v].Remove(g.elemB[e])
	} else if v != u {
		g.outList[v].Remove(g.elemB[e])
	}

	last := g.M() - 1
	if e != last {
		if g.elemA[last] != nil {
			g.elemA[last].Value = e
		}
		if g.elemB[last] != nil {
			g.elemB[last].Value = e
		}
	}
	return g.edgeStrat.RemoveIdx(e)
}

// As with ArrayGraph, removal always pulls the current back element of
// the live list rather than a pre-snapshotted slice of edge indices,
// since RemoveEdge renumbers M()-1 into the freed slot.

func (g *LinkedGraph) RemoveOutEdgesOf(v int) error {
	for g.outList[v].Len() > 0 {
		e := g.outList[v].Back().Value.(int)
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func (g *LinkedGraph) RemoveInEdgesOf(v int) error {
	if !g.directed {
		return g.RemoveOutEdgesOf(v)
	}
	for g.inList[v].Len() > 0 {
		e := g.inList[v].Back().Value.(int)
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func (g *LinkedGraph) RemoveEdgesOf(v int) error {
	if err := g.RemoveOutEdgesOf(v); err != nil {
		return err
	}
	return g.RemoveInEdgesOf(v)
}

type listEdgeIter struct {
	next     *list.Element
	cur      *list.Element
	pivot    int
	asTarget bool
	src, tgt []int
}

func (it *listEdgeIter) Next() bool {
	if it.next == nil {
		return false
	}
	it.cur = it.next
	it.next = it.next.Next()
	return true
}

func (it *listEdgeIter) Edge() int { return it.cur.Value.(int) }
func (it *listEdgeIter) Source() int {
	s, _ := orient(it.Edge(), it.pivot, it.asTarget, it.src, it.tgt)
	return s
}
func (it *listEdgeIter) Target() int {
	_, t := orient(it.Edge(), it.pivot, it.asTarget, it.src, it.tgt)
	return t
}

func (g *LinkedGraph) OutEdges(v int) EdgeIter {
	return &listEdgeIter{next: g.outList[v].Front(), pivot: v, src: g.edgeSource, tgt: g.edgeTarget}
}

func (g *LinkedGraph) InEdges(v int) EdgeIter {
	if !g.directed {
		return g.OutEdges(v)
	}
	return &listEdgeIter{next: g.inList[v].Front(), pivot: v, asTarget: true, src: g.edgeSource, tgt: g.edgeTarget}
}

func (g *LinkedGraph) GetEdge(u, v int) (int, bool) {
	for it := g.OutEdges(u); it.Next(); {
		if it.Target() == v {
			return it.Edge(), true
		}
	}
	return 0, false
}

func (g *LinkedGraph) GetEdges(u, v int) []int {
	var out []int
	for it := g.OutEdges(u); it.Next(); {
		if it.Target() == v {
			out = append(out, it.Edge())
		}
	}
	return out
}

func (g *LinkedGraph) ReverseEdge(e int) error {
	if !g.directed {
		return errDirectedOnly("ReverseEdge")
	}
	if e < 0 || e >= g.M() {
		return errOutOfRange("edge", e, g.M())
	}
	u, v := g.edgeSource[e], g.edgeTarget[e]
	g.outList[u].Remove(g.elemA[e])
	g.inList[v].Remove(g.elemB[e])
	g.edgeSource[e], g.edgeTarget[e] = v, u
	g.elemA[e] = g.outList[v].PushBack(e)
	g.elemB[e] = g.inList[u].PushBack(e)
	return nil
}

func (g *LinkedGraph) ClearEdges() {
	for _, l := range g.outList {
		l.Init()
	}
	if g.directed {
		for _, l := range g.inList {
			l.Init()
		}
	}
	g.edgeSource = nil
	g.edgeTarget = nil
	g.elemA = nil
	g.elemB = nil
	g.edgeStrat.Clear()
}

func (g *LinkedGraph) Clear() {
	g.ClearEdges()
	g.outList = nil
	g.inList = nil
	g.vertexStrat.Clear()
}

func (g *LinkedGraph) Copy() IndexGraph {
	cp := newLinkedGraph(g.caps, g.directed)
	for i := 0; i < g.N(); i++ {
		cp.AddVertex()
	}
	for e := 0; e < g.M(); e++ {
		_, _ = cp.AddEdge(g.edgeSource[e], g.edgeTarget[e])
	}
	return cp
}
