package indexgraph

import "github.com/dmishra-go/graphkit/graph"

const noEdge = -1

// TableGraph is the Table-backend IndexGraph: a dense n×n matrix of edge
// indices, -1 where absent. AddEdge, RemoveEdge and GetEdge are O(1);
// AddVertex copies the table (O(n²)) and RemoveVertex, the Remove*EdgesOf
// methods and edge iteration scan a whole row or column (O(n)). The
// tradeoff is O(n²) memory and no
// parallel edges, regardless of what Capabilities.ParallelEdges was
// requested (a structural limit of the representation, not a policy
// choice, so the constructor overrides it rather than silently ignoring
// a caller's request for something it cannot honor without comment).
type TableGraph struct {
	base
	directed bool
	table    [][]int // table[u][v] = edge index or noEdge
}

// NewTableDirected returns an empty directed Table-backend graph.
func NewTableDirected(caps graph.Capabilities) *TableGraph {
	caps.Directed = true
	caps.ParallelEdges = false
	return newTableGraph(caps, true)
}

// NewTableUndirected returns an empty undirected Table-backend graph.
func NewTableUndirected(caps graph.Capabilities) *TableGraph {
	caps.Directed = false
	caps.ParallelEdges = false
	return newTableGraph(caps, false)
}

func newTableGraph(caps graph.Capabilities, directed bool) *TableGraph {
	g := &TableGraph{base: newBase(caps), directed: directed}
	g.vertexStrat.AddSwapListener(graph.SwapListenerFunc(g.swapVertexRowCol))
	g.vertexStrat.AddAddRemoveListener(graph.AddRemoveListenerFuncs{
		OnAdd:    g.growTable,
		OnRemove: g.shrinkTable,
	})
	g.edgeStrat.AddSwapListener(graph.SwapListenerFunc(g.base.swapEdgeEndpoints))
	g.edgeStrat.AddAddRemoveListener(graph.AddRemoveListenerFuncs{OnRemove: func(int) { g.popEdge() }})
	return g
}

func (g *TableGraph) growTable(idx int) {
	n := idx + 1
	grown := make([][]int, n)
	for i := 0; i < n-1; i++ {
		grown[i] = make([]int, n)
		copy(grown[i], g.table[i])
		grown[i][n-1] = noEdge
	}
	grown[n-1] = make([]int, n)
	for j := range grown[n-1] {
		grown[n-1][j] = noEdge
	}
	g.table = grown
}

func (g *TableGraph) shrinkTable(idx int) {
	n := idx // new size after popping idx == old n-1
	for i := 0; i < n; i++ {
		g.table[i] = g.table[i][:n]
	}
	g.table = g.table[:n]
}

func (g *TableGraph) swapVertexRowCol(i, j int) {
	g.table[i], g.table[j] = g.table[j], g.table[i]
	for k := 0; k < len(g.table); k++ {
		g.table[k][i], g.table[k][j] = g.table[k][j], g.table[k][i]
	}
}

func (g *TableGraph) AddVertex() int {
	_, idx := g.vertexStrat.NewIdx()
	return idx
}

func (g *TableGraph) RemoveVertex(v int) error {
	if v < 0 || v >= g.N() {
		return errOutOfRange("vertex", v, g.N())
	}
	last := g.N() - 1
	if v != last {
		g.renameVertexInEdges(last, v)
	}
	return g.vertexStrat.RemoveIdx(v)
}

func (g *TableGraph) renameVertexInEdges(old, newv int) {
	n := len(g.table)
	for k := 0; k < n; k++ {
		if e := g.table[old][k]; e != noEdge {
			if g.edgeSource[e] == old {
				g.edgeSource[e] = newv
			}
			if g.edgeTarget[e] == old {
				g.edgeTarget[e] = newv
			}
		}
		if k != old {
			if e := g.table[k][old]; e != noEdge {
				if g.edgeSource[e] == old {
					g.edgeSource[e] = newv
				}
				if g.edgeTarget[e] == old {
					g.edgeTarget[e] = newv
				}
			}
		}
	}
}

func (g *TableGraph) AddEdge(u, v int) (int, error) {
	n := g.N()
	if u < 0 || u >= n {
		return 0, errOutOfRange("vertex", u, n)
	}
	if v < 0 || v >= n {
		return 0, errOutOfRange("vertex", v, n)
	}
	if u == v && !g.caps.SelfEdges {
		return 0, errSelfEdgeForbidden(u)
	}
	if g.table[u][v] != noEdge {
		return 0, errParallelEdgeForbidden(u, v)
	}
	e := g.pushEdge(u, v)
	g.table[u][v] = e
	if !g.directed && v != u {
		g.table[v][u] = e
	}
	return e, nil
}

func (g *TableGraph) RemoveEdge(e int) error {
	if e < 0 || e >= g.M() {
		return errOutOfRange("edge", e, g.M())
	}
	u, v := g.edgeSource[e], g.edgeTarget[e]
	g.table[u][v] = noEdge
	if !g.directed && v != u {
		g.table[v][u] = noEdge
	}

	last := g.M() - 1
	if e != last {
		u2, v2 := g.edgeSource[last], g.edgeTarget[last]
		g.table[u2][v2] = e
		if !g.directed && v2 != u2 {
			g.table[v2][u2] = e
		}
	}
	return g.edgeStrat.RemoveIdx(e)
}

func (g *TableGraph) RemoveOutEdgesOf(v int) error {
	n := g.N()
	for k := 0; k < n; k++ {
		if g.table[v][k] != noEdge {
			if err := g.RemoveEdge(g.table[v][k]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *TableGraph) RemoveInEdgesOf(v int) error {
	if !g.directed {
		return g.RemoveOutEdgesOf(v)
	}
	n := g.N()
	for k := 0; k < n; k++ {
		if g.table[k][v] != noEdge {
			if err := g.RemoveEdge(g.table[k][v]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *TableGraph) RemoveEdgesOf(v int) error {
	if err := g.RemoveOutEdgesOf(v); err != nil {
		return err
	}
	return g.RemoveInEdgesOf(v)
}

type tableRowIter struct {
	table    [][]int
	row      int
	col      int
	n        int
	asTarget bool
	src, tgt []int
}

func (it *tableRowIter) Next() bool {
	for it.col++; it.col < it.n; it.col++ {
		var e int
		if it.asTarget {
			e = it.table[it.col][it.row]
		} else {
			e = it.table[it.row][it.col]
		}
		if e != noEdge {
			return true
		}
	}
	return false
}

func (it *tableRowIter) edge() int {
	if it.asTarget {
		return it.table[it.col][it.row]
	}
	return it.table[it.row][it.col]
}

func (it *tableRowIter) Edge() int { return it.edge() }
func (it *tableRowIter) Source() int {
	s, _ := orient(it.edge(), it.row, it.asTarget, it.src, it.tgt)
	return s
}
func (it *tableRowIter) Target() int {
	_, t := orient(it.edge(), it.row, it.asTarget, it.src, it.tgt)
	return t
}

func (g *TableGraph) OutEdges(v int) EdgeIter {
	return &tableRowIter{table: g.table, row: v, col: -1, n: len(g.table), src: g.edgeSource, tgt: g.edgeTarget}
}

func (g *TableGraph) InEdges(v int) EdgeIter {
	if !g.directed {
		return g.OutEdges(v)
	}
	return &tableRowIter{table: g.table, row: v, col: -1, n: len(g.table), asTarget: true, src: g.edgeSource, tgt: g.edgeTarget}
}

func (g *TableGraph) GetEdge(u, v int) (int, bool) {
	e := g.table[u][v]
	return e, e != noEdge
}

func (g *TableGraph) GetEdges(u, v int) []int {
	if e, ok := g.GetEdge(u, v); ok {
		return []int{e}
	}
	return nil
}

func (g *TableGraph) ReverseEdge(e int) error {
	if !g.directed {
		return errDirectedOnly("ReverseEdge")
	}
	if e < 0 || e >= g.M() {
		return errOutOfRange("edge", e, g.M())
	}
	u, v := g.edgeSource[e], g.edgeTarget[e]
	g.table[u][v] = noEdge
	g.edgeSource[e], g.edgeTarget[e] = v, u
	g.table[v][u] = e
	return nil
}

func (g *TableGraph) ClearEdges() {
	for i := range g.table {
		for j := range g.table[i] {
			g.table[i][j] = noEdge
		}
	}
	g.edgeSource = nil
	g.edgeTarget = nil
	g.edgeStrat.Clear()
}

func (g *TableGraph) Clear() {
	g.ClearEdges()
	g.table = nil
	g.vertexStrat.Clear()
}

func (g *TableGraph) Copy() IndexGraph {
	cp := newTableGraph(g.caps, g.directed)
	for i := 0; i < g.N(); i++ {
		cp.AddVertex()
	}
	for e := 0; e < g.M(); e++ {
		_, _ = cp.AddEdge(g.edgeSource[e], g.edgeTarget[e])
	}
	return cp
}
