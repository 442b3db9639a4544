package maxflow

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// residual is a forward-star residual network: arcs are added in
// forward/backward pairs so an arc's twin is always its id XOR 1. This is
// the conventional minimal representation for augmenting-path max-flow
// solvers (no corpus example carries one; it's algorithmic scaffolding
// spec.md itself calls for — "capacities, flows, and a twin table on the
// index edge set" — not a place a third-party library would plug in).
type residual struct {
	n    int
	head []int
	next []int
	to   []int
	cap  []float64

	initCap   []float64 // cap's value at construction, for flow decoding
	arcOfEdge []int     // original edge index -> its forward arc id
}

func newResidual(n int) *residual {
	head := make([]int, n)
	for i := range head {
		head[i] = -1
	}
	return &residual{n: n, head: head}
}

func (r *residual) addArc(u, v int, c float64) int {
	id := len(r.to)
	r.to = append(r.to, v)
	r.cap = append(r.cap, c)
	r.initCap = append(r.initCap, c)
	r.next = append(r.next, r.head[u])
	r.head[u] = id
	return id
}

// addEdge adds a forward arc u->v with capacity c and its zero-capacity
// backward twin v->u, returning the forward arc's id.
func (r *residual) addEdge(u, v int, c float64) int {
	fwd := r.addArc(u, v, c)
	r.addArc(v, u, 0)
	return fwd
}

func (r *residual) twin(id int) int { return id ^ 1 }

// flowOfArc reports how much of a forward arc's initial capacity has been
// consumed, i.e. the flow pushed along it.
func (r *residual) flowOfArc(id int) float64 { return r.initCap[id] - r.cap[id] }

// buildResidual constructs a residual network with one arc pair per edge
// of g, capacity read from net.
func buildResidual(g indexgraph.IndexGraph, net graph.FlowNetwork) (*residual, error) {
	n, m := g.N(), g.M()
	r := newResidual(n)
	r.arcOfEdge = make([]int, m)
	for e := 0; e < m; e++ {
		c := net.Capacity(e)
		if c < 0 {
			return nil, errNegativeCapacity(e, c)
		}
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		r.arcOfEdge[e] = r.addEdge(u, v, c)
	}
	return r, nil
}

// writeBack copies each original edge's computed flow onto net.
func (r *residual) writeBack(m int, net graph.FlowNetwork, offset []float64) {
	for e := 0; e < m; e++ {
		f := r.flowOfArc(r.arcOfEdge[e])
		if offset != nil {
			f += offset[e]
		}
		net.SetFlow(e, f)
	}
}

// reachableFrom returns, for every vertex, whether it is reachable from s
// via positive-residual-capacity arcs — the source side of a minimum cut
// once the network is at a maximum flow.
func (r *residual) reachableFrom(s int, eps float64) []bool {
	seen := make([]bool, r.n)
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for id := r.head[u]; id != -1; id = r.next[id] {
			v := r.to[id]
			if !seen[v] && r.cap[id] > eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return seen
}
