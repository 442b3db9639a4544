package maxflow

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// CirculationOptions composes the reductions spec.md §4.H lists: per-edge
// lower bounds, multiple sources/sinks, and per-vertex supply/demand. All
// fields are optional; an empty CirculationOptions reduces to an ordinary
// feasibility check with nothing to push (every vertex balanced).
type CirculationOptions struct {
	// Lower maps an edge index to its lower bound l(e) > 0. Edges absent
	// from the map have lower bound 0.
	Lower map[int]float64

	// Sources and Sinks name vertices to merge behind an artificial
	// super-source/super-sink with unbounded-capacity connecting arcs.
	Sources []int
	Sinks   []int

	// Supply maps a vertex to its net supply (positive) or demand
	// (negative); zero/absent means balanced.
	Supply map[int]float64

	Options []Option
}

// Circulation finds a feasible circulation (or, if Sources/Sinks are
// given, a maximum flow between the merged source and sink sets) honoring
// lower bounds and vertex supplies, by augmenting g with a super-source
// and super-sink and solving the reduced problem with push-relabel. On
// success it writes the recovered flow for every original edge onto net
// via SetFlow. Fails with graph.ErrNoFeasibleFlow if the lower bounds and
// supplies cannot be simultaneously satisfied.
func Circulation(g indexgraph.IndexGraph, net graph.FlowNetwork, opts CirculationOptions) (*Result, error) {
	n, m := g.N(), g.M()
	superSource, superSink := n, n+1
	r := newResidual(n + 2)
	r.arcOfEdge = make([]int, m)

	excessSupply := make([]float64, n)
	var totalCap float64
	for e := 0; e < m; e++ {
		c := net.Capacity(e)
		if c < 0 {
			return nil, errNegativeCapacity(e, c)
		}
		totalCap += c
	}
	bigCap := totalCap + 1

	lowerOffset := make([]float64, m)
	for e := 0; e < m; e++ {
		l := opts.Lower[e]
		c := net.Capacity(e) - l
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		r.arcOfEdge[e] = r.addEdge(u, v, c)
		lowerOffset[e] = l
		excessSupply[v] += l
		excessSupply[u] -= l
	}

	for v, s := range opts.Supply {
		excessSupply[v] += s
	}

	var required float64
	for v := 0; v < n; v++ {
		amt := excessSupply[v]
		switch {
		case amt > 0:
			r.addEdge(superSource, v, amt)
			required += amt
		case amt < 0:
			r.addEdge(v, superSink, -amt)
		}
	}
	for _, v := range opts.Sources {
		r.addEdge(superSource, v, bigCap)
	}
	for _, v := range opts.Sinks {
		r.addEdge(v, superSink, bigCap)
	}

	o := newOptions(opts.Options...)
	var sched scheduler
	if o.HighestLabel {
		sched = newHighestLabelScheduler(2*(n+2) + 1)
	} else {
		sched = &fifoScheduler{}
	}
	value := runPushRelabel(r, superSource, superSink, sched, o)

	if required-value > o.Epsilon {
		return nil, graph.ErrNoFeasibleFlow
	}

	r.writeBack(m, net, lowerOffset)
	return &Result{Value: value}, nil
}
