package shortestpath

import (
	"math"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

const inf = 1<<63 - 1

// Result holds a single-source shortest-path run's output: distances and
// the edge used to reach each vertex, or a negative-cycle witness if one
// was found (in which case distances are not meaningful and Dist/PathTo
// should not be called).
type Result struct {
	Source int

	g         indexgraph.IndexGraph
	dist      []float64
	backtrack []int // edge id used to reach v; -1 if v is unreached or is Source

	// NegativeCycle, when non-nil, lists the edges of a cycle reachable
	// from Source along which distance decreases without bound.
	NegativeCycle []int
}

// HasNegativeCycle reports whether this run found a negative cycle.
func (r *Result) HasNegativeCycle() bool { return r.NegativeCycle != nil }

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool { return r.dist[v] < float64(inf) }

// Dist returns the shortest distance from Source to v, or +Inf if v is
// unreachable. Meaningless (and not guaranteed sane) if HasNegativeCycle.
func (r *Result) Dist(v int) float64 {
	if !r.Reachable(v) {
		return posInf
	}
	return r.dist[v]
}

// PathTo reconstructs the shortest path from Source to v by walking
// backtrack pointers. Returns false if v is unreachable.
func (r *Result) PathTo(v int) (graph.Path, bool) {
	if !r.Reachable(v) || v == r.Source {
		if v == r.Source {
			return graph.Path{Source: r.Source, Target: v}, true
		}
		return graph.Path{}, false
	}
	var edges []int
	cur := v
	for cur != r.Source {
		e := r.backtrack[cur]
		if e < 0 {
			return graph.Path{}, false
		}
		edges = append(edges, e)
		cur = r.prevOf(cur, e)
	}
	// edges were collected target-to-source; reverse in place.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return graph.Path{Source: r.Source, Target: v, Edges: edges}, true
}

// prevOf is resolved lazily via the graph at reconstruction time rather
// than stored per-vertex, since the edge already identifies both
// endpoints and the graph is cheap to query.
func (r *Result) prevOf(v, e int) int {
	return r.g.EdgeEndpoint(e, v)
}

// APSPResult is Johnson's all-pairs output: one reweighted-graph Result per
// source plus the potentials needed to decode true distances.
type APSPResult struct {
	sssp []*Result
	pot  []float64

	// NegativeCycle is set instead of sssp/pot if the input graph itself
	// has a negative cycle, in which case all-pairs distances do not
	// exist.
	NegativeCycle []int
}

// HasNegativeCycle reports whether the input graph had a negative cycle,
// making all-pairs distances undefined.
func (r *APSPResult) HasNegativeCycle() bool { return r.NegativeCycle != nil }

// Dist decodes the true distance from s to t from the reweighted-graph
// result: dist(s,t) = sssp[s].Dist(t) + pot[t] - pot[s].
func (r *APSPResult) Dist(s, t int) float64 {
	d := r.sssp[s].Dist(t)
	if d == posInf {
		return posInf
	}
	return d + r.pot[t] - r.pot[s]
}

// PathTo reconstructs the shortest s->t path; the edge sequence is
// unaffected by reweighting; only its length changes in transit.
func (r *APSPResult) PathTo(s, t int) (graph.Path, bool) {
	return r.sssp[s].PathTo(t)
}

var posInf = math.Inf(1)
