package shortestpath

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// DAG computes shortest distances from source over a directed acyclic g in
// a single relaxation pass over a topological order, tolerating negative
// weights (a DAG cannot have a negative cycle). Fails with
// graph.ErrIllegalInput if g is undirected or has a cycle.
func DAG(g indexgraph.IndexGraph, w graph.WeightFunc, source int) (*Result, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, errSourceOutOfRange(source, n)
	}
	if !g.Capabilities().Directed {
		return nil, errNotDAG()
	}

	order, ok := kahnOrder(g)
	if !ok {
		return nil, errNotDAG()
	}

	dist := make([]float64, n)
	backtrack := make([]int, n)
	for v := range dist {
		dist[v] = posInf
		backtrack[v] = -1
	}
	dist[source] = 0

	reached := false
	for _, u := range order {
		if u == source {
			reached = true
		}
		if !reached || dist[u] == posInf {
			continue
		}
		for it := g.OutEdges(u); it.Next(); {
			e := it.Edge()
			v := it.Target()
			cand := dist[u] + w(e)
			if cand < dist[v] {
				dist[v] = cand
				backtrack[v] = e
			}
		}
	}

	return &Result{Source: source, g: g, dist: dist, backtrack: backtrack}, nil
}

// kahnOrder returns a topological order of g's vertices via Kahn's
// algorithm, or ok=false if g has a cycle. Kept private and duplicated
// against the public topo package rather than imported from it, to avoid
// a dependency from this component back onto a sibling one for a dozen
// lines of bookkeeping.
func kahnOrder(g indexgraph.IndexGraph) ([]int, bool) {
	n := g.N()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		for it := g.OutEdges(v); it.Next(); {
			indeg[it.Target()]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for it := g.OutEdges(u); it.Next(); {
			v := it.Target()
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return order, len(order) == n
}
