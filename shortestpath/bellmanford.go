package shortestpath

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// BellmanFord computes shortest distances from source over g using w,
// tolerating negative edge weights. If a negative cycle is reachable from
// source, the result's NegativeCycle holds a witness and Dist/PathTo must
// not be relied upon.
func BellmanFord(g indexgraph.IndexGraph, w graph.WeightFunc, source int) (*Result, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, errSourceOutOfRange(source, n)
	}

	dist := make([]float64, n)
	backtrack := make([]int, n)
	for v := range dist {
		dist[v] = posInf
		backtrack[v] = -1
	}
	dist[source] = 0

	edges := allEdges(g)

	relax := func() bool {
		changed := false
		for _, e := range edges {
			u, v := g.EdgeSource(e), g.EdgeTarget(e)
			if dist[u] == posInf {
				continue
			}
			cand := dist[u] + w(e)
			if cand < dist[v] {
				dist[v] = cand
				backtrack[v] = e
				changed = true
			}
			if !g.Capabilities().Directed {
				// An undirected edge relaxes in both directions.
				if dist[v] != posInf {
					cand2 := dist[v] + w(e)
					if cand2 < dist[u] {
						dist[u] = cand2
						backtrack[u] = e
						changed = true
					}
				}
			}
		}
		return changed
	}

	for i := 0; i < n-1; i++ {
		if !relax() {
			break
		}
	}

	// One extra round: any vertex whose distance still decreases sits on
	// or downstream of a negative cycle.
	decreased := -1
	for _, e := range edges {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		if dist[u] != posInf && dist[u]+w(e) < dist[v] {
			decreased = v
			break
		}
		if !g.Capabilities().Directed && dist[v] != posInf && dist[v]+w(e) < dist[u] {
			decreased = u
			break
		}
	}

	if decreased == -1 {
		return &Result{Source: source, g: g, dist: dist, backtrack: backtrack}, nil
	}

	cycle := extractNegativeCycle(g, decreased, backtrack, n)
	return &Result{Source: source, g: g, NegativeCycle: cycle}, nil
}

func allEdges(g indexgraph.IndexGraph) []int {
	m := g.M()
	edges := make([]int, m)
	for e := range edges {
		edges[e] = e
	}
	return edges
}

// extractNegativeCycle walks predecessors n times from start (guaranteeing
// entry into the cycle regardless of tail length), then walks the cycle
// itself until returning to the first repeated vertex, collecting edges.
func extractNegativeCycle(g indexgraph.IndexGraph, start int, backtrack []int, n int) []int {
	v := start
	for i := 0; i < n; i++ {
		e := backtrack[v]
		if e < 0 {
			break
		}
		v = g.EdgeEndpoint(e, v)
	}

	cycleStart := v
	var edges []int
	for {
		e := backtrack[v]
		edges = append(edges, e)
		v = g.EdgeEndpoint(e, v)
		if v == cycleStart {
			break
		}
	}
	// edges were collected walking backward along the cycle; reverse so
	// the witness reads forward.
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}
