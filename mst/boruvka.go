package mst

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// Boruvka computes a minimum spanning forest by repeated rounds: every
// component picks its globally cheapest outgoing edge, all such edges
// are unioned in simultaneously, and the process repeats on the
// contracted components until no component has an outgoing edge left.
// Yao-buckets and Karger–Klein–Tarjan follow the same round structure
// but run their own round functions (yaoRound, kktBoruvkaRound) rather
// than boruvkaRound.
func Boruvka(g indexgraph.IndexGraph, w graph.WeightFunc) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n := g.N()
	uf := newUnionFind(n)
	var chosen []int

	for {
		cheapest, any := boruvkaRound(g, w, uf, nil)
		if !any {
			break
		}
		for _, e := range cheapest {
			if e < 0 {
				continue
			}
			u, v := g.EdgeSource(e), g.EdgeTarget(e)
			if uf.union(u, v) {
				chosen = append(chosen, e)
			}
		}
	}

	return newResult(w, chosen, countComponents(uf, n)), nil
}

// boruvkaRound scans edges (every edge in g, or only the ones named by
// candidates when non-nil; Boruvka, its only caller, passes nil) and returns, per
// union-find root, the index of its cheapest edge crossing to a
// different component. The returned slice is indexed by vertex id, not
// root id; callers union blindly and rely on unionFind.union's
// already-same-set check to ignore duplicates. any reports whether at
// least one crossing edge was found at all.
func boruvkaRound(g indexgraph.IndexGraph, w graph.WeightFunc, uf *unionFind, candidates []int) ([]int, bool) {
	n := g.N()
	best := make([]int, n)
	bestW := make([]float64, n)
	for i := range best {
		best[i] = -1
		bestW[i] = 0
	}
	any := false

	consider := func(e int) {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		ru, rv := uf.find(u), uf.find(v)
		if ru == rv {
			return
		}
		weight := w(e)
		if best[ru] == -1 || weight < bestW[ru] {
			best[ru], bestW[ru] = e, weight
		}
		if best[rv] == -1 || weight < bestW[rv] {
			best[rv], bestW[rv] = e, weight
		}
		any = true
	}

	if candidates != nil {
		for _, e := range candidates {
			consider(e)
		}
	} else {
		seen := make(map[int]bool)
		for v := 0; v < n; v++ {
			for it := g.OutEdges(v); it.Next(); {
				e := it.Edge()
				if seen[e] {
					continue
				}
				seen[e] = true
				if g.EdgeSource(e) != g.EdgeTarget(e) {
					consider(e)
				}
			}
		}
	}

	return best, any
}
