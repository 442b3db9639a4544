package mst

import (
	"sort"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// Kruskal computes a minimum spanning forest of g by sorting every edge
// ascending by weight and greedily accepting an edge whenever its
// endpoints sit in different union-find components. Self-loops are
// skipped; they can never join two components. Edges are read once via
// each vertex's out-edges, so g must be undirected (an undirected
// backend reports each edge once per endpoint internally but the
// distinct edge index only needs visiting once, which the dedup set
// below enforces).
func Kruskal(g indexgraph.IndexGraph, w graph.WeightFunc) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n, m := g.N(), g.M()

	type weighted struct {
		e int
		w float64
	}
	seen := make([]bool, m)
	edges := make([]weighted, 0, m)
	for v := 0; v < n; v++ {
		for it := g.OutEdges(v); it.Next(); {
			e := it.Edge()
			if seen[e] {
				continue
			}
			seen[e] = true
			if g.EdgeSource(e) == g.EdgeTarget(e) {
				continue
			}
			edges = append(edges, weighted{e: e, w: w(e)})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].w < edges[j].w })

	uf := newUnionFind(n)
	var chosen []int
	for _, ew := range edges {
		u, v := g.EdgeSource(ew.e), g.EdgeTarget(ew.e)
		if uf.union(u, v) {
			chosen = append(chosen, ew.e)
		}
	}

	return newResult(w, chosen, countComponents(uf, n)), nil
}

func countComponents(uf *unionFind, n int) int {
	roots := make(map[int]struct{}, n)
	for v := 0; v < n; v++ {
		roots[uf.find(v)] = struct{}{}
	}
	return len(roots)
}
