package shortestpath

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/pairingheap"
)

// Dijkstra computes shortest distances from source over g using w,
// requiring w to be nonnegative on every edge the traversal actually
// relaxes (an edge the algorithm never looks at may be negative without
// affecting the result; only a relaxed negative edge is an error, per
// spec). Ties among equal-distance vertices come out in whatever order
// the pairing heap yields them; no particular tie order is guaranteed.
func Dijkstra(g indexgraph.IndexGraph, w graph.WeightFunc, source int) (*Result, error) {
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

	h := pairingheap.NewFloat64Heap()
	nodeRef := make([]pairingheap.Ref, n)
	nodeRef[source] = h.Insert(0, source)

	for h.Len() > 0 {
		ref, _ := h.ExtractMin()
		u := ref.Value().(int)
		du := dist[u]

		for it := g.OutEdges(u); it.Next(); {
			e := it.Edge()
			weight := w(e)
			if weight < 0 {
				return nil, errNegativeEdge(e)
			}
			v := it.Target()
			cand := du + weight
			if cand < dist[v] {
				dist[v] = cand
				backtrack[v] = e
				if nodeRef[v] == nil {
					nodeRef[v] = h.Insert(cand, v)
				} else {
					_ = h.DecreaseKey(nodeRef[v], cand)
				}
			}
		}
	}

	return &Result{Source: source, g: g, dist: dist, backtrack: backtrack}, nil
}
