package mst

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/pairingheap"
)

// Prim computes a minimum spanning forest of g by growing a tree
// outward from root with a pairing heap of candidate edges: every edge
// from a newly added vertex to an unvisited one is inserted, and an
// extracted edge whose endpoints are both already in the tree is skipped
// (no DecreaseKey is used). If g is disconnected, once the tree rooted at root is
// exhausted the algorithm restarts from the lowest-numbered unvisited
// vertex and continues, so the result spans every component.
func Prim(g indexgraph.IndexGraph, w graph.WeightFunc, root int) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n := g.N()
	if root < 0 || root >= n {
		return nil, errRootOutOfRange(root, n)
	}

	visited := make([]bool, n)
	var chosen []int
	components := 0

	grow := func(start int) {
		components++
		visited[start] = true
		h := pairingheap.NewFloat64Heap()
		for it := g.OutEdges(start); it.Next(); {
			e := it.Edge()
			if v := it.Target(); !visited[v] {
				h.Insert(w(e), e)
			}
		}
		for h.Len() > 0 {
			ref, _ := h.ExtractMin()
			e := ref.Value().(int)
			u, v := g.EdgeSource(e), g.EdgeTarget(e)
			var target int
			switch {
			case visited[u] && visited[v]:
				continue
			case visited[u]:
				target = v
			default:
				target = u
			}
			visited[target] = true
			chosen = append(chosen, e)
			for it := g.OutEdges(target); it.Next(); {
				ne := it.Edge()
				if nv := it.Target(); !visited[nv] {
					h.Insert(w(ne), ne)
				}
			}
		}
	}

	grow(root)
	for v := 0; v < n; v++ {
		if !visited[v] {
			grow(v)
		}
	}

	return newResult(w, chosen, components), nil
}
