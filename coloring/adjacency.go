package coloring

import "github.com/dmishra-go/graphkit/indexgraph"

// buildAdjacency returns each vertex's neighbor list, derived purely
// from its own OutEdges so undirected incident edges are counted once
// per endpoint, not once per edge globally.
func buildAdjacency(g indexgraph.IndexGraph) ([][]int, error) {
	n := g.N()
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		for it := g.OutEdges(v); it.Next(); {
			e := it.Edge()
			u, w := g.EdgeSource(e), g.EdgeTarget(e)
			if u == w {
				return nil, errSelfLoop(v)
			}
			neighbor := u
			if u == v {
				neighbor = w
			}
			adj[v] = append(adj[v], neighbor)
		}
	}
	return adj, nil
}
