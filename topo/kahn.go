package topo

import "github.com/dmishra-go/graphkit/indexgraph"

// Sort returns a topological order of g's vertices: for every edge
// (u,v), u appears before v in the result. Fails with IllegalInput if g
// is undirected or contains a cycle.
func Sort(g indexgraph.IndexGraph) ([]int, error) {
	if !g.Capabilities().Directed {
		return nil, errUndirectedGraph()
	}

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
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		order = append(order, u)
		for it := g.OutEdges(u); it.Next(); {
			v := it.Target()
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) != n {
		return nil, errNotDAG()
	}
	return order, nil
}

// IsDAG reports whether g is directed and acyclic.
func IsDAG(g indexgraph.IndexGraph) bool {
	if !g.Capabilities().Directed {
		return false
	}
	_, err := Sort(g)
	return err == nil
}
