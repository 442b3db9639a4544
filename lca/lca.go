package lca

import "github.com/dmishra-go/graphkit/indexgraph"

// LCA answers lowest-common-ancestor queries on the tree it was built
// from, rooted at the vertex passed to New.
type LCA struct {
	n     int
	euler []int
	first []int
	st    *sparseTable
}

// New builds an LCA structure over g, a connected acyclic undirected
// graph, rooted at root. Fails with IllegalInput if g is directed, has
// a cycle, or is disconnected.
func New(g indexgraph.IndexGraph, root int) (*LCA, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n := g.N()
	if root < 0 || root >= n {
		return nil, errRootOutOfRange(root, n)
	}

	adj, err := buildAdjacency(g)
	if err != nil {
		return nil, err
	}

	euler := make([]int, 0, 2*n-1)
	depth := make([]int, 0, 2*n-1)
	first := make([]int, n)
	for v := range first {
		first[v] = -1
	}

	visited := make([]bool, n)
	var walk func(u, parent, d int) error
	walk = func(u, parent, d int) error {
		visited[u] = true
		first[u] = len(euler)
		euler = append(euler, u)
		depth = append(depth, d)
		for _, v := range adj[u] {
			if v == parent {
				parent = -1 // consume a single use, so a parallel edge back to parent is a real cycle
				continue
			}
			if visited[v] {
				return errNotATree("cycle detected")
			}
			if err := walk(v, u, d+1); err != nil {
				return err
			}
			euler = append(euler, u)
			depth = append(depth, d)
		}
		return nil
	}
	if err := walk(root, -1, 0); err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			return nil, errNotATree("graph is disconnected")
		}
	}

	return &LCA{n: n, euler: euler, first: first, st: newSparseTable(depth)}, nil
}

// Query returns the lowest common ancestor of u and v.
func (l *LCA) Query(u, v int) (int, error) {
	if u < 0 || u >= l.n {
		return 0, errNoSuchVertex(u)
	}
	if v < 0 || v >= l.n {
		return 0, errNoSuchVertex(v)
	}
	idx := l.st.query(l.first[u], l.first[v])
	return l.euler[idx], nil
}

func buildAdjacency(g indexgraph.IndexGraph) ([][]int, error) {
	n := g.N()
	adj := make([][]int, n)
	for v := 0; v < n; v++ {
		for it := g.OutEdges(v); it.Next(); {
			e := it.Edge()
			u, w := g.EdgeSource(e), g.EdgeTarget(e)
			if u == w {
				return nil, errNotATree("self-loop present")
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
