package mdst

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

type arc struct {
	idx    int
	u, v   int
	weight float64
}

// Tarjan computes the minimum spanning in-arborescence of g rooted at
// root: every vertex reachable from root ends up with exactly one
// chosen incoming edge, chosen so the total weight is minimal among all
// such arborescences. Every vertex other than root must be reachable
// from root in g, or Tarjan fails with an IllegalInput error rather
// than inventing artificial bridging edges (unlike mst.Kruskal and
// mst.Prim, which return a spanning forest on disconnected input);
// spec.md's artificial-edge preprocessing is an
// optional way to avoid that restriction, not a required one.
func Tarjan(g indexgraph.IndexGraph, w graph.WeightFunc, root int) (*Result, error) {
	if !g.Capabilities().Directed {
		return nil, errUndirectedGraph()
	}
	n := g.N()
	if root < 0 || root >= n {
		return nil, errRootOutOfRange(root, n)
	}

	var edges []arc
	for v := 0; v < n; v++ {
		for it := g.OutEdges(v); it.Next(); {
			e := it.Edge()
			if g.EdgeSource(e) == g.EdgeTarget(e) {
				continue
			}
			edges = append(edges, arc{idx: e, u: g.EdgeSource(e), v: g.EdgeTarget(e), weight: w(e)})
		}
	}

	reach := bfsReachable(n, edges, root)
	for v := 0; v < n; v++ {
		if v != root && !reach[v] {
			return nil, errUnreachable(v)
		}
	}
	if n == 1 {
		return newResult(w, nil), nil
	}

	chosen, err := solve(n, edges, root)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		result = append(result, edges[chosen[v]].idx)
	}
	return newResult(w, result), nil
}

func bfsReachable(n int, edges []arc, root int) []bool {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], e.v)
	}
	reach := make([]bool, n)
	reach[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !reach[v] {
				reach[v] = true
				queue = append(queue, v)
			}
		}
	}
	return reach
}

// solve runs the chase-contract-unwind core and returns, per original
// vertex (root's own slot is left at -1 and never read), the index into
// edges of its final chosen in-edge.
func solve(n int, edges []arc, root int) ([]int, error) {
	maxNodes := 2 * n
	parent := make([]int, maxNodes)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	heaps := make([]*lazyHeap, maxNodes)
	for i := range heaps {
		heaps[i] = newLazyHeap()
	}
	for i, e := range edges {
		if e.v == root {
			continue
		}
		heaps[e.v].insert(e.weight, i)
	}

	inEdge := make([]int, maxNodes)
	parentOf := make([]int, maxNodes)
	for i := range inEdge {
		inEdge[i] = -1
		parentOf[i] = -1
	}

	onPath := make([]bool, maxNodes)
	resolved := make([]bool, maxNodes)
	resolved[root] = true

	nextID := n

	for start := 0; start < n; start++ {
		if start == root {
			continue
		}
		cur := find(start)
		if resolved[cur] {
			continue
		}

		var path []int
		for !resolved[cur] {
			if onPath[cur] {
				k := indexOf(path, cur)
				cycle := append([]int(nil), path[k:]...)
				c := nextID
				nextID++

				merged := newLazyHeap()
				for _, m := range cycle {
					merged.merge(heaps[m])
					parent[m] = c
					parentOf[m] = c
					onPath[m] = false
				}
				heaps[c] = merged
				parent[c] = c
				onPath[c] = true

				path = append(path[:k], c)
				cur = c
			} else {
				onPath[cur] = true
				path = append(path, cur)
			}

			for {
				if heaps[cur].len() == 0 {
					return nil, errNoCandidateEdge(cur)
				}
				weight, ei, _ := heaps[cur].extractMin()
				ru := find(edges[ei].u)
				if ru == cur {
					continue
				}
				inEdge[cur] = ei
				heaps[cur].addAll(-weight)
				cur = ru
				break
			}
		}

		for _, m := range path {
			onPath[m] = false
			resolved[m] = true
		}
	}

	// Unwind outermost supervertex first: ids nest in creation order, so a
	// higher id is always created later and sits strictly outside any
	// lower one it absorbed. Unwinding ascending would push a supervertex's
	// stale forward-pass inEdge down into its members before the
	// supervertex that actually absorbed it got a chance to overwrite that
	// value with the true root-connecting edge.
	for c := nextID - 1; c >= n; c-- {
		entry := ancestorAtLevel(parentOf, edges[inEdge[c]].v, c)
		inEdge[entry] = inEdge[c]
	}

	return inEdge, nil
}

func indexOf(path []int, v int) int {
	for i, p := range path {
		if p == v {
			return i
		}
	}
	return -1
}

func ancestorAtLevel(parentOf []int, v, target int) int {
	for parentOf[v] != target {
		v = parentOf[v]
	}
	return v
}
