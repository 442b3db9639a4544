package mst

import (
	"math/rand"
	"sort"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// kktSmallThreshold bounds the recursion: once an edge list shrinks to
// this size or below, kktSolve falls back to plain Kruskal instead of
// sampling and contracting further, the same way a quicksort falls back
// to insertion sort on small partitions.
const kktSmallThreshold = 32

type kktEdge struct {
	idx    int
	u, v   int
	weight float64
}

// KargerKleinTarjan computes a minimum spanning forest using the
// randomized linear-expected-time algorithm: one Borůvka round
// contracts the graph to at most n/2 super-vertices, a random half of the
// surviving edges is solved recursively to get a sampling forest, that
// forest's tree-path maxima discard every surviving edge that is
// provably not part of any MST (heavier than the path it would close),
// and the remaining light edges are solved recursively again. The
// per-query tree-path maximum here is a direct O(n) tree walk rather
// than the linear-total-time offline algorithm Karger, Klein and Tarjan
// describe; see DESIGN.md for why that simplification is safe at the
// scale this module targets.
func KargerKleinTarjan(g indexgraph.IndexGraph, w graph.WeightFunc) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n := g.N()
	if n == 0 {
		return newResult(w, nil, 0), nil
	}

	seen := make(map[int]bool)
	var edges []kktEdge
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
			edges = append(edges, kktEdge{idx: e, u: g.EdgeSource(e), v: g.EdgeTarget(e), weight: w(e)})
		}
	}

	chosen := kktSolve(n, edges)

	uf := newUnionFind(n)
	var final []int
	for _, ke := range chosen {
		if uf.union(ke.u, ke.v) {
			final = append(final, ke.idx)
		}
	}

	return newResult(w, final, countComponents(uf, n)), nil
}

func kktSolve(n int, edges []kktEdge) []kktEdge {
	if n <= 1 || len(edges) == 0 {
		return nil
	}
	if len(edges) <= kktSmallThreshold {
		return kktKruskal(n, edges)
	}

	boruvkaChosen, uf := kktBoruvkaRound(n, edges)

	root := make(map[int]int)
	var compRep []int // compRep[id] = a real vertex (in this call's own n-space) representing component id
	c := 0
	compOf := make([]int, n)
	for v := 0; v < n; v++ {
		r := uf.find(v)
		id, ok := root[r]
		if !ok {
			id = c
			root[r] = id
			compRep = append(compRep, r)
			c++
		}
		compOf[v] = id
	}

	var remaining []kktEdge
	for _, e := range edges {
		cu, cv := compOf[e.u], compOf[e.v]
		if cu == cv {
			continue
		}
		remaining = append(remaining, kktEdge{idx: e.idx, u: cu, v: cv, weight: e.weight})
	}
	if len(remaining) == 0 || c <= 1 {
		return boruvkaChosen
	}

	var sample []kktEdge
	for _, e := range remaining {
		if rand.Intn(2) == 0 {
			sample = append(sample, e)
		}
	}
	sampleForest := kktSolve(c, sample)

	light := kktFilterLight(c, sampleForest, remaining)
	lightChosen := kktSolve(c, light)

	// lightChosen's u/v live in the component space kktSolve(c, ...) was
	// called with, not this call's own n-space: translate each component
	// id back to the real vertex that represents it here before merging.
	out := make([]kktEdge, 0, len(boruvkaChosen)+len(lightChosen))
	out = append(out, boruvkaChosen...)
	for _, e := range lightChosen {
		out = append(out, kktEdge{idx: e.idx, u: compRep[e.u], v: compRep[e.v], weight: e.weight})
	}
	return out
}

func kktKruskal(n int, edges []kktEdge) []kktEdge {
	sorted := make([]kktEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].weight < sorted[j].weight })

	uf := newUnionFind(n)
	var chosen []kktEdge
	for _, e := range sorted {
		if uf.union(e.u, e.v) {
			chosen = append(chosen, e)
		}
	}
	return chosen
}

func kktBoruvkaRound(n int, edges []kktEdge) ([]kktEdge, *unionFind) {
	uf := newUnionFind(n)
	best := make([]int, n)
	bestW := make([]float64, n)
	have := make([]bool, n)
	for i := range best {
		best[i] = -1
	}
	for i, e := range edges {
		ru, rv := uf.find(e.u), uf.find(e.v)
		if ru == rv {
			continue
		}
		if !have[ru] || e.weight < bestW[ru] {
			best[ru], bestW[ru], have[ru] = i, e.weight, true
		}
		if !have[rv] || e.weight < bestW[rv] {
			best[rv], bestW[rv], have[rv] = i, e.weight, true
		}
	}
	var chosen []kktEdge
	for v := 0; v < n; v++ {
		if uf.find(v) != v {
			continue
		}
		if i := best[v]; i != -1 {
			e := edges[i]
			if uf.union(e.u, e.v) {
				chosen = append(chosen, e)
			}
		}
	}
	return chosen, uf
}

// kktFilterLight keeps every edge whose weight does not exceed the
// heaviest edge on the tree path joining its endpoints in forest
// (edges bridging two different trees of forest are always kept, since
// no path exists yet to compare against).
func kktFilterLight(n int, forest, candidates []kktEdge) []kktEdge {
	adj := make([][]kktEdge, n)
	for _, e := range forest {
		adj[e.u] = append(adj[e.u], e)
		adj[e.v] = append(adj[e.v], kktEdge{idx: e.idx, u: e.v, v: e.u, weight: e.weight})
	}

	var light []kktEdge
	for _, e := range candidates {
		maxW, connected := pathMax(adj, n, e.u, e.v)
		if !connected || e.weight <= maxW {
			light = append(light, e)
		}
	}
	return light
}

// pathMax walks the tree adj from src to dst via BFS, returning the
// heaviest edge weight on that path and whether dst was reachable at
// all within src's tree.
func pathMax(adj [][]kktEdge, n, src, dst int) (float64, bool) {
	visited := make([]bool, n)
	parentEdgeW := make([]float64, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	visited[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dst {
			break
		}
		for _, e := range adj[u] {
			if !visited[e.v] {
				visited[e.v] = true
				parent[e.v] = u
				parentEdgeW[e.v] = e.weight
				queue = append(queue, e.v)
			}
		}
	}
	if !visited[dst] {
		return 0, false
	}
	var maxW float64
	for v := dst; v != src; v = parent[v] {
		if parentEdgeW[v] > maxW {
			maxW = parentEdgeW[v]
		}
	}
	return maxW, true
}
