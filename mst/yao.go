package mst

import (
	"math"
	"sort"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// YaoBuckets computes a minimum spanning forest with Yao's bucket
// refinement of Borůvka's algorithm: each vertex's incident edges are
// pre-sorted once into k = ceil(log2(n+1)) buckets by weight rank, and
// in every Borůvka round each vertex of a component looks through its
// own buckets lowest rank first instead of scanning every incident edge,
// stopping at the first bucket that yields a crossing edge; the
// component then takes the cheapest of its vertices' finds.
// The asymptotic win this buys over Boruvka is in avoiding a full
// re-sort of the shrinking edge set each round; the MST produced is
// identical.
func YaoBuckets(g indexgraph.IndexGraph, w graph.WeightFunc) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n := g.N()
	if n == 0 {
		return newResult(w, nil, 0), nil
	}
	k := int(math.Ceil(math.Log2(float64(n + 1))))
	if k < 1 {
		k = 1
	}

	buckets := bucketizeIncidentEdges(g, w, k)
	uf := newUnionFind(n)
	var chosen []int

	for {
		best, any := yaoRound(g, w, uf, buckets, k)
		if !any {
			break
		}
		for _, e := range best {
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

// bucketizeIncidentEdges sorts each vertex's incident edges by weight
// and splits them into k contiguous rank buckets.
func bucketizeIncidentEdges(g indexgraph.IndexGraph, w graph.WeightFunc, k int) [][][]int {
	n := g.N()
	out := make([][][]int, n)
	for v := 0; v < n; v++ {
		var incident []int
		for it := g.OutEdges(v); it.Next(); {
			e := it.Edge()
			if g.EdgeSource(e) != g.EdgeTarget(e) {
				incident = append(incident, e)
			}
		}
		sort.SliceStable(incident, func(i, j int) bool { return w(incident[i]) < w(incident[j]) })

		vb := make([][]int, k)
		if len(incident) == 0 {
			out[v] = vb
			continue
		}
		per := (len(incident) + k - 1) / k
		for i, e := range incident {
			b := i / per
			if b >= k {
				b = k - 1
			}
			vb[b] = append(vb[b], e)
		}
		out[v] = vb
	}
	return out
}

func yaoRound(g indexgraph.IndexGraph, w graph.WeightFunc, uf *unionFind, buckets [][][]int, k int) ([]int, bool) {
	n := g.N()
	best := make([]int, n)
	bestW := make([]float64, n)
	haveBest := make([]bool, n)
	componentsWithCandidate := make([]bool, n)

	members := make(map[int][]int)
	for v := 0; v < n; v++ {
		r := uf.find(v)
		members[r] = append(members[r], v)
	}

	any := false
	for root, vs := range members {
		for _, v := range vs {
			for b := 0; b < k; b++ {
				found := false
				for _, e := range buckets[v][b] {
					u2, v2 := g.EdgeSource(e), g.EdgeTarget(e)
					ru, rv := uf.find(u2), uf.find(v2)
					if ru == rv {
						continue
					}
					weight := w(e)
					if !haveBest[root] || weight < bestW[root] {
						best[root], bestW[root] = e, weight
						haveBest[root] = true
					}
					found = true
				}
				if found {
					componentsWithCandidate[root] = true
					any = true
					break
				}
			}
		}
	}

	result := make([]int, n)
	for i := range result {
		result[i] = -1
	}
	for root := range members {
		if componentsWithCandidate[root] {
			result[root] = best[root]
		}
	}
	return result, any
}
