package coloring

import (
	"github.com/dmishra-go/graphkit/indexgraph"
	"github.com/dmishra-go/graphkit/pairingheap"
)

// DSatur colors g's vertices by repeatedly picking the uncolored vertex
// with the highest saturation degree (number of distinct colors used by
// its neighbors), breaking ties by degree, and assigning it the
// smallest color absent from its neighborhood.
func DSatur(g indexgraph.IndexGraph) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	adj, err := buildAdjacency(g)
	if err != nil {
		return nil, err
	}
	n := g.N()

	degree := make([]int, n)
	satDeg := make([]int, n)
	usedColors := make([]map[int]bool, n)
	colors := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = len(adj[v])
		usedColors[v] = make(map[int]bool)
		colors[v] = -1
	}

	heap := pairingheap.NewFloat64Heap()
	refs := make([]*pairingheap.Float64Ref, n)
	for v := 0; v < n; v++ {
		refs[v] = heap.Insert(dsaturKey(0, degree[v], n), v)
	}

	numColors := 0
	for heap.Len() > 0 {
		ref, _ := heap.ExtractMin()
		v := ref.Value().(int)

		c := 0
		for usedColors[v][c] {
			c++
		}
		colors[v] = c
		if c+1 > numColors {
			numColors = c + 1
		}

		for _, u := range adj[v] {
			if colors[u] != -1 || usedColors[u][c] {
				continue
			}
			usedColors[u][c] = true
			satDeg[u]++
			if err := heap.DecreaseKey(refs[u], dsaturKey(satDeg[u], degree[u], n)); err != nil {
				return nil, errHeapInvariant(err)
			}
		}
	}

	return &Result{Colors: colors, NumColors: numColors}, nil
}

// dsaturKey packs (saturation, degree) into a single descending priority:
// higher saturation must pop first, ties broken by higher degree. Both
// quantities are bounded by n, so saturation dominates degree exactly
// when scaled by n+1.
func dsaturKey(saturation, degree, n int) float64 {
	return -(float64(saturation)*float64(n+1) + float64(degree))
}
