package mdst

import "github.com/dmishra-go/graphkit/graph"

// Result is a minimum spanning arborescence: Edges holds one original
// graph edge index per non-root vertex (n-1 entries for an n-vertex
// graph), and Weight their sum under the caller's weight function.
type Result struct {
	Edges  []int
	Weight float64
}

func newResult(w graph.WeightFunc, edges []int) *Result {
	var total float64
	for _, e := range edges {
		total += w(e)
	}
	return &Result{Edges: edges, Weight: total}
}
