package mst

import "github.com/dmishra-go/graphkit/graph"

// Result is a minimum spanning tree, or forest when the input graph is
// disconnected: Edges holds one entry per tree/forest arc in the order
// it was accepted, and Weight its total weight under the weight
// function the caller supplied. Components reports how many connected
// components the forest spans (1 for a tree).
type Result struct {
	Edges      []int
	Weight     float64
	Components int
}

func newResult(w graph.WeightFunc, edges []int, components int) *Result {
	var total float64
	for _, e := range edges {
		total += w(e)
	}
	return &Result{Edges: edges, Weight: total, Components: components}
}
