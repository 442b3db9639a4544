package mst

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errDirectedGraph() error {
	return fmt.Errorf("mst: algorithm requires an undirected graph: %w", graph.ErrIllegalInput)
}

func errRootOutOfRange(r, n int) error {
	return fmt.Errorf("mst: root %d out of range [0,%d): %w", r, n, graph.ErrIllegalInput)
}
