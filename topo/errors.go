package topo

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errUndirectedGraph() error {
	return fmt.Errorf("topo: Sort requires a directed graph: %w", graph.ErrIllegalInput)
}

func errNotDAG() error {
	return fmt.Errorf("topo: graph has a cycle, no topological order exists: %w", graph.ErrIllegalInput)
}
