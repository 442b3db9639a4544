package lca

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errDirectedGraph() error {
	return fmt.Errorf("lca: New requires an undirected graph: %w", graph.ErrIllegalInput)
}

func errRootOutOfRange(r, n int) error {
	return fmt.Errorf("lca: root %d out of range [0,%d): %w", r, n, graph.ErrIllegalInput)
}

func errNotATree(reason string) error {
	return fmt.Errorf("lca: New requires a connected, acyclic graph: %s: %w", reason, graph.ErrIllegalInput)
}

func errNoSuchVertex(v int) error {
	return fmt.Errorf("lca: vertex %d is out of range: %w", v, graph.ErrNoSuchId)
}
