package indexgraph

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errOutOfRange(kind string, idx, n int) error {
	return fmt.Errorf("indexgraph: %s index %d out of range [0,%d): %w", kind, idx, n, graph.ErrIllegalInput)
}

func errSelfEdgeForbidden(v int) error {
	return fmt.Errorf("indexgraph: self edge at vertex %d not permitted by capabilities: %w", v, graph.ErrIllegalInput)
}

func errParallelEdgeForbidden(u, v int) error {
	return fmt.Errorf("indexgraph: parallel edge %d->%d not permitted by capabilities: %w", u, v, graph.ErrIllegalInput)
}

func errDirectedOnly(op string) error {
	return fmt.Errorf("indexgraph: %s requires a directed graph: %w", op, graph.ErrIllegalInput)
}
