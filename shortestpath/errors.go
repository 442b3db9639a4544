package shortestpath

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errNegativeEdge(e int) error {
	return fmt.Errorf("shortestpath: edge %d has negative weight: %w", e, graph.ErrIllegalInput)
}

func errNotDAG() error {
	return fmt.Errorf("shortestpath: graph is not a DAG: %w", graph.ErrIllegalInput)
}

func errSourceOutOfRange(s, n int) error {
	return fmt.Errorf("shortestpath: source %d out of range [0,%d): %w", s, n, graph.ErrIllegalInput)
}
