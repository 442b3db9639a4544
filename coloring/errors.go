package coloring

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errDirectedGraph() error {
	return fmt.Errorf("coloring: requires an undirected graph: %w", graph.ErrIllegalInput)
}

func errSelfLoop(v int) error {
	return fmt.Errorf("coloring: vertex %d has a self-loop: %w", v, graph.ErrIllegalInput)
}

func errHeapInvariant(cause error) error {
	return fmt.Errorf("coloring: saturation heap key must only decrease: %w: %v", graph.ErrInternalInvariant, cause)
}
