package matching

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errDirectedGraph() error {
	return fmt.Errorf("matching: requires an undirected graph: %w", graph.ErrIllegalInput)
}

func errLeftSizeOutOfRange(leftSize, n int) error {
	return fmt.Errorf("matching: leftSize %d out of range [0,%d]: %w", leftSize, n, graph.ErrIllegalInput)
}

func errSameSideEdge(u, v int) error {
	return fmt.Errorf("matching: edge (%d,%d) does not cross the bipartition: %w", u, v, graph.ErrIllegalInput)
}
