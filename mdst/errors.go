package mdst

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errUndirectedGraph() error {
	return fmt.Errorf("mdst: Tarjan requires a directed graph: %w", graph.ErrIllegalInput)
}

func errRootOutOfRange(r, n int) error {
	return fmt.Errorf("mdst: root %d out of range [0,%d): %w", r, n, graph.ErrIllegalInput)
}

func errUnreachable(v int) error {
	return fmt.Errorf("mdst: vertex %d is not reachable from root: %w", v, graph.ErrIllegalInput)
}

func errNoCandidateEdge(v int) error {
	return fmt.Errorf("mdst: vertex %d ran out of candidate incoming edges: %w", v, graph.ErrInternalInvariant)
}
