package maxflow

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

func errOutOfRange(label string, v, n int) error {
	return fmt.Errorf("maxflow: %s vertex %d out of range [0,%d): %w", label, v, n, graph.ErrIllegalInput)
}

func errNegativeCapacity(e int, c float64) error {
	return fmt.Errorf("maxflow: edge %d has negative capacity %g: %w", e, c, graph.ErrIllegalInput)
}

var errSourceEqualsSink = fmt.Errorf("maxflow: source and sink must differ: %w", graph.ErrIllegalInput)
