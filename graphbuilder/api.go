package graphbuilder

import (
	"fmt"

	"github.com/dmishra-go/graphkit/indexgraph"
)

// Constructor applies a deterministic mutation to a freshly built graph.
// Constructors validate their own parameters and return sentinel errors;
// they never panic.
type Constructor func(g indexgraph.IndexGraph) error

// Build resolves opts into a config, instantiates the selected backend, and
// applies each constructor in order. A constructor error aborts immediately;
// no partial cleanup is attempted, matching the underlying backends' own
// fail-fast mutators.
func Build(opts []Option, cons ...Constructor) (indexgraph.IndexGraph, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	g, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}

	for i, fn := range cons {
		if fn == nil {
			continue
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("graphbuilder: constructor %d: %w", i, err)
		}
	}
	return g, nil
}

func newBackend(cfg *config) (indexgraph.IndexGraph, error) {
	directed := cfg.caps.Directed
	switch cfg.backend {
	case backendArray:
		if directed {
			return indexgraph.NewArrayDirected(cfg.caps), nil
		}
		return indexgraph.NewArrayUndirected(cfg.caps), nil
	case backendLinked:
		if directed {
			return indexgraph.NewLinkedDirected(cfg.caps), nil
		}
		return indexgraph.NewLinkedUndirected(cfg.caps), nil
	case backendTable:
		if directed {
			return indexgraph.NewTableDirected(cfg.caps), nil
		}
		return indexgraph.NewTableUndirected(cfg.caps), nil
	default:
		return nil, ErrUnknownBackend
	}
}

// minPathVertices is Path's minimum vertex count: a path needs at least
// two endpoints to have an edge.
const minPathVertices = 2

// Path returns a Constructor building a simple path 0-1-...-(n-1): n
// vertices added in order, then edges (i-1,i) for i=1..n-1 in ascending i.
func Path(n int) Constructor {
	return func(g indexgraph.IndexGraph) error {
		if n < minPathVertices {
			return fmt.Errorf("graphbuilder.Path: n=%d < %d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex()
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(i-1, i); err != nil {
				return fmt.Errorf("graphbuilder.Path: AddEdge(%d,%d): %w", i-1, i, err)
			}
		}
		return nil
	}
}

// minCycleVertices is Cycle's minimum vertex count: three vertices are
// needed for a simple ring without doubling back on the same edge.
const minCycleVertices = 3

// Cycle returns a Constructor building an n-vertex ring: n vertices added
// in order, then edges (i,(i+1)%n) for i=0..n-1 in ascending i.
func Cycle(n int) Constructor {
	return func(g indexgraph.IndexGraph) error {
		if n < minCycleVertices {
			return fmt.Errorf("graphbuilder.Cycle: n=%d < %d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex()
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(i, (i+1)%n); err != nil {
				return fmt.Errorf("graphbuilder.Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
			}
		}
		return nil
	}
}

// Star returns a Constructor building a star with center vertex 0 and n-1
// leaves 1..n-1, edges (0,i) for i=1..n-1 in ascending i.
func Star(n int) Constructor {
	return func(g indexgraph.IndexGraph) error {
		if n < minPathVertices {
			return fmt.Errorf("graphbuilder.Star: n=%d < %d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex()
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(0, i); err != nil {
				return fmt.Errorf("graphbuilder.Star: AddEdge(0,%d): %w", i, err)
			}
		}
		return nil
	}
}
