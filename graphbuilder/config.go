// Package graphbuilder assembles an indexgraph.IndexGraph (or an
// idgraph.Graph[V] wrapping one) from functional options plus an ordered
// list of Constructor closures, mirroring the teacher's
// BuildGraph(gopts, bopts, cons...) orchestrator: one entry point resolves
// options into an immutable config, then applies each constructor in
// order against the graph that config produced.
package graphbuilder

import "github.com/dmishra-go/graphkit/graph"

// backend names the three indexgraph storage implementations.
type backend int

const (
	backendArray backend = iota
	backendLinked
	backendTable
)

// config holds the resolved state every Option may set. It is built fresh
// per Build call; options apply in the order given, later options win.
type config struct {
	backend  backend
	caps     graph.Capabilities
	expectN  int
	expectM  int
}

func newConfig() *config {
	return &config{
		backend: backendArray,
		caps:    graph.DefaultCapabilities(true),
	}
}
