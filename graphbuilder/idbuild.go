package graphbuilder

import (
	"github.com/dmishra-go/graphkit/idgraph"
	"github.com/dmishra-go/graphkit/idstrat"
)

// BuildID wraps Build's result in an idgraph.Graph[V], generating a fresh
// vertex id from genID for every vertex the constructors add and using the
// identity strategy for edge ids (edge ids are just edge indices). This
// mirrors Build but hands callers stable, swap-proof identifiers instead of
// raw indices — the idgraph.Graph[V] motivation spec.md section D describes.
func BuildID[V comparable](genID func() V, opts []Option, cons ...Constructor) (*idgraph.Graph[V], error) {
	idx, err := Build(opts, cons...)
	if err != nil {
		return nil, err
	}

	vertexStrat := idstrat.NewMappedStrategy[V](genID)
	edgeStrat := idstrat.NewDefaultStrategy()
	g := idgraph.New(idx, vertexStrat, edgeStrat)

	// idgraph.Graph drives its own strategies in lockstep with AddVertex/
	// AddEdge; the underlying idx graph was already populated directly by
	// the constructors above, so replay vertex/edge creation through g's
	// strategies to backfill the id<->index bijection for everything Build
	// just built.
	for i := 0; i < idx.N(); i++ {
		vertexStrat.NewIdx()
	}
	for e := 0; e < idx.M(); e++ {
		edgeStrat.NewIdx()
	}
	return g, nil
}
