package idgraph

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/iweight"
)

// VertexWeight returns the vertex-keyed weight container registered under
// key, creating and attaching one (defaulting every slot to deflt) the
// first time key is seen. Repeated calls with the same key and type
// return the same *iweight.Container[T] instance.
//
// A package-level generic function, not a method, since Go methods
// cannot introduce type parameters beyond their receiver's.
func VertexWeight[T any, V comparable](g *Graph[V], key string, deflt T) *iweight.Container[T] {
	if existing, ok := g.vertexWeights[key]; ok {
		return existing.(*iweight.Container[T])
	}
	c := iweight.NewContainer(deflt)
	c.Attach(vertexAttachable[V]{g})
	g.vertexWeights[key] = c
	return c
}

// EdgeWeight is VertexWeight's edge-keyed counterpart.
func EdgeWeight[T any, V comparable](g *Graph[V], key string, deflt T) *iweight.Container[T] {
	if existing, ok := g.edgeWeights[key]; ok {
		return existing.(*iweight.Container[T])
	}
	c := iweight.NewContainer(deflt)
	c.Attach(edgeAttachable[V]{g})
	g.edgeWeights[key] = c
	return c
}

// vertexAttachable and edgeAttachable adapt Graph's vertex/edge listener
// registration methods to the attachable shape iweight.Container.Attach
// expects, since indexgraph.IndexGraph exposes separate Add*/Remove*
// pairs per axis rather than one generic pair reused for both.
type vertexAttachable[V comparable] struct{ g *Graph[V] }

func (v vertexAttachable[V]) AddSwapListener(l graph.SwapListener)      { v.g.idx.AddVertexSwapListener(l) }
func (v vertexAttachable[V]) AddAddRemoveListener(l graph.AddRemoveListener) {
	v.g.idx.AddVertexListener(l)
}

type edgeAttachable[V comparable] struct{ g *Graph[V] }

func (e edgeAttachable[V]) AddSwapListener(l graph.SwapListener)      { e.g.idx.AddEdgeSwapListener(l) }
func (e edgeAttachable[V]) AddAddRemoveListener(l graph.AddRemoveListener) {
	e.g.idx.AddEdgeListener(l)
}

// VertexWeightByID returns an id-keyed view over the container VertexWeight
// would return for key, caching the view itself (not just the
// container) so repeated calls for the same key return the identical
// wrapper, per the weak-association lookup this wraps.
func VertexWeightByID[T any, V comparable](g *Graph[V], key string, deflt T) *IDView[V, T] {
	if existing, ok := g.vertexViews[key]; ok {
		return existing.(*IDView[V, T])
	}
	v := &IDView[V, T]{c: VertexWeight[T](g, key, deflt), toIndex: g.vertexStrat.IdToIndex}
	g.vertexViews[key] = v
	return v
}

// EdgeWeightByID is VertexWeightByID's edge-keyed counterpart.
func EdgeWeightByID[T any, V comparable](g *Graph[V], key string, deflt T) *IDView[EdgeID, T] {
	if existing, ok := g.edgeViews[key]; ok {
		return existing.(*IDView[EdgeID, T])
	}
	v := &IDView[EdgeID, T]{c: EdgeWeight[T](g, key, deflt), toIndex: g.edgeStrat.IdToIndex}
	g.edgeViews[key] = v
	return v
}

// IDView is an id-keyed wrapper over an index-keyed weight container: Get
// and Set translate an id to its current index before each access, so
// the view stays valid across swaps without needing its own listener.
type IDView[ID comparable, T any] struct {
	c       *iweight.Container[T]
	toIndex func(ID) (int, error)
}

// Get returns the value stored for id, or the container's default if id
// is not registered or has no value set.
func (v *IDView[ID, T]) Get(id ID) T {
	idx, err := v.toIndex(id)
	if err != nil {
		return v.c.Default()
	}
	return v.c.Get(idx)
}

// Set assigns value to id. Returns the translation error if id is not
// registered; the container is left unchanged in that case.
func (v *IDView[ID, T]) Set(id ID, value T) error {
	idx, err := v.toIndex(id)
	if err != nil {
		return err
	}
	v.c.Set(idx, value)
	return nil
}

// Container returns the underlying index-keyed container, for code that
// wants to hop between index-keyed and id-keyed access without a second
// registry lookup.
func (v *IDView[ID, T]) Container() *iweight.Container[T] { return v.c }
