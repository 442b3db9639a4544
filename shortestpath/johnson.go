package shortestpath

import (
	"sync"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// parallelThreshold is the vertex count above which Johnson farms its
// per-source Dijkstra calls out to a bounded worker pool.
const parallelThreshold = 32

// Johnson computes all-pairs shortest distances over g using w, tolerating
// negative weights so long as no negative cycle exists. It reweights edges
// via Bellman-Ford potentials so every per-source pass can use Dijkstra.
func Johnson(g indexgraph.IndexGraph, w graph.WeightFunc, opts ...Option) (*APSPResult, error) {
	cfg := newConfig(opts...)
	n := g.N()

	pot, negCycle := bellmanFordPotentials(g, w)
	if negCycle != nil {
		return &APSPResult{NegativeCycle: negCycle}, nil
	}

	reweighted := func(e int) float64 {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		return w(e) + pot[u] - pot[v]
	}

	sssp := make([]*Result, n)
	if n <= parallelThreshold || cfg.workers <= 1 {
		for s := 0; s < n; s++ {
			r, err := Dijkstra(g, reweighted, s)
			if err != nil {
				return nil, err
			}
			sssp[s] = r
		}
		return &APSPResult{sssp: sssp, pot: pot}, nil
	}

	return johnsonParallel(g, reweighted, pot, cfg.workers)
}

func johnsonParallel(g indexgraph.IndexGraph, reweighted graph.WeightFunc, pot []float64, workers int) (*APSPResult, error) {
	n := g.N()
	sssp := make([]*Result, n)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for s := 0; s < n; s++ {
		s := s
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			r, err := Dijkstra(g, reweighted, s)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			sssp[s] = r
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &APSPResult{sssp: sssp, pot: pot}, nil
}

// bellmanFordPotentials computes pot[v] = shortest distance from a virtual
// source connected to every vertex by a zero-weight edge, without
// materializing that vertex: initializing every real vertex's distance to
// 0 instead of +Inf has the identical effect for Bellman-Ford's relaxation
// rounds. Returns a negative-cycle witness instead of potentials if one
// exists anywhere in the graph (not just reachable from some chosen real
// source, since the virtual source reaches everything).
func bellmanFordPotentials(g indexgraph.IndexGraph, w graph.WeightFunc) ([]float64, []int) {
	n := g.N()
	dist := make([]float64, n)
	backtrack := make([]int, n)
	for v := range backtrack {
		backtrack[v] = -1
	}

	edges := allEdges(g)
	directed := g.Capabilities().Directed

	relax := func() bool {
		changed := false
		for _, e := range edges {
			u, v := g.EdgeSource(e), g.EdgeTarget(e)
			if cand := dist[u] + w(e); cand < dist[v] {
				dist[v] = cand
				backtrack[v] = e
				changed = true
			}
			if !directed {
				if cand := dist[v] + w(e); cand < dist[u] {
					dist[u] = cand
					backtrack[u] = e
					changed = true
				}
			}
		}
		return changed
	}

	for i := 0; i < n-1; i++ {
		if !relax() {
			return dist, nil
		}
	}

	for _, e := range edges {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		if dist[u]+w(e) < dist[v] {
			return nil, extractNegativeCycle(g, v, backtrack, n)
		}
		if !directed && dist[v]+w(e) < dist[u] {
			return nil, extractNegativeCycle(g, u, backtrack, n)
		}
	}
	return dist, nil
}
