package matching

import "github.com/dmishra-go/graphkit/pairingheap"

// dijkstraPotentials finds shortest distances from s using reduced
// costs cost(e) + h[from(e)] - h[to(e)], which Johnson's potential
// invariant keeps nonnegative as long as h was itself derived from a
// valid shortest-distance labeling. prevEdge[v] is the edge used to
// reach v on the shortest path, -1 if v is unreached.
func (g *auxGraph) dijkstraPotentials(s int, h []float64) (dist []float64, prevEdge []int) {
	dist = make([]float64, g.n)
	prevEdge = make([]int, g.n)
	for i := range dist {
		dist[i] = posInf
		prevEdge[i] = -1
	}
	dist[s] = 0

	heap := pairingheap.NewFloat64Heap()
	nodeRef := make([]pairingheap.Ref, g.n)
	nodeRef[s] = heap.Insert(0, s)

	for heap.Len() > 0 {
		ref, _ := heap.ExtractMin()
		u := ref.Value().(int)
		du := dist[u]

		for _, e := range g.adj[u] {
			if g.cap[e] <= 0 {
				continue
			}
			v := g.to[e]
			reduced := g.cost[e] + h[u] - h[v]
			if cand := du + reduced; cand < dist[v] {
				dist[v] = cand
				prevEdge[v] = e
				if nodeRef[v] == nil {
					nodeRef[v] = heap.Insert(cand, v)
				} else {
					_ = heap.DecreaseKey(nodeRef[v], cand)
				}
			}
		}
	}
	return dist, prevEdge
}
