package matching

import (
	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// MinWeight finds a matching on g's bipartition (vertices [0,leftSize)
// on the left, [leftSize,n) on the right) minimizing total weight,
// augmenting greedily by cheapest improving path and stopping as soon
// as no further augmentation would lower the total.
func MinWeight(g indexgraph.IndexGraph, leftSize int, w graph.WeightFunc) (*Result, error) {
	return solve(g, leftSize, w)
}

// MaxWeight finds a matching on g's bipartition maximizing total
// weight, by minimizing negated weights and negating the result back.
func MaxWeight(g indexgraph.IndexGraph, leftSize int, w graph.WeightFunc) (*Result, error) {
	negated := func(e int) float64 { return -w(e) }
	result, err := solve(g, leftSize, negated)
	if err != nil {
		return nil, err
	}
	result.Weight = -result.Weight
	return result, nil
}

func solve(g indexgraph.IndexGraph, leftSize int, cost graph.WeightFunc) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	n := g.N()
	if leftSize < 0 || leftSize > n {
		return nil, errLeftSizeOutOfRange(leftSize, n)
	}

	source := n
	sink := n + 1
	aux := newAuxGraph(n + 2)

	for i := 0; i < leftSize; i++ {
		aux.addEdge(source, i, 1, 0)
	}
	for j := leftSize; j < n; j++ {
		aux.addEdge(j, sink, 1, 0)
	}

	type pairEdge struct {
		i, j int
		fwd  int
	}
	var pairs []pairEdge
	for u := 0; u < n; u++ {
		for it := g.OutEdges(u); it.Next(); {
			e := it.Edge()
			a, b := g.EdgeSource(e), g.EdgeTarget(e)
			left, right := a, b
			if a >= leftSize {
				left, right = b, a
			}
			if left >= leftSize || right < leftSize {
				return nil, errSameSideEdge(a, b)
			}
			if u != left {
				continue // see this edge once, from its left endpoint
			}
			fwd := aux.addEdge(left, right, 1, cost(e))
			pairs = append(pairs, pairEdge{i: left, j: right, fwd: fwd})
		}
	}

	h := aux.bellmanFord(source)

	var totalCost float64
	for {
		dist, prevEdge := aux.dijkstraPotentials(source, h)
		if dist[sink] == posInf {
			break
		}
		realCost := dist[sink] + h[sink]
		if realCost >= 0 {
			break
		}

		cur := sink
		for cur != source {
			e := prevEdge[cur]
			aux.cap[e]--
			aux.cap[e^1]++
			cur = aux.from[e]
		}

		for v := 0; v < aux.n; v++ {
			if dist[v] < posInf {
				h[v] += dist[v]
			}
		}
		totalCost += realCost
	}

	match := make([]int, leftSize)
	for i := range match {
		match[i] = -1
	}
	for _, p := range pairs {
		if aux.cap[p.fwd] == 0 {
			match[p.i] = p.j
		}
	}

	return &Result{Match: match, Weight: totalCost}, nil
}
