package maxflow

import (
	"fmt"
	"math"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// Dinic computes maximum flow from s to t over g/net via level graphs and
// blocking flow: BFS assigns level[v] = residual distance from s, then DFS
// along strictly-increasing-level arcs pushes flow until the sink is
// unreachable in the current level graph, at which point levels are
// rebuilt. The Options.HighestLabel field is ignored here; it only
// selects push-relabel's scheduler.
func Dinic(g indexgraph.IndexGraph, net graph.FlowNetwork, s, t int, opts ...Option) (*Result, error) {
	n := g.N()
	if s < 0 || s >= n {
		return nil, errOutOfRange("source", s, n)
	}
	if t < 0 || t >= n {
		return nil, errOutOfRange("sink", t, n)
	}
	if s == t {
		return nil, errSourceEqualsSink
	}
	o := newOptions(opts...)

	r, err := buildResidual(g, net)
	if err != nil {
		return nil, err
	}

	value := runDinic(r, s, t, o)
	r.writeBack(g.M(), net, nil)

	return &Result{Value: value, reachable: r.reachableFrom(s, o.Epsilon)}, nil
}

func runDinic(r *residual, s, t int, o Options) float64 {
	var total float64
	for {
		level := dinicLevels(r, s, o.Epsilon)
		if level[t] < 0 {
			return total
		}
		iter := make([]int, r.n)
		copy(iter, r.head)
		for {
			pushed := dinicDFS(r, s, t, math.MaxFloat64, level, iter, o.Epsilon)
			if pushed <= o.Epsilon {
				break
			}
			total += pushed
			if o.Verbose {
				fmt.Fprintf(o.Writer, "maxflow: dinic augmented %g (running total %g)\n", pushed, total)
			}
		}
	}
}

func dinicLevels(r *residual, s int, eps float64) []int {
	level := make([]int, r.n)
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for id := r.head[u]; id != -1; id = r.next[id] {
			v := r.to[id]
			if r.cap[id] > eps && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}

// dinicDFS advances from u toward t along admissible arcs (strictly
// increasing level, positive residual capacity), retreating by advancing
// iter[u] past any arc that turns out not to lead anywhere, so each arc is
// inspected at most once per level-graph phase.
func dinicDFS(r *residual, u, t int, bottleneck float64, level []int, iter []int, eps float64) float64 {
	if u == t {
		return bottleneck
	}
	for ; iter[u] != -1; iter[u] = r.next[iter[u]] {
		id := iter[u]
		v := r.to[id]
		if r.cap[id] <= eps || level[v] != level[u]+1 {
			continue
		}
		limit := bottleneck
		if r.cap[id] < limit {
			limit = r.cap[id]
		}
		pushed := dinicDFS(r, v, t, limit, level, iter, eps)
		if pushed > eps {
			r.cap[id] -= pushed
			r.cap[r.twin(id)] += pushed
			return pushed
		}
		// This arc led nowhere in the current level graph; level[v] is
		// effectively dead for this phase, so iter[u] moves on.
	}
	return 0
}
