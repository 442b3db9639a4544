package maxflow

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
	"github.com/dmishra-go/graphkit/indexgraph"
)

// scheduler selects which active vertex (excess > 0, not source or sink)
// to discharge next. fifoScheduler and highestLabelScheduler are the two
// spec.md §4.H names; both tolerate stale entries (a vertex pushed while
// active that later reaches zero excess before being popped), which the
// solver loop filters out on pop.
type scheduler interface {
	push(v, label int)
	pop() (int, bool)
}

type fifoScheduler struct{ q []int }

func (s *fifoScheduler) push(v, _ int) { s.q = append(s.q, v) }
func (s *fifoScheduler) pop() (int, bool) {
	if len(s.q) == 0 {
		return 0, false
	}
	v := s.q[0]
	s.q = s.q[1:]
	return v, true
}

// highestLabelScheduler buckets active vertices by their label at push
// time and always pops from the highest nonempty bucket. Vertices can be
// pushed into higher buckets than their current actual label between
// pops (a relabel moves them); a stale entry for an already-exhausted
// vertex is simply skipped by the solver loop rather than removed here,
// the same lazy-deletion approach this module uses for heap entries.
type highestLabelScheduler struct {
	buckets [][]int
	max     int
}

func newHighestLabelScheduler(capacity int) *highestLabelScheduler {
	return &highestLabelScheduler{buckets: make([][]int, capacity), max: -1}
}

func (s *highestLabelScheduler) push(v, label int) {
	if label >= len(s.buckets) {
		label = len(s.buckets) - 1
	}
	s.buckets[label] = append(s.buckets[label], v)
	if label > s.max {
		s.max = label
	}
}

func (s *highestLabelScheduler) pop() (int, bool) {
	for s.max >= 0 && len(s.buckets[s.max]) == 0 {
		s.max--
	}
	if s.max < 0 {
		return 0, false
	}
	b := s.buckets[s.max]
	v := b[len(b)-1]
	s.buckets[s.max] = b[:len(b)-1]
	return v, true
}

// PushRelabel computes maximum flow from s to t over g/net using the
// classic push-relabel method: FIFO active-vertex scheduling by default,
// or highest-label scheduling with WithHighestLabel(). The dynamic-tree
// acceleration spec.md §4.H describes as optional is not implemented —
// see DESIGN.md for why.
func PushRelabel(g indexgraph.IndexGraph, net graph.FlowNetwork, s, t int, opts ...Option) (*Result, error) {
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

	var sched scheduler
	if o.HighestLabel {
		sched = newHighestLabelScheduler(2*n + 1)
	} else {
		sched = &fifoScheduler{}
	}

	value := runPushRelabel(r, s, t, sched, o)
	r.writeBack(g.M(), net, nil)

	return &Result{Value: value, reachable: r.reachableFrom(s, o.Epsilon)}, nil
}

// runPushRelabel is shared by the public PushRelabel entry point and by
// the Circulation reduction, which builds its own augmented residual
// network (with a super-source/super-sink) and needs the same core loop
// without going through buildResidual again.
func runPushRelabel(r *residual, s, t int, sched scheduler, o Options) float64 {
	n := r.n
	label := make([]int, n)
	excess := make([]float64, n)
	curArc := make([]int, n)
	copy(curArc, r.head)
	active := make([]bool, n)

	label[s] = n

	// Saturate every source-outgoing arc.
	for id := r.head[s]; id != -1; id = r.next[id] {
		c := r.cap[id]
		if c <= o.Epsilon {
			continue
		}
		v := r.to[id]
		r.cap[id] -= c
		r.cap[r.twin(id)] += c
		excess[v] += c
		excess[s] -= c
		if v != s && v != t && !active[v] {
			active[v] = true
			sched.push(v, label[v])
			if o.Verbose {
				fmt.Fprintf(o.Writer, "maxflow: saturate %d->%d cap=%g\n", s, v, c)
			}
		}
	}

	for {
		u, ok := sched.pop()
		if !ok {
			break
		}
		if !active[u] || excess[u] <= o.Epsilon || u == s || u == t {
			active[u] = false
			continue
		}
		discharge(r, u, s, t, label, excess, curArc, active, sched, o)
	}

	return excess[t]
}

func discharge(r *residual, u, s, t int, label []int, excess []float64, curArc []int, active []bool, sched scheduler, o Options) {
	n := r.n
	for excess[u] > o.Epsilon {
		id := curArc[u]
		if id == -1 {
			// Relabel: raise label[u] to 1 + min label among residual
			// out-neighbors, then restart the scan from the head.
			minLabel := 2*n + 1
			for id2 := r.head[u]; id2 != -1; id2 = r.next[id2] {
				if r.cap[id2] > o.Epsilon && label[r.to[id2]] < minLabel {
					minLabel = label[r.to[id2]]
				}
			}
			if minLabel == 2*n+1 {
				// No residual out-neighbor at all; nothing more to do
				// with this excess (can happen only transiently while
				// other vertices still have excess to absorb it).
				break
			}
			label[u] = minLabel + 1
			curArc[u] = r.head[u]
			if o.Verbose {
				fmt.Fprintf(o.Writer, "maxflow: relabel %d -> %d\n", u, label[u])
			}
			continue
		}

		v := r.to[id]
		if r.cap[id] > o.Epsilon && label[u] == label[v]+1 {
			f := excess[u]
			if r.cap[id] < f {
				f = r.cap[id]
			}
			r.cap[id] -= f
			r.cap[r.twin(id)] += f
			excess[u] -= f
			excess[v] += f
			if o.Verbose {
				fmt.Fprintf(o.Writer, "maxflow: push %g on %d->%d\n", f, u, v)
			}
			if v != s && v != t && !active[v] {
				active[v] = true
				sched.push(v, label[v])
			}
		} else {
			curArc[u] = r.next[id]
		}
	}
	active[u] = false
}
