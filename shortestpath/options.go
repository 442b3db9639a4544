package shortestpath

import "runtime"

// Option customizes a shortestpath solver call, mirroring the teacher's
// functional-option pattern (dijkstra.Option func(*Options)) at the
// package level instead of a single monolithic Options struct, since only
// Johnson currently has anything to configure.
type Option func(*config)

type config struct {
	workers int
}

// newConfig defaults workers to GOMAXPROCS so Johnson parallelizes
// automatically past parallelThreshold without requiring an explicit
// option; WithWorkers(1) opts back out to a strictly sequential run.
func newConfig(opts ...Option) *config {
	c := &config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithWorkers sets how many per-source Dijkstra calls Johnson may run
// concurrently once the vertex count exceeds the built-in parallelization
// threshold. Values <= 1 keep Johnson sequential regardless of graph size.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}
