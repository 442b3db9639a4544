// Package shortestpath computes single-source and all-pairs shortest paths
// over an indexgraph.IndexGraph: Dijkstra for nonnegative weights, Bellman-
// Ford for possibly-negative weights (with negative-cycle witness
// reconstruction), Johnson's algorithm for all-pairs shortest paths via
// reweighting potentials, and a linear-time solver for DAGs.
//
// Every solver returns a *Result (or *APSPResult for Johnson) rather than
// raising on an unreachable vertex or a negative cycle: unreachability is
// a queryable property of the result, and a negative cycle is carried as
// a witness on the result rather than as an error, matching this
// module's rule that "surprising but well-defined outcomes are data, not
// exceptions." Dijkstra is the exception for negative weights: a
// negative edge it relaxes makes it return an error.
package shortestpath
