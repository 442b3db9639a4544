// Package matching computes minimum- or maximum-weight matchings on a
// bipartite graph via successive shortest augmenting paths with vertex
// potentials: an auxiliary flow network with a super-source feeding the
// left side and a super-sink drained from the right side, Bellman-Ford
// for the initial potentials (edge costs may start negative), Dijkstra
// with reduced costs thereafter, augmenting by one unit per shortest
// path until no further path improves the total weight.
package matching
