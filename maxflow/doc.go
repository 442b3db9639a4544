// Package maxflow computes maximum flow and feasible circulations over an
// indexgraph.IndexGraph and a graph.FlowNetwork: push-relabel (FIFO or
// highest-label active-vertex scheduling) and Dinic's blocking-flow
// algorithm for single-source/single-sink max flow, plus a compositional
// reduction framework (Circulation) handling lower bounds, multiple
// sources/sinks, and per-vertex supplies/demands by augmenting the graph
// with a super-source and super-sink before delegating to push-relabel.
//
// Both solvers build their own internal residual network (a forward-star
// adjacency list of paired forward/backward arcs) rather than mutating the
// caller's graph; flow is written back onto the caller's FlowNetwork via
// SetFlow once a solver finishes.
package maxflow
