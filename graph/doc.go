// Package graph defines the vocabulary shared by every other package in
// this module: the capabilities record that governs what a graph
// representation may allow, the error taxonomy algorithms fail with, weight
// function types, the flow-network attachment, the swap-listener contract
// that the id/index substrate is built on, and the Path result type.
//
// graph imports nothing else in this module, by design: every other
// package (idstrat, iweight, indexgraph, idgraph, views, graphbuilder,
// pairingheap, shortestpath, maxflow, mst, mdst, topo, coloring, lca,
// matching) imports graph, never the reverse.
package graph
