// Package graphkit is a graph algorithms library built around a compact
// index graph: a user-facing graph with arbitrary vertex and edge
// identifiers is reduced to contiguous integer indices so algorithms
// can run on plain arrays and bitsets.
//
// Subpackages, roughly leaves first:
//
//	idstrat/      — id<->index bijections preserved across removals
//	iweight/      — index-keyed weight containers that follow renumbering
//	indexgraph/   — the index graph representations (array, adjacency list)
//	idgraph/      — the id-facing graph wrapping an index graph
//	views/        — unmodifiable, reverse, and complete-graph views
//	graphbuilder/ — the external construction interface
//	pairingheap/  — a referenceable decrease-key heap shared by the solvers below
//	shortestpath/ — Dijkstra, Bellman-Ford, DAG relaxation, Johnson APSP
//	maxflow/      — push-relabel, Dinic, and circulation/lower-bound reductions
//	mst/          — Kruskal, Prim, Borůvka, Yao-buckets, Karger-Klein-Tarjan
//	mdst/         — Tarjan's directed minimum spanning arborescence
//	topo/         — Kahn's algorithm
//	coloring/     — DSatur and RLF vertex coloring
//	lca/          — Euler-tour sparse-table lowest common ancestor
//	matching/     — bipartite minimum/maximum-weight matching
package graphkit
