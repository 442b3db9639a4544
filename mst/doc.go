// Package mst computes minimum spanning trees (forests, on disconnected
// graphs) over undirected index graphs: Prim and Kruskal as the default
// O(m log n) algorithms, plus Yao-buckets and Karger–Klein–Tarjan as
// asymptotically faster alternatives for dense or very large inputs.
// Directed minimum spanning arborescences are in the sibling mdst
// package.
package mst
