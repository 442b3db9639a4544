// Package lca answers lowest-common-ancestor queries on a static,
// undirected tree in O(1) after O(n log n) preprocessing: an Euler
// tour of the tree reduces LCA to a range-minimum query over the
// tour's depth sequence, answered via a sparse table.
package lca
