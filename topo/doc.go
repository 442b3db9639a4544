// Package topo computes a topological order of a directed graph's
// vertices via Kahn's algorithm: repeatedly emit a zero-in-degree
// vertex and decrement the in-degree of its successors. A graph that
// is not a DAG fails the computation rather than returning a partial
// order.
package topo
