// Package views provides read-only and structural transformations over an
// indexgraph.IndexGraph without copying its storage: an unmodifiable
// wrapper that rejects mutation, a reverse wrapper (directed graphs only)
// that swaps in/out direction on read, and CompleteGraph, a graph over
// {0,...,n-1} with every possible edge present, computed arithmetically
// rather than stored.
package views
