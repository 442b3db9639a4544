// Package pairingheap implements a referenceable pairing heap: insert,
// findMin, extractMin, decreaseKey and remove, all returning or accepting a
// stable Ref so callers (shortestpath.Dijkstra's frontier, mst.Prim's
// candidate edges, the matching solver's Dijkstra, coloring.DSatur's
// saturation queue) can hold on to a node across the heap's internal
// restructuring.
//
// Two concrete, non-generic types are provided — Float64Heap and IntHeap —
// rather than one generic heap over an ordered key, so each can carry its
// own opaque payload type without boxing the key through an interface.
// Both satisfy the Heap interface; Meld only succeeds between two heaps of
// the same concrete type.
package pairingheap
