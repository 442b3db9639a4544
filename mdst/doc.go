// Package mdst computes minimum directed spanning arborescences (the
// directed analogue of a minimum spanning tree) via Tarjan's
// contraction algorithm: repeatedly chase each vertex's cheapest
// incoming edge toward the root, contracting any cycle the chase
// revisits into a super-vertex whose incoming-edge heap melds its
// members' heaps in O(1), and finally unwinding the contractions from
// the outermost super-vertex down to recover the real edge chosen for
// every original vertex.
package mdst
