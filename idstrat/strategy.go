package idstrat

import "github.com/dmishra-go/graphkit/graph"

// Strategy maintains the id<->index bijection for one axis of a graph
// (vertices, or edges). Implementations are not safe for concurrent use;
// callers serialize access the same way they would any other mutable
// collection.
type Strategy[ID comparable] interface {
	// Size returns n, the number of live indices (0..n-1).
	Size() int

	// NewIdx allocates a new id, assigns it the next index (== old Size()),
	// and returns (id, index). For DefaultStrategy, id == index exactly.
	NewIdx() (ID, int)

	// NewIdxWith allocates index n for the caller-supplied id. Fails with
	// graph.ErrDuplicateId if id is already registered.
	NewIdxWith(id ID) (int, error)

	// RemoveIdx removes the index idx, following the swap protocol: if
	// idx != Size()-1, swap listeners are notified of (idx, Size()-1)
	// before storage is updated, then add/remove listeners are notified
	// that index Size()-1 (pre-removal) was removed.
	RemoveIdx(idx int) error

	// IdToIndex translates a user id to its current index. Fails with
	// graph.ErrNoSuchId if id is not registered.
	IdToIndex(id ID) (int, error)

	// IndexToId translates a live index back to its user id. Fails with
	// graph.ErrIllegalInput if idx is out of [0, Size()) range.
	IndexToId(idx int) (ID, error)

	// AddSwapListener registers l to be notified on every RemoveIdx swap,
	// in registration order.
	AddSwapListener(l graph.SwapListener)

	// RemoveSwapListener deregisters l. A listener not currently
	// registered is a no-op.
	RemoveSwapListener(l graph.SwapListener)

	// AddAddRemoveListener registers l to be notified on every NewIdx and
	// RemoveIdx, in registration order.
	AddAddRemoveListener(l graph.AddRemoveListener)

	// RemoveAddRemoveListener deregisters l.
	RemoveAddRemoveListener(l graph.AddRemoveListener)

	// Clear resets the strategy to size 0, without notifying listeners
	// (callers clearing a whole graph are expected to drop and recreate
	// dependent containers themselves, not replay n remove events).
	Clear()
}

// removeSwapListener and removeAddRemoveListener remove l from a slice of
// comparable-by-identity
// listeners, preserving order of the remainder. Used by both Strategy
// implementations to keep RemoveSwapListener/RemoveAddRemoveListener
// identical.
func removeSwapListener(ls []graph.SwapListener, l graph.SwapListener) []graph.SwapListener {
	out := ls[:0]
	for _, cur := range ls {
		if cur != l {
			out = append(out, cur)
		}
	}
	return out
}

func removeAddRemoveListener(ls []graph.AddRemoveListener, l graph.AddRemoveListener) []graph.AddRemoveListener {
	out := ls[:0]
	for _, cur := range ls {
		if cur != l {
			out = append(out, cur)
		}
	}
	return out
}
