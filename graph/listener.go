package graph

// SwapListener is notified when the index substrate swaps the contents of
// two indices during a removal. Swap events fire before the backing
// storage swaps, so a listener observing (i, j) may still read the old
// value at i before acting. Registration order is invocation order; this
// is part of the documented contract, not an implementation detail.
type SwapListener interface {
	SwapIndices(i, j int)
}

// SwapListenerFunc adapts a function to a SwapListener.
type SwapListenerFunc func(i, j int)

func (f SwapListenerFunc) SwapIndices(i, j int) { f(i, j) }

// AddRemoveListener is notified when the index substrate grows or shrinks.
// Remove fires after the corresponding swap (if any) has already been
// delivered to SwapListeners, and always names the index that was popped
// (always n-1 at the time of the call).
type AddRemoveListener interface {
	IndexAdded(idx int)
	IndexRemoved(idx int)
}

// AddRemoveListenerFuncs adapts two functions to an AddRemoveListener. A
// nil field is treated as a no-op for that event.
type AddRemoveListenerFuncs struct {
	OnAdd    func(idx int)
	OnRemove func(idx int)
}

func (f AddRemoveListenerFuncs) IndexAdded(idx int) {
	if f.OnAdd != nil {
		f.OnAdd(idx)
	}
}

func (f AddRemoveListenerFuncs) IndexRemoved(idx int) {
	if f.OnRemove != nil {
		f.OnRemove(idx)
	}
}
