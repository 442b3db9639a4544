package pairingheap

// Ref is a stable handle to a node inserted into a heap. It remains valid
// until the node is extracted or removed; using it afterward returns
// errDetachedRef rather than corrupting heap state.
type Ref interface {
	// Value returns the payload given at Insert time.
	Value() any

	isRef()
}

// Heap is the key-agnostic surface both Float64Heap and IntHeap satisfy.
// The typed operations — Insert and DecreaseKey — are not part of this
// interface because their key parameter's type differs between the two;
// callers that need them hold the concrete type.
type Heap interface {
	Len() int
	FindMin() (Ref, bool)
	ExtractMin() (Ref, bool)
	Remove(r Ref) error

	// Meld absorbs other's nodes into the receiver in O(1), leaving other
	// empty. Fails with graph.ErrUnsupportedOperation if other is not the
	// same concrete heap type.
	Meld(other Heap) error
}
