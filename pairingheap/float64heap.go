package pairingheap

// float64Node is one heap node. prevOrParent points at the node's parent
// when the node is its parent's first child, otherwise at the previous
// sibling; next points at the next sibling, nil for the last one. This is
// what lets cut() detach a node from its sibling list in O(1) without a
// separate "am I the first child" flag.
type float64Node struct {
	key          float64
	val          any
	prevOrParent *float64Node
	next         *float64Node
	child        *float64Node
	detached     bool
}

// Float64Ref is the Ref concrete type returned by Float64Heap.
type Float64Ref struct{ n *float64Node }

func (r *Float64Ref) Value() any { return r.n.val }
func (r *Float64Ref) isRef()     {}

// Float64Heap is a pairing heap keyed by float64, min-ordered.
type Float64Heap struct {
	root *float64Node
	size int
}

// NewFloat64Heap returns an empty heap.
func NewFloat64Heap() *Float64Heap { return &Float64Heap{} }

func (h *Float64Heap) Len() int { return h.size }

// Insert adds a new node and returns a Ref to it.
func (h *Float64Heap) Insert(key float64, val any) *Float64Ref {
	n := &float64Node{key: key, val: val}
	h.root = meldFloat64(h.root, n)
	h.size++
	return &Float64Ref{n: n}
}

// FindMin returns a Ref to the minimum-key node without removing it.
func (h *Float64Heap) FindMin() (Ref, bool) {
	if h.root == nil {
		return nil, false
	}
	return &Float64Ref{n: h.root}, true
}

// ExtractMin removes and returns a Ref to the minimum-key node. The
// returned Ref is already detached; its Value() remains readable.
func (h *Float64Heap) ExtractMin() (Ref, bool) {
	if h.root == nil {
		return nil, false
	}
	min := h.root
	h.root = twoPassMeldFloat64(min.child)
	min.child = nil
	min.detached = true
	h.size--
	return &Float64Ref{n: min}, true
}

// DecreaseKey lowers ref's key. Fails if key is larger than the current
// key (an equal key is accepted), if ref belongs to a different heap, or if ref is detached.
func (h *Float64Heap) DecreaseKey(ref Ref, key float64) error {
	r, ok := ref.(*Float64Ref)
	if !ok {
		return errForeignRef
	}
	if r.n.detached {
		return errDetachedRef
	}
	if key > r.n.key {
		return errKeyIncreased
	}
	r.n.key = key
	if r.n == h.root {
		return nil
	}
	r.n.cut()
	h.root = meldFloat64(h.root, r.n)
	return nil
}

// Remove deletes ref's node from the heap, wherever it sits.
func (h *Float64Heap) Remove(ref Ref) error {
	r, ok := ref.(*Float64Ref)
	if !ok {
		return errForeignRef
	}
	if r.n.detached {
		return errDetachedRef
	}
	if r.n == h.root {
		_, _ = h.ExtractMin()
		return nil
	}
	r.n.cut()
	orphans := twoPassMeldFloat64(r.n.child)
	r.n.child = nil
	r.n.detached = true
	h.root = meldFloat64(h.root, orphans)
	h.size--
	return nil
}

// Meld absorbs other into h; other is left empty. Both must be
// *Float64Heap, else graph.ErrUnsupportedOperation.
func (h *Float64Heap) Meld(other Heap) error {
	o, ok := other.(*Float64Heap)
	if !ok {
		return errMismatchedMeld
	}
	h.root = meldFloat64(h.root, o.root)
	h.size += o.size
	o.root = nil
	o.size = 0
	return nil
}

func (n *float64Node) cut() {
	if n.next != nil {
		n.next.prevOrParent = n.prevOrParent
	}
	if n.prevOrParent.child == n {
		n.prevOrParent.child = n.next
	} else {
		n.prevOrParent.next = n.next
	}
	n.prevOrParent = nil
	n.next = nil
}

// meldFloat64 implements "the smaller-key root adopts the other root as
// its new first child."
func meldFloat64(a, b *float64Node) *float64Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	b.prevOrParent = a
	b.next = a.child
	if a.child != nil {
		a.child.prevOrParent = b
	}
	a.child = b
	return a
}

// twoPassMeldFloat64 combines a root's former children back into one tree:
// left-to-right pairwise melds, then a right-to-left accumulating meld.
func twoPassMeldFloat64(first *float64Node) *float64Node {
	if first == nil {
		return nil
	}
	var siblings []*float64Node
	for n := first; n != nil; {
		next := n.next
		n.prevOrParent = nil
		n.next = nil
		siblings = append(siblings, n)
		n = next
	}

	var paired []*float64Node
	i := 0
	for ; i+1 < len(siblings); i += 2 {
		paired = append(paired, meldFloat64(siblings[i], siblings[i+1]))
	}
	if i < len(siblings) {
		paired = append(paired, siblings[i])
	}

	var result *float64Node
	for j := len(paired) - 1; j >= 0; j-- {
		result = meldFloat64(paired[j], result)
	}
	return result
}
