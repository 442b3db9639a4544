package pairingheap

// intNode mirrors float64Node with an int key; see float64Node for the
// prevOrParent/next/child layout rationale.
type intNode struct {
	key          int
	val          any
	prevOrParent *intNode
	next         *intNode
	child        *intNode
	detached     bool
}

// IntRef is the Ref concrete type returned by IntHeap.
type IntRef struct{ n *intNode }

func (r *IntRef) Value() any { return r.n.val }
func (r *IntRef) isRef()     {}

// IntHeap is a pairing heap keyed by int, min-ordered.
type IntHeap struct {
	root *intNode
	size int
}

// NewIntHeap returns an empty heap.
func NewIntHeap() *IntHeap { return &IntHeap{} }

func (h *IntHeap) Len() int { return h.size }

// Insert adds a new node and returns a Ref to it.
func (h *IntHeap) Insert(key int, val any) *IntRef {
	n := &intNode{key: key, val: val}
	h.root = meldInt(h.root, n)
	h.size++
	return &IntRef{n: n}
}

// FindMin returns a Ref to the minimum-key node without removing it.
func (h *IntHeap) FindMin() (Ref, bool) {
	if h.root == nil {
		return nil, false
	}
	return &IntRef{n: h.root}, true
}

// ExtractMin removes and returns a Ref to the minimum-key node.
func (h *IntHeap) ExtractMin() (Ref, bool) {
	if h.root == nil {
		return nil, false
	}
	min := h.root
	h.root = twoPassMeldInt(min.child)
	min.child = nil
	min.detached = true
	h.size--
	return &IntRef{n: min}, true
}

// DecreaseKey lowers ref's key. Fails if key is larger than the current
// key (an equal key is accepted), if ref belongs to a different heap, or if ref is detached.
func (h *IntHeap) DecreaseKey(ref Ref, key int) error {
	r, ok := ref.(*IntRef)
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
	h.root = meldInt(h.root, r.n)
	return nil
}

// Remove deletes ref's node from the heap, wherever it sits.
func (h *IntHeap) Remove(ref Ref) error {
	r, ok := ref.(*IntRef)
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
	orphans := twoPassMeldInt(r.n.child)
	r.n.child = nil
	r.n.detached = true
	h.root = meldInt(h.root, orphans)
	h.size--
	return nil
}

// Meld absorbs other into h; other is left empty. Both must be *IntHeap,
// else graph.ErrUnsupportedOperation.
func (h *IntHeap) Meld(other Heap) error {
	o, ok := other.(*IntHeap)
	if !ok {
		return errMismatchedMeld
	}
	h.root = meldInt(h.root, o.root)
	h.size += o.size
	o.root = nil
	o.size = 0
	return nil
}

func (n *intNode) cut() {
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

func meldInt(a, b *intNode) *intNode {
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

func twoPassMeldInt(first *intNode) *intNode {
	if first == nil {
		return nil
	}
	var siblings []*intNode
	for n := first; n != nil; {
		next := n.next
		n.prevOrParent = nil
		n.next = nil
		siblings = append(siblings, n)
		n = next
	}

	var paired []*intNode
	i := 0
	for ; i+1 < len(siblings); i += 2 {
		paired = append(paired, meldInt(siblings[i], siblings[i+1]))
	}
	if i < len(siblings) {
		paired = append(paired, siblings[i])
	}

	var result *intNode
	for j := len(paired) - 1; j >= 0; j-- {
		result = meldInt(paired[j], result)
	}
	return result
}
