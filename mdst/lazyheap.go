package mdst

// lazyNode mirrors the pairingheap package's prevOrParent/next/child
// representation, extended with a delta field so the heap can add a
// constant to every key it holds in O(1) (pairingheap.Float64Heap has
// no such operation, which is why mdst keeps its own small heap rather
// than reusing it — see DESIGN.md).
//
// Invariant: a node's key field is always the node's true, fully
// resolved value as long as it is currently a heap root. delta holds an
// amount already folded into key but not yet pushed down to child/next
// siblings; push() flushes it one level.
type lazyNode struct {
	key          float64
	delta        float64
	val          int
	prevOrParent *lazyNode
	next         *lazyNode
	child        *lazyNode
}

type lazyHeap struct {
	root *lazyNode
	size int
}

func newLazyHeap() *lazyHeap { return &lazyHeap{} }

func (h *lazyHeap) len() int { return h.size }

func (h *lazyHeap) insert(key float64, val int) {
	h.root = meldLazy(h.root, &lazyNode{key: key, val: val})
	h.size++
}

// extractMin removes and returns the minimum node's resolved key and
// payload.
func (h *lazyHeap) extractMin() (float64, int, bool) {
	if h.root == nil {
		return 0, 0, false
	}
	min := h.root
	pushLazy(min)
	h.root = twoPassMeldLazy(min.child)
	h.size--
	return min.key, min.val, true
}

// addAll adds delta to every key currently in the heap, in O(1).
func (h *lazyHeap) addAll(delta float64) {
	if h.root == nil {
		return
	}
	h.root.key += delta
	h.root.delta += delta
}

// merge absorbs other into h, leaving other empty. Both heaps'
// remaining entries keep whatever addAll history they already carry;
// merge itself applies no further shift beyond the structural meld.
func (h *lazyHeap) merge(other *lazyHeap) {
	h.root = meldLazy(h.root, other.root)
	h.size += other.size
	other.root = nil
	other.size = 0
}

func pushLazy(n *lazyNode) {
	if n.delta == 0 {
		return
	}
	for c := n.child; c != nil; c = c.next {
		c.key += n.delta
		c.delta += n.delta
	}
	n.delta = 0
}

// meldLazy attaches the larger-key root as the smaller's new first
// child. Because a.delta may already owe a.child's current members an
// amount that hasn't been pushed down yet, b is pre-shifted by -a.delta
// so that a later pushLazy(a) — which adds a.delta to every child
// uniformly, b included — restores b's true value instead of
// double-applying a debt b never owed.
func meldLazy(a, b *lazyNode) *lazyNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	b.key -= a.delta
	b.delta -= a.delta
	b.prevOrParent = a
	b.next = a.child
	if a.child != nil {
		a.child.prevOrParent = b
	}
	a.child = b
	return a
}

func twoPassMeldLazy(first *lazyNode) *lazyNode {
	if first == nil {
		return nil
	}
	var siblings []*lazyNode
	for n := first; n != nil; {
		next := n.next
		n.prevOrParent = nil
		n.next = nil
		siblings = append(siblings, n)
		n = next
	}

	var paired []*lazyNode
	i := 0
	for ; i+1 < len(siblings); i += 2 {
		paired = append(paired, meldLazy(siblings[i], siblings[i+1]))
	}
	if i < len(siblings) {
		paired = append(paired, siblings[i])
	}

	var result *lazyNode
	for j := len(paired) - 1; j >= 0; j-- {
		result = meldLazy(paired[j], result)
	}
	return result
}
