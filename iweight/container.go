package iweight

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

// Container is a typed array indexed by vertex or edge index, holding a
// default value for positions never explicitly Set. It implements
// graph.SwapListener and graph.AddRemoveListener so it can be attached
// directly to an idstrat.Strategy via AddSwapListener/AddAddRemoveListener
// and will then track that strategy's index space automatically.
type Container[T any] struct {
	values  []T
	deflt   T
	attached bool
}

// NewContainer returns an empty container with the given default value.
// Call Attach to subscribe it to an idstrat.Strategy, or grow it manually
// via Expand for a detached ("external") container per spec's weight
// container lifetime note.
func NewContainer[T any](deflt T) *Container[T] {
	return &Container[T]{deflt: deflt}
}

// Default returns the container's default value.
func (c *Container[T]) Default() T { return c.deflt }

// SetDefault changes the default value used for future Expand calls. It
// does not retroactively change already-populated slots.
func (c *Container[T]) SetDefault(v T) { c.deflt = v }

// Len returns the number of indices the container currently covers.
func (c *Container[T]) Len() int { return len(c.values) }

// Get returns the value at idx, or the default if idx is beyond the
// current length (treated as "absent", per spec's weight container
// contract).
func (c *Container[T]) Get(idx int) T {
	if idx < 0 || idx >= len(c.values) {
		return c.deflt
	}
	return c.values[idx]
}

// Set assigns v to idx. idx must already be within range (use Expand, or
// attach to a strategy, to grow the container first); out-of-range Set
// panics, mirroring slice semantics, since it indicates a caller bug
// rather than recoverable input.
func (c *Container[T]) Set(idx int, v T) {
	c.values[idx] = v
}

// Clear resets every populated slot back to the default value without
// changing the container's length.
func (c *Container[T]) Clear() {
	for i := range c.values {
		c.values[i] = c.deflt
	}
}

// Swap exchanges the values at indices a and b.
func (c *Container[T]) Swap(a, b int) {
	c.values[a], c.values[b] = c.values[b], c.values[a]
}

// Expand grows the container to newLen, filling new slots with the
// default value. Shrinking is a no-op (shrinking happens via SwapIndices
// + drop-last, not Expand).
func (c *Container[T]) Expand(newLen int) {
	if newLen <= len(c.values) {
		return
	}
	grown := make([]T, newLen)
	copy(grown, c.values)
	for i := len(c.values); i < newLen; i++ {
		grown[i] = c.deflt
	}
	c.values = grown
}

// dropLast shrinks the container by one, discarding the current last
// slot. Called by IndexRemoved once the swap (if any) has already placed
// the surviving value into its new home.
func (c *Container[T]) dropLast() {
	if len(c.values) == 0 {
		return
	}
	c.values = c.values[:len(c.values)-1]
}

// SwapIndices implements graph.SwapListener.
func (c *Container[T]) SwapIndices(i, j int) { c.Swap(i, j) }

// IndexAdded implements graph.AddRemoveListener: idx is always Len() at
// the time of the call (the strategy notifies after allocating), so
// Expand(idx+1) always grows by exactly one slot.
func (c *Container[T]) IndexAdded(idx int) { c.Expand(idx + 1) }

// IndexRemoved implements graph.AddRemoveListener: idx is always the
// popped index (n-1 pre-removal); the corresponding SwapIndices call (if
// idx was not already last) has already run by this point.
func (c *Container[T]) IndexRemoved(idx int) {
	if idx != len(c.values)-1 {
		// Defensive: the strategy contract guarantees idx is always the
		// last live index at the time of this call.
		panic(fmt.Sprintf("iweight: IndexRemoved(%d) but container length is %d", idx, len(c.values)))
	}
	c.dropLast()
}

// attachable is satisfied by idstrat.Strategy without importing it here,
// avoiding an import cycle while still giving Attach compile-time safety.
type attachable interface {
	AddSwapListener(l graph.SwapListener)
	AddAddRemoveListener(l graph.AddRemoveListener)
}

// Attach subscribes the container to s's swap and add/remove events and,
// when s reports its size through a Size method (as idstrat strategies
// do), expands it to that size; a source without Size leaves the length
// unchanged. A container may only be attached once;
// attaching it twice panics, since the lifetime contract (spec §3
// "Weight containers") assumes one owner.
func (c *Container[T]) Attach(s attachable) {
	if c.attached {
		panic("iweight: container already attached")
	}
	c.attached = true
	if sized, ok := s.(interface{ Size() int }); ok {
		c.Expand(sized.Size())
	}
	s.AddSwapListener(c)
	s.AddAddRemoveListener(c)
}

// Copy returns an independent container with the same values, default,
// and length, but not attached to any strategy (an "external" copy per
// spec's container lifecycle note).
func (c *Container[T]) Copy() *Container[T] {
	cp := &Container[T]{deflt: c.deflt, values: make([]T, len(c.values))}
	copy(cp.values, c.values)
	return cp
}
