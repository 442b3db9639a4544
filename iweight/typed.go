package iweight

import "golang.org/x/exp/constraints"

// Int64 is the typed alias for the common integer-weight case (edge
// capacities, integer MST weights).
type Int64 = Container[int64]

// NewInt64 returns an Int64 container defaulting every absent slot to 0.
func NewInt64() *Int64 { return NewContainer[int64](0) }

// Float64 is the typed alias for the common real-weight case (shortest
// path distances, flow values).
type Float64 = Container[float64]

// NewFloat64 returns a Float64 container defaulting every absent slot to
// 0.
func NewFloat64() *Float64 { return NewContainer[float64](0) }

// Bool is the typed alias used by e.g. visited/active-vertex bitsets.
type Bool = Container[bool]

// NewBool returns a Bool container defaulting every absent slot to false.
func NewBool() *Bool { return NewContainer[bool](false) }

// String is the typed alias for string-valued attributes (e.g. labels
// mirrored onto the index space for debugging or export).
type String = Container[string]

// NewString returns a String container defaulting every absent slot to
// the empty string.
func NewString() *String { return NewContainer[string]("") }

// Numeric constrains the element type of a Container so that the
// arithmetic helpers below (Sum, Min) are defined for it. Grounded on
// golang.org/x/exp/constraints, matching the teacher corpus's documented
// idiom for pre-cmp generic numeric constraints.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Sum adds up every populated slot in the container (including slots left
// at the zero-valued default, so the result always covers the full
// [0, Len()) range).
func Sum[T Numeric](c *Container[T]) T {
	var total T
	for _, v := range c.values {
		total += v
	}
	return total
}

// Min returns the smallest value in the container and its index. Panics
// if the container is empty, since there is no meaningful index to
// return.
func Min[T Numeric](c *Container[T]) (T, int) {
	if len(c.values) == 0 {
		panic("iweight: Min of empty container")
	}
	best, bestIdx := c.values[0], 0
	for i := 1; i < len(c.values); i++ {
		if c.values[i] < best {
			best, bestIdx = c.values[i], i
		}
	}
	return best, bestIdx
}
