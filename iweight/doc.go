// Package iweight implements typed, index-keyed weight containers: dense
// arrays that mirror the lifecycle of an idstrat.Strategy. Adding an index
// extends the container with the container's default value; removing an
// index follows the swap protocol (graph.SwapListener) so a container's
// contents always track the index space it was attached to, with no
// per-call bookkeeping required from the caller.
//
// Containers are generic over any value type; the arithmetic helpers
// (Sum, Min) are offered only for numeric element types, through the
// Numeric constraint. Typed aliases (Int64, Float64, Bool,
// String) are provided for the common cases so call sites do not have to
// spell out the generic instantiation.
package iweight
