// Package idstrat maintains the bijection between user-visible identifiers
// and the contiguous indices 0..n-1 that the rest of this module operates
// on internally.
//
// Two flavors are provided. Default treats id and index as the same value
// (always contiguous by construction, zero bookkeeping). Mapped draws ids
// from an external id space — a counter, or caller-supplied values — and
// keeps two directional lookup tables in sync across add/remove.
//
// Every removal follows the swap protocol documented on graph.SwapListener:
// the index being removed is swapped with n-1 (unless it already is n-1),
// swap listeners are notified of (i, n-1) in registration order, then
// add/remove listeners are notified that n-1 was removed. Implementations
// in this package are the single source of truth for that ordering; every
// other package that mirrors the index space (iweight containers,
// indexgraph backends) subscribes to it rather than re-deriving it.
package idstrat
