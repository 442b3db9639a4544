package graph

import "errors"

// Sentinel errors shared across the module. Package-specific failures wrap
// one of these with fmt.Errorf("<pkg>: <detail>: %w", sentinel) so callers
// can branch with errors.Is while still getting a readable message.
var (
	// ErrIllegalInput indicates a user-provided graph, weight function, or
	// algorithm parameter violates a documented precondition (directedness,
	// self-loops, negative weight where forbidden, non-DAG input, ...).
	ErrIllegalInput = errors.New("graph: illegal input")

	// ErrNoFeasibleFlow indicates a flow or circulation problem has no
	// solution under the posed capacities, lower bounds, and supplies.
	ErrNoFeasibleFlow = errors.New("graph: no feasible flow")

	// ErrNoSuchId indicates a lookup by a user-supplied vertex or edge id
	// that is not registered with the id strategy.
	ErrNoSuchId = errors.New("graph: no such id")

	// ErrDuplicateId indicates an attempt to register a vertex or edge id
	// that already exists in the id strategy.
	ErrDuplicateId = errors.New("graph: duplicate id")

	// ErrUnsupportedOperation indicates an attempted mutation through an
	// unmodifiable, complete, or reverse view that forbids it, or an
	// operation between incompatible implementations (e.g. melding heaps
	// of different key types).
	ErrUnsupportedOperation = errors.New("graph: unsupported operation")

	// ErrInternalInvariant guards a condition the public API should make
	// unreachable. Seeing it surface indicates a bug in this module, not
	// in caller code; it is the panic-equivalent assertion from spec's
	// failure taxonomy, kept as a returned error rather than a panic so
	// library callers are never crashed by it.
	ErrInternalInvariant = errors.New("graph: internal invariant violated")
)
