package pairingheap

import (
	"fmt"

	"github.com/dmishra-go/graphkit/graph"
)

var (
	// errForeignRef is returned when a Ref minted by one heap (or one
	// heap kind) is passed to another.
	errForeignRef = fmt.Errorf("pairingheap: reference belongs to a different heap: %w", graph.ErrIllegalInput)

	// errDetachedRef is returned when a Ref that has already been
	// extracted or removed is used again.
	errDetachedRef = fmt.Errorf("pairingheap: reference is detached: %w", graph.ErrInternalInvariant)

	// errKeyIncreased is returned by DecreaseKey when the proposed key
	// is larger than the current one.
	errKeyIncreased = fmt.Errorf("pairingheap: decreaseKey given a larger key: %w", graph.ErrIllegalInput)
)

var errMismatchedMeld = fmt.Errorf("pairingheap: meld requires matching heap implementations: %w", graph.ErrUnsupportedOperation)
