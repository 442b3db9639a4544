package graphbuilder

import "errors"

// ErrTooFewVertices indicates a topology constructor's size parameter is
// below the minimum that topology requires (Cycle needs n>=3, Path n>=2).
var ErrTooFewVertices = errors.New("graphbuilder: parameter too small")

// ErrUnknownBackend indicates WithBackend named a backend this package
// does not recognize.
var ErrUnknownBackend = errors.New("graphbuilder: unknown backend")
