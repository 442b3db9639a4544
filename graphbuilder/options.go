package graphbuilder

import "github.com/dmishra-go/graphkit/graph"

// Option customizes the graph a Build call produces, mutating a config
// before any constructor runs. Mirrors the teacher's BuilderOption shape.
type Option func(*config)

// WithDirected sets directedness. Default: directed.
func WithDirected(directed bool) Option {
	return func(c *config) { c.caps.Directed = directed }
}

// WithSelfEdges permits or forbids self edges. Default: permitted.
func WithSelfEdges(allowed bool) Option {
	return func(c *config) { c.caps.SelfEdges = allowed }
}

// WithParallelEdges permits or forbids parallel edges. Default: permitted.
func WithParallelEdges(allowed bool) Option {
	return func(c *config) { c.caps.ParallelEdges = allowed }
}

// WithCapabilities overrides the whole Capabilities struct at once, for
// callers that already have one (e.g. copying another graph's).
func WithCapabilities(caps graph.Capabilities) Option {
	return func(c *config) { c.caps = caps }
}

// WithExpectedSize records the caller's expected vertex/edge counts.
// Advisory only: none of the three backends currently expose a
// preallocation hook, so this does not change allocation behavior yet —
// recorded so a future backend (or a future preallocating constructor)
// has somewhere to read it from without an API change.
func WithExpectedSize(vertices, edges int) Option {
	return func(c *config) { c.expectN, c.expectM = vertices, edges }
}

// BackendName selects one of the three indexgraph storage backends by
// name, matching spec's free-form setOption(key,value) backend selector.
// Unknown names produce ErrUnknownBackend from Build, not from this
// constructor, since Option application cannot itself fail.
type BackendName string

const (
	BackendArray  BackendName = "Array"
	BackendLinked BackendName = "Linked"
	BackendTable  BackendName = "Table"
)

// WithBackend selects the storage backend Build uses.
func WithBackend(name BackendName) Option {
	return func(c *config) {
		switch name {
		case BackendArray:
			c.backend = backendArray
		case BackendLinked:
			c.backend = backendLinked
		case BackendTable:
			c.backend = backendTable
		default:
			c.backend = backend(-1)
		}
	}
}
