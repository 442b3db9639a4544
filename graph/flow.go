package graph

// FlowNetwork attaches capacity and flow to an edge set keyed by edge
// index. Capacity is immutable during an algorithm run; flow is the
// algorithm's output, written back through SetFlow.
//
// Implementations backed by index-keyed arrays (the fast path used
// internally by maxflow) and implementations backed by a user-defined pair
// of getters/setters (the slow path, for callers who want flow written
// directly into their own model) both satisfy this interface identically.
type FlowNetwork interface {
	// Capacity returns the nonnegative capacity of edge e.
	Capacity(e int) float64

	// Flow returns the current flow on edge e.
	Flow(e int) float64

	// SetFlow records the flow on edge e. Algorithms call this only for
	// edges that exist in the network being solved; it never extends the
	// edge set.
	SetFlow(e int, flow float64)
}

// IntFlowNetwork is the integer-capacity/flow specialization, used when
// the caller wants to guarantee integral flows (push-relabel and Dinic
// both preserve integrality when capacities are integral and this
// interface is used throughout).
type IntFlowNetwork interface {
	Capacity(e int) int64
	Flow(e int) int64
	SetFlow(e int, flow int64)
}

// ArrayFlowNetwork is the fast-path FlowNetwork backed by dense slices
// indexed by edge. Zero value is not usable; construct with
// NewArrayFlowNetwork.
type ArrayFlowNetwork struct {
	capacity []float64
	flow     []float64
}

// NewArrayFlowNetwork builds a FlowNetwork over m edges with the given
// per-edge capacities. capacity is copied defensively.
func NewArrayFlowNetwork(capacity []float64) *ArrayFlowNetwork {
	c := make([]float64, len(capacity))
	copy(c, capacity)
	return &ArrayFlowNetwork{capacity: c, flow: make([]float64, len(capacity))}
}

func (n *ArrayFlowNetwork) Capacity(e int) float64     { return n.capacity[e] }
func (n *ArrayFlowNetwork) Flow(e int) float64         { return n.flow[e] }
func (n *ArrayFlowNetwork) SetFlow(e int, flow float64) { n.flow[e] = flow }

// IntArrayFlowNetwork is the integer analogue of ArrayFlowNetwork.
type IntArrayFlowNetwork struct {
	capacity []int64
	flow     []int64
}

// NewIntArrayFlowNetwork builds an IntFlowNetwork over m edges with the
// given per-edge capacities. capacity is copied defensively.
func NewIntArrayFlowNetwork(capacity []int64) *IntArrayFlowNetwork {
	c := make([]int64, len(capacity))
	copy(c, capacity)
	return &IntArrayFlowNetwork{capacity: c, flow: make([]int64, len(capacity))}
}

func (n *IntArrayFlowNetwork) Capacity(e int) int64    { return n.capacity[e] }
func (n *IntArrayFlowNetwork) Flow(e int) int64        { return n.flow[e] }
func (n *IntArrayFlowNetwork) SetFlow(e int, flow int64) { n.flow[e] = flow }
