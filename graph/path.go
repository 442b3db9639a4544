package graph

// Path is an ordered walk (source, target, edges) over an index graph. The
// edge list is traversable in order; for undirected graphs the walking
// direction along each edge is derived from consecutive endpoints rather
// than stored explicitly.
type Path struct {
	Source int
	Target int
	Edges  []int
}

// Weight sums w(e) over the path's edges.
func (p Path) Weight(w WeightFunc) float64 {
	var total float64
	for _, e := range p.Edges {
		total += w(e)
	}
	return total
}

// IntWeight is the integer-weighted analogue of Weight.
func (p Path) IntWeight(w IntWeightFunc) int64 {
	var total int64
	for _, e := range p.Edges {
		total += w(e)
	}
	return total
}

// Len returns the number of edges on the path.
func (p Path) Len() int { return len(p.Edges) }
