package coloring

// Result is a proper vertex coloring: Colors[v] is v's assigned color
// (0-indexed), and NumColors is one more than the largest color used.
type Result struct {
	Colors    []int
	NumColors int
}

// ColorOf returns v's assigned color.
func (r *Result) ColorOf(v int) int { return r.Colors[v] }
