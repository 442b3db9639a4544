package lca

// sparseTable answers range-minimum-by-depth queries over a fixed
// index sequence in O(1), after O(n log n) preprocessing. Each cell
// holds the index (into depth) of the minimum, not the minimum itself,
// so ties resolve to a stable euler-tour position.
type sparseTable struct {
	depth []int
	log   []int
	table [][]int
}

func newSparseTable(depth []int) *sparseTable {
	n := len(depth)
	logs := make([]int, n+1)
	for i := 2; i <= n; i++ {
		logs[i] = logs[i/2] + 1
	}

	levels := logs[n] + 1
	table := make([][]int, levels)
	table[0] = make([]int, n)
	for i := range table[0] {
		table[0][i] = i
	}
	for k := 1; k < levels; k++ {
		length := 1 << uint(k)
		half := 1 << uint(k-1)
		row := make([]int, n-length+1)
		prev := table[k-1]
		for i := 0; i+length <= n; i++ {
			left, right := prev[i], prev[i+half]
			if depth[left] <= depth[right] {
				row[i] = left
			} else {
				row[i] = right
			}
		}
		table[k] = row
	}

	return &sparseTable{depth: depth, log: logs, table: table}
}

// query returns the index of the minimum-depth entry in the inclusive
// range [l, r].
func (st *sparseTable) query(l, r int) int {
	if l > r {
		l, r = r, l
	}
	k := st.log[r-l+1]
	left := st.table[k][l]
	right := st.table[k][r-(1<<uint(k))+1]
	if st.depth[left] <= st.depth[right] {
		return left
	}
	return right
}
