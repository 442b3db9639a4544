package coloring

import "github.com/dmishra-go/graphkit/indexgraph"

// RLF (Recursive Largest First) colors g one color class at a time:
// each class is grown as a maximal independent set, seeded by the
// uncolored vertex of largest remaining degree, then repeatedly
// extended with the uncolored, non-adjacent candidate touching the
// most vertices already excluded by the growing set.
func RLF(g indexgraph.IndexGraph) (*Result, error) {
	if g.Capabilities().Directed {
		return nil, errDirectedGraph()
	}
	adj, err := buildAdjacency(g)
	if err != nil {
		return nil, err
	}
	n := g.N()

	colors := make([]int, n)
	uncolored := make([]bool, n)
	for v := range colors {
		colors[v] = -1
		uncolored[v] = true
	}

	remaining := n
	color := 0
	for remaining > 0 {
		inSet := make([]bool, n)
		excluded := make([]bool, n)

		seed := -1
		seedDeg := -1
		for v := 0; v < n; v++ {
			if !uncolored[v] {
				continue
			}
			d := countWhere(adj[v], uncolored)
			if d > seedDeg {
				seedDeg = d
				seed = v
			}
		}

		addToClass(seed, adj, uncolored, inSet, excluded)
		remaining--

		for {
			cand := -1
			candScore := -1
			for v := 0; v < n; v++ {
				if !uncolored[v] || inSet[v] || excluded[v] {
					continue
				}
				score := countWhere(adj[v], excluded)
				if score > candScore {
					candScore = score
					cand = v
				}
			}
			if cand == -1 {
				break
			}
			addToClass(cand, adj, uncolored, inSet, excluded)
			remaining--
		}

		for v := 0; v < n; v++ {
			if inSet[v] {
				colors[v] = color
				uncolored[v] = false
			}
		}
		color++
	}

	return &Result{Colors: colors, NumColors: color}, nil
}

func addToClass(v int, adj [][]int, uncolored, inSet, excluded []bool) {
	inSet[v] = true
	for _, u := range adj[v] {
		if uncolored[u] && !inSet[u] {
			excluded[u] = true
		}
	}
}

func countWhere(neighbors []int, flag []bool) int {
	count := 0
	for _, u := range neighbors {
		if flag[u] {
			count++
		}
	}
	return count
}
