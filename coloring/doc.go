// Package coloring assigns colors to an undirected graph's vertices so
// that no edge joins two same-colored vertices, using two classical
// heuristics: DSatur (heap-driven, by saturation degree) and RLF
// (Recursive Largest First, by repeated maximal independent sets).
// Neither guarantees the chromatic number; both guarantee a valid
// coloring using at most maxDegree+1 colors.
package coloring
