// Package idgraph wraps an indexgraph.IndexGraph and presents a
// user-id-keyed API: vertices (and edges) are addressed by caller-chosen
// identifiers rather than contiguous integers, via the idstrat package.
//
// Graph[V] drives its wrapped IndexGraph and its own idstrat.Strategy[V]
// from the same call in lockstep, rather than registering as a passive
// listener on the index graph's swap events: idstrat.Strategy exposes no
// "apply this externally observed swap" entrypoint short of re-deriving
// RemoveIdx's own logic, so AddVertex/RemoveVertexByID on Graph perform
// the index graph mutation and the matching strategy mutation back to
// back. Both follow the identical swap protocol starting from the same
// size, so the two index spaces never drift — user weight containers
// registered against the index graph's own swap listeners stay correctly
// synchronized the same way they would for a bare IndexGraph.
package idgraph
