// Package prim implements Prim's minimum-spanning-tree algorithm as a
// pure computational primitive over any core.Graph capability, producing
// a predecessor tree rooted at a chosen source vertex.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E) and a source s, Prim
//     grows a tree outward from s, at every step finalizing the frontier
//     vertex whose tentative connecting edge is lightest. By the cut
//     property, each finalized edge is the minimum-weight edge crossing
//     the cut between the finalized set and the rest of the graph, so
//     the finalized set's induced edges always form an MST of the
//     component explored so far.
//   - Unlike edge-heap formulations, this engine keys a true decrease-key
//     queue (weightq) through a per-vertex tentative-weight labeling:
//     each vertex is queued at most once per run and re-ordered in place
//     when a lighter connecting edge appears.
//
// State machine
//
//	Every vertex moves monotonically white → gray → black:
//	  - white: undiscovered; its tentative weight is conceptually +∞,
//	    so the first connecting edge always relaxes it.
//	  - gray:  in the frontier — queued, holding a tentative best edge
//	    (weight + predecessor).
//	  - black: finalized; weight and predecessor never change again, and
//	    relaxation skips black endpoints.
//
// Determinism
//
//	Equal-weight frontier ties break toward the lowest vertex index
//	(weightq's documented rule), so identical inputs produce
//	bit-identical predecessor trees.
//
// Result
//
//	A PredecessorTree: for every vertex, its parent in the tree, the
//	source mapping to itself, and vertices outside the source's
//	component remaining absent. Disconnected inputs are a normal,
//	non-error outcome — the tree simply covers only the source's
//	component.
//
// Errors (sentinel):
//
//	ErrNilGraph      - the graph capability is nil.
//	ErrNilWeightFunc - the weight accessor is nil.
//	ErrUnknownSource - the source vertex is not part of the graph.
//	ErrGraphContract - the capability resolved an endpoint outside its
//	                   own vertex domain (implementation bug in the
//	                   capability, fatal).
//	ErrQueueContract - the weight queue rejected an operation the engine
//	                   believed legal (programming error, fatal).
//
// Complexity:
//
//   - Time:  O(E log V) — each vertex is pushed and popped once, each
//     edge triggers at most one decrease-key, and every queue operation
//     costs O(log V).
//   - Space: O(V) — three labelings (weight, predecessor, color) plus
//     the queue and its position side table.
//
// The call is single-threaded and runs to completion with no I/O or
// blocking operations; concurrent calls against the same read-only graph
// are safe because every invocation owns its labelings and queue.
//
// For usage, see example_test.go.
package prim
