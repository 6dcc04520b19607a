// Package label provides dense, fixed-size vertex labelings: total,
// mutable mappings from every vertex of one graph to a value of type T.
//
// A Labeling is created from a graph and a default value, covers exactly
// the graph's vertices for its whole lifetime (no insertion or removal
// mid-run), and offers O(1) access backed by a plain slice. Two access
// paths are provided:
//
//   - Get/Set — checked: a vertex outside the labeling's domain yields
//     ErrForeignVertex.
//   - At/SetAt — unchecked fast path for callers that have already
//     validated their vertices (algorithm inner loops); a foreign vertex
//     panics via the slice bounds check.
//
// Complexity: New is O(V); all accessors are O(1).
package label
