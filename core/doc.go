// Package core defines the dense Vertex and Edge identities, the Graph
// capability set consumed by the algorithms in this module, and a
// reference DenseGraph implementation for tests and hosting code.
//
// Identity model
//
//	Vertices and edges are compact non-negative indices scoped to one
//	graph instance: the vertex set of a graph g is exactly
//	{0 .. g.Order()-1} and its edge set is {0 .. g.Size()-1}.
//	Dense identity lets every per-vertex structure in this module
//	(labelings, color arrays, heap position tables) be a plain slice
//	with O(1) access instead of a generic associative mapping.
//
// Capability set
//
//	Graph is intentionally tiny: Order/Size enumeration, IncidentEdges,
//	and Opposite endpoint resolution. Edge weights are never part of the
//	capability; algorithms receive a separate WeightFunc and use it only
//	through copy and strict less-than comparison.
//
// DenseGraph
//
//	DenseGraph is a minimal append-only adjacency structure satisfying
//	Graph. It permits self-loops and parallel edges so algorithm edge
//	cases can be exercised. It is supporting infrastructure: the
//	algorithms themselves never store or construct graphs.
//
// Errors:
//
//	ErrVertexNotFound - an edge endpoint does not exist in the graph.
//	ErrEdgeNotFound   - requested edge does not exist.
package core
