// This file declares Vertex, Edge, the Graph capability interface,
// WeightFunc, and the package's sentinel errors.
package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex is a compact, totally-ordered vertex identifier scoped to one
// graph instance. Valid vertices of a graph g are 0 .. g.Order()-1.
type Vertex int

// Edge is a compact edge identifier scoped to one graph instance.
// Valid edges of a graph g are 0 .. g.Size()-1.
type Edge int

// NilVertex is the "no vertex" value returned by failed lookups
// (for example Opposite with a non-endpoint argument). It is negative,
// so it can never collide with a real vertex of any graph.
const NilVertex Vertex = -1

// NilEdge is the "no edge" value returned by failed edge lookups.
const NilEdge Edge = -1

// Graph is the capability set the algorithms in this module consume.
// Implementations own storage and representation; the algorithms only
// enumerate and resolve.
//
// The contract every implementation must honor:
//
//   - Order reports the number of vertices; the vertex set is exactly
//     {0 .. Order()-1}.
//   - Size reports the number of edges; the edge set is exactly
//     {0 .. Size()-1}.
//   - IncidentEdges(v) returns every edge touching v (self-loops and
//     parallel edges included) in a deterministic order, or nil for a
//     vertex outside the graph. The returned slice is owned by the
//     graph; callers must not modify it.
//   - Opposite(e, v) returns the endpoint of e other than v in O(1),
//     v itself for a self-loop, and NilVertex when e is outside the
//     graph or v is not an endpoint of e.
type Graph interface {
	Order() int
	Size() int
	IncidentEdges(v Vertex) []Edge
	Opposite(e Edge, v Vertex) Vertex
}

// WeightFunc is a pure accessor from an edge to its weight. Algorithms
// call it through copy and strict less-than comparison only; no
// arithmetic is performed on weights. The weight domain must be totally
// ordered (for floating-point weights, NaN is outside the contract).
type WeightFunc[W cmp.Ordered] func(Edge) W
