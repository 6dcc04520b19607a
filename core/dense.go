// This file implements DenseGraph, the reference Graph implementation.
package core

import (
	"cmp"
	"fmt"
)

// DenseGraph is an append-only, undirected adjacency structure over
// dense vertex and edge indices. It satisfies Graph and additionally
// records one weight per edge, so its Weight method can serve directly
// as the WeightFunc for the algorithms in this module.
//
// DenseGraph permits self-loops and parallel edges. It is not safe for
// concurrent mutation; concurrent read-only use is safe.
//
// Complexity: AddVertex, AddEdge, Opposite, Weight and Endpoints are
// O(1); IncidentEdges is O(1) (it returns an internal slice).
type DenseGraph[W cmp.Ordered] struct {
	ends     [][2]Vertex // edge index → its two endpoints
	weights  []W         // edge index → weight
	incident [][]Edge    // vertex index → incident edges, insertion order
}

// NewDense returns an empty DenseGraph with weights of type W.
func NewDense[W cmp.Ordered]() *DenseGraph[W] {
	return &DenseGraph[W]{}
}

// AddVertex appends a new vertex and returns its index.
func (g *DenseGraph[W]) AddVertex() Vertex {
	g.incident = append(g.incident, nil)

	return Vertex(len(g.incident) - 1)
}

// AddVertices appends n new vertices and returns their indices in order.
// A non-positive n adds nothing and returns an empty slice.
func (g *DenseGraph[W]) AddVertices(n int) []Vertex {
	vs := make([]Vertex, 0, max(n, 0))
	for i := 0; i < n; i++ {
		vs = append(vs, g.AddVertex())
	}

	return vs
}

// AddEdge connects u and v with an undirected edge of weight w and
// returns the new edge's index. Self-loops (u == v) and parallel edges
// are allowed. Returns ErrVertexNotFound if either endpoint is outside
// the graph.
func (g *DenseGraph[W]) AddEdge(u, v Vertex, w W) (Edge, error) {
	// Both endpoints must already exist; edges never create vertices.
	if !g.hasVertex(u) {
		return NilEdge, fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if !g.hasVertex(v) {
		return NilEdge, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	e := Edge(len(g.ends))
	g.ends = append(g.ends, [2]Vertex{u, v})
	g.weights = append(g.weights, w)

	// A self-loop is recorded once in its vertex's incident list.
	g.incident[u] = append(g.incident[u], e)
	if v != u {
		g.incident[v] = append(g.incident[v], e)
	}

	return e, nil
}

// Order reports the number of vertices.
func (g *DenseGraph[W]) Order() int { return len(g.incident) }

// Size reports the number of edges.
func (g *DenseGraph[W]) Size() int { return len(g.ends) }

// IncidentEdges returns the edges touching v in insertion order, or nil
// for a vertex outside the graph. The returned slice is owned by the
// graph; callers must not modify it.
func (g *DenseGraph[W]) IncidentEdges(v Vertex) []Edge {
	if !g.hasVertex(v) {
		return nil
	}

	return g.incident[v]
}

// Opposite returns the endpoint of e other than v (v itself for a
// self-loop), or NilVertex when e is outside the graph or v is not an
// endpoint of e.
func (g *DenseGraph[W]) Opposite(e Edge, v Vertex) Vertex {
	if !g.hasEdge(e) {
		return NilVertex
	}
	switch {
	case g.ends[e][0] == v:
		return g.ends[e][1]
	case g.ends[e][1] == v:
		return g.ends[e][0]
	default:
		return NilVertex
	}
}

// Endpoints returns both endpoints of e in insertion order.
// Returns ErrEdgeNotFound if e is outside the graph.
func (g *DenseGraph[W]) Endpoints(e Edge) (Vertex, Vertex, error) {
	if !g.hasEdge(e) {
		return NilVertex, NilVertex, fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}

	return g.ends[e][0], g.ends[e][1], nil
}

// Weight returns the weight recorded for e. The edge must belong to the
// graph; Weight is meant to be passed as a WeightFunc, whose contract
// guarantees valid edges.
func (g *DenseGraph[W]) Weight(e Edge) W { return g.weights[e] }

func (g *DenseGraph[W]) hasVertex(v Vertex) bool { return v >= 0 && int(v) < len(g.incident) }

func (g *DenseGraph[W]) hasEdge(e Edge) bool { return e >= 0 && int(e) < len(g.ends) }
