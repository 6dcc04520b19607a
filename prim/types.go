// This file declares the package's sentinel errors and the
// PredecessorTree result type.
package prim

import (
	"errors"

	"github.com/katalvlaran/primtree/core"
	"github.com/katalvlaran/primtree/label"
)

// Sentinel errors returned by Prim.
var (
	// ErrNilGraph indicates a nil graph capability was passed to Prim.
	ErrNilGraph = errors.New("prim: graph is nil")

	// ErrNilWeightFunc indicates a nil weight accessor was passed to Prim.
	ErrNilWeightFunc = errors.New("prim: weight function is nil")

	// ErrUnknownSource indicates the supplied source vertex is not part
	// of the graph.
	ErrUnknownSource = errors.New("prim: source vertex not in graph")

	// ErrGraphContract indicates the graph capability resolved an edge
	// endpoint outside its own vertex domain. This is a bug in the
	// capability implementation, not in the input data.
	ErrGraphContract = errors.New("prim: graph capability returned vertex outside its domain")

	// ErrQueueContract indicates the weight queue rejected an operation
	// the engine believed legal. This is a programming error; it is
	// reported, never retried.
	ErrQueueContract = errors.New("prim: weight queue contract violated")
)

// Predecessor is the tagged-absence labeling value recording a vertex's
// parent in the tree. Absence is explicit (Reached == false) rather than
// a reserved vertex id, so no real identifier can collide with it.
type Predecessor struct {
	// Parent is the vertex this one was reached from; the source's
	// Parent is the source itself, marking it as root.
	Parent core.Vertex

	// Reached reports whether the vertex belongs to the tree at all.
	Reached bool
}

// TreeEdge is one parent→child connection of a predecessor tree.
type TreeEdge struct {
	Parent core.Vertex
	Child  core.Vertex
}

// PredecessorTree is the result of a Prim run: a tree-structured,
// acyclic predecessor labeling rooted at the source and restricted to
// the source's connected component.
type PredecessorTree struct {
	source core.Vertex
	pred   *label.Labeling[Predecessor]
}

// Source returns the root vertex the tree was grown from.
func (t *PredecessorTree) Source() core.Vertex { return t.source }

// Order reports the number of vertices of the underlying graph
// (reached or not).
func (t *PredecessorTree) Order() int { return t.pred.Len() }

// Predecessor returns v's parent in the tree. The source reports itself.
// The second return is false for vertices outside the source's component
// and for vertices outside the graph. Complexity: O(1).
func (t *PredecessorTree) Predecessor(v core.Vertex) (core.Vertex, bool) {
	p, err := t.pred.Get(v)
	if err != nil || !p.Reached {
		return core.NilVertex, false
	}

	return p.Parent, true
}

// Reached reports whether v belongs to the tree. Complexity: O(1).
func (t *PredecessorTree) Reached(v core.Vertex) bool {
	p, err := t.pred.Get(v)

	return err == nil && p.Reached
}

// Edges returns every parent→child connection of the tree in ascending
// child order. The source appears only as a parent. A single-vertex or
// fully unreached tree yields an empty slice. Complexity: O(V).
func (t *PredecessorTree) Edges() []TreeEdge {
	edges := make([]TreeEdge, 0, t.pred.Len())
	for v := core.Vertex(0); int(v) < t.pred.Len(); v++ {
		p := t.pred.At(v)
		if !p.Reached || v == t.source {
			continue
		}
		edges = append(edges, TreeEdge{Parent: p.Parent, Child: v})
	}

	return edges
}

// Path returns the vertices from the source to v along tree edges,
// inclusive of both ends; Path(source) is [source]. The second return is
// false when v is unreached or outside the graph.
// Complexity: O(length of the path).
func (t *PredecessorTree) Path(v core.Vertex) ([]core.Vertex, bool) {
	if !t.Reached(v) {
		return nil, false
	}

	// Walk child→root, then reverse. The step bound guards against a
	// corrupted labeling; an intact tree reaches the source in < V steps.
	rev := []core.Vertex{v}
	for steps := 0; rev[len(rev)-1] != t.source && steps < t.pred.Len(); steps++ {
		rev = append(rev, t.pred.At(rev[len(rev)-1]).Parent)
	}
	if rev[len(rev)-1] != t.source {
		return nil, false
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}
