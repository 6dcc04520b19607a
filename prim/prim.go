package prim

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/primtree/core"
	"github.com/katalvlaran/primtree/label"
	"github.com/katalvlaran/primtree/weightq"
)

// vertexColor is the per-vertex exploration state. Transitions are
// monotonic: white → gray → black, never backwards.
type vertexColor uint8

const (
	white vertexColor = iota // undiscovered
	gray                     // in the frontier, queued with a tentative best edge
	black                    // finalized, excluded from relaxation
)

// Prim computes the minimum spanning tree of the component of g
// containing source, growing outward from source and finalizing one
// frontier vertex per step.
//
// The graph capability must describe an undirected graph; self-loops and
// parallel edges are handled (loops skipped, the lighter parallel edge
// wins). Weights are read through w and used only via copy and strict
// less-than comparison. Disconnected graphs are a normal outcome: the
// returned tree covers exactly the source's component, and every other
// vertex stays absent.
//
// Steps:
//  1. Validate: g != nil, w != nil, 0 ≤ source < g.Order().
//  2. Initialize fresh labelings (tentative weight, predecessor, color)
//     and an empty decrease-key queue keyed by the weight labeling;
//     set pred(source) = source, color it gray, push it.
//  3. While the queue is non-empty: pop the minimum-weight frontier
//     vertex u, color it black, and relax every edge incident to u —
//     a white opposite endpoint is adopted and pushed, a gray one is
//     re-keyed in place when the edge is strictly lighter, a black one
//     is skipped.
//  4. Return the predecessor labeling wrapped as a PredecessorTree.
//
// Complexity: O(E log V) time, O(V) auxiliary space.
func Prim[W cmp.Ordered](g core.Graph, w core.WeightFunc[W], source core.Vertex) (*PredecessorTree, error) {
	// 1. Validate inputs in a fixed order.
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeightFunc
	}
	if source < 0 || int(source) >= g.Order() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSource, source)
	}

	// 2. Fresh per-invocation state; nothing persists across calls.
	r, err := newRunner(g, w, source)
	if err != nil {
		return nil, err
	}

	// 3. Main loop.
	if err = r.process(); err != nil {
		return nil, err
	}

	// 4. The predecessor labeling is the result.
	return &PredecessorTree{source: source, pred: r.pred}, nil
}

// runner holds the mutable state of a single Prim execution.
type runner[W cmp.Ordered] struct {
	g      core.Graph         // the input capability; read-only here
	weight core.WeightFunc[W] // pure edge-weight accessor

	vw    *label.Labeling[W]           // tentative best connecting weight per gray vertex
	pred  *label.Labeling[Predecessor] // parent assignment, absent until discovered
	color *label.Labeling[vertexColor] // white/gray/black exploration state
	queue *weightq.Queue[W]            // gray set, ordered by vw
}

// newRunner allocates the labelings and queue and seeds the source:
// predecessor = itself (root marker), colored gray, queued.
//
// The weight labeling starts at W's zero value everywhere. White
// vertices never participate in comparisons (the engine adopts a white
// endpoint unconditionally), and the source is the queue's only member
// when popped, so no representation-maximum seed is needed.
func newRunner[W cmp.Ordered](g core.Graph, w core.WeightFunc[W], source core.Vertex) (*runner[W], error) {
	var zero W
	vw := label.New(g, zero)
	queue, err := weightq.New(vw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueueContract, err)
	}

	r := &runner[W]{
		g:      g,
		weight: w,
		vw:     vw,
		pred:   label.New(g, Predecessor{Parent: core.NilVertex}),
		color:  label.New(g, white),
		queue:  queue,
	}

	r.pred.SetAt(source, Predecessor{Parent: source, Reached: true})
	r.color.SetAt(source, gray)
	if err = r.queue.Push(source); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueueContract, err)
	}

	return r, nil
}

// process drains the frontier: pop the minimum, finalize it, relax its
// incident edges. Terminates when the queue empties.
func (r *runner[W]) process() error {
	for r.queue.Len() > 0 {
		u, err := r.queue.PopMin()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQueueContract, err)
		}

		// Finalize u: its weight and predecessor are frozen from here on.
		r.color.SetAt(u, black)

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge incident to the just-finalized u and adopts
// or improves the tentative assignment of each opposite endpoint.
func (r *runner[W]) relax(u core.Vertex) error {
	order := r.vw.Len()
	var v core.Vertex
	for _, e := range r.g.IncidentEdges(u) {
		v = r.g.Opposite(e, u)

		// Self-loops cannot extend a spanning tree; skip them before any
		// bookkeeping so u is never re-queued against itself.
		if v == u {
			continue
		}
		if v < 0 || int(v) >= order {
			return fmt.Errorf("%w: edge %d resolved to %d", ErrGraphContract, e, v)
		}

		switch r.color.At(v) {
		case black:
			// Already optimal; revisiting a finalized vertex is forbidden.
			continue

		case white:
			// First connecting edge: adopt unconditionally (white means
			// tentative weight +∞), join the frontier.
			r.vw.SetAt(v, r.weight(e))
			r.pred.SetAt(v, Predecessor{Parent: u, Reached: true})
			r.color.SetAt(v, gray)
			if err := r.queue.Push(v); err != nil {
				return fmt.Errorf("%w: %v", ErrQueueContract, err)
			}

		case gray:
			// Relax only on strict improvement, then re-key in place.
			if w := r.weight(e); w < r.vw.At(v) {
				r.vw.SetAt(v, w)
				r.pred.SetAt(v, Predecessor{Parent: u, Reached: true})
				if err := r.queue.DecreaseKey(v); err != nil {
					return fmt.Errorf("%w: %v", ErrQueueContract, err)
				}
			}
		}
	}

	return nil
}
