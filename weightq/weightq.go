package weightq

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/primtree/core"
	"github.com/katalvlaran/primtree/label"
)

// Sentinel errors for queue construction and contract violations.
var (
	// ErrNilKeys indicates that New was given a nil key labeling.
	ErrNilKeys = errors.New("weightq: nil key labeling")

	// ErrForeignVertex indicates an operation with a vertex outside the
	// key labeling's domain.
	ErrForeignVertex = errors.New("weightq: vertex outside key labeling domain")

	// ErrVertexQueued indicates a Push for a vertex that is already a member.
	ErrVertexQueued = errors.New("weightq: vertex already queued")

	// ErrVertexNotQueued indicates a DecreaseKey for a vertex that is not a member.
	ErrVertexNotQueued = errors.New("weightq: vertex not queued")

	// ErrKeyIncreased indicates a DecreaseKey after the member's key rose
	// since its last positioning. Decrease-key restores order only
	// downward; an increase is a programming error.
	ErrKeyIncreased = errors.New("weightq: key increased since last positioning")

	// ErrEmptyQueue indicates a PopMin on an empty queue.
	ErrEmptyQueue = errors.New("weightq: queue is empty")
)

// absent marks a vertex with no current heap slot.
const absent = -1

// Queue is a binary min-heap of vertices ordered by the current value of
// a shared key labeling, with a dense vertex→slot side table enabling
// O(log n) decrease-key. Equal keys order by lower vertex index.
//
// Queue is not safe for concurrent use.
type Queue[W cmp.Ordered] struct {
	keys *label.Labeling[W] // shared ordering keys; read on every comparison
	heap []core.Vertex      // slot → vertex, binary-heap order
	pos  []int              // vertex → slot, absent when not queued
	snap []W                // vertex → key at last positioning, for increase detection
}

// New creates an empty queue ordering vertices by the given key
// labeling. The labeling's domain fixes which vertices may be queued.
// Returns ErrNilKeys if keys is nil.
// Complexity: O(V).
func New[W cmp.Ordered](keys *label.Labeling[W]) (*Queue[W], error) {
	if keys == nil {
		return nil, ErrNilKeys
	}

	n := keys.Len()
	pos := make([]int, n)
	for i := range pos {
		pos[i] = absent
	}

	return &Queue[W]{
		keys: keys,
		heap: make([]core.Vertex, 0, n),
		pos:  pos,
		snap: make([]W, n),
	}, nil
}

// Len reports the number of queued vertices. Complexity: O(1).
func (q *Queue[W]) Len() int { return len(q.heap) }

// Contains reports whether v is currently queued. Complexity: O(1).
func (q *Queue[W]) Contains(v core.Vertex) bool {
	return v >= 0 && int(v) < len(q.pos) && q.pos[v] != absent
}

// Push inserts v, positioned by its current key labeling value.
// Returns ErrForeignVertex if v is outside the key labeling's domain,
// ErrVertexQueued if v is already a member.
// Complexity: O(log n).
func (q *Queue[W]) Push(v core.Vertex) error {
	if v < 0 || int(v) >= len(q.pos) {
		return fmt.Errorf("%w: %d", ErrForeignVertex, v)
	}
	if q.pos[v] != absent {
		return fmt.Errorf("%w: %d", ErrVertexQueued, v)
	}

	q.heap = append(q.heap, v)
	q.pos[v] = len(q.heap) - 1
	q.snap[v] = q.keys.At(v)
	q.siftUp(len(q.heap) - 1)

	return nil
}

// PopMin removes and returns the member with the smallest current key;
// equal keys break toward the lowest vertex index.
// Returns ErrEmptyQueue when the queue is empty.
// Complexity: O(log n).
func (q *Queue[W]) PopMin() (core.Vertex, error) {
	if len(q.heap) == 0 {
		return core.NilVertex, ErrEmptyQueue
	}

	min := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	q.pos[min] = absent
	if last > 0 {
		q.siftDown(0)
	}

	return min, nil
}

// DecreaseKey restores heap order after the key labeling value for the
// queued vertex v has been lowered.
// Returns ErrForeignVertex if v is outside the key labeling's domain,
// ErrVertexNotQueued if v is not a member, ErrKeyIncreased if the
// current key is greater than it was at v's last positioning.
// Complexity: O(log n).
func (q *Queue[W]) DecreaseKey(v core.Vertex) error {
	if v < 0 || int(v) >= len(q.pos) {
		return fmt.Errorf("%w: %d", ErrForeignVertex, v)
	}
	slot := q.pos[v]
	if slot == absent {
		return fmt.Errorf("%w: %d", ErrVertexNotQueued, v)
	}

	key := q.keys.At(v)
	if key > q.snap[v] {
		return fmt.Errorf("%w: %d", ErrKeyIncreased, v)
	}
	q.snap[v] = key

	// A lowered key can only travel toward the root.
	q.siftUp(slot)

	return nil
}

// less reports whether the vertex in slot i orders strictly before the
// one in slot j: by current key, then by lower vertex index.
func (q *Queue[W]) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	ka, kb := q.keys.At(a), q.keys.At(b)
	if ka != kb {
		return ka < kb
	}

	return a < b
}

// swap exchanges slots i and j and keeps the side table consistent.
func (q *Queue[W]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

// siftUp moves the vertex in slot i toward the root until its parent
// orders before it.
func (q *Queue[W]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves the vertex in slot i toward the leaves until both
// children order after it.
func (q *Queue[W]) siftDown(i int) {
	n := len(q.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && q.less(right, left) {
			child = right
		}
		if !q.less(child, i) {
			return
		}
		q.swap(i, child)
		i = child
	}
}
