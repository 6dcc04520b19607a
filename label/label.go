package label

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primtree/core"
)

// ErrForeignVertex indicates an access with a vertex outside the domain
// of the graph this labeling was created from.
var ErrForeignVertex = errors.New("label: vertex outside labeling domain")

// Labeling is a total, mutable mapping from every vertex of a fixed
// graph to a value of type T, backed by a dense slice indexed by the
// vertex's compact identity. The size is fixed at creation.
type Labeling[T any] struct {
	slots []T
}

// New creates a labeling covering every vertex of g, each slot
// initialized to def. A nil graph yields an empty labeling.
// Complexity: O(V).
func New[T any](g core.Graph, def T) *Labeling[T] {
	var n int
	if g != nil {
		n = g.Order()
	}
	slots := make([]T, n)
	for i := range slots {
		slots[i] = def
	}

	return &Labeling[T]{slots: slots}
}

// Len reports the number of vertices the labeling covers.
func (l *Labeling[T]) Len() int { return len(l.slots) }

// Get returns the value labeled on v.
// Returns ErrForeignVertex if v is outside the labeling's domain.
func (l *Labeling[T]) Get(v core.Vertex) (T, error) {
	if !l.contains(v) {
		var zero T

		return zero, fmt.Errorf("%w: %d", ErrForeignVertex, v)
	}

	return l.slots[v], nil
}

// Set labels v with value. No slot other than v's is affected.
// Returns ErrForeignVertex if v is outside the labeling's domain.
func (l *Labeling[T]) Set(v core.Vertex, value T) error {
	if !l.contains(v) {
		return fmt.Errorf("%w: %d", ErrForeignVertex, v)
	}
	l.slots[v] = value

	return nil
}

// At returns the value labeled on v without a domain check.
// Panics if v is outside the labeling's domain.
func (l *Labeling[T]) At(v core.Vertex) T { return l.slots[v] }

// SetAt labels v with value without a domain check.
// Panics if v is outside the labeling's domain.
func (l *Labeling[T]) SetAt(v core.Vertex, value T) { l.slots[v] = value }

func (l *Labeling[T]) contains(v core.Vertex) bool { return v >= 0 && int(v) < len(l.slots) }
