package weightq

import (
	"cmp"
	"fmt"
)

// CheckInvariants verifies the heap-order invariant and the consistency
// of the vertex→slot side table. Test hook only.
func CheckInvariants[W cmp.Ordered](q *Queue[W]) error {
	// Heap order: every parent must not order after its children.
	for i := 1; i < len(q.heap); i++ {
		parent := (i - 1) / 2
		if q.less(i, parent) {
			return fmt.Errorf("heap order violated: slot %d (vertex %d) before parent slot %d (vertex %d)",
				i, q.heap[i], parent, q.heap[parent])
		}
	}

	// Side table: queued vertices point at their slot, nothing else is marked.
	queued := make(map[int]bool, len(q.heap))
	for slot, v := range q.heap {
		if q.pos[v] != slot {
			return fmt.Errorf("side table desync: vertex %d in slot %d but pos=%d", v, slot, q.pos[v])
		}
		queued[int(v)] = true
	}
	for v, slot := range q.pos {
		if slot != absent && !queued[v] {
			return fmt.Errorf("side table desync: vertex %d marked at slot %d but not in heap", v, slot)
		}
	}

	return nil
}
