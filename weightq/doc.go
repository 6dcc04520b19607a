// Package weightq implements the decrease-key priority queue that drives
// the Prim engine: a binary min-heap of vertices whose ordering key is
// the *current* value of an external weight labeling, so keys may change
// after insertion.
//
// What & Why
//
//	A plain container/heap min-heap cannot re-order a member in place
//	when its key improves; the usual workaround is pushing duplicates and
//	skipping stale pops ("lazy decrease-key"). weightq instead keeps a
//	vertex→heap-slot side table, updated on every structural swap, so
//	DecreaseKey can locate a member and re-sift it in O(log n) with no
//	duplicates and no linear scan.
//
// Contract
//
//   - Push(v): v must not already be queued (ErrVertexQueued). A vertex
//     may be re-pushed after it has been popped.
//   - PopMin(): removes and returns the member with the smallest current
//     key; equal keys break toward the lowest vertex index, so pop order
//     is fully deterministic. ErrEmptyQueue when empty.
//   - DecreaseKey(v): must be called exactly when the key labeling for a
//     queued v has been lowered. Calling it for a non-member
//     (ErrVertexNotQueued) or after the key has *increased*
//     (ErrKeyIncreased) is a contract violation, reported, never
//     repaired. Mutating a queued member's key without a matching
//     DecreaseKey call leaves the ordering undefined.
//
// Complexity: Push, PopMin and DecreaseKey are O(log n); Len and
// Contains are O(1). Space is O(V) for the heap, the side table and the
// key snapshots.
package weightq
