// Package primtree is a small, focused library for growing minimum
// spanning trees with Prim's algorithm over any graph representation.
//
// 🚀 What is primtree?
//
//	A pure-Go, zero-runtime-dependency MST engine decoupled from graph storage:
//		• core/    — dense Vertex/Edge identity, the Graph capability set,
//		             and a reference DenseGraph for tests and hosting code
//		• label/   — fixed-size, O(1) vertex labelings (generic over the value)
//		• weightq/ — a decrease-key priority queue keyed through a labeling
//		• prim/    — the tri-color Prim engine producing a predecessor tree
//
// ✨ Why choose primtree?
//
//   - Bring your own graph – the engine consumes a three-method capability
//     (Order, IncidentEdges, Opposite) plus a weight accessor; it never
//     stores, parses, or serializes graphs itself
//   - Deterministic – equal-weight frontier ties always break toward the
//     lowest vertex index, so identical inputs yield bit-identical trees
//   - True decrease-key – a binary heap with a vertex→slot side table
//     re-orders in O(log n) when a tentative weight improves; no lazy
//     duplicate entries
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    D──1──C
//
//	prim.Prim from A keeps A-B, B-C and C-D (total weight 4) and drops A-D.
//
// Dive into each package's doc.go for contracts, complexity notes and the
// error vocabulary.
//
//	go get github.com/katalvlaran/primtree
package primtree
