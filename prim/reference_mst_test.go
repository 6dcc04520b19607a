package prim_test

import (
	"cmp"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primtree/core"
	"github.com/katalvlaran/primtree/prim"
)

// kruskalTotal computes the minimum spanning forest weight of g with an
// independent algorithm: sort edges ascending, then merge components via
// a disjoint-set with path compression and union by rank, skipping
// self-loops. It is the oracle the Prim results are cross-checked
// against; on a connected graph its total equals the MST weight.
func kruskalTotal[W cmp.Ordered](g *core.DenseGraph[W]) W {
	n := g.Order()

	// Collect non-loop edges.
	edges := make([]core.Edge, 0, g.Size())
	for e := core.Edge(0); int(e) < g.Size(); e++ {
		u, v, _ := g.Endpoints(e)
		if u == v {
			continue
		}
		edges = append(edges, e)
	}

	// Stable sort by weight keeps equal-weight edges in index order.
	sort.SliceStable(edges, func(i, j int) bool {
		return g.Weight(edges[i]) < g.Weight(edges[j])
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path compression
			x = parent[x]
		}

		return x
	}

	var total W
	for _, e := range edges {
		u, v, _ := g.Endpoints(e)
		ru, rv := find(int(u)), find(int(v))
		if ru == rv {
			continue
		}
		// Union by rank.
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
		total += g.Weight(e)
	}

	return total
}

// treeTotal sums, for every parent→child connection of the tree, the
// weight of the lightest edge between the pair (the edge Prim must have
// chosen). Fails the test if a tree edge has no graph edge behind it.
func treeTotal[W cmp.Ordered](t *testing.T, g *core.DenseGraph[W], tree *prim.PredecessorTree) W {
	t.Helper()

	var total W
	for _, te := range tree.Edges() {
		var best W
		found := false
		for _, e := range g.IncidentEdges(te.Child) {
			if g.Opposite(e, te.Child) != te.Parent {
				continue
			}
			if w := g.Weight(e); !found || w < best {
				best, found = w, true
			}
		}
		require.True(t, found, "tree edge %d→%d has no backing graph edge", te.Parent, te.Child)
		total += best
	}

	return total
}
