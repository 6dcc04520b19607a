package prim_test

import (
	"fmt"

	"github.com/katalvlaran/primtree/core"
	"github.com/katalvlaran/primtree/prim"
)

// ExamplePrim grows the MST of a weighted square with one diagonal.
// Vertices: A, B, C, D. Edges: A–B(1), B–C(2), C–D(1), A–D(5), A–C(4).
// The tree keeps A–B, B–C and C–D; the heavy A–D and A–C edges are dropped.
func ExamplePrim() {
	// 1. Build the graph; vertices receive dense indices 0..3.
	g := core.NewDense[int]()
	vs := g.AddVertices(4) // A=0, B=1, C=2, D=3
	g.AddEdge(vs[0], vs[1], 1)
	g.AddEdge(vs[1], vs[2], 2)
	g.AddEdge(vs[2], vs[3], 1)
	g.AddEdge(vs[0], vs[3], 5)
	g.AddEdge(vs[0], vs[2], 4)

	// 2. Run Prim from A; the graph's own Weight method is the accessor.
	tree, err := prim.Prim(g, g.Weight, vs[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the tree edges in ascending child order.
	for i, te := range tree.Edges() {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%c-%c", 'A'+te.Parent, 'A'+te.Child)
	}
	// Output: A-B B-C C-D
}

// ExamplePrim_disconnected shows that a disconnected graph is a normal
// outcome: the tree covers only the source's component.
func ExamplePrim_disconnected() {
	g := core.NewDense[int]()
	vs := g.AddVertices(4) // components {A,B} and {C,D}
	g.AddEdge(vs[0], vs[1], 1)
	g.AddEdge(vs[2], vs[3], 1)

	tree, err := prim.Prim(g, g.Weight, vs[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range vs {
		fmt.Printf("%c reached: %v\n", 'A'+v, tree.Reached(v))
	}
	// Output:
	// A reached: true
	// B reached: true
	// C reached: false
	// D reached: false
}

// ExamplePredecessorTree_Path reconstructs the tree path from the source
// to a vertex.
func ExamplePredecessorTree_Path() {
	g := core.NewDense[int]()
	vs := g.AddVertices(4)
	g.AddEdge(vs[0], vs[1], 1)
	g.AddEdge(vs[1], vs[2], 2)
	g.AddEdge(vs[2], vs[3], 1)
	g.AddEdge(vs[0], vs[3], 5)

	tree, err := prim.Prim(g, g.Weight, vs[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := tree.Path(vs[3])
	for i, v := range path {
		if i > 0 {
			fmt.Print("->")
		}
		fmt.Printf("%c", 'A'+v)
	}
	// Output: A->B->C->D
}

// ExamplePrim_errUnknownSource shows the validation error for a source
// outside the graph.
func ExamplePrim_errUnknownSource() {
	g := core.NewDense[int]()
	g.AddVertices(2)

	_, err := prim.Prim(g, g.Weight, core.Vertex(9))
	fmt.Println(err)
	// Output: prim: source vertex not in graph: 9
}
