package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and lookup.
func ExampleGraph() {
	// 1) Create an undirected, weighted graph over string vertices:
	g := core.New[string](core.WithWeighted[string]())

	// 2) Add edges (endpoints are auto-inserted):
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 3)

	// 3) Inspect the store:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	e, _ := g.FindEdge("B", "A").Edge()
	fmt.Println("Mirror weight:", e.Weight)

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// Mirror weight: 5
}

// ExampleGraph_cursors walks every vertex's outgoing edges with the
// cursor protocol.
func ExampleGraph_cursors() {
	g := core.New[string](core.WithDirected[string](true))
	g.AddEdges(
		core.Edge[string]{From: "X", To: "Y"},
		core.Edge[string]{From: "Y", To: "Z"},
	)

	for vc := g.Begin(); !vc.Equal(g.End()); vc.Advance() {
		for ec := vc.Edges(); !ec.AtEnd(); ec.Advance() {
			e, _ := ec.Edge()
			fmt.Printf("%s → %s\n", e.From, e.To)
		}
	}

	// Output:
	// X → Y
	// Y → Z
}

// ExampleNewFunc shows an injected equality predicate: vertex identity is
// decoupled from raw value equality.
func ExampleNewFunc() {
	// Case-insensitive vertex identity.
	g := core.NewFunc(strings.EqualFold)

	_, first := g.AddVertex("hub")
	_, second := g.AddVertex("HUB")
	fmt.Println(first, second, g.VertexCount())

	// Output:
	// true false 1
}
