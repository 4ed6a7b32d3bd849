// Package core_test verifies construction, configuration flags, and the
// identity contract of core.Graph.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/core"
)

func TestNew_Defaults(t *testing.T) {
	// A default graph is undirected, unweighted, and empty.
	g := core.New[string]()

	require.False(t, g.Directed(), "default graph must be undirected")
	require.False(t, g.Weighted(), "default graph must be unweighted")
	require.Equal(t, 0, g.VertexCount(), "default graph must be empty")
	require.True(t, g.Begin().Equal(g.End()), "Begin() must equal End() on an empty graph")
}

func TestNew_Options(t *testing.T) {
	g := core.New[string](core.WithDirected[string](true), core.WithWeighted[string]())

	require.True(t, g.Directed(), "WithDirected(true) must set Directed()")
	require.True(t, g.Weighted(), "WithWeighted() must set Weighted()")
}

func TestNewFunc_NilPredicatePanics(t *testing.T) {
	require.PanicsWithValue(t, "core: nil equality predicate", func() {
		core.NewFunc[string](nil)
	})
}

func TestNewFunc_InjectedPredicate(t *testing.T) {
	// Case-insensitive identity: "a" and "A" denote the same vertex.
	g := core.NewFunc(foldEq)

	_, inserted := g.AddVertex("a")
	require.True(t, inserted, "first insert of 'a'")

	_, inserted = g.AddVertex(VertexA)
	require.False(t, inserted, "'A' must be a duplicate of 'a' under foldEq")
	require.Equal(t, 1, g.VertexCount(), "predicate-equal values must share one record")

	// The surviving record keeps the first-inserted value.
	v, err := g.FindVertex(VertexA).Value()
	require.NoError(t, err)
	require.Equal(t, "a", v, "lookup must resolve to the original record")
}

func TestFromEdges(t *testing.T) {
	g := core.FromEdges([]core.Edge[string]{
		{From: VertexA, To: VertexB, Weight: Weight5},
		{From: VertexB, To: VertexC, Weight: Weight3},
	}, core.WithWeighted[string]())

	require.Equal(t, 3, g.VertexCount(), "endpoints must be auto-inserted")
	require.True(t, g.HasEdge(VertexA, VertexB))
	require.True(t, g.HasEdge(VertexB, VertexA), "undirected construction must mirror")
}

func TestFromEdgesFunc(t *testing.T) {
	g := core.FromEdgesFunc(foldEq, []core.Edge[string]{
		{From: "a", To: "b"},
		{From: VertexA, To: VertexC},
	})

	require.Equal(t, 3, g.VertexCount(), "'A' must collapse into 'a' under foldEq")
	require.True(t, g.HasEdge("a", VertexC))
}

func TestGraph_IntVertices(t *testing.T) {
	// The container is generic; exercise a non-string value type.
	g := core.New[int](core.WithDirected[int](true))

	g.AddEdges(core.Edge[int]{From: 1, To: 2}, core.Edge[int]{From: 2, To: 3})

	require.Equal(t, []int{1, 2, 3}, g.Vertices())
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(2, 1), "directed graph must not mirror")
}
