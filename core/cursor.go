// File: cursor.go
// Role: Forward-only cursors over the vertex list and per-vertex edge lists.
//
// Contract:
//   - Dereferencing an end cursor returns ErrInvalidCursor.
//   - Advancing a cursor already at the end returns ErrEndOfIteration;
//     advancing past the end is an error, not a no-op.
//   - Equality compares record identity (the underlying handle), enabling
//     scan-until-end loops against End()/EdgeEnd().
//
// Lifetime:
//   - Cursors borrow into the owning graph. Appending records keeps them
//     valid; Clear and Swap invalidate them. Mutation during iteration is
//     unsupported.
package core

// VertexCursor is a traversal handle over the vertex list. The zero value
// is not meaningful; obtain cursors from Begin/End/FindVertex/AddVertex or
// EdgeCursor.StartVertex.
type VertexCursor[V any] struct {
	g    *Graph[V]
	node int // current vertex handle, nilRec at the end sentinel
}

// EdgeCursor is a traversal handle over one vertex's outgoing edge list.
// It carries the source vertex handle so a dereference can materialize the
// full (source, destination, weight) tuple.
type EdgeCursor[V any] struct {
	g    *Graph[V]
	src  int // source vertex handle
	node int // current edge handle, nilRec at the end sentinel
}

// Begin returns a cursor positioned at the first vertex in insertion
// order. On an empty graph it equals End().
// Complexity: O(1)
func (g *Graph[V]) Begin() VertexCursor[V] {
	return VertexCursor[V]{g: g, node: g.head}
}

// End returns the vertex end sentinel ("no more elements" / "not found").
// Complexity: O(1)
func (g *Graph[V]) End() VertexCursor[V] {
	return VertexCursor[V]{g: g, node: nilRec}
}

// EdgeEnd returns the edge end sentinel shared by every edge list.
// Complexity: O(1)
func (g *Graph[V]) EdgeEnd() EdgeCursor[V] {
	return EdgeCursor[V]{g: g, src: nilRec, node: nilRec}
}

// AtEnd reports whether the cursor is at the end sentinel.
func (c VertexCursor[V]) AtEnd() bool { return c.node == nilRec }

// Equal reports whether both cursors reference the same vertex record.
// All end cursors compare equal.
func (c VertexCursor[V]) Equal(o VertexCursor[V]) bool { return c.node == o.node }

// Value returns the vertex value under the cursor.
//
// Errors:
//   - ErrInvalidCursor: the cursor is at the end sentinel.
func (c VertexCursor[V]) Value() (V, error) {
	if c.node == nilRec {
		var zero V

		return zero, ErrInvalidCursor
	}

	return c.g.verts[c.node].value, nil
}

// Advance moves the cursor to the next vertex in insertion order.
//
// Errors:
//   - ErrEndOfIteration: the cursor is already at the end sentinel.
func (c *VertexCursor[V]) Advance() error {
	if c.node == nilRec {
		return ErrEndOfIteration
	}
	c.node = c.g.verts[c.node].next

	return nil
}

// Edges spawns an edge cursor positioned at this vertex's first outgoing
// edge record. For an end vertex cursor it returns the edge end sentinel.
// Complexity: O(1)
func (c VertexCursor[V]) Edges() EdgeCursor[V] {
	if c.node == nilRec {
		return EdgeCursor[V]{g: c.g, src: nilRec, node: nilRec}
	}

	return EdgeCursor[V]{g: c.g, src: c.node, node: c.g.verts[c.node].edgeHead}
}

// AtEnd reports whether the cursor is at the end sentinel.
func (c EdgeCursor[V]) AtEnd() bool { return c.node == nilRec }

// Equal reports whether both cursors reference the same edge record.
// Only the edge-record half participates; the source half does not.
func (c EdgeCursor[V]) Equal(o EdgeCursor[V]) bool { return c.node == o.node }

// Edge materializes the edge under the cursor as a value tuple
// (source value, destination value, weight). On unweighted graphs the
// weight is always 0.
//
// Errors:
//   - ErrInvalidCursor: the cursor is at the end sentinel.
func (c EdgeCursor[V]) Edge() (Edge[V], error) {
	if c.node == nilRec {
		return Edge[V]{}, ErrInvalidCursor
	}
	rec := c.g.edges[c.node]

	return Edge[V]{
		From:   c.g.verts[c.src].value,
		To:     c.g.verts[rec.to].value,
		Weight: rec.weight,
	}, nil
}

// Advance moves the cursor to the next edge record in the same list.
//
// Errors:
//   - ErrEndOfIteration: the cursor is already at the end sentinel.
func (c *EdgeCursor[V]) Advance() error {
	if c.node == nilRec {
		return ErrEndOfIteration
	}
	c.node = c.g.edges[c.node].next

	return nil
}

// StartVertex recovers a vertex cursor for the source of this edge list.
// Complexity: O(1)
func (c EdgeCursor[V]) StartVertex() VertexCursor[V] {
	return VertexCursor[V]{g: c.g, node: c.src}
}
