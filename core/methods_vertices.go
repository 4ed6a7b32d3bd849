// File: methods_vertices.go
// Role: Vertex store operations: AddVertex/AddVertices/FindVertex/HasVertex,
//       VertexCount, Vertices.
//
// Determinism:
//   - New vertices are appended at the tail; Vertices() returns insertion
//     order, a stable enumeration surface for any value type.
//
// Identity:
//   - Uniqueness is defined by the graph's equality predicate. Lookup is a
//     linear scan by contract; no hashing is performed.
package core

// AddVertex inserts a vertex value if missing (idempotent).
//
// Behavior:
//   - Empty store: allocates the first record, returns (cursor, true).
//   - Existing equal record (under the predicate): no mutation, returns
//     (cursor-to-it, false).
//   - Otherwise appends a new record at the tail, returns (cursor, true).
//
// Complexity: O(V) — one linear scan.
func (g *Graph[V]) AddVertex(value V) (VertexCursor[V], bool) {
	h, inserted := g.addVertexRec(value)

	return VertexCursor[V]{g: g, node: h}, inserted
}

// AddVertices applies AddVertex to each value, in order. Duplicates under
// the predicate are skipped silently.
// Complexity: O(len(values) · V)
func (g *Graph[V]) AddVertices(values ...V) {
	var v V
	for _, v = range values {
		g.addVertexRec(v)
	}
}

// FindVertex returns a cursor to the record equal to value under the
// graph's predicate, or End() when no such record exists. The scan covers
// the full store even on a miss.
// Complexity: O(V) regardless of outcome.
func (g *Graph[V]) FindVertex(value V) VertexCursor[V] {
	h := g.scanVertices(value)
	if h == nilRec || !g.equal(g.verts[h].value, value) {
		return g.End()
	}

	return VertexCursor[V]{g: g, node: h}
}

// HasVertex reports whether a record equal to value exists.
// Complexity: O(V)
func (g *Graph[V]) HasVertex(value V) bool {
	return !g.FindVertex(value).AtEnd()
}

// VertexCount returns the current number of vertex records.
// Complexity: O(1)
func (g *Graph[V]) VertexCount() int { return g.size }

// Vertices returns a snapshot of all vertex values in insertion order.
// Complexity: O(V)
func (g *Graph[V]) Vertices() []V {
	out := make([]V, 0, g.size)
	for h := g.head; h != nilRec; h = g.verts[h].next {
		out = append(out, g.verts[h].value)
	}

	return out
}
