// File: slab.go
// Role: Append-only slab storage and the match-or-last scan helpers every
//       insert/lookup path funnels through.
//
// Handles:
//   - A handle is an index into g.verts or g.edges; nilRec (-1) is the
//     shared "no record" sentinel.
//   - Slab growth (append) never moves a handle; records are never freed
//     individually, so handles stay valid until Clear/Swap.
//
// Determinism:
//   - Both lists are appended at the tail; insertion order is preserved.
package core

// nilRec is the nil handle: end of a list, or "no such record".
const nilRec = -1

// vertexRec is one owned vertex record: the value, the next vertex in
// insertion order, and the head of this vertex's outgoing edge list.
type vertexRec[V any] struct {
	value    V
	next     int // next vertex handle, nilRec at the tail
	edgeHead int // first outgoing edge handle, nilRec when none
}

// edgeRec is one owned edge record in some vertex's outgoing list. The
// destination handle is a non-owning reference into the vertex slab.
type edgeRec struct {
	to     int   // destination vertex handle
	next   int   // next edge handle in the same list, nilRec at the tail
	weight int64 // set only when the graph is weighted
}

// newVertexRec appends a fresh vertex record to the slab and bumps the
// running count. The caller links it into the list.
func (g *Graph[V]) newVertexRec(value V) int {
	h := len(g.verts)
	g.verts = append(g.verts, vertexRec[V]{value: value, next: nilRec, edgeHead: nilRec})
	g.size++

	return h
}

// newEdgeRec appends a fresh edge record pointing at to. The weight is
// stored only when the graph is weighted; otherwise it is discarded.
func (g *Graph[V]) newEdgeRec(to int, weight int64) int {
	h := len(g.edges)
	rec := edgeRec{to: to, next: nilRec}
	if g.weighted {
		rec.weight = weight
	}
	g.edges = append(g.edges, rec)

	return h
}

// scanVertices walks the vertex list and returns the handle of the record
// equal to value under the graph's predicate, or the last record when no
// match exists, or nilRec when the store is empty. Callers re-check
// equality on the result to distinguish the two non-empty outcomes.
// Complexity: O(V), full scan on a miss.
func (g *Graph[V]) scanVertices(value V) int {
	h := g.head
	if h == nilRec {
		return nilRec
	}
	for g.verts[h].next != nilRec && !g.equal(g.verts[h].value, value) {
		h = g.verts[h].next
	}

	return h
}

// scanEdges walks from's outgoing edge list and returns the handle of the
// record whose destination is to, or the last record when no match exists,
// or nilRec when the list is empty. Destination comparison is record
// identity, not value equality.
// Complexity: O(deg(from)).
func (g *Graph[V]) scanEdges(from, to int) int {
	h := g.verts[from].edgeHead
	if h == nilRec {
		return nilRec
	}
	for g.edges[h].next != nilRec && g.edges[h].to != to {
		h = g.edges[h].next
	}

	return h
}

// addVertexRec is the single mutation path for the vertex store: idempotent
// append-at-tail. Returns the handle of the equal-or-new record and whether
// a record was created.
func (g *Graph[V]) addVertexRec(value V) (int, bool) {
	if g.head == nilRec {
		g.head = g.newVertexRec(value)

		return g.head, true
	}

	last := g.scanVertices(value)
	if g.equal(g.verts[last].value, value) {
		return last, false // no mutation on duplicate
	}

	h := g.newVertexRec(value)
	g.verts[last].next = h

	return h, true
}

// addEdgeRec is the single mutation path for one vertex's edge store:
// idempotent append-at-tail keyed by destination record identity. The
// weight of an existing record is never updated.
func (g *Graph[V]) addEdgeRec(from, to int, weight int64) (int, bool) {
	if g.verts[from].edgeHead == nilRec {
		h := g.newEdgeRec(to, weight)
		g.verts[from].edgeHead = h

		return h, true
	}

	last := g.scanEdges(from, to)
	if g.edges[last].to == to {
		return last, false // duplicate ordered pair; weight untouched
	}

	h := g.newEdgeRec(to, weight)
	g.edges[last].next = h

	return h, true
}
