// File: methods_edges.go
// Role: Edge store operations: AddEdge/AddEdges/FindEdge/HasEdge,
//       EdgeCount, Edges.
//
// Determinism:
//   - Edge records are appended at the tail of their source's list;
//     Edges() returns vertex insertion order, then per-vertex edge
//     insertion order.
//
// Mirroring:
//   - Undirected graphs store two independent records per edge (to→from
//     first, then from→to), both with the same weight. The public result
//     always reflects the from→to insertion.
package core

// AddEdge inserts the edge from→to with the given weight (idempotent per
// ordered endpoint pair).
//
// Steps:
//  1. Insert both endpoints via the vertex store (idempotently).
//  2. Undirected graphs: insert the mirror to→from first, result
//     discarded. A self-loop skips this step so exactly one record is
//     stored and the returned flag reports a fresh loop truthfully.
//  3. Insert from→to; the returned cursor/flag reflect this insertion.
//
// A duplicate ordered pair is a no-op: the existing record's weight is NOT
// updated. On unweighted graphs the weight is accepted and discarded.
//
// Complexity: O(V + deg(from) + deg(to)) — linear scans only.
func (g *Graph[V]) AddEdge(from, to V, weight int64) (EdgeCursor[V], bool) {
	fh, _ := g.addVertexRec(from)
	th, _ := g.addVertexRec(to)

	if !g.directed && fh != th {
		g.addEdgeRec(th, fh, weight) // mirror first; result discarded
	}
	h, inserted := g.addEdgeRec(fh, th, weight)

	return EdgeCursor[V]{g: g, src: fh, node: h}, inserted
}

// AddEdges applies AddEdge to each element, in order.
// Complexity: O(len(edges) · (V+deg))
func (g *Graph[V]) AddEdges(edges ...Edge[V]) {
	var e Edge[V]
	for _, e = range edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}
}

// FindEdge returns a cursor to the edge record from→to, or EdgeEnd() when
// either endpoint or the edge itself is absent. Endpoints are resolved by
// the vertex store's predicate scan; the edge scan compares destination
// record identity.
// Complexity: O(V + deg(from))
func (g *Graph[V]) FindEdge(from, to V) EdgeCursor[V] {
	fc := g.FindVertex(from)
	tc := g.FindVertex(to)
	if fc.node == nilRec || tc.node == nilRec {
		return g.EdgeEnd()
	}

	h := g.scanEdges(fc.node, tc.node)
	if h == nilRec || g.edges[h].to != tc.node {
		return g.EdgeEnd()
	}

	return EdgeCursor[V]{g: g, src: fc.node, node: h}
}

// HasEdge reports whether the edge record from→to exists. Undirected
// edges are mirrored on insert, so HasEdge works both ways.
// Complexity: O(V + deg(from))
func (g *Graph[V]) HasEdge(from, to V) bool {
	return !g.FindEdge(from, to).AtEnd()
}

// EdgeCount returns the number of stored edge records. An undirected edge
// between distinct vertices contributes two records (the mirror pair).
// Complexity: O(1)
func (g *Graph[V]) EdgeCount() int { return len(g.edges) }

// Edges returns a snapshot of every stored edge record as a value tuple,
// in deterministic order: vertices in insertion order, each vertex's edges
// in insertion order. Mirror records of undirected graphs appear as their
// own tuples.
// Complexity: O(V + E)
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, len(g.edges))
	for vh := g.head; vh != nilRec; vh = g.verts[vh].next {
		for eh := g.verts[vh].edgeHead; eh != nilRec; eh = g.edges[eh].next {
			out = append(out, Edge[V]{
				From:   g.verts[vh].value,
				To:     g.verts[g.edges[eh].to].value,
				Weight: g.edges[eh].weight,
			})
		}
	}

	return out
}
