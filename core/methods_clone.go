// File: methods_clone.go
// Role: Cloning, clearing, and swapping graph instances.
//
// Policy:
//   - Clone rebuilds through the public insertion path instead of copying
//     slabs structurally: mirrors re-derive and duplicates collapse by the
//     normal insertion semantics.
//   - Clear is idempotent; configuration and predicate survive.
//   - Swap is the constant-time move: full state exchange, both receivers
//     remain valid graphs.
package core

// CloneEmpty returns a new Graph with identical configuration, predicate,
// and vertex set, but no edges. Vertex values are copied by assignment.
// Complexity: O(V²) — each re-insertion is a predicate scan.
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	// Copy configuration via options, predicate via constructor.
	opts := []Option[V]{WithDirected[V](g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted[V]())
	}
	clone := NewFunc(g.equal, opts...)

	for h := g.head; h != nilRec; h = g.verts[h].next {
		clone.addVertexRec(g.verts[h].value)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, and
// edges. Every vertex is re-inserted first (isolated vertices survive),
// then every stored edge record is re-inserted through AddEdge, so the
// mirror records of an undirected graph deduplicate naturally.
// Complexity: O(E · (V+deg)) — rebuild by re-insertion, not a slab copy.
func (g *Graph[V]) Clone() *Graph[V] {
	clone := g.CloneEmpty()

	for vh := g.head; vh != nilRec; vh = g.verts[vh].next {
		for eh := g.verts[vh].edgeHead; eh != nilRec; eh = g.edges[eh].next {
			clone.AddEdge(g.verts[vh].value, g.verts[g.edges[eh].to].value, g.edges[eh].weight)
		}
	}

	return clone
}

// Clear resets the graph to the empty state: both slabs released, head set
// to the nil handle, count zeroed. Configuration flags and the equality
// predicate are preserved. Safe to invoke any number of times.
//
// Every live cursor into this graph is invalidated.
// Complexity: O(1) — the slabs are dropped for the GC to reclaim.
func (g *Graph[V]) Clear() {
	g.verts = nil
	g.edges = nil
	g.head = nilRec
	g.size = 0
}

// Swap exchanges the complete state of the two graphs — storage, head,
// count, configuration, and predicate — in constant time. After swapping
// with a freshly constructed graph, the receiver holds the fresh (empty)
// state and other holds exactly the prior content; both remain valid.
//
// Every live cursor into either graph is invalidated.
// Complexity: O(1)
func (g *Graph[V]) Swap(other *Graph[V]) {
	*g, *other = *other, *g
}
