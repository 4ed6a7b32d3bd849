// Package core provides a generic, slab-backed adjacency-list Graph
// container with a minimal, composable API surface.
//
// The Graph G = (V,E) is shaped entirely at construction time:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Value equality via an injected predicate (NewFunc) or natural
//     equality for comparable types (New)
//   - Append-only slab storage: vertex and edge records live in slices
//     addressed by integer handles; records are never freed individually,
//     so handles stay valid for the lifetime of the graph
//   - Forward-only cursors over the vertex list and over a vertex's
//     outgoing edge list
//
// Why use core.Graph?
//
//   - Single generic type, composable options — no explosion of separate graph types.
//   - Predicate-based identity — vertex uniqueness is defined by your equality
//     rule, not by hashing; lookup is a linear scan by contract.
//   - Deterministic iteration — vertices and edges are visited in insertion order.
//   - Clone support — CloneEmpty (vertices+flags), Clone (rebuild by re-insertion).
//
// Configuration Options (Option[V]):
//
//	– WithDirected[V](directed bool)
//	    Sets the orientation of all edges.
//	    • Directed graphs store one record per AddEdge, from→to.
//	    • Undirected graphs also store the mirror record to→from,
//	      both carrying the same weight.
//
//	– WithWeighted[V]()
//	    Stores the weight supplied to AddEdge. Without it, weights are
//	    accepted on input (for call-shape uniformity) and silently
//	    discarded; every edge materializes with weight 0.
//
// Core Methods:
//
//	// Vertex store
//	AddVertex(v V) (VertexCursor[V], bool)   // O(V), idempotent
//	AddVertices(vs ...V)                     // batch, in order
//	FindVertex(v V) VertexCursor[V]          // O(V), end cursor on miss
//	HasVertex(v V) bool                      // O(V)
//	VertexCount() int                        // O(1)
//	Vertices() []V                           // O(V), insertion order
//
//	// Edge store
//	AddEdge(from, to V, w int64) (EdgeCursor[V], bool) // O(V+deg), idempotent
//	AddEdges(edges ...Edge[V])               // batch, in order
//	FindEdge(from, to V) EdgeCursor[V]       // O(V+deg), end cursor on miss
//	HasEdge(from, to V) bool                 // O(V+deg)
//	EdgeCount() int                          // O(1), counts stored records
//	Edges() []Edge[V]                        // O(V+E), insertion order
//
//	// Cursors
//	Begin() / End() VertexCursor[V]          // vertex list endpoints
//	EdgeEnd() EdgeCursor[V]                  // shared edge end sentinel
//
//	// Maintenance
//	Clear()                                  // idempotent reset, flags kept
//	Swap(other *Graph[V])                    // O(1) full state exchange
//	Clone() *Graph[V]                        // deep copy by re-insertion
//	CloneEmpty() *Graph[V]                   // flags + vertices, no edges
//
// Errors:
//
//	ErrInvalidCursor  – dereferencing an end/sentinel cursor
//	ErrEndOfIteration – advancing a cursor already at the end sentinel
//
// Insertion never fails and lookup misses are end cursors, not errors.
//
// Concurrency model:
//
// The container is single-owner. No internal locking is performed; share a
// Graph across goroutines only behind your own synchronization. Cursors
// borrow into the owning graph: appending records keeps existing cursors
// valid (slab handles are stable), but Clear and Swap invalidate every live
// cursor, and mutation during iteration is unsupported.
package core
