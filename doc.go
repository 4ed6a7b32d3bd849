// Package lvlgraph is a generic, slab-backed adjacency-list graph container
// for Go — linked-list storage, predicate-based lookup, and forward-only
// cursors over vertices and edges.
//
// 🚀 What is lvlgraph?
//
//	A small, pure-Go container that brings together:
//		• Generic vertices: any value type, with a pluggable equality predicate
//		• Construction-time shape: directed vs. undirected, weighted vs. unweighted
//		• Append-only storage: slab slices with integer handles, no per-node allocations to track
//		• Cursors: forward-only iteration over vertices and per-vertex edge lists
//		• Clone / Clear / Swap: deep copy by re-insertion, idempotent reset, O(1) state exchange
//
// ✨ Why choose lvlgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable costs – linear predicate lookup, O(1) counts, documented on every method
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – sentinel errors for end-cursor misuse, no silent no-ops
//
// Everything lives in one subpackage:
//
//	core/ — the Graph, Edge, and cursor types plus all container primitives
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four (mirrored) edges.
//
// Dive into core/doc.go for the full API surface, configuration options,
// and the ownership/borrowing rules for cursors.
//
//	go get github.com/katalvlaran/lvlgraph/core
package lvlgraph
