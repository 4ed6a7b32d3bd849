// Package core defines the central Graph, Edge, and cursor types, and
// provides slab-backed primitives for building, querying, and cloning
// graphs.
//
// Configuration (directedness, weightedness, equality predicate) is fixed
// at construction and cannot change afterwards; every hot path branches on
// flags resolved exactly once, in the constructor.
//
// This file declares Edge, Graph, Option, sentinel errors, and the
// New/NewFunc/FromEdges/FromEdgesFunc constructors.
//
// Errors:
//
//	ErrInvalidCursor  - dereference of an end/sentinel cursor.
//	ErrEndOfIteration - advance of a cursor already at the end sentinel.
package core

import "errors"

// Sentinel errors for core cursor operations.
var (
	// ErrInvalidCursor indicates a dereference of an end/sentinel cursor.
	ErrInvalidCursor = errors.New("core: invalid cursor")

	// ErrEndOfIteration indicates an advance past the end sentinel.
	ErrEndOfIteration = errors.New("core: end of iteration reached")
)

// Edge is the value tuple materialized for one stored edge record:
// source value, destination value, and weight.
//
// Weight is always present in the struct (Go has no conditional tuple
// arity); on unweighted graphs it is accepted on input for call-shape
// uniformity, silently discarded, and materialized as 0.
type Edge[V any] struct {
	// From is the source vertex value.
	From V

	// To is the destination vertex value.
	To V

	// Weight is the cost or capacity of the edge (0 on unweighted graphs).
	Weight int64
}

// Option configures behavior of a Graph before creation.
type Option[V any] func(g *Graph[V])

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected[V any](directed bool) Option[V] {
	return func(g *Graph[V]) { g.directed = directed }
}

// WithWeighted makes the Graph store edge weights. Without it, weights
// passed to AddEdge are discarded.
func WithWeighted[V any]() Option[V] {
	return func(g *Graph[V]) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected and weighted vs. unweighted edges,
// chosen once at construction. Vertex identity is defined by the injected
// equality predicate; lookup is a linear scan by contract (no hashing).
//
// Storage is two append-only slabs addressed by integer handles: verts
// holds the singly-linked vertex list (insertion order), edges holds every
// per-vertex singly-linked edge list. The zero Graph is not usable; always
// construct through New/NewFunc/FromEdges/FromEdgesFunc.
//
// Not safe for concurrent use; see the package documentation.
type Graph[V any] struct {
	// Configuration, immutable after construction.
	directed bool              // edge orientation
	weighted bool              // store weights
	equal    func(a, b V) bool // vertex value identity

	// Storage.
	verts []vertexRec[V] // vertex slab; handle = index
	edges []edgeRec      // edge slab; handle = index

	head int // handle of the first vertex record, nilRec when empty
	size int // running vertex count
}

// New creates an empty Graph over a comparable value type, using natural
// (==) equality. By default the Graph is undirected and unweighted.
// Complexity: O(len(opts))
func New[V comparable](opts ...Option[V]) *Graph[V] {
	return NewFunc(func(a, b V) bool { return a == b }, opts...)
}

// NewFunc creates an empty Graph with an injected value-equality predicate,
// for value types that are not comparable or need looser identity (e.g.
// case-insensitive strings). Panics on a nil predicate: construction is
// otherwise infallible, and a graph that can never match is unusable.
// Complexity: O(len(opts))
func NewFunc[V any](equal func(a, b V) bool, opts ...Option[V]) *Graph[V] {
	if equal == nil {
		panic("core: nil equality predicate")
	}
	g := &Graph[V]{equal: equal, head: nilRec}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromEdges builds a Graph from an edge sequence by repeated AddEdge,
// in order. Endpoints are created idempotently as a side effect.
// Complexity: O(len(edges) · (V+deg)) — each insertion is a linear scan.
func FromEdges[V comparable](edges []Edge[V], opts ...Option[V]) *Graph[V] {
	g := New[V](opts...)
	g.AddEdges(edges...)

	return g
}

// FromEdgesFunc is FromEdges with an injected equality predicate.
func FromEdgesFunc[V any](equal func(a, b V) bool, edges []Edge[V], opts ...Option[V]) *Graph[V] {
	g := NewFunc(equal, opts...)
	g.AddEdges(edges...)

	return g
}
