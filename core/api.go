// File: api.go
// Role: Thin read-only getters over construction-time policy.
// Policy:
//   - No algorithms or hidden state here; flags are immutable after
//     construction, so these are pure O(1) queries.
package core

// Directed reports the construction-time directedness. Undirected graphs
// mirror every edge record on insert.
// Complexity: O(1)
func (g *Graph[V]) Directed() bool { return g.directed }

// Weighted reports the construction-time "weighted" capability flag. If
// false, weights passed to AddEdge are discarded and every edge
// materializes with weight 0.
// Complexity: O(1)
func (g *Graph[V]) Weighted() bool { return g.weighted }
