// Package dijkstra provides Dijkstra's shortest-path algorithm on core graphs
// with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath returns the distance between two vertices.
//   - Path returns the same distance plus the reconstructed label sequence.
//   - ShortestPathsFrom returns distances and paths from one source to every
//     vertex, keyed by label, with Order preserving graph insertion order.
//
// Semantics:
//
//   - A graph that ever received a negative-weight edge is rejected with
//     ErrNegativeWeight, whichever pair is queried.
//   - An unreachable target fails with ErrUnreachable instead of returning
//     +Inf; ShortestPathsFrom fails as a whole if any vertex is unreachable.
//   - The next vertex to settle is the one with the smallest tentative
//     distance; ties go to the vertex added first. Predecessors only change
//     on strict improvement, so paths are deterministic.
//   - Parallel edges: the first edge added between two vertices is the one
//     used (see core.Graph.Weight).
//
// Performance and complexity:
//
//   - StrategyHeap (default): O((V + E) log V) time, O(V + E) space.
//   - StrategyLinearScan:     O(V² + E) time, O(V) space.
//   - Every call snapshots the graph in O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrNegativeWeight:  the graph holds a negative-weight edge.
//   - core.ErrVertexNotFound: an unknown label was passed.
//   - ErrUnreachable:     no path between the requested vertices.
//   - ErrBrokenChain:     internal invariant violation during path walk.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, from, to string, opts ...Option) (float64, error)
//	func Path(g *core.Graph, from, to string, opts ...Option) ([]string, float64, error)
//	func ShortestPathsFrom(g *core.Graph, from string, opts ...Option) (*Result, error)
package dijkstra
