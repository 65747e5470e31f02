// Package core provides a small, thread-safe, undirected weighted Graph
// with insertion-ordered vertices.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are unique string labels; the position at which a label was
//     first added is its stable index for every algorithm.
//   - Edges are undirected and weighted (float64). AddEdge mirrors the edge
//     onto both endpoints; parallel edges and self-loops are stored as given.
//   - Weight lookup returns the FIRST matching edge, 0 for a vertex to
//     itself and +Inf when no edge exists.
//   - NonNegative() is a sticky flag: the first negative-weight edge clears
//     it forever. Dijkstra refuses to run once it is cleared.
//   - Version() changes on every mutation so derived results can be cached.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label string) error            // O(1), idempotent
//	HasVertex(label string) bool             // O(1)
//	IndexOf(label string) (int, bool)        // O(1)
//	Vertices() []string                      // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error // O(1), endpoints must exist
//	Neighbors(label string) ([]Edge, error)   // O(deg)
//	Edges() []Edge                            // O(E)
//	Weight(from, to string) (float64, error)  // O(deg(from))
//
//	// Snapshots
//	Snapshot() *View                          // O(V+E), immutable, index-addressed
//	Clone() *Graph                            // O(V+E), deep copy
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex label
//	ErrVertexNotFound – missing vertex (wrapped with the offending label)
//	ErrBadWeight      – NaN edge weight
package core
