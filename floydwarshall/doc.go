// Package floydwarshall computes all-pairs shortest distances over a
// core.Graph with the Floyd–Warshall algorithm.
//
// Vertices are addressed through an explicit label → index table built from
// graph insertion order when the matrix is constructed; labels carry no
// meaning beyond identity.
//
// Semantics:
//
//   - dist[i][j] starts as core.Graph.Weight(v_i, v_j): 0 on the diagonal,
//     the first matching edge's weight, +Inf when no edge exists.
//   - Negative edge weights are accepted. Negative cycles (any negative
//     undirected edge forms one) are not detected; affected distances are
//     understated rather than reported as an error.
//   - Unreachable pairs stay +Inf; Floyd–Warshall never fails on reachability.
//
// API:
//
//	AllPairs(g) (*Distances, error)              // O(V³), fresh every call
//	AllPairsDistances(g) ([][]float64, error)    // matrix only
//	Distance(g, from, to) (float64, error)       // recomputes the full matrix
//	NewCache(g).Distance(from, to)               // recomputes only after g changes
package floydwarshall
