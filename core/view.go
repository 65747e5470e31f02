// File: view.go
// Role: Immutable, index-addressed snapshot of a Graph for algorithms.
// Determinism:
//   - Index i is the vertex insertion position; Arcs(i) keeps insertion order.
// Concurrency:
//   - Snapshot takes the read lock once; a View is never mutated afterwards
//     and may be shared freely between goroutines.

package core

import "math"

// Arc is a traversable connection from a vertex to the neighbor at index To.
type Arc struct {
	To     int
	Weight float64
}

// View is a frozen copy of a Graph's vertex table and adjacency.
//
// Arcs are reduced to the weight lookup semantics of Graph.Weight: one arc
// per distinct neighbor carrying the first matching edge's weight, and no
// self-loops (distance to self is always 0).
type View struct {
	labels      []string
	index       map[string]int
	arcs        [][]Arc
	nonNegative bool
	version     uint64
}

// Snapshot returns an immutable View of the current graph.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.labels)
	v := &View{
		labels:      make([]string, n),
		index:       make(map[string]int, n),
		arcs:        make([][]Arc, n),
		nonNegative: g.nonNegative,
		version:     g.version,
	}
	copy(v.labels, g.labels)
	for label, i := range g.index {
		v.index[label] = i
	}

	// seen[w] == u+1 marks that w already has an arc from u.
	seen := make([]int, n)
	for u, list := range g.adjacency {
		out := make([]Arc, 0, len(list))
		for _, a := range list {
			if a.to == u || seen[a.to] == u+1 {
				continue
			}
			seen[a.to] = u + 1
			out = append(out, Arc{To: a.to, Weight: a.weight})
		}
		v.arcs[u] = out
	}

	return v
}

// Len returns the number of vertices.
func (v *View) Len() int { return len(v.labels) }

// Label returns the label at insertion index i.
func (v *View) Label(i int) string { return v.labels[i] }

// Labels returns a copy of all labels in insertion order.
func (v *View) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)

	return out
}

// Index resolves label to its insertion index.
func (v *View) Index(label string) (int, bool) {
	i, ok := v.index[label]

	return i, ok
}

// Arcs returns the deduplicated arcs leaving vertex i. The slice is shared;
// callers must not modify it.
func (v *View) Arcs(i int) []Arc { return v.arcs[i] }

// WeightAt returns the edge weight between vertices i and j:
// 0 when i == j, the first matching edge otherwise, +Inf if none.
func (v *View) WeightAt(i, j int) float64 {
	if i == j {
		return 0
	}
	for _, a := range v.arcs[i] {
		if a.To == j {
			return a.Weight
		}
	}

	return math.Inf(1)
}

// NonNegative mirrors Graph.NonNegative at snapshot time.
func (v *View) NonNegative() bool { return v.nonNegative }

// Version mirrors Graph.Version at snapshot time.
func (v *View) Version() uint64 { return v.version }
