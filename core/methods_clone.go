// File: methods_clone.go
// Role: Deep copy of a Graph.
// Concurrency:
//   - Read lock on the source; the clone is an independent instance.

package core

// Clone returns a deep copy of g: same vertex order, same edges in the same
// order, same NonNegative flag and Version. Mutating either graph afterwards
// does not affect the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		labels:      make([]string, len(g.labels)),
		index:       make(map[string]int, len(g.index)),
		adjacency:   make([][]arc, len(g.adjacency)),
		edges:       make([]Edge, len(g.edges)),
		nonNegative: g.nonNegative,
		version:     g.version,
	}
	copy(out.labels, g.labels)
	copy(out.edges, g.edges)
	for label, i := range g.index {
		out.index[label] = i
	}
	for i, list := range g.adjacency {
		if list == nil {
			continue
		}
		out.adjacency[i] = append([]arc(nil), list...)
	}

	return out
}
