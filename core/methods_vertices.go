// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order.
//   - IndexOf() is stable for the lifetime of the graph (no vertex removal).
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Re-adding an existing label is a no-op and keeps the original position.
// The new vertex starts with an empty adjacency list.
//
// Errors:
//   - ErrEmptyVertexID: if label == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[label]; exists {
		return nil
	}

	g.index[label] = len(g.labels)
	g.labels = append(g.labels, label)
	g.adjacency = append(g.adjacency, nil)
	g.version++

	return nil
}

// HasVertex reports whether the vertex label exists (empty label ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	if label == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[label]

	return ok
}

// IndexOf returns the insertion index of label.
// Complexity: O(1).
func (g *Graph) IndexOf(label string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[label]

	return i, ok
}

// Vertices returns a copy of all vertex labels in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// lookupLocked resolves label to its index. Caller holds g.mu.
func (g *Graph) lookupLocked(label string) (int, error) {
	if label == "" {
		return 0, ErrEmptyVertexID
	}
	i, ok := g.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	return i, nil
}
