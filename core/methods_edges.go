// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Neighbors/Edges/EdgeCount/Weight.
//
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - Weight() returns the FIRST matching edge when parallel edges exist.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "math"

// AddEdge records an undirected edge between two existing vertices.
//
// Steps:
//  1. Reject NaN weights.
//  2. Resolve both endpoints; a missing one fails before any mutation.
//  3. Append the arc to both adjacency lists (a self-loop is stored once).
//  4. A negative weight clears NonNegative for the lifetime of the graph.
//
// Errors:
//   - ErrEmptyVertexID: an endpoint label is empty.
//   - ErrVertexNotFound: an endpoint was never added (wrapped with its label).
//   - ErrBadWeight: weight is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if math.IsNaN(weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := g.lookupLocked(from)
	if err != nil {
		return err
	}
	v, err := g.lookupLocked(to)
	if err != nil {
		return err
	}

	g.adjacency[u] = append(g.adjacency[u], arc{to: v, weight: weight})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], arc{to: u, weight: weight})
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	if weight < 0 {
		g.nonNegative = false
	}
	g.version++

	return nil
}

// Neighbors returns the edges incident to label in insertion order,
// oriented so that Edge.From == label. Parallel edges are repeated.
//
// Complexity: O(deg(label)).
func (g *Graph) Neighbors(label string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, err := g.lookupLocked(label)
	if err != nil {
		return nil, err
	}

	out := make([]Edge, 0, len(g.adjacency[u]))
	for _, a := range g.adjacency[u] {
		out = append(out, Edge{From: label, To: g.labels[a.to], Weight: a.weight})
	}

	return out, nil
}

// Edges returns every undirected edge once, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges added.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Weight returns the weight of the edge between from and to.
//
// The same vertex on both sides short-circuits to 0. Otherwise the first
// matching edge in from's adjacency list wins and +Inf means "no edge".
//
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, err := g.lookupLocked(from)
	if err != nil {
		return 0, err
	}
	v, err := g.lookupLocked(to)
	if err != nil {
		return 0, err
	}

	return firstWeight(g.adjacency[u], u, v), nil
}

// firstWeight scans arcs (leaving u) for the first one reaching v.
func firstWeight(arcs []arc, u, v int) float64 {
	if u == v {
		return 0
	}
	for _, a := range arcs {
		if a.to == v {
			return a.weight
		}
	}

	return math.Inf(1)
}
