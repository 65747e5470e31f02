// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building and querying small weighted
// undirected graphs.
//
// A single sync.RWMutex guards the vertex table and the adjacency lists.
// Algorithms never walk the live structure: they take an immutable View
// via Snapshot and run lock-free on it.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex label is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - edge weight is NaN.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge is one undirected connection between two vertices.
//
// From and To are only an orientation of convenience: the edge is traversable
// in both directions with the same Weight.
type Edge struct {
	// From is the first endpoint label as passed to AddEdge
	// (or the queried vertex when returned by Neighbors).
	From string

	// To is the second endpoint label.
	To string

	// Weight is the traversal cost in either direction.
	Weight float64
}

// arc is one entry of a vertex's adjacency list: the neighbor's insertion
// index and the weight of the edge leading there.
type arc struct {
	to     int
	weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex table for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.labels = make([]string, 0, n)
			g.index = make(map[string]int, n)
			g.adjacency = make([][]arc, 0, n)
		}
	}
}

// Graph is an undirected, weighted graph with insertion-ordered vertices.
//
// Vertices are identified by their label and keep the position at which they
// were first added; that position is their stable index for every algorithm.
// Parallel edges and self-loops are stored as given.
//
// nonNegative starts true and is cleared forever by the first edge with a
// negative weight. version increases on every successful mutation.
type Graph struct {
	mu sync.RWMutex // guards everything below

	labels    []string       // insertion-ordered vertex labels
	index     map[string]int // label → position in labels
	adjacency [][]arc        // adjacency[i] lists the arcs leaving labels[i]
	edges     []Edge         // every undirected edge once, insertion order

	nonNegative bool
	version     uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:       make(map[string]int),
		nonNegative: true,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NonNegative reports whether every edge ever added had a weight >= 0.
// Once false it stays false: there is no edge removal.
func (g *Graph) NonNegative() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nonNegative
}

// Version returns a counter that changes on every successful mutation.
// Caches keyed on it are invalidated by AddVertex and AddEdge.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}
