// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core graphs.
//
// Options:
//
//	– Strategy: how the next vertex to settle is selected
//	   • StrategyHeap (default): binary heap keyed on (distance, insertion index).
//	   • StrategyLinearScan: scan all unsettled vertices, O(V) per step.
//	  Both break ties by insertion index, so results are identical.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNegativeWeight if the graph ever received a negative-weight edge.
//	– ErrUnreachable    if a requested vertex cannot be reached from the source.
//	– ErrBrokenChain    if a predecessor chain does not lead back to the source.
//
// Unknown labels are reported as core.ErrVertexNotFound.
package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that the graph contains (or once received)
	// a negative edge weight, which Dijkstra cannot handle.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that no path exists between the requested vertices.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBrokenChain indicates that walking predecessors did not reach the source
	// within V steps. It signals an internal invariant violation.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain broken")
)

// Strategy selects how the next vertex to settle is found.
type Strategy int

const (
	// StrategyHeap uses a lazy-decrease-key min-heap: O((V + E) log V).
	StrategyHeap Strategy = iota

	// StrategyLinearScan scans every unsettled vertex on each step: O(V²).
	StrategyLinearScan
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyLinearScan:
		return "linear"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Strategy Strategy // vertex selection strategy
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy sets the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the defaults: StrategyHeap.
func DefaultOptions() Options {
	return Options{Strategy: StrategyHeap}
}

// Result holds single-source shortest paths.
//
// Order lists every vertex label in graph insertion order; Distances and
// Paths are keyed by the same labels. Paths[Source] is [Source].
type Result struct {
	Source    string
	Order     []string
	Distances map[string]float64
	Paths     map[string][]string
}

// Distance returns the shortest distance to label and whether it is known.
func (r *Result) Distance(label string) (float64, bool) {
	d, ok := r.Distances[label]

	return d, ok
}

// Path returns the label sequence from Source to label (nil if unknown).
func (r *Result) Path(label string) []string {
	return r.Paths[label]
}
