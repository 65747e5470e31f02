// Package dijkstra implements Dijkstra's shortest-path algorithm on core graphs.
//
// Every call works on an immutable core.View and a freshly allocated state
// table indexed by vertex insertion position: {distance, predecessor, settled}.
// Nothing is stored on the graph itself, so no reset is needed between calls
// and concurrent queries on the same graph are safe.
//
// Selection order is "minimum tentative distance, ties broken by insertion
// index" under both strategies, so predecessor chains are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// ShortestPath returns the length of the shortest path between from and to.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must never have received a negative edge (ErrNegativeWeight).
//  3. from and to must exist (core.ErrVertexNotFound).
//
// Fails with ErrUnreachable when to is not connected to from.
// ShortestPath(g, a, a) is 0 for any existing a.
//
// Complexity: O((V + E) log V) with StrategyHeap, O(V² + E) with StrategyLinearScan.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) (float64, error) {
	view, idx, cfg, err := prepare(g, opts, from, to)
	if err != nil {
		return 0, err
	}

	r := newRunner(view, cfg, idx[0])
	if err = r.run(idx[1]); err != nil {
		return 0, fmt.Errorf("%w: %q → %q", err, from, to)
	}

	return r.table[idx[1]].dist, nil
}

// Path returns the shortest path between from and to as a label sequence
// starting with from and ending with to, together with its length.
// Errors are those of ShortestPath.
func Path(g *core.Graph, from, to string, opts ...Option) ([]string, float64, error) {
	view, idx, cfg, err := prepare(g, opts, from, to)
	if err != nil {
		return nil, 0, err
	}

	r := newRunner(view, cfg, idx[0])
	if err = r.run(idx[1]); err != nil {
		return nil, 0, fmt.Errorf("%w: %q → %q", err, from, to)
	}
	path, err := r.walk(idx[1])
	if err != nil {
		return nil, 0, err
	}

	return path, r.table[idx[1]].dist, nil
}

// ShortestPathsFrom computes distances and paths from from to every vertex.
//
// A single run settles the whole graph; since state is call-scoped, each
// target's distance and predecessor chain are exactly those a dedicated
// ShortestPath(from, target) run would produce. If any vertex is
// unreachable the call fails with ErrUnreachable and no partial result.
func ShortestPathsFrom(g *core.Graph, from string, opts ...Option) (*Result, error) {
	view, idx, cfg, err := prepare(g, opts, from)
	if err != nil {
		return nil, err
	}

	r := newRunner(view, cfg, idx[0])
	if err = r.run(-1); err != nil {
		return nil, err
	}

	n := view.Len()
	res := &Result{
		Source:    from,
		Order:     view.Labels(),
		Distances: make(map[string]float64, n),
		Paths:     make(map[string][]string, n),
	}
	var path []string
	for i := 0; i < n; i++ {
		if !r.table[i].settled {
			return nil, fmt.Errorf("%w: %q → %q", ErrUnreachable, from, view.Label(i))
		}
		if path, err = r.walk(i); err != nil {
			return nil, err
		}
		res.Distances[view.Label(i)] = r.table[i].dist
		res.Paths[view.Label(i)] = path
	}

	return res, nil
}

// prepare applies options, validates the graph, snapshots it and resolves labels.
func prepare(g *core.Graph, opts []Option, labels ...string) (*core.View, []int, Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, cfg, ErrNilGraph
	}

	view := g.Snapshot()
	if !view.NonNegative() {
		return nil, nil, cfg, ErrNegativeWeight
	}

	idx := make([]int, len(labels))
	for i, label := range labels {
		j, ok := view.Index(label)
		if !ok {
			return nil, nil, cfg, fmt.Errorf("dijkstra: %w: %q", core.ErrVertexNotFound, label)
		}
		idx[i] = j
	}

	return view, idx, cfg, nil
}

// state is one row of the call-scoped state table.
type state struct {
	dist    float64 // tentative distance, +Inf while unreached
	prev    int     // predecessor index, -1 if none
	settled bool    // distance is final
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view   *core.View
	cfg    Options
	source int
	table  []state
	pq     nodePQ // used by StrategyHeap only
}

// newRunner allocates the state table with source settled at distance 0.
func newRunner(view *core.View, cfg Options, source int) *runner {
	n := view.Len()
	r := &runner{
		view:   view,
		cfg:    cfg,
		source: source,
		table:  make([]state, n),
	}
	for i := range r.table {
		r.table[i] = state{dist: math.Inf(1), prev: -1}
	}
	r.table[source].dist = 0
	r.table[source].settled = true

	if cfg.Strategy == StrategyHeap {
		r.pq = make(nodePQ, 0, n)
		heap.Init(&r.pq)
	}

	return r
}

// run settles vertices until target is settled. A negative target settles
// every reachable vertex and never fails.
//
// Returns ErrUnreachable when target is still unsettled but every remaining
// vertex has infinite distance.
func (r *runner) run(target int) error {
	current := r.source
	for current != target {
		r.relax(current)

		next, ok := r.next()
		if !ok {
			if target < 0 {
				return nil
			}

			return ErrUnreachable
		}
		r.table[next].settled = true
		current = next
	}

	return nil
}

// relax improves tentative distances of u's unsettled neighbors.
// Only strict improvements update the predecessor.
func (r *runner) relax(u int) {
	du := r.table[u].dist
	var cand float64
	for _, a := range r.view.Arcs(u) {
		st := &r.table[a.To]
		if st.settled {
			continue
		}
		cand = du + a.Weight
		if cand >= st.dist {
			continue
		}
		st.dist = cand
		st.prev = u
		if r.cfg.Strategy == StrategyHeap {
			heap.Push(&r.pq, nodeItem{index: a.To, dist: cand})
		}
	}
}

// next selects the unsettled vertex with the smallest finite distance.
func (r *runner) next() (int, bool) {
	if r.cfg.Strategy == StrategyLinearScan {
		return r.scan()
	}

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		// Stale entries of already settled vertices are skipped.
		if r.table[item.index].settled {
			continue
		}

		return item.index, true
	}

	return -1, false
}

// scan is the linear-scan selection: first minimum in insertion order wins.
func (r *runner) scan() (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range r.table {
		if r.table[i].settled {
			continue
		}
		if r.table[i].dist < bestDist {
			best, bestDist = i, r.table[i].dist
		}
	}

	return best, best >= 0
}

// walk follows predecessors from target back to the source, bounded by V steps,
// and returns the labels in source → target order.
func (r *runner) walk(target int) ([]string, error) {
	n := len(r.table)
	path := make([]string, 0, 8)
	v := target
	for steps := 0; ; steps++ {
		if v < 0 || steps >= n {
			return nil, fmt.Errorf("%w: %q", ErrBrokenChain, r.view.Label(target))
		}
		path = append(path, r.view.Label(v))
		if v == r.source {
			break
		}
		v = r.table[v].prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem is a heap entry: a vertex index and the distance it was pushed with.
type nodeItem struct {
	index int
	dist  float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, index).
// We use the "lazy-decrease-key" approach: an improved distance pushes a new
// entry and the outdated one is skipped when popped (vertex already settled).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion index for a stable tie-break.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].index < pq[j].index
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
