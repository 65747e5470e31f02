// Package router wraps a core.Graph in a query façade for long-lived,
// concurrently used graphs.
//
// Mutations and queries are serialized by a RWMutex: writers (AddVertex,
// AddEdge) exclude readers, queries run concurrently with each other.
// All-pairs lookups go through a floydwarshall.Cache so the O(V³) closure is
// recomputed only after the graph changes. Every query is logged at debug
// level and recorded in the optional Prometheus metrics.
package router

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/floydwarshall"
	"github.com/katalvlaran/waypath/metrics"
)

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics enables Prometheus recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

// WithStrategy selects the Dijkstra selection strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(r *Router) { r.strategy = s }
}

// Router serves shortest-path queries over one graph.
type Router struct {
	mu       sync.RWMutex
	g        *core.Graph
	apsp     *floydwarshall.Cache
	strategy dijkstra.Strategy
	log      *slog.Logger
	metrics  *metrics.Metrics
}

// New wraps g. A nil g starts from an empty graph.
func New(g *core.Graph, opts ...Option) *Router {
	if g == nil {
		g = core.NewGraph()
	}
	r := &Router{
		g:        g,
		apsp:     floydwarshall.NewCache(g),
		strategy: dijkstra.StrategyHeap,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Graph returns a deep copy of the routed graph.
func (r *Router) Graph() *core.Graph {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.g.Clone()
}

// AddVertex adds a vertex (idempotent).
func (r *Router) AddVertex(label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.g.AddVertex(label)
}

// AddEdge adds an undirected edge between existing vertices.
func (r *Router) AddEdge(from, to string, weight float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.g.AddEdge(from, to, weight); err != nil {
		return err
	}
	if weight < 0 {
		r.log.Warn("negative edge added, dijkstra disabled for this graph",
			"from", from, "to", to, "weight", weight)
	}

	return nil
}

// ShortestPath runs single-pair Dijkstra.
func (r *Router) ShortestPath(from, to string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := time.Now()
	d, err := dijkstra.ShortestPath(r.g, from, to, dijkstra.WithStrategy(r.strategy))
	r.observe(metrics.EngineDijkstra, start, err, "from", from, "to", to)

	return d, err
}

// Path runs single-pair Dijkstra and returns the label sequence.
func (r *Router) Path(from, to string) ([]string, float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := time.Now()
	p, d, err := dijkstra.Path(r.g, from, to, dijkstra.WithStrategy(r.strategy))
	r.observe(metrics.EngineDijkstra, start, err, "from", from, "to", to)

	return p, d, err
}

// ShortestPathsFrom runs single-source Dijkstra.
func (r *Router) ShortestPathsFrom(from string) (*dijkstra.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := time.Now()
	res, err := dijkstra.ShortestPathsFrom(r.g, from, dijkstra.WithStrategy(r.strategy))
	r.observe(metrics.EngineDijkstra, start, err, "from", from)

	return res, err
}

// AllPairs returns the cached all-pairs table, recomputing it if the graph changed.
func (r *Router) AllPairs() (*floydwarshall.Distances, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := time.Now()
	d, hit, err := r.apsp.Distances()
	if err == nil {
		r.metrics.CacheLookup(hit)
	}
	r.observe(metrics.EngineFloydWarshall, start, err, "cache_hit", hit)

	return d, err
}

// Distance returns the Floyd–Warshall distance between two labels.
func (r *Router) Distance(from, to string) (float64, error) {
	d, err := r.AllPairs()
	if err != nil {
		return 0, err
	}

	return d.Between(from, to)
}

// observe logs and records one query.
func (r *Router) observe(engine string, start time.Time, err error, attrs ...any) {
	elapsed := time.Since(start)
	outcome := outcomeOf(err)
	r.metrics.ObserveQuery(engine, outcome, elapsed)

	attrs = append(attrs, "engine", engine, "outcome", outcome, "elapsed", elapsed)
	if err != nil {
		attrs = append(attrs, "err", err)
	}
	r.log.Debug("query", attrs...)
}

// outcomeOf maps an engine error to a metrics outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, core.ErrVertexNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return metrics.OutcomeNegativeWeight
	case errors.Is(err, dijkstra.ErrUnreachable):
		return metrics.OutcomeUnreachable
	default:
		return metrics.OutcomeError
	}
}
