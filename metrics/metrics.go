// Package metrics defines the Prometheus collectors for shortest-path queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine label values.
const (
	EngineDijkstra      = "dijkstra"
	EngineFloydWarshall = "floyd_warshall"
)

// Outcome label values.
const (
	OutcomeOK             = "ok"
	OutcomeNotFound       = "vertex_not_found"
	OutcomeNegativeWeight = "negative_weight"
	OutcomeUnreachable    = "unreachable"
	OutcomeError          = "error"
)

// Metrics groups the query collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	CacheLookups  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "waypath_queries_total",
			Help: "Total number of shortest-path queries, labelled by engine and outcome.",
		}, []string{"engine", "outcome"}),

		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "waypath_query_duration_seconds",
			Help:    "Shortest-path query latency in seconds.",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"engine"}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "waypath_apsp_cache_total",
			Help: "All-pairs distance table lookups, labelled by hit or miss.",
		}, []string{"result"}),
	}
}

// ObserveQuery records one finished query.
func (m *Metrics) ObserveQuery(engine, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(engine, outcome).Inc()
	m.QueryDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// CacheLookup records whether the all-pairs table was served from cache.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
