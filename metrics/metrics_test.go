package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/metrics"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveQuery(metrics.EngineDijkstra, metrics.OutcomeOK, time.Millisecond)
	m.ObserveQuery(metrics.EngineDijkstra, metrics.OutcomeUnreachable, time.Millisecond)
	m.ObserveQuery(metrics.EngineDijkstra, metrics.OutcomeOK, time.Millisecond)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Queries.WithLabelValues(metrics.EngineDijkstra, metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(metrics.EngineDijkstra, metrics.OutcomeUnreachable)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.QueryDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveQuery(metrics.EngineFloydWarshall, metrics.OutcomeOK, time.Second)
		m.CacheLookup(false)
	})
}

func TestMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}
