package store

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	seeds        prometheus.Counter
	queries      *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec
}

func newMetrics(r prometheus.Registerer) *metrics {
	m := &metrics{
		seeds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "conduit_store_seeds_total",
			Help: "Number of states inserted.",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "conduit_store_queries_total",
			Help: "Number of neighbor queries by backend.",
		}, []string{"backend"}),
		queryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "conduit_store_query_duration_seconds",
			Help:    "Neighbor query latency by backend.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"backend"}),
	}
	if r == nil {
		return m
	}
	m.seeds = register(r, m.seeds)
	m.queries = register(r, m.queries)
	m.queryLatency = register(r, m.queryLatency)
	return m
}

// register returns the already registered collector when another store
// shares the registerer.
func register[C prometheus.Collector](r prometheus.Registerer, c C) C {
	if err := r.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func (m *metrics) observeQuery(backend string, started time.Time) {
	m.queries.WithLabelValues(backend).Inc()
	m.queryLatency.WithLabelValues(backend).Observe(time.Since(started).Seconds())
}
