// Package metrics exposes the process-wide prometheus instruments. The demo
// server publishes them on /metrics; the TUI binary still records them so a
// scrape-capable surface can be added without touching call sites.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts live cache reads, labelled by cache namespace.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roastline_cache_hits_total",
		Help: "Cache reads satisfied by a live entry.",
	}, []string{"namespace"})

	// CacheMisses counts reads that fell through to the backend.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roastline_cache_misses_total",
		Help: "Cache reads that missed or hit an expired entry.",
	}, []string{"namespace"})

	// BackendRequests counts remote store calls by operation and outcome.
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roastline_backend_requests_total",
		Help: "Remote store calls by operation and outcome.",
	}, []string{"op", "outcome"})
)

// ObserveBackend records one backend call outcome.
func ObserveBackend(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	BackendRequests.WithLabelValues(op, outcome).Inc()
}
