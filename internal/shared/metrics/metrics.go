package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GenerationPassesTotal counts generation passes by outcome (generated, empty, failed).
	GenerationPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_generation_passes_total",
			Help: "Total recommendation generation passes",
		},
		[]string{"outcome"},
	)

	// GeneratedTotal counts recommendation rows written by type.
	GeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total recommendation rows written by generation passes",
		},
		[]string{"type"},
	)

	// EnrichmentLookupsTotal counts target lookups by type and outcome (found, absent, error, unknown_type).
	EnrichmentLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_enrichment_lookups_total",
			Help: "Total recommendation target lookups",
		},
		[]string{"type", "outcome"},
	)

	// LoadFallbacksTotal counts list failures that were treated as an empty result.
	LoadFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_load_fallbacks_total",
			Help: "Total recommendation list failures treated as no rows",
		},
	)

	// MarkViewedTotal counts mark-viewed attempts by outcome.
	MarkViewedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_mark_viewed_total",
			Help: "Total mark-viewed attempts",
		},
		[]string{"outcome"},
	)

	// CatalogCacheTotal counts catalog cache lookups by result (hit, miss, error).
	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Total catalog cache lookups",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration tracks handler latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
