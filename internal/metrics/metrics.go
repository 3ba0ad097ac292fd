package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream API calls (catalog, completion)
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_upstream_requests_total",
			Help: "Total number of upstream API calls by service and outcome",
		},
		[]string{"service", "outcome"}, // outcome: success, timeout, quota, circuit_open, upstream
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "curator_upstream_request_duration_seconds",
			Help:    "Duration of upstream API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// Reconciler
	Replies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_replies_total",
			Help: "Recommendation replies by variant and whether the model output parsed",
		},
		[]string{"variant", "result"}, // result: parsed, fallback, no_candidates
	)

	EnrichedItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_enriched_items_total",
			Help: "Recommendation items by variant and whether a catalog record matched",
		},
		[]string{"variant", "result"}, // result: matched, unmatched
	)

	// Circuit breakers
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "curator_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_http_requests_total",
			Help: "Inbound HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
)
