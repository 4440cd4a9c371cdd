package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triagesense_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triagesense_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	TriageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triagesense_triage_requests_total",
			Help: "Total triage requests by assigned urgency tier",
		},
		[]string{"level"},
	)

	ConverseTurns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "triagesense_converse_turns_total",
			Help: "Total follow-up turns",
		},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triagesense_upstream_errors_total",
			Help: "Total model-call failures",
		},
		[]string{"operation"},
	)

	DroppedWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triagesense_dropped_writes_total",
			Help: "Persistence failures that were logged but did not fail the request",
		},
		[]string{"write"},
	)
)
