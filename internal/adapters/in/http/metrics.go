package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal tracks total HTTP requests by route and status.
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// requestDuration tracks HTTP request duration by route.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// claimsTotal tracks rider claim attempts by outcome. The won/lost split
	// makes claim contention directly observable.
	claimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_claims_total",
			Help: "Total number of job claim attempts",
		},
		[]string{"outcome"},
	)
)
