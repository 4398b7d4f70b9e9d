package http

import (
	"weblog-stats/internal/shared/metrics"
)

var (
	// path is the chi route pattern, e.g. /days/clients, so query strings never become labels
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			// loads of large files take seconds, queries take microseconds
			Buckets: metrics.ExponentialBuckets(0.0005, 4, 10),
		},
		[]string{"method", "path", "status", metrics.FieldErrorCode},
	)
)
