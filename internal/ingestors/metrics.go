package ingestors

import (
	"weblog-stats/internal/shared/metrics"
)

var (
	metricLoadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "loads_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
