package aggregators

import (
	"weblog-stats/internal/shared/metrics"
)

// metricQueriesTotal counts queries answered from the record store, labelled by query name.
var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "queries_total",
		},
		[]string{metrics.FieldQuery},
	)
)
