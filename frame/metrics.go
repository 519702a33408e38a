package frame

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchesConverted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "duckframe",
		Name:      "batches_converted_total",
		Help:      "Total number of record batches converted into table segments.",
	})
	rowsConverted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "duckframe",
		Name:      "rows_converted_total",
		Help:      "Total number of rows materialized into tables.",
	})
	conversionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "duckframe",
		Name:      "conversion_failures_total",
		Help:      "Total number of batch sequences that failed to convert.",
	})
	conversionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "duckframe",
		Name:      "conversion_duration_seconds",
		Help:      "Time spent converting one batch sequence into a table.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
)
