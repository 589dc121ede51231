package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	submissionsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rewards_order_service",
			Subsystem: "kafka_consumer",
			Name:      "submissions_processed_total",
			Help:      "Total number of order submissions placed successfully",
		},
	)

	submissionsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rewards_order_service",
			Subsystem: "kafka_consumer",
			Name:      "submissions_failed_total",
			Help:      "Total number of failed order submissions by reason",
		},
		[]string{"reason"},
	)

	submissionsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rewards_order_service",
			Subsystem: "kafka_consumer",
			Name:      "submissions_dlq_total",
			Help:      "Total number of order submissions written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rewards_order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	submissionProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rewards_order_service",
			Subsystem: "kafka_consumer",
			Name:      "submission_processing_duration_seconds",
			Help:      "Histogram of order submission processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	submissionsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rewards_order_service",
			Subsystem: "kafka_consumer",
			Name:      "submissions_in_progress",
			Help:      "Number of order submissions currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		submissionsProcessed,
		submissionsFailed,
		submissionsDLQ,
		commitErrors,
		submissionProcessingDuration,
		submissionsInProgress,
	)
}
