package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	placementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards_order_service",
		Subsystem: "placement",
		Name:      "orders_total",
		Help:      "Total number of order placements by final state.",
	}, []string{"state"})

	placementFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards_order_service",
		Subsystem: "placement",
		Name:      "failures_total",
		Help:      "Total number of failed order placements by stage.",
	}, []string{"stage"})

	placementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "rewards_order_service",
		Subsystem: "placement",
		Name:      "duration_seconds",
		Help:      "Histogram of order placement durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	warningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards_order_service",
		Subsystem: "placement",
		Name:      "warnings_total",
		Help:      "Total number of best-effort steps that failed after evaluation or persistence.",
	}, []string{"stage"})

	orderCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards_order_service",
		Subsystem: "order_cache",
		Name:      "lookups_total",
		Help:      "Total number of order cache lookups by result.",
	}, []string{"result"})
)
