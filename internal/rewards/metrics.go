package rewards

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rewards_order_service",
		Subsystem: "rewards_gateway",
		Name:      "requests_total",
		Help:      "Total number of HTTP attempts to the rewards engine.",
	}, []string{"operation", "status"})

	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rewards_order_service",
		Subsystem: "rewards_gateway",
		Name:      "request_duration_seconds",
		Help:      "Rewards engine call latencies in seconds, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)
