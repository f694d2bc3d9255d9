package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of admin API requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "http_requests_total",
			Help:      "Admin API requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
)
