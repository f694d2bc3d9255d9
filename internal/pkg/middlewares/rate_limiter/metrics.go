package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "rate_limit_exceeded_total",
		Help:      "Admin API requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)
