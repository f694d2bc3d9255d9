package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stats_cache_requests_total",
		Help: "Sales stats snapshot lookups by result",
	},
	[]string{"result"},
)
