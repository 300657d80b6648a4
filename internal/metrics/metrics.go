package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_decisions_total",
			Help: "Total routing decisions by outcome",
		},
		[]string{"outcome"},
	)

	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)
)

func init() {
	prometheus.MustRegister(DecisionsTotal)
	prometheus.MustRegister(ResponseTime)
}
