package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gs2_realtime_client",
			Name:      "requests_total",
			Help:      "Requests sent to the realtime endpoint, by outcome.",
		},
		[]string{"operation", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gs2_realtime_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of realtime endpoint requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// statusClass collapses a status code to "2xx", "4xx", ... for labelling.
// Zero means the request never got a response.
func statusClass(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
