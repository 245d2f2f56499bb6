// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afcare_api_requests_total",
			Help: "Total number of platform API requests issued",
		},
		[]string{"resource", "method"},
	)

	APIRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afcare_api_requests_failed_total",
			Help: "Total number of platform API requests that failed",
		},
		[]string{"resource", "method", "error_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "afcare_api_request_duration_seconds",
			Help: "Duration of platform API requests in seconds",
		},
		[]string{"resource", "method"},
	)

	SessionLogouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "afcare_session_logouts_total",
			Help: "Number of forced logouts triggered by 401 responses",
		},
	)
)
