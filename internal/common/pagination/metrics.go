package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus series for the paginated delivery log listing. Deep pages are
// bucketed so the cardinality of page_range stays fixed.
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifyhub_pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"status", "page_range"},
	)

	durationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notifyhub_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	totalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notifyhub_delivery_log_total_count",
			Help: "Current total number of delivery log records",
		},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifyhub_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest counts one paginated listing by status code and page bucket.
func RecordRequest(statusCode, page int) {
	requestsTotal.WithLabelValues(strconv.Itoa(statusCode), pageBucket(page)).Inc()
}

// RecordDuration observes how long an operation took, in seconds.
func RecordDuration(operation string, seconds float64) {
	durationSeconds.WithLabelValues(operation).Observe(seconds)
}

// UpdateTotalCount publishes the latest COUNT(*) of delivery log rows.
func UpdateTotalCount(count int64) {
	totalCount.Set(float64(count))
}

// RecordError counts a failed listing. errorType is "validation",
// "database", or "timeout".
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}

func pageBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
