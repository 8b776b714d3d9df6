package dispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for dispatch pipeline monitoring
var (
	// dispatchTotal tracks dispatch calls by final result status
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_total",
			Help: "Total number of dispatch calls",
		},
		[]string{"result"}, // result: completed|validation_error|error
	)

	// deliveryAttemptsTotal tracks delivery attempts per channel and status
	deliveryAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_attempts_total",
			Help: "Total number of per-user delivery attempts",
		},
		[]string{"channel", "status"}, // status: sent|failed
	)

	// dispatchDuration tracks full dispatch batch duration
	dispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_duration_seconds",
			Help:    "Dispatch batch duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// auditSaveFailuresTotal tracks delivery log writes that failed
	auditSaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_save_failures_total",
			Help: "Total number of failed delivery log writes",
		},
	)
)

// RecordDispatch records one dispatch call with its final result.
func RecordDispatch(result string, duration time.Duration) {
	dispatchTotal.WithLabelValues(result).Inc()
	dispatchDuration.Observe(duration.Seconds())
}

// RecordAttempt records one per-user delivery attempt.
func RecordAttempt(channel, status string) {
	deliveryAttemptsTotal.WithLabelValues(channel, status).Inc()
}

// RecordSaveFailure records a failed audit log write.
func RecordSaveFailure() {
	auditSaveFailuresTotal.Inc()
}
