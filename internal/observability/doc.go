// Package observability provides observability infrastructure including
// structured logging and Prometheus metrics.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//
// Example usage:
//
//	import (
//	    "notify-hub/internal/observability/logging"
//	    "notify-hub/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordHTTPRequest("GET", "/logs", "200", duration, reqSize, respSize)
//	}
package observability
