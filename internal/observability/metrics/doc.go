// Package metrics provides Prometheus metrics for HTTP and database
// monitoring. Domain-level dispatch metrics live next to the code that
// records them, in internal/usecase/dispatch and internal/usecase/events.
//
// Example usage:
//
//	import "notify-hub/internal/observability/metrics"
//
//	metrics.RecordHTTPRequest("POST", "/dispatch", "200", duration, reqSize, respSize)
package metrics
