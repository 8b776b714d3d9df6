// Package resilience provides reliability and fault tolerance patterns for the application.
// It currently contains the circuit breaker protecting database access for the
// delivery audit log, so a dead database fails dispatch batches fast instead of
// stalling every HTTP request behind connection timeouts.
//
// Retry logic is deliberately absent: deliveries are at-most-one-attempt per
// channel per user, and storage errors surface to the caller as error results.
//
// Usage Example:
//
//	protected := circuitbreaker.NewDBCircuitBreaker(database)
//	repo := postgres.NewDeliveryLogRepo(protected)
package resilience
