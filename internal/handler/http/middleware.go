package http

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"notify-hub/internal/handler/http/requestid"
	"notify-hub/internal/handler/http/respond"
	"notify-hub/internal/handler/http/responsewriter"
)

// Logging emits one structured access log line per request.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := responsewriter.Wrap(w)

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			logger.Info("request completed",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", duration),
				slog.String("duration_ms", fmt.Sprintf("%.2f", duration.Seconds()*1000)),
			)
		})
	}
}

// Recover turns handler panics into logged 500 responses so one broken
// request cannot take the process down.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
					logger.Error("panic recovered",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody caps request bodies at the configured size.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// visitor tracks recent request times for one client IP.
type visitor struct {
	mu   sync.Mutex
	seen []time.Time
}

// RateLimiter limits requests per client IP over a sliding window.
type RateLimiter struct {
	visitors  sync.Map // map[string]*visitor
	limit     int
	window    time.Duration
	sweepMu   sync.Mutex
	lastSweep time.Time
}

// NewRateLimiter allows limit requests per window per client IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{limit: limit, window: window, lastSweep: time.Now()}
}

// Limit rejects clients over their budget with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rl.sweep()
		if !rl.allow(extractIP(r)) {
			respond.SafeError(w, http.StatusTooManyRequests, fmt.Errorf("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := time.Now()
	val, _ := rl.visitors.LoadOrStore(ip, &visitor{seen: make([]time.Time, 0, rl.limit)})
	v := val.(*visitor)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.seen = pruneBefore(v.seen, now.Add(-rl.window))
	if len(v.seen) >= rl.limit {
		return false
	}
	v.seen = append(v.seen, now)
	return true
}

// pruneBefore drops timestamps at or before cutoff, keeping order.
func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	kept := times[:0]
	for _, ts := range times {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

// sweep drops idle visitors every ten minutes so the map does not grow
// with every IP ever seen.
func (rl *RateLimiter) sweep() {
	rl.sweepMu.Lock()
	defer rl.sweepMu.Unlock()

	if time.Since(rl.lastSweep) < 10*time.Minute {
		return
	}
	rl.lastSweep = time.Now()

	cutoff := time.Now().Add(-2 * rl.window)
	rl.visitors.Range(func(key, val interface{}) bool {
		v := val.(*visitor)
		v.mu.Lock()
		idle := len(pruneBefore(v.seen, cutoff)) == 0
		v.mu.Unlock()
		if idle {
			rl.visitors.Delete(key)
		}
		return true
	})
}

// extractIP resolves the client address, trusting X-Forwarded-For and
// X-Real-IP ahead of the socket peer for proxied deployments.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
