package auth

import (
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles token issuance using a token bucket.
// It protects the credential check from brute-force attempts while
// allowing short bursts of legitimate logins.
type LoginRateLimiter struct {
	limiter *rate.Limiter
	limit   int
}

// NewLoginRateLimiter creates a limiter allowing requestsPerSecond sustained
// logins with the given burst capacity.
//
// Example:
//
//	limiter := NewLoginRateLimiter(1.0, 5) // 1 req/s with burst of 5
func NewLoginRateLimiter(requestsPerSecond float64, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		limit:   burst,
	}
}

// Allow reports whether a login attempt may proceed right now.
// It never blocks; callers should return 429 when it reports false.
func (l *LoginRateLimiter) Allow() bool {
	return l.limiter.Allow()
}

// Headers returns the rate limit headers advertised on token responses.
func (l *LoginRateLimiter) Headers() map[string]string {
	tokens := int(l.limiter.Tokens())
	if tokens < 0 {
		tokens = 0
	}
	return map[string]string{
		"X-RateLimit-Limit":     strconv.Itoa(l.limit),
		"X-RateLimit-Remaining": strconv.Itoa(tokens),
		"X-RateLimit-Reset":     strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10),
	}
}
