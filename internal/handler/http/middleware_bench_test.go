package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	handler := Logging(logger)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/logs", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkRateLimiterAllow(b *testing.B) {
	limiter := NewRateLimiter(100, time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.allow("192.0.2.1")
	}
}
