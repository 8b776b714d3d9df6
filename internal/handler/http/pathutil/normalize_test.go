package pathutil_test

import (
	"testing"

	"notify-hub/internal/handler/http/pathutil"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		// Dynamic user routes
		{"user detail", "/users/123", "/users/:id"},
		{"another user", "/users/456789", "/users/:id"},
		{"user subscriptions", "/users/42/subscriptions", "/users/:id/subscriptions"},
		{"user preferences", "/users/42/preferences", "/users/:id/preferences"},
		{"user logs", "/users/42/logs", "/users/:id/logs"},

		// Static routes pass through
		{"logs list", "/logs", "/logs"},
		{"log stats", "/logs/stats", "/logs/stats"},
		{"dispatch", "/dispatch", "/dispatch"},
		{"dispatch stream", "/dispatch/stream", "/dispatch/stream"},
		{"categories", "/categories", "/categories"},
		{"channels", "/channels", "/channels"},
		{"health", "/health", "/health"},
		{"metrics", "/metrics", "/metrics"},
		{"auth token", "/auth/token", "/auth/token"},

		// Query params and trailing slashes
		{"query params stripped", "/users/123?verbose=1", "/users/:id"},
		{"trailing slash stripped", "/users/123/", "/users/:id"},
		{"static with query", "/logs?status=failed", "/logs"},

		// Unknown paths return as-is
		{"unknown path", "/unknown/path/123", "/unknown/path/123"},
		{"root", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pathutil.NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
