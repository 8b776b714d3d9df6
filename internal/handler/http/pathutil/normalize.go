package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization for optimal performance.
var pathPatterns = []*PathPattern{
	// User routes with IDs
	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/users/\d+/subscriptions$`), Template: "/users/:id/subscriptions"},
	{Pattern: regexp.MustCompile(`^/users/\d+/preferences$`), Template: "/users/:id/preferences"},
	{Pattern: regexp.MustCompile(`^/users/\d+/logs$`), Template: "/users/:id/logs"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /users/123) to template format (e.g., /users/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/users/123")               // "/users/:id"
//	NormalizePath("/users/42/subscriptions")  // "/users/:id/subscriptions"
//	NormalizePath("/logs")                    // "/logs" (unchanged)
//	NormalizePath("/logs/stats")              // "/logs/stats" (unchanged)
//	NormalizePath("/dispatch")                // "/dispatch" (unchanged)
//	NormalizePath("/health")                  // "/health" (unchanged)
//	NormalizePath("/unknown/path/123")        // "/unknown/path/123" (no match, return original)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/users/123?verbose=1")     // "/users/:id"
//	NormalizePath("/users/123/")              // "/users/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	// Try to match against known patterns
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	// This is safe - static paths like /health, /metrics, /logs, /dispatch
	// pass through unchanged
	return path
}
