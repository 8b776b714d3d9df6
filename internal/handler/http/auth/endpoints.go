package auth

import "strings"

// PublicEndpoints are reachable without a token: probe and scrape targets,
// plus the token endpoint itself.
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/auth/token",
}

// IsPublicEndpoint reports whether path needs no authentication. Matching
// is deliberately strict: "/health" covers "/health", "/health/" and
// "/health?x=1" but never "/healthcheck" or "/health/detail". An entry
// with a trailing slash matches the whole subtree.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" || strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
