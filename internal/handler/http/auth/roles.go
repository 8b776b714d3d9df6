package auth

import (
	"slices"
	"strings"
)

// Roles carried in the JWT role claim.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Permission lists the methods and path patterns a role may use. OPTIONS is
// granted to every role so CORS preflights are never rejected by authz.
type Permission struct {
	AllowedMethods []string
	// AllowedPaths entries ending in "/*" match the prefix and everything
	// under it; "/*" alone matches every path; other entries match exactly.
	AllowedPaths []string
}

// rolePermissions is the authorization table: admins can do anything,
// viewers get read-only access to delivery logs and the catalog.
var rolePermissions = map[string]Permission{
	RoleAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/*"},
	},
	RoleViewer: {
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedPaths: []string{
			"/logs",
			"/logs/*",
			"/categories",
			"/channels",
		},
	},
}

// checkRolePermission reports whether role may perform method on path.
// Unknown and empty roles are denied.
func checkRolePermission(role, method, path string) bool {
	perm, ok := rolePermissions[role]
	if !ok {
		return false
	}
	if !slices.Contains(perm.AllowedMethods, method) {
		return false
	}
	return matchesPathPattern(path, perm.AllowedPaths)
}

func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
