// Package pagination implements offset pagination for the delivery log
// listing endpoints: query parameter parsing, offset/page arithmetic, and
// the response envelope shared by paginated handlers.
package pagination

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
)

// Config bounds what callers may request per page.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns the built-in limits: page 1, 20 per page, 100 max.
func DefaultConfig() Config {
	return Config{DefaultPage: 1, DefaultLimit: 20, MaxLimit: 100}
}

// LoadFromEnv reads limits from PAGINATION_DEFAULT_PAGE,
// PAGINATION_DEFAULT_LIMIT and PAGINATION_MAX_LIMIT, keeping the built-in
// value for any variable that is unset or not an integer.
func LoadFromEnv() Config {
	base := DefaultConfig()
	return Config{
		DefaultPage:  envInt("PAGINATION_DEFAULT_PAGE", base.DefaultPage),
		DefaultLimit: envInt("PAGINATION_DEFAULT_LIMIT", base.DefaultLimit),
		MaxLimit:     envInt("PAGINATION_MAX_LIMIT", base.MaxLimit),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Params is a validated page request. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// ParseQueryParams reads page and limit from the request query string.
// Missing parameters take the configured defaults; out-of-range or
// non-numeric values are an error, not silently clamped, so clients learn
// about bad requests instead of getting an unexpected window.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	params := Params{Page: cfg.DefaultPage, Limit: cfg.DefaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > cfg.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", cfg.MaxLimit)
		}
		params.Limit = limit
	}
	return params, nil
}

// Offset converts the 1-based page into a SQL OFFSET.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMetadata derives the response metadata for a page over total items.
// An empty result set still reports one page so clients always have a
// valid page range to render.
func NewMetadata(p Params, total int64) Metadata {
	pages := 1
	if total > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Metadata{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: pages,
	}
}
