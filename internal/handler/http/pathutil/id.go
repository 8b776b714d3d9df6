package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when the {id} wildcard is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// IDFromRequest parses the {id} path value of a route registered with an
// "/users/{id}"-style pattern. Zero and negative values are rejected so
// handlers never query with an impossible ID.
func IDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
