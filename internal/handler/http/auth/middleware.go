package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"notify-hub/internal/handler/http/respond"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxUser ctxKey = "user"

// UserFromContext returns the authenticated user's subject claim, if any.
func UserFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(ctxUser).(string); ok {
		return user
	}
	return ""
}

// Authz gates every non-public endpoint behind a bearer token, for ALL
// methods including GET. After the token verifies, the role claim is checked
// against the permission table: admins get full access, viewers get
// read-only access to delivery logs and the catalog.
func Authz(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicEndpoint(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		user, role, err := parseBearer(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}

		start := time.Now()
		allowed := checkRolePermission(role, r.Method, r.URL.Path)
		RecordAuthzCheckDuration(time.Since(start).Seconds())
		if !allowed {
			RecordForbiddenAttempt(role, r.Method)
			respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
			return
		}

		ctx := context.WithValue(r.Context(), ctxUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseBearer verifies the Authorization header and extracts the subject and
// role claims. Signature algorithm is pinned to HS256; expiry is enforced by
// the parser.
func parseBearer(header string, secret []byte) (user, role string, err error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", "", errors.New("missing bearer token")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", "", errors.New("invalid token")
	}

	user, ok = claims["sub"].(string)
	if !ok {
		return "", "", errors.New("invalid sub claim")
	}
	role, ok = claims["role"].(string)
	if !ok {
		return "", "", errors.New("invalid role claim")
	}
	return user, role, nil
}
