package logs

import (
	"log/slog"
	"net/http"

	"notify-hub/internal/common/pagination"
	"notify-hub/internal/handler/http/auth"
	"notify-hub/internal/usecase/auditlog"
)

// Register registers delivery-log HTTP handlers with the given mux.
// All routes require authentication. Viewers can read /logs and /logs/stats;
// the per-user query lives under /users/{id}/logs and is admin-only, like
// the rest of the user routes.
func Register(mux *http.ServeMux, svc *auditlog.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /logs", auth.Authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET    /logs/stats", auth.Authz(StatsHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET    /users/{id}/logs", auth.Authz(UserLogsHandler{Svc: svc, Logger: logger}))
}
