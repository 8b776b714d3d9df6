package dispatch

import (
	"log/slog"
	"net/http"

	"notify-hub/internal/handler/http/auth"
	"notify-hub/internal/usecase/dispatch"
	"notify-hub/internal/usecase/events"
)

// Register registers dispatch-related HTTP handlers with the given mux.
// Both routes require authentication; role checks restrict dispatching
// to admins.
func Register(mux *http.ServeMux, svc *dispatch.Service, hub *events.Hub, logger *slog.Logger) {
	mux.Handle("POST   /dispatch", auth.Authz(Handler{Svc: svc, Hub: hub, Logger: logger}))
	mux.Handle("GET    /dispatch/stream", auth.Authz(StreamHandler{Hub: hub, Logger: logger}))
}
