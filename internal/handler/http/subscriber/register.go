package subscriber

import (
	"net/http"

	"notify-hub/internal/handler/http/auth"
	subUC "notify-hub/internal/usecase/subscriber"
)

// Register registers recipient management HTTP handlers with the given mux.
// All routes require authentication and are restricted to admins by the
// role checks in the auth middleware.
func Register(mux *http.ServeMux, svc *subUC.Service) {
	mux.Handle("GET    /users", auth.Authz(ListHandler{svc}))
	mux.Handle("POST   /users", auth.Authz(CreateHandler{svc}))
	mux.Handle("GET    /users/{id}", auth.Authz(GetHandler{svc}))

	mux.Handle("POST   /users/{id}/subscriptions", auth.Authz(SubscribeHandler{svc}))
	mux.Handle("PUT    /users/{id}/preferences", auth.Authz(PreferencesHandler{svc}))
}
