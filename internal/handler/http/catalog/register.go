package catalog

import (
	"net/http"

	"notify-hub/internal/handler/http/auth"
	catUC "notify-hub/internal/usecase/catalog"
)

// Register registers catalog HTTP handlers with the given mux.
// Both routes are readable by viewers.
func Register(mux *http.ServeMux, svc *catUC.Service) {
	mux.Handle("GET    /categories", auth.Authz(CategoriesHandler{svc}))
	mux.Handle("GET    /channels", auth.Authz(ChannelsHandler{svc}))
}
