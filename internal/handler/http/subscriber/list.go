package subscriber

import (
	"net/http"

	"notify-hub/internal/handler/http/respond"
	subUC "notify-hub/internal/usecase/subscriber"
)

type ListHandler struct{ Svc *subUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, out)
}
