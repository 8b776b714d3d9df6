package subscriber

import (
	"encoding/json"
	"errors"
	"net/http"

	"notify-hub/internal/handler/http/pathutil"
	"notify-hub/internal/handler/http/respond"
	subUC "notify-hub/internal/usecase/subscriber"
)

type SubscribeHandler struct{ Svc *subUC.Service }

// ServeHTTP カテゴリ購読
// @Summary      カテゴリ購読
// @Description  ユーザーを指定カテゴリの購読者として登録します。二重購読は 409 になります。
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "ユーザーID"
// @Param        request body subscribeRequest true "購読するカテゴリ"
// @Success      204 {string} string "購読完了"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - user or category not found"
// @Failure      409 {string} string "Conflict - already subscribed"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id}/subscriptions [post]
func (h SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Category == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("category is required"))
		return
	}

	if err := h.Svc.Subscribe(r.Context(), id, req.Category); err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, subUC.ErrInvalidUserID):
			code = http.StatusBadRequest
		case errors.Is(err, subUC.ErrUserNotFound),
			errors.Is(err, subUC.ErrCategoryNotFound):
			code = http.StatusNotFound
		case errors.Is(err, subUC.ErrAlreadySubscribed):
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type subscribeRequest struct {
	Category string `json:"category" example:"Finance"`
}
