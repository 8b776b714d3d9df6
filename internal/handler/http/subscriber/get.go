package subscriber

import (
	"errors"
	"net/http"

	"notify-hub/internal/handler/http/pathutil"
	"notify-hub/internal/handler/http/respond"
	subUC "notify-hub/internal/usecase/subscriber"
)

type GetHandler struct{ Svc *subUC.Service }

// ServeHTTP ユーザー詳細取得
// @Summary      ユーザー詳細取得
// @Description  指定されたIDのユーザーを取得します
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ユーザーID"
// @Success      200 {object} DTO "ユーザー詳細"
// @Failure      400 {string} string "Bad request - invalid user ID"
// @Failure      404 {string} string "Not found - user not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, subUC.ErrInvalidUserID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, subUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(user))
}
