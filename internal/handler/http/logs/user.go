package logs

import (
	"errors"
	"log/slog"
	"net/http"

	"notify-hub/internal/handler/http/pathutil"
	"notify-hub/internal/handler/http/respond"
	"notify-hub/internal/usecase/auditlog"
)

// UserLogsHandler handles GET /users/{id}/logs requests.
type UserLogsHandler struct {
	Svc    *auditlog.Service
	Logger *slog.Logger
}

// ServeHTTP ユーザー別配信ログ取得
// @Summary      ユーザー別配信ログ取得
// @Description  指定ユーザー宛の配信ログを新しい順に返します。
// @Tags         logs
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ユーザーID"
// @Success      200 {array} DTO "配信ログ一覧"
// @Failure      400 {string} string "Bad request - invalid user ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id}/logs [get]
func (h UserLogsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	entries, err := h.Svc.ListByUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, auditlog.ErrInvalidUserID) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(entries))
}
