package subscriber

import (
	"encoding/json"
	"errors"
	"net/http"

	"notify-hub/internal/handler/http/pathutil"
	"notify-hub/internal/handler/http/respond"
	subUC "notify-hub/internal/usecase/subscriber"
)

type PreferencesHandler struct{ Svc *subUC.Service }

// ServeHTTP 通知チャネル設定
// @Summary      通知チャネル設定
// @Description  ユーザーの通知チャネル（SMS / Email / Push）を有効・無効にします。
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "ユーザーID"
// @Param        request body preferenceRequest true "チャネル設定"
// @Success      204 {string} string "設定完了"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - user or channel not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users/{id}/preferences [put]
func (h PreferencesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.IDFromRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Channel == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("channel is required"))
		return
	}
	if req.Enabled == nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("enabled is required"))
		return
	}

	if err := h.Svc.SetChannelPreference(r.Context(), id, req.Channel, *req.Enabled); err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, subUC.ErrInvalidUserID):
			code = http.StatusBadRequest
		case errors.Is(err, subUC.ErrUserNotFound),
			errors.Is(err, subUC.ErrChannelNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Enabled is a pointer so a missing field is distinguishable from false.
type preferenceRequest struct {
	Channel string `json:"channel" example:"Email"`
	Enabled *bool  `json:"enabled" example:"true"`
}
