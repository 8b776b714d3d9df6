// Package dispatch provides the HTTP surface for sending notifications.
package dispatch

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"notify-hub/internal/handler/http/respond"
	"notify-hub/internal/observability/logging"
	"notify-hub/internal/usecase/dispatch"
	"notify-hub/internal/usecase/events"
)

// Handler handles POST /dispatch requests. Each accepted request runs one
// dispatch batch and publishes the result to the event hub for streaming
// subscribers.
type Handler struct {
	Svc    *dispatch.Service
	Hub    *events.Hub
	Logger *slog.Logger
}

// ServeHTTP 通知送信
// @Summary      通知一斉送信
// @Description  カテゴリを購読している全ユーザーへ、有効な各チャネル経由で通知を送信します
// @Tags         dispatch
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dispatchRequest true "送信内容"
// @Success      200 {object} dispatch.Result "チャネル毎の配信結果"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      401 {string} string "認証失敗"
// @Router       /dispatch [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result := h.Svc.Dispatch(r.Context(), req.Category, req.Content)

	if h.Hub != nil {
		h.Hub.Publish(result)
	}

	// Validation failures and internal errors both come back as structured
	// results. Validation maps to 400; everything else stays 200 with the
	// status discriminator carrying the outcome.
	code := http.StatusOK
	if result.Status == dispatch.ResultError && result.Type == dispatch.TypeValidation {
		code = http.StatusBadRequest
	}

	logger.Info("dispatch request handled",
		slog.String("category", req.Category),
		slog.String("status", result.Status),
		slog.Int("attempts", result.Summary.TotalAttempts),
		slog.Int("failed", result.Summary.Failed))

	respond.JSON(w, code, result)
}
