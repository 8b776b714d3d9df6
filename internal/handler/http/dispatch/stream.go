package dispatch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"notify-hub/internal/observability/logging"
	"notify-hub/internal/usecase/events"
)

// StreamHandler serves GET /dispatch/stream as a Server-Sent Events stream.
// Each dispatch result is written as one SSE "dispatch" event. The stream
// stays open until the client disconnects or the hub shuts down.
type StreamHandler struct {
	Hub    *events.Hub
	Logger *slog.Logger
}

// ServeHTTP 配信結果ストリーム
// @Summary      配信結果のリアルタイムストリーム
// @Description  Server-Sent Events 形式で配信結果を購読します
// @Tags         dispatch
// @Security     BearerAuth
// @Produce      text/event-stream
// @Success      200 {string} string "SSE stream"
// @Failure      500 {string} string "streaming unsupported"
// @Router       /dispatch/stream [get]
func (h StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// ResponseController follows Unwrap chains through logging/metrics wrappers.
	rc := http.NewResponseController(w)

	logger := logging.WithRequestID(r.Context(), h.Logger)

	id, ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// 接続確認用の初期コメント
	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		logger.Error("streaming unsupported", slog.Any("error", err))
		return
	}

	logger.Info("dispatch stream opened", slog.Int64("subscriber_id", id))

	for {
		select {
		case <-r.Context().Done():
			logger.Info("dispatch stream closed by client", slog.Int64("subscriber_id", id))
			return
		case result, open := <-ch:
			if !open {
				// Hub shut down
				return
			}
			payload, err := json.Marshal(result)
			if err != nil {
				logger.Error("failed to marshal dispatch event",
					slog.Any("error", err))
				continue
			}
			fmt.Fprintf(w, "event: dispatch\ndata: %s\n\n", payload)
			if err := rc.Flush(); err != nil {
				logger.Info("dispatch stream flush failed, closing",
					slog.Int64("subscriber_id", id), slog.Any("error", err))
				return
			}
		}
	}
}
