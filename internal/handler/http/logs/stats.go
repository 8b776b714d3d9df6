package logs

import (
	"log/slog"
	"net/http"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/handler/http/respond"
	"notify-hub/internal/observability/logging"
	"notify-hub/internal/usecase/auditlog"
)

// StatsHandler handles GET /logs/stats requests.
type StatsHandler struct {
	Svc    *auditlog.Service
	Logger *slog.Logger
}

// ServeHTTP 配信統計取得
// @Summary      配信統計取得
// @Description  配信ログ全体の集計（合計・成功・失敗・保留、チャネル別・カテゴリ別の内訳）を返します。
// @Tags         logs
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} StatsDTO "配信統計"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /logs/stats [get]
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	stats, err := h.Svc.Statistics(ctx)
	if err != nil {
		logger.Error("failed to compute delivery statistics", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toStatsDTO(stats))
}

func toStatsDTO(stats *entity.DeliveryStats) StatsDTO {
	return StatsDTO{
		Total:      stats.Total,
		Successful: stats.Successful,
		Failed:     stats.Failed,
		Pending:    stats.Pending,
		ByChannel:  stats.ByChannel,
		ByCategory: stats.ByCategory,
	}
}
