// Package logs provides the HTTP surface for querying the delivery audit log.
package logs

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"notify-hub/internal/common/pagination"
	"notify-hub/internal/handler/http/respond"
	"notify-hub/internal/observability/logging"
	"notify-hub/internal/usecase/auditlog"
)

// ListHandler handles GET /logs requests with optional filters and pagination.
type ListHandler struct {
	Svc           *auditlog.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 配信ログ一覧取得
// @Summary      配信ログ一覧取得（ページネーション対応）
// @Description  配信ログを新しい順に取得します。user_id・category・status で絞り込みできます。
// @Tags         logs
// @Security     BearerAuth
// @Produce      json
// @Param        page     query    int     false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        limit    query    int     false  "1ページあたりの件数" default(20) minimum(1) maximum(100)
// @Param        user_id  query    int     false  "受信ユーザーIDで絞り込み"
// @Param        category query    string  false  "カテゴリ名で絞り込み"
// @Param        status   query    string  false  "配信ステータスで絞り込み" Enums(pending, sent, delivered, failed)
// @Success      200 {object} pagination.Response[DTO] "ページネーション付き配信ログ一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      401 {string} string "Authentication required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /logs [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		logger.Warn("invalid filter parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPaginated(ctx, filters, params)
	if err != nil {
		if errors.Is(err, auditlog.ErrInvalidStatus) || errors.Is(err, auditlog.ErrInvalidUserID) {
			pagination.RecordError("validation")
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		logger.Error("failed to list delivery logs",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := toDTOs(result.Data)
	response := pagination.NewResponse(dtos, result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("delivery log list request served",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds())

	respond.JSON(w, http.StatusOK, response)
}

// parseFilters extracts the optional user_id, category and status query
// parameters. Value validation (known statuses, positive ids) happens in
// the use case layer.
func parseFilters(r *http.Request) (auditlog.QueryFilters, error) {
	var filters auditlog.QueryFilters

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filters, errors.New("invalid query parameter: user_id must be an integer")
		}
		filters.UserID = &id
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filters.Category = &category
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = &status
	}
	return filters, nil
}
