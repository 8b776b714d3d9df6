package logs_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notify-hub/internal/common/pagination"
	"notify-hub/internal/domain/entity"
	handler "notify-hub/internal/handler/http/logs"
	"notify-hub/internal/repository"
	"notify-hub/internal/usecase/auditlog"
)

/* ───────── モック実装 ───────── */

type stubLogRepo struct {
	entries []repository.DeliveryLogWithUser
	stats   *entity.DeliveryStats
	failing bool

	gotFilters repository.DeliveryLogFilters
	gotOffset  int
	gotLimit   int
}

var errRepo = errors.New("connection refused")

func (s *stubLogRepo) Save(_ context.Context, _ *entity.DeliveryLog) error { return nil }

func (s *stubLogRepo) List(_ context.Context) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, nil
}

func (s *stubLogRepo) ListPaginated(_ context.Context, filters repository.DeliveryLogFilters, offset, limit int) ([]repository.DeliveryLogWithUser, error) {
	if s.failing {
		return nil, errRepo
	}
	s.gotFilters = filters
	s.gotOffset = offset
	s.gotLimit = limit

	end := offset + limit
	if offset >= len(s.entries) {
		return nil, nil
	}
	if end > len(s.entries) {
		end = len(s.entries)
	}
	return s.entries[offset:end], nil
}

func (s *stubLogRepo) ListByUser(_ context.Context, _ int64) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, nil
}

func (s *stubLogRepo) ListByCategory(_ context.Context, _ string) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, nil
}

func (s *stubLogRepo) ListByStatus(_ context.Context, _ entity.DeliveryStatus) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, nil
}

func (s *stubLogRepo) Count(_ context.Context, _ repository.DeliveryLogFilters) (int64, error) {
	if s.failing {
		return 0, errRepo
	}
	return int64(len(s.entries)), nil
}

func (s *stubLogRepo) Statistics(_ context.Context) (*entity.DeliveryStats, error) {
	if s.failing {
		return nil, errRepo
	}
	return s.stats, nil
}

/* ───────── テストヘルパー ───────── */

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEntries(n int) []repository.DeliveryLogWithUser {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]repository.DeliveryLogWithUser, 0, n)
	for i := 0; i < n; i++ {
		sentAt := base.Add(time.Duration(i) * time.Minute)
		out = append(out, repository.DeliveryLogWithUser{
			Log: &entity.DeliveryLog{
				ID:        int64(n - i),
				UserID:    1,
				Category:  "Finance",
				Channel:   "Email",
				Status:    entity.StatusSent,
				Content:   "market update",
				CreatedAt: sentAt,
				SentAt:    &sentAt,
			},
			UserName: "Alice",
		})
	}
	return out
}

func newListHandler(repo *stubLogRepo) handler.ListHandler {
	return handler.ListHandler{
		Svc:           &auditlog.Service{Repo: repo},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        testLogger(),
	}
}

/* ───────── テスト ───────── */

func TestListHandler_Defaults(t *testing.T) {
	repo := &stubLogRepo{entries: sampleEntries(3)}
	h := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp pagination.Response[handler.DTO]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(resp.Data))
	}
	if resp.Pagination.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Pagination.Total)
	}
	if resp.Pagination.Page != 1 {
		t.Errorf("Page = %d, want 1", resp.Pagination.Page)
	}
	if resp.Data[0].UserName != "Alice" {
		t.Errorf("UserName = %q, want Alice", resp.Data[0].UserName)
	}
}

func TestListHandler_PageWindow(t *testing.T) {
	repo := &stubLogRepo{entries: sampleEntries(5)}
	h := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/logs?page=2&limit=2", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	if repo.gotOffset != 2 || repo.gotLimit != 2 {
		t.Errorf("offset/limit = %d/%d, want 2/2", repo.gotOffset, repo.gotLimit)
	}

	var resp pagination.Response[handler.DTO]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.Pagination.TotalPages)
	}
}

func TestListHandler_Filters(t *testing.T) {
	repo := &stubLogRepo{entries: sampleEntries(1)}
	h := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/logs?user_id=1&category=Finance&status=sent", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	if repo.gotFilters.UserID == nil || *repo.gotFilters.UserID != 1 {
		t.Errorf("UserID filter = %v, want 1", repo.gotFilters.UserID)
	}
	if repo.gotFilters.Category == nil || *repo.gotFilters.Category != "Finance" {
		t.Errorf("Category filter = %v, want Finance", repo.gotFilters.Category)
	}
	if repo.gotFilters.Status == nil || *repo.gotFilters.Status != entity.StatusSent {
		t.Errorf("Status filter = %v, want sent", repo.gotFilters.Status)
	}
}

func TestListHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"invalid page", "/logs?page=abc"},
		{"invalid limit", "/logs?limit=-1"},
		{"non-numeric user_id", "/logs?user_id=alice"},
		{"unknown status", "/logs?status=vanished"},
		{"non-positive user_id", "/logs?user_id=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubLogRepo{entries: sampleEntries(1)}
			h := newListHandler(repo)

			req := httptest.NewRequest(http.MethodGet, tt.query, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestListHandler_RepositoryError(t *testing.T) {
	repo := &stubLogRepo{failing: true}
	h := newListHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
