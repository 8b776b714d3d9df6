package auditlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"notify-hub/internal/common/pagination"
	"notify-hub/internal/domain/entity"
	"notify-hub/internal/repository"
	"notify-hub/internal/usecase/auditlog"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

type stubRepo struct {
	entries []repository.DeliveryLogWithUser
	stats   *entity.DeliveryStats
	err     error

	// captured call arguments
	gotFilters repository.DeliveryLogFilters
	gotOffset  int
	gotLimit   int
}

func (s *stubRepo) Save(_ context.Context, _ *entity.DeliveryLog) error { return s.err }
func (s *stubRepo) List(_ context.Context) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, s.err
}
func (s *stubRepo) ListPaginated(_ context.Context, filters repository.DeliveryLogFilters, offset, limit int) ([]repository.DeliveryLogWithUser, error) {
	s.gotFilters, s.gotOffset, s.gotLimit = filters, offset, limit
	return s.entries, s.err
}
func (s *stubRepo) ListByUser(_ context.Context, _ int64) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, s.err
}
func (s *stubRepo) ListByCategory(_ context.Context, _ string) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, s.err
}
func (s *stubRepo) ListByStatus(_ context.Context, _ entity.DeliveryStatus) ([]repository.DeliveryLogWithUser, error) {
	return s.entries, s.err
}
func (s *stubRepo) Count(_ context.Context, _ repository.DeliveryLogFilters) (int64, error) {
	return int64(len(s.entries)), s.err
}
func (s *stubRepo) Statistics(_ context.Context) (*entity.DeliveryStats, error) {
	return s.stats, s.err
}

func sampleEntry() repository.DeliveryLogWithUser {
	return repository.DeliveryLogWithUser{
		Log: &entity.DeliveryLog{
			ID: 1, UserID: 1, Category: "Finance", Channel: "Email",
			Status: entity.StatusSent, Content: "Market update",
			Metadata:  map[string]string{"delivery_method": "Email"},
			CreatedAt: time.Now(),
		},
		UserName: "Alice",
	}
}

/*────────────────────  テストケース  ────────────────────*/

func TestService_ListPaginated(t *testing.T) {
	repo := &stubRepo{entries: []repository.DeliveryLogWithUser{sampleEntry()}}
	svc := auditlog.Service{Repo: repo}

	status := "sent"
	result, err := svc.ListPaginated(context.Background(),
		auditlog.QueryFilters{Status: &status},
		pagination.Params{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("ListPaginated err=%v", err)
	}

	if repo.gotOffset != 10 || repo.gotLimit != 10 {
		t.Errorf("offset/limit = %d/%d, want 10/10", repo.gotOffset, repo.gotLimit)
	}
	if repo.gotFilters.Status == nil || *repo.gotFilters.Status != entity.StatusSent {
		t.Errorf("status filter not forwarded: %+v", repo.gotFilters)
	}
	if result.Pagination.Page != 2 || result.Pagination.Total != 1 {
		t.Errorf("pagination=%+v", result.Pagination)
	}
}

func TestService_ListPaginated_InvalidStatus(t *testing.T) {
	svc := auditlog.Service{Repo: &stubRepo{}}
	status := "queued"
	_, err := svc.ListPaginated(context.Background(),
		auditlog.QueryFilters{Status: &status},
		pagination.Params{Page: 1, Limit: 20})
	if !errors.Is(err, auditlog.ErrInvalidStatus) {
		t.Fatalf("err=%v, want ErrInvalidStatus", err)
	}
}

func TestService_ListByUser_InvalidID(t *testing.T) {
	svc := auditlog.Service{Repo: &stubRepo{}}
	_, err := svc.ListByUser(context.Background(), 0)
	if !errors.Is(err, auditlog.ErrInvalidUserID) {
		t.Fatalf("err=%v, want ErrInvalidUserID", err)
	}
}

func TestService_ListByStatus(t *testing.T) {
	repo := &stubRepo{entries: []repository.DeliveryLogWithUser{sampleEntry()}}
	svc := auditlog.Service{Repo: repo}

	got, err := svc.ListByStatus(context.Background(), "sent")
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByStatus err=%v len=%d", err, len(got))
	}

	if _, err := svc.ListByStatus(context.Background(), "bogus"); !errors.Is(err, auditlog.ErrInvalidStatus) {
		t.Fatalf("err=%v, want ErrInvalidStatus", err)
	}
}

func TestService_Statistics(t *testing.T) {
	repo := &stubRepo{stats: &entity.DeliveryStats{
		Total: 5, Successful: 3, Failed: 1, Pending: 1,
	}}
	svc := auditlog.Service{Repo: repo}

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics err=%v", err)
	}
	if stats.Successful+stats.Failed+stats.Pending != stats.Total {
		t.Fatalf("status counts must sum to total: %+v", stats)
	}
}

func TestService_RepoErrorWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	svc := auditlog.Service{Repo: &stubRepo{err: boom}}

	_, err := svc.List(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want wrapped repo error", err)
	}
}
