package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/infra/adapter/persistence/postgres"
	"notify-hub/internal/repository"
)

/* ──────────────────────────────── ヘルパ ──────────────────────────────── */

var logColumnNames = []string{
	"id", "user_id", "category", "channel", "status", "content", "metadata",
	"error_message", "created_at", "sent_at", "delivered_at", "read_at",
	"user_name",
}

func logRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(logColumnNames).AddRow(
		int64(10), int64(1), "Finance", "Email", "sent", "Market update",
		[]byte(`{"delivery_method":"smtp"}`), nil, now, now, nil, nil, "Alice",
	)
}

/* ──────────────────────────────── 1. Save ──────────────────────────────── */

func TestDeliveryLogRepo_Save(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notifications`)).
		WithArgs(int64(1), "Finance", "Email", "sent", "Market update",
			[]byte(`{"delivery_method":"smtp"}`), "", now, &now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	repo := postgres.NewDeliveryLogRepo(db)
	entry := &entity.DeliveryLog{
		UserID:    1,
		Category:  "Finance",
		Channel:   "Email",
		Status:    entity.StatusSent,
		Content:   "Market update",
		Metadata:  map[string]string{"delivery_method": "smtp"},
		CreatedAt: now,
		SentAt:    &now,
	}
	if err := repo.Save(context.Background(), entry); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if entry.ID != 42 {
		t.Fatalf("ID=%d, want 42", entry.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeliveryLogRepo_Save_Failed(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	// failed attempt: no metadata, no sent_at, error message recorded.
	// Save passes the metadata as a nil []byte, which pgx encodes as NULL.
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notifications`)).
		WithArgs(int64(2), "Sports", "SMS", "failed", "Final score",
			[]byte(nil), "user has no phone number registered", now, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))

	repo := postgres.NewDeliveryLogRepo(db)
	entry := &entity.DeliveryLog{
		UserID:       2,
		Category:     "Sports",
		Channel:      "SMS",
		Status:       entity.StatusFailed,
		Content:      "Final score",
		ErrorMessage: "user has no phone number registered",
		CreatedAt:    now,
	}
	if err := repo.Save(context.Background(), entry); err != nil {
		t.Fatalf("Save err=%v", err)
	}
}

/* ─────────────────────────── 2. 行マッピング正規化 ─────────────────────────── */

func TestDeliveryLogRepo_ListByUser_RowMapping(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`FROM notifications n`).
		WithArgs(int64(1)).
		WillReturnRows(logRow(now))

	repo := postgres.NewDeliveryLogRepo(db)
	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d, want 1", len(got))
	}

	want := repository.DeliveryLogWithUser{
		Log: &entity.DeliveryLog{
			ID:        10,
			UserID:    1,
			Category:  "Finance",
			Channel:   "Email",
			Status:    entity.StatusSent,
			Content:   "Market update",
			Metadata:  map[string]string{"delivery_method": "smtp"},
			CreatedAt: now,
			SentAt:    &now,
		},
		UserName: "Alice",
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeliveryLogRepo_ListByUser_MalformedMetadata(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows(logColumnNames).AddRow(
		int64(11), int64(1), "Finance", "Push", "sent", "hello",
		[]byte(`{broken json`), nil, now, nil, nil, nil, "Alice",
	)
	mock.ExpectQuery(`FROM notifications n`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	repo := postgres.NewDeliveryLogRepo(db)
	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("malformed metadata must not fail the read: %v", err)
	}
	if len(got[0].Log.Metadata) != 0 {
		t.Fatalf("malformed metadata should degrade to empty map, got %v", got[0].Log.Metadata)
	}
}

func TestDecodeMetadata(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want map[string]string
	}{
		{"valid", []byte(`{"a":"b"}`), map[string]string{"a": "b"}},
		{"nil blob", nil, map[string]string{}},
		{"empty blob", []byte{}, map[string]string{}},
		{"malformed", []byte(`{oops`), map[string]string{}},
		{"json null", []byte(`null`), map[string]string{}},
		{"wrong type", []byte(`[1,2]`), map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, postgres.DecodeMetadata(tt.raw)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

/* ─────────────────────────── 3. フィルタ付きページング ─────────────────────────── */

func TestDeliveryLogRepo_ListPaginated_StatusFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`WHERE n\.status = \$1`).
		WithArgs("failed", 20, 0).
		WillReturnRows(sqlmock.NewRows(logColumnNames).AddRow(
			int64(12), int64(2), "Sports", "SMS", "failed", "Final score",
			nil, "user has no phone number registered", now, nil, nil, nil, "Bob",
		))

	repo := postgres.NewDeliveryLogRepo(db)
	status := entity.StatusFailed
	got, err := repo.ListPaginated(context.Background(),
		repository.DeliveryLogFilters{Status: &status}, 0, 20)
	if err != nil {
		t.Fatalf("ListPaginated err=%v", err)
	}
	if len(got) != 1 || got[0].Log.ErrorMessage == "" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeliveryLogRepo_Count_WithFilters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	userID := int64(1)
	category := "Finance"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND category = $2`)).
		WithArgs(userID, category).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := postgres.NewDeliveryLogRepo(db)
	got, err := repo.Count(context.Background(), repository.DeliveryLogFilters{
		UserID:   &userID,
		Category: &category,
	})
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if got != 3 {
		t.Fatalf("count=%d, want 3", got)
	}
}

/* ──────────────────────────────── 4. Statistics ──────────────────────────────── */

func TestDeliveryLogRepo_Statistics(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM notifications`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "successful", "failed", "pending"}).
			AddRow(int64(10), int64(7), int64(2), int64(1)))
	mock.ExpectQuery(`GROUP BY channel`).
		WillReturnRows(sqlmock.NewRows([]string{"channel", "count"}).
			AddRow("Email", int64(6)).AddRow("SMS", int64(4)))
	mock.ExpectQuery(`GROUP BY category`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("Finance", int64(10)))

	repo := postgres.NewDeliveryLogRepo(db)
	stats, err := repo.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics err=%v", err)
	}

	want := &entity.DeliveryStats{
		Total: 10, Successful: 7, Failed: 2, Pending: 1,
		ByChannel:  map[string]int64{"Email": 6, "SMS": 4},
		ByCategory: map[string]int64{"Finance": 10},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
