package subscriber_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notify-hub/internal/domain/entity"
	handler "notify-hub/internal/handler/http/subscriber"
)

func newSubscribeHandler(users *stubUsers) handler.SubscribeHandler {
	catalog := &stubCatalog{
		categories: map[string]*entity.Category{
			"Finance": {ID: 10, Name: "Finance"},
		},
	}
	return handler.SubscribeHandler{Svc: newService(users, catalog)}
}

func TestSubscribeHandler(t *testing.T) {
	users := &stubUsers{users: map[int64]*entity.User{1: alice()}}
	h := newSubscribeHandler(users)

	req := httptest.NewRequest(http.MethodPost, "/users/1/subscriptions",
		strings.NewReader(`{"category":"Finance"}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204; body=%s", rec.Code, rec.Body.String())
	}
	if len(users.subscribed) != 1 || users.subscribed[0] != [2]int64{1, 10} {
		t.Errorf("subscribed = %v, want [(1,10)]", users.subscribed)
	}
}

func TestSubscribeHandler_UnknownCategory(t *testing.T) {
	users := &stubUsers{users: map[int64]*entity.User{1: alice()}}
	h := newSubscribeHandler(users)

	req := httptest.NewRequest(http.MethodPost, "/users/1/subscriptions",
		strings.NewReader(`{"category":"Gardening"}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body=%s", rec.Code, rec.Body.String())
	}
}

func TestSubscribeHandler_UnknownUser(t *testing.T) {
	users := &stubUsers{users: map[int64]*entity.User{}}
	h := newSubscribeHandler(users)

	req := httptest.NewRequest(http.MethodPost, "/users/7/subscriptions",
		strings.NewReader(`{"category":"Finance"}`))
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body=%s", rec.Code, rec.Body.String())
	}
}

func TestSubscribeHandler_Duplicate(t *testing.T) {
	users := &stubUsers{
		users:        map[int64]*entity.User{1: alice()},
		subscribeErr: entity.ErrAlreadyExists,
	}
	h := newSubscribeHandler(users)

	req := httptest.NewRequest(http.MethodPost, "/users/1/subscriptions",
		strings.NewReader(`{"category":"Finance"}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body=%s", rec.Code, rec.Body.String())
	}
}

func TestSubscribeHandler_MissingCategory(t *testing.T) {
	users := &stubUsers{users: map[int64]*entity.User{1: alice()}}
	h := newSubscribeHandler(users)

	req := httptest.NewRequest(http.MethodPost, "/users/1/subscriptions",
		strings.NewReader(`{}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body=%s", rec.Code, rec.Body.String())
	}
}
