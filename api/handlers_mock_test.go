package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmoreira/quizcraft/api"
	"github.com/rmoreira/quizcraft/pkg/apperr"
	"github.com/rmoreira/quizcraft/pkg/models"
	"github.com/rmoreira/quizcraft/pkg/repository/mock"
)

// Storage failures must surface as 500 with a generic message, never with
// driver detail. These tests drive the handlers directly over mocks.

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return httptest.NewRequest(method, target, bytes.NewReader(b))
}

func TestCreateUser_StorageFailure(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.UserRepo.CreateErr = apperr.Storage("insert user", errors.New("disk full"))
	h := api.NewUsersHandler(mocks.UserRepo)

	req := jsonRequest(t, http.MethodPost, "/users", map[string]any{
		"name": "Alice", "email": "alice@example.com", "password": "p",
	})
	w := httptest.NewRecorder()
	h.CreateUser(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" || body["error"] == "disk full" {
		t.Fatalf("expected a generic error message, got %q", body["error"])
	}
}

func TestLogin_StorageFailure(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.UserRepo.GetErr = apperr.Storage("query user", errors.New("connection reset"))
	h := api.NewAuthHandler(mocks.UserRepo)

	req := jsonRequest(t, http.MethodPost, "/login", map[string]any{
		"email": "alice@example.com", "password": "p",
	})
	w := httptest.NewRecorder()
	h.Login(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestSubmitResponse_StorageFailure(t *testing.T) {
	mocks := mock.NewMocks()
	if _, err := mocks.UserRepo.CreateUser(context.Background(), &models.User{Name: "Bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	mocks.ResponseRepo.SubmitErr = apperr.Storage("insert response", errors.New("locked"))
	h := api.NewResponsesHandler(mocks.ResponseRepo, mocks.UserRepo)

	req := jsonRequest(t, http.MethodPost, "/responses", map[string]any{
		"activityId": 1, "user": 1, "answers": []map[string]string{{"text": "A1"}},
	})
	w := httptest.NewRecorder()
	h.SubmitResponse(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestListActivities_StorageFailure(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.ActivityRepo.GetErr = apperr.Storage("list activities", errors.New("io error"))
	h := api.NewActivitiesHandler(mocks.ActivityRepo)

	req := httptest.NewRequest(http.MethodGet, "/activities?userId=1", nil)
	w := httptest.NewRecorder()
	h.ListActivities(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
