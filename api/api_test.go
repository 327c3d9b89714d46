package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rmoreira/quizcraft/api"
	migrations "github.com/rmoreira/quizcraft/db"
	dbpkg "github.com/rmoreira/quizcraft/internal/db"
)

// setupServer starts a full server over a private in-memory database with
// the production schema applied.
func setupServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	d, err := dbpkg.New(ctx, dsn, 5*time.Second)
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := dbpkg.Migrate(ctx, d, migrations.Migrations); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}

	handler := api.SetupRoutes("test", "unknown", d, nil)
	srv := httptest.NewServer(handler)
	return srv, func() { srv.Close(); d.Close() }
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return res
}

func doJSON(t *testing.T, method, url string, payload any) *http.Response {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return res
}

func jsonDecode(res *http.Response, v any) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(v)
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

// registerUser creates a user through the API and returns its id.
func registerUser(t *testing.T, baseURL, name, email string) int64 {
	t.Helper()
	res := postJSON(t, baseURL+"/users", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, res.StatusCode)
	}
	body := decodeBody(t, res)
	return int64(body["id"].(float64))
}

func TestHealthAndVersion(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res2, err := http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	if id := res2.Header.Get("X-Request-ID"); id == "" {
		t.Fatalf("expected X-Request-ID header on responses")
	}
}
