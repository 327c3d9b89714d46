package api_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateUser(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	res := postJSON(t, srv.URL+"/users", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["name"] != "Alice" || body["email"] != "alice@example.com" {
		t.Fatalf("unexpected user body: %v", body)
	}
	if body["profile_image"] != "/defaultProfile.png" {
		t.Fatalf("expected default profile image, got %v", body["profile_image"])
	}
	// the hash must never be serialized
	if _, ok := body["password_hash"]; ok {
		t.Fatalf("password hash leaked in response: %v", body)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	cases := []map[string]any{
		{"email": "a@example.com", "password": "p"},
		{"name": "A", "password": "p"},
		{"name": "A", "email": "a@example.com"},
	}
	for i, payload := range cases {
		res := postJSON(t, srv.URL+"/users", payload)
		res.Body.Close()
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", i, res.StatusCode)
		}
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	registerUser(t, srv.URL, "Alice", "alice@example.com")
	res := postJSON(t, srv.URL+"/users", map[string]any{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	res.Body.Close()
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	id := registerUser(t, srv.URL, "Alice", "alice@example.com")

	res := postJSON(t, srv.URL+"/login", map[string]any{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["type"] != "success" {
		t.Fatalf("unexpected login body: %v", body)
	}
	data := body["data"].(map[string]any)
	if int64(data["id"].(float64)) != id {
		t.Fatalf("expected user %d, got %v", id, data["id"])
	}

	// wrong password
	resBad := postJSON(t, srv.URL+"/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	resBad.Body.Close()
	if resBad.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resBad.StatusCode)
	}

	// unknown email gets the same answer as a wrong password
	resUnknown := postJSON(t, srv.URL+"/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	resUnknown.Body.Close()
	if resUnknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", resUnknown.StatusCode)
	}

	// missing fields
	resMissing := postJSON(t, srv.URL+"/login", map[string]any{"email": "alice@example.com"})
	resMissing.Body.Close()
	if resMissing.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", resMissing.StatusCode)
	}
}

func TestGetUser(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	id := registerUser(t, srv.URL, "Alice", "alice@example.com")

	res, err := http.Get(fmt.Sprintf("%s/users/%d", srv.URL, id))
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["email"] != "alice@example.com" {
		t.Fatalf("unexpected user: %v", body)
	}

	resMissing, err := http.Get(srv.URL + "/users/9999")
	if err != nil {
		t.Fatalf("get missing user: %v", err)
	}
	resMissing.Body.Close()
	if resMissing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resMissing.StatusCode)
	}
}

func TestListUsers(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	res, err := http.Get(srv.URL + "/users")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	registerUser(t, srv.URL, "Alice", "alice@example.com")
	registerUser(t, srv.URL, "Bob", "bob@example.com")

	res2, err := http.Get(srv.URL + "/users")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	defer res2.Body.Close()
	var users []map[string]any
	if err := jsonDecode(res2, &users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
