package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ztna-portal/backend/initialize"

	"github.com/stretchr/testify/require"
)

func buildApp(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`
backend:
  db:
    driver: sqlite
    path: %s
  jwt:
    secret: test-secret
    exp_min: 5
  storage:
    path: %s
  auth:
    bcrypt_cost: 4
  seed:
    admin_email: admin@example.com
    admin_name: Admin User
    admin_password: adminpw
`, filepath.Join(dir, "portal.db"), filepath.Join(dir, "uploads"))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	app, err := initialize.Build(cfgPath)
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, token string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, srv *httptest.Server, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, srv *httptest.Server, email, pw string) string {
	t.Helper()
	resp := postJSON(t, srv, "/login", "", map[string]string{"email": email, "password": pw})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func TestEndToEnd_RBAC(t *testing.T) {
	srv := buildApp(t)

	// self-registration always yields an employee
	resp := postJSON(t, srv, "/register", "", map[string]string{"email": "a@x.com", "full_name": "Alice", "password": "pw1"})
	var created struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "employee", created.Role)

	resp = postJSON(t, srv, "/register", "", map[string]string{"email": "a@x.com", "full_name": "Again", "password": "pw9"})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	adminTok := login(t, srv, "admin@example.com", "adminpw")

	// admin creates another admin
	resp = postJSON(t, srv, "/api/admin/users", adminTok, map[string]string{"email": "b@x.com", "full_name": "Bob", "password": "pw2", "role": "admin"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// roles outside the set are rejected at the boundary
	resp = postJSON(t, srv, "/api/admin/users", adminTok, map[string]string{"email": "d@x.com", "full_name": "Dana", "password": "pw4", "role": "superuser"})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	empTok := login(t, srv, "a@x.com", "pw1")

	// employee is forbidden from the admin surface
	resp = get(t, srv, "/api/admin/users", empTok)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// missing token
	resp = get(t, srv, "/api/admin/users", "")
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// admin sees every account
	resp = get(t, srv, "/api/admin/users", adminTok)
	var users []struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, users, 3)

	// the guard feeds the caller into /api/users/me
	resp = get(t, srv, "/api/users/me", empTok)
	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	resp.Body.Close()
	require.Equal(t, "a@x.com", me.Email)
}

func TestEndToEnd_AuditTrail(t *testing.T) {
	srv := buildApp(t)

	resp := postJSON(t, srv, "/login", "", map[string]string{"email": "ghost@x.com", "password": "nope"})
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	adminTok := login(t, srv, "admin@example.com", "adminpw")

	resp = get(t, srv, "/api/admin/logs?offset=0&limit=10", adminTok)
	var entries []struct {
		Actor  string `json:"actor"`
		Action string `json:"action"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// newest first: the admin login, then the failed attempt by the unknown email
	require.Len(t, entries, 2)
	require.Equal(t, "LOGIN_SUCCESS", entries[0].Action)
	require.Equal(t, "admin@example.com", entries[0].Actor)
	require.Equal(t, "LOGIN_FAILED", entries[1].Action)
	require.Equal(t, "ghost@x.com", entries[1].Actor)

	// the audit surface is admin-only
	resp = get(t, srv, "/api/admin/logs", "")
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func uploadFile(t *testing.T, srv *httptest.Server, token, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/files", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func TestEndToEnd_Files(t *testing.T) {
	srv := buildApp(t)
	adminTok := login(t, srv, "admin@example.com", "adminpw")

	resp := uploadFile(t, srv, adminTok, "r.txt", "first contents")
	var rec struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// same name, different content: rejected, not versioned
	resp = uploadFile(t, srv, adminTok, "r.txt", "second contents")
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, srv, "/api/files", adminTok)
	var files []struct {
		Filename string `json:"filename"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&files))
	resp.Body.Close()
	require.Len(t, files, 1)

	resp = get(t, srv, fmt.Sprintf("/api/files/download?id=%d", rec.ID), adminTok)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "first contents", string(body))

	resp = get(t, srv, "/api/files/download?id=9999", adminTok)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEndToEnd_DeleteUser(t *testing.T) {
	srv := buildApp(t)
	adminTok := login(t, srv, "admin@example.com", "adminpw")

	resp := get(t, srv, "/api/users/me", adminTok)
	var admin struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&admin))
	resp.Body.Close()

	// self-deletion is refused
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/admin/users?id=%d", srv.URL, admin.ID), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// deleting another account works and its token stops resolving
	postJSON(t, srv, "/register", "", map[string]string{"email": "a@x.com", "full_name": "Alice", "password": "pw1"}).Body.Close()
	empTok := login(t, srv, "a@x.com", "pw1")

	resp = get(t, srv, "/api/admin/users", adminTok)
	var users []struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	resp.Body.Close()
	var targetID uint
	for _, u := range users {
		if u.Email == "a@x.com" {
			targetID = u.ID
		}
	}
	require.NotZero(t, targetID)

	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/admin/users?id=%d", srv.URL, targetID), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+adminTok)
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// valid signature, deleted account: identity resolution fails
	resp = get(t, srv, "/api/users/me", empTok)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
