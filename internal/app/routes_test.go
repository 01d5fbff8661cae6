package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"Taskboard/internal/config"
	"Taskboard/internal/identity"
	"Taskboard/internal/repo"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const testSecret = "test-secret"

type uploads struct{ keys []string }

func (u *uploads) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	_, err := io.Copy(io.Discard, r)
	u.keys = append(u.keys, key)
	return err
}

func (u *uploads) Remove(context.Context, string) error { return nil }

func (u *uploads) URL(key string) string { return "https://cdn.example.com/avatars/" + key }

func newTestRouter(t *testing.T) (*gin.Engine, *uploads) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := repo.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "api.db"), log)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	var cfg config.Config
	cfg.App.Env = "test"
	cfg.HTTP.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Auth.JWTSecret = testSecret
	cfg.Redis.CacheTTL = config.Seconds(time.Minute)
	cfg.Redis.SessionTTL = config.Seconds(time.Hour)

	store := repo.NewGormStore(db)
	objects := &uploads{}
	return NewRouter(cfg, log, Deps{
		Store:    store,
		Redis:    rdb,
		Identity: identity.NewLocal(store.Users, testSecret, time.Hour, log),
		Objects:  objects,
	}), objects
}

type request struct {
	method, path string
	body         any
	token        string
	cookie       *http.Cookie
	header       map[string]string
}

func serve(t *testing.T, r http.Handler, req request) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(b)
	}
	httpReq := httptest.NewRequest(req.method, req.path, body)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.cookie != nil {
		httpReq.AddCookie(req.cookie)
	}
	for k, v := range req.header {
		httpReq.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

type envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error"`
}

type todoBody struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	Completed  bool    `json:"completed"`
	Priority   string  `json:"priority"`
	CategoryID *string `json:"category_id"`
}

type loginBody struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// signUp registers and logs in a fresh user and returns the bearer token and
// the session cookie.
func signUp(t *testing.T, r http.Handler, email string) (string, *http.Cookie) {
	t.Helper()
	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/register",
		body: map[string]string{"email": email, "password": "secret1", "name": "Test"}})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/login",
		body: map[string]string{"email": email, "password": "secret1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			cookie = c
		}
	}
	if cookie == nil || !cookie.HttpOnly {
		t.Fatalf("login did not set an httpOnly session cookie")
	}
	return decode[envelope[loginBody]](t, w).Data.AccessToken, cookie
}

func TestHealthAndPalettes(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := serve(t, r, request{method: http.MethodGet, path: "/health"}); w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/palettes"})
	p := decode[envelope[struct {
		Categories []string `json:"categories"`
		Tags       []string `json:"tags"`
	}]](t, w)
	if len(p.Data.Categories) == 0 || len(p.Data.Tags) == 0 {
		t.Fatalf("empty palettes: %s", w.Body.String())
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, path := range []string{"/api/v1/todos", "/api/v1/categories", "/api/v1/profile", "/api/v1/auth/session"} {
		if w := serve(t, r, request{method: http.MethodGet, path: path}); w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without auth: got %d, want 401", path, w.Code)
		}
	}
	w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos", token: "not-a-jwt"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad bearer: got %d", w.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/register",
		body: map[string]string{"email": "a@example.com", "password": "123", "name": "A"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password: got %d", w.Code)
	}

	token, cookie := signUp(t, r, "a@example.com")

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/register",
		body: map[string]string{"email": "a@example.com", "password": "secret1", "name": "A"}})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: got %d", w.Code)
	}
	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/login",
		body: map[string]string{"email": "a@example.com", "password": "wrong-pass"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got %d", w.Code)
	}

	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/auth/session", cookie: cookie})
	if got := decode[envelope[struct {
		Email string `json:"email"`
	}]](t, w).Data.Email; got != "a@example.com" {
		t.Fatalf("session by cookie: %d %s", w.Code, w.Body.String())
	}
	if w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/auth/session", token: token}); w.Code != http.StatusOK {
		t.Fatalf("session by bearer: %d", w.Code)
	}

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/password/update", token: token,
		body: map[string]string{"password": "secret2", "confirm_password": "secret3"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mismatched confirm: got %d", w.Code)
	}

	if w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/logout", cookie: cookie}); w.Code != http.StatusOK {
		t.Fatalf("logout: %d %s", w.Code, w.Body.String())
	}
	if w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos", cookie: cookie}); w.Code != http.StatusUnauthorized {
		t.Fatalf("cookie after logout: got %d", w.Code)
	}
}

func TestRecoveryTokenOnlyUpdatesPassword(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := signUp(t, r, "r@example.com")
	claims, err := identity.ParseToken([]byte(testSecret), token)
	if err != nil {
		t.Fatal(err)
	}
	recovery, _, err := identity.IssueToken([]byte(testSecret), claims.Subject, "r@example.com", identity.PurposeRecovery, time.Hour, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos", token: recovery}); w.Code != http.StatusUnauthorized {
		t.Fatalf("recovery token on todos: got %d", w.Code)
	}
	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/password/update", token: recovery,
		body: map[string]string{"password": "changed1", "confirm_password": "changed1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("password update: %d %s", w.Code, w.Body.String())
	}
	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/auth/login",
		body: map[string]string{"email": "r@example.com", "password": "changed1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("login with new password: %d", w.Code)
	}
}

func TestTodoRoutes(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := signUp(t, r, "t@example.com")
	other, _ := signUp(t, r, "o@example.com")

	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/categories", token: token,
		body: map[string]string{"name": "Work", "color": "#3b82f6"}})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: %d %s", w.Code, w.Body.String())
	}
	catID := decode[envelope[struct {
		ID    string `json:"id"`
		Color string `json:"color"`
	}]](t, w).Data.ID

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos", token: token,
		body: map[string]any{"content": "write report", "priority": "high", "category_id": catID, "due_date": "2025-01-01"}})
	if w.Code != http.StatusCreated {
		t.Fatalf("create todo: %d %s", w.Code, w.Body.String())
	}
	first := decode[envelope[todoBody]](t, w).Data
	if first.Priority != "high" || first.CategoryID == nil || *first.CategoryID != catID {
		t.Fatalf("unexpected todo %+v", first)
	}

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos", token: token,
		body: map[string]any{"content": "water plants"}})
	second := decode[envelope[todoBody]](t, w).Data
	if second.Priority != "medium" {
		t.Fatalf("default priority: got %q", second.Priority)
	}

	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos?priority=high", token: token})
	if list := decode[envelope[[]todoBody]](t, w).Data; len(list) != 1 || list[0].ID != first.ID {
		t.Fatalf("priority filter: %s", w.Body.String())
	}
	if w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos?completed=maybe", token: token}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad completed flag: got %d", w.Code)
	}

	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos", token: other})
	if list := decode[envelope[[]todoBody]](t, w).Data; len(list) != 0 {
		t.Fatalf("other user sees %d todos", len(list))
	}
	if w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos/" + first.ID, token: other}); w.Code != http.StatusNotFound {
		t.Fatalf("foreign todo: got %d", w.Code)
	}

	w = serve(t, r, request{method: http.MethodPatch, path: "/api/v1/todos/" + first.ID, token: token,
		body: map[string]any{"category_id": nil}})
	if got := decode[envelope[todoBody]](t, w).Data; got.CategoryID != nil || got.Priority != "high" {
		t.Fatalf("clear category: %s", w.Body.String())
	}

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos/" + second.ID + "/toggle", token: token})
	if !decode[envelope[todoBody]](t, w).Data.Completed {
		t.Fatalf("toggle: %s", w.Body.String())
	}

	w = serve(t, r, request{method: http.MethodPut, path: "/api/v1/todos/order", token: token,
		body: map[string]any{"ids": []string{second.ID, first.ID}}})
	if w.Code != http.StatusOK {
		t.Fatalf("reorder: %d %s", w.Code, w.Body.String())
	}
	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos", token: token})
	if list := decode[envelope[[]todoBody]](t, w).Data; len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("order after reorder: %s", w.Body.String())
	}

	if w := serve(t, r, request{method: http.MethodDelete, path: "/api/v1/todos/" + first.ID, token: token}); w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := serve(t, r, request{method: http.MethodDelete, path: "/api/v1/todos/" + first.ID, token: token}); w.Code != http.StatusOK {
		t.Fatalf("delete missing: %d", w.Code)
	}
	if w := serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos/not-a-uuid", token: token}); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: got %d", w.Code)
	}
}

func TestTagRoutes(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := signUp(t, r, "tag@example.com")

	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/tags", token: token,
		body: map[string]string{"name": "urgent"}})
	if w.Code != http.StatusCreated {
		t.Fatalf("create tag: %d %s", w.Code, w.Body.String())
	}
	tagID := decode[envelope[struct {
		ID string `json:"id"`
	}]](t, w).Data.ID

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos", token: token, body: map[string]any{"content": "tagged"}})
	todoID := decode[envelope[todoBody]](t, w).Data.ID
	serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos", token: token, body: map[string]any{"content": "plain"}})

	for range 2 {
		w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos/" + todoID + "/tags/" + tagID, token: token})
		if w.Code != http.StatusOK {
			t.Fatalf("attach: %d %s", w.Code, w.Body.String())
		}
	}
	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos?tag_ids=" + tagID, token: token})
	list := decode[envelope[[]struct {
		ID   string `json:"id"`
		Tags []struct {
			ID string `json:"id"`
		} `json:"tags"`
	}]](t, w).Data
	if len(list) != 1 || list[0].ID != todoID || len(list[0].Tags) != 1 {
		t.Fatalf("tag filter: %s", w.Body.String())
	}

	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos?tag_ids=" + uuid.NewString(), token: token})
	if list := decode[envelope[[]todoBody]](t, w).Data; len(list) != 0 {
		t.Fatalf("unknown tag matched %d todos", len(list))
	}
}

func TestBulkRoute(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := signUp(t, r, "b@example.com")

	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos", token: token, body: map[string]any{"content": "one"}})
	id := decode[envelope[todoBody]](t, w).Data.ID
	missing := uuid.NewString()

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos/bulk", token: token,
		body: map[string]any{"op": "update", "ids": []string{id, missing}, "priority": "low"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("bulk with missing id: %d %s", w.Code, w.Body.String())
	}
	res := decode[envelope[struct {
		Succeeded []string          `json:"succeeded"`
		Failed    map[string]string `json:"failed"`
	}]](t, w)
	if res.Error != "bulk operation failed" || len(res.Data.Succeeded) != 1 || res.Data.Failed[missing] != "todo not found" {
		t.Fatalf("unexpected bulk result %s", w.Body.String())
	}
	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos/" + id, token: token})
	if got := decode[envelope[todoBody]](t, w).Data.Priority; got != "low" {
		t.Fatalf("best-effort update not kept: priority %q", got)
	}

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos/bulk", token: token,
		body: map[string]any{"op": "complete", "ids": []string{id, missing}, "atomic": true}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("atomic bulk: %d", w.Code)
	}
	w = serve(t, r, request{method: http.MethodGet, path: "/api/v1/todos/" + id, token: token})
	if decode[envelope[todoBody]](t, w).Data.Completed {
		t.Fatalf("atomic bulk was not rolled back")
	}

	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/todos/bulk", token: token,
		body: map[string]any{"op": "archive", "ids": []string{id}}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown op: got %d", w.Code)
	}
}

func multipartFile(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestAvatarUpload(t *testing.T) {
	r, objects := newTestRouter(t)
	token, _ := signUp(t, r, "p@example.com")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

	upload := func(filename, contentType string, data []byte) *httptest.ResponseRecorder {
		body, ct := multipartFile(t, filename, contentType, data)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/avatar", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	big := append(append([]byte{}, png...), make([]byte, 5<<20)...)
	w := upload("big.png", "image/png", big)
	if w.Code != http.StatusBadRequest || decode[envelope[any]](t, w).Error != "file size must be less than 5MB" {
		t.Fatalf("oversized upload: %d %s", w.Code, w.Body.String())
	}
	huge := append(append([]byte{}, png...), make([]byte, 7<<20)...)
	if w := upload("huge.png", "image/png", huge); w.Code != http.StatusBadRequest ||
		decode[envelope[any]](t, w).Error != "file size must be less than 5MB" {
		t.Fatalf("body over the request limit: %d %s", w.Code, w.Body.String())
	}
	body, ct := multipartFile(t, "huge.png", "image/png", huge)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/avatar", body)
	req.ContentLength = -1
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest || decode[envelope[any]](t, w).Error != "file size must be less than 5MB" {
		t.Fatalf("body of unknown length over the limit: %d %s", w.Code, w.Body.String())
	}
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	if w := upload("a.gif", "image/gif", gif); w.Code != http.StatusBadRequest {
		t.Fatalf("gif upload: got %d", w.Code)
	}
	if len(objects.keys) != 0 {
		t.Fatalf("rejected uploads reached storage: %v", objects.keys)
	}

	w = upload("a.png", "image/png", png)
	if w.Code != http.StatusOK {
		t.Fatalf("png upload: %d %s", w.Code, w.Body.String())
	}
	url := decode[envelope[struct {
		URL string `json:"url"`
	}]](t, w).Data.URL
	if len(objects.keys) != 1 || url != objects.URL(objects.keys[0]) {
		t.Fatalf("url %q keys %v", url, objects.keys)
	}

	w = serve(t, r, request{method: http.MethodPut, path: "/api/v1/profile", token: token,
		body: map[string]any{"name": "Pat", "avatar_url": url}})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile: %d %s", w.Code, w.Body.String())
	}
	w = serve(t, r, request{method: http.MethodDelete, path: "/api/v1/profile/avatar", token: token,
		body: map[string]string{"url": "https://cdn.example.com/avatars/" + uuid.NewString() + "-1.png"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete foreign avatar: got %d", w.Code)
	}
}

func TestSuggestionsLocalizedWithoutAI(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := signUp(t, r, "s@example.com")

	w := serve(t, r, request{method: http.MethodPost, path: "/api/v1/suggestions", token: token,
		body: map[string]string{"goal": " "}, header: map[string]string{"Accept-Language": "id-ID,id;q=0.9"}})
	if w.Code != http.StatusBadRequest || decode[envelope[any]](t, w).Error != "Tujuan wajib diisi" {
		t.Fatalf("blank goal: %d %s", w.Code, w.Body.String())
	}
	w = serve(t, r, request{method: http.MethodPost, path: "/api/v1/suggestions", token: token,
		body: map[string]string{"goal": "learn go"}})
	if w.Code != http.StatusBadGateway || decode[envelope[any]](t, w).Error != "Failed to generate todo suggestions" {
		t.Fatalf("no AI client: %d %s", w.Code, w.Body.String())
	}
}
