package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Taskboard/internal/identity"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, time.Hour), mr
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	id, err := s.Create(ctx, Session{UserID: "u1", AccessToken: "tok"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	sess, ok, err := s.Get(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Get: got (%v, %v)", ok, err)
	}
	if sess.UserID != "u1" || sess.AccessToken != "tok" {
		t.Errorf("session: got %+v", sess)
	}

	mr.FastForward(2 * time.Hour)
	if _, ok, _ := s.Get(ctx, id); ok {
		t.Error("session survived its TTL")
	}

	id, _ = s.Create(ctx, Session{UserID: "u2"})
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, id); ok {
		t.Error("session survived Delete")
	}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("secret")
	store, _ := newTestStore(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.GET("/me", RequireAuth(store, secret, log), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c), "token": AccessTokenFromContext(c)})
	})

	sessionID, err := store.Create(context.Background(), Session{UserID: "u-cookie", AccessToken: "tok-cookie"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	jwtToken, _, err := identity.IssueToken(secret, "u-bearer", "", identity.PurposeAccess, time.Minute, time.Now())
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	recovery, _, err := identity.IssueToken(secret, "u-bearer", "", identity.PurposeRecovery, time.Minute, time.Now())
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantCode int
		wantUser string
	}{
		{name: "no credentials", setup: func(*http.Request) {}, wantCode: http.StatusUnauthorized},
		{
			name:     "session cookie",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID}) },
			wantCode: http.StatusOK,
			wantUser: "u-cookie",
		},
		{
			name:     "unknown cookie",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "nope"}) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bearer token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+jwtToken) },
			wantCode: http.StatusOK,
			wantUser: "u-bearer",
		},
		{
			name:     "recovery token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+recovery) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bad bearer token",
			setup:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def.ghi") },
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantUser == "" {
				return
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["user_id"] != tt.wantUser {
				t.Errorf("user_id = %q, want %q", body["user_id"], tt.wantUser)
			}
		})
	}
}
