package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestGoTrue(t *testing.T, h http.HandlerFunc) *GoTrue {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGoTrue(srv.URL+"/auth/v1/", "anon-key", "", srv.Client())
}

func TestGoTrueSignIn(t *testing.T) {
	g := newTestGoTrue(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey header = %q", r.Header.Get("apikey"))
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600,"user":{"id":"u1","email":"a@example.com","user_metadata":{"name":"Ann"}}}`))
	})

	sess, err := g.SignIn(context.Background(), "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if sess.AccessToken != "tok" || sess.User.ID != "u1" || sess.User.Name != "Ann" {
		t.Errorf("session: got %+v", sess)
	}
	if _, err := g.SignIn(context.Background(), "a@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: got %v", err)
	}
}

func TestGoTrueSignUpTaken(t *testing.T) {
	g := newTestGoTrue(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
	})
	if _, err := g.SignUp(context.Background(), "a@example.com", "secret1", "Ann"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("SignUp: got %v, want ErrEmailTaken", err)
	}
}

func TestGoTrueUserErrors(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusUnauthorized)
	g := newTestGoTrue(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(int(status.Load()))
		_, _ = w.Write([]byte(`{"msg":"nope"}`))
	})

	if _, err := g.User(context.Background(), "tok"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("401: got %v, want ErrInvalidToken", err)
	}
	status.Store(http.StatusBadGateway)
	if _, err := g.User(context.Background(), "tok"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("502: got %v, want ErrUnavailable", err)
	}
	status.Store(http.StatusBadRequest)
	err := g.UpdatePassword(context.Background(), "tok", "x")
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Message != "nope" {
		t.Errorf("400: got %v, want ProviderError nope", err)
	}
}
