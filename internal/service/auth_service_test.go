package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"Taskboard/internal/auth"
	"Taskboard/internal/identity"

	"github.com/google/uuid"
)

type fakeProvider struct {
	calls   int
	signOut int
	user    identity.User
	err     error
}

func (p *fakeProvider) SignUp(_ context.Context, email, _, name string) (identity.User, error) {
	p.calls++
	if p.err != nil {
		return identity.User{}, p.err
	}
	p.user = identity.User{ID: uuid.NewString(), Email: email, Name: name}
	return p.user, nil
}

func (p *fakeProvider) SignIn(context.Context, string, string) (identity.Session, error) {
	p.calls++
	if p.err != nil {
		return identity.Session{}, p.err
	}
	return identity.Session{User: p.user, AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (p *fakeProvider) SignOut(context.Context, string) error {
	p.signOut++
	return nil
}

func (p *fakeProvider) User(context.Context, string) (identity.User, error) {
	p.calls++
	return p.user, p.err
}

func (p *fakeProvider) RequestPasswordReset(context.Context, string) error {
	p.calls++
	return p.err
}

func (p *fakeProvider) UpdatePassword(context.Context, string, string) error {
	p.calls++
	return p.err
}

func newAuthService(t *testing.T) (*AuthService, *fakeProvider, *fixture) {
	t.Helper()
	f := newFixture(t)
	p := &fakeProvider{}
	return NewAuthService(p, auth.NewStore(f.rdb, time.Hour), f.store.Profiles, f.log), p, f
}

func TestAuthValidationBeforeProvider(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newAuthService(t)

	cases := []struct {
		name string
		call func() error
	}{
		{"register without email", func() error { _, err := s.Register(ctx, "", "secret1", "Ann"); return err }},
		{"register short password", func() error { _, err := s.Register(ctx, "a@example.com", "12345", "Ann"); return err }},
		{"register without name", func() error { _, err := s.Register(ctx, "a@example.com", "secret1", " "); return err }},
		{"login bad email", func() error { _, err := s.Login(ctx, "not-an-email", "secret1"); return err }},
		{"reset without email", func() error { return s.RequestPasswordReset(ctx, "") }},
		{"update mismatch", func() error { return s.UpdatePassword(ctx, "tok", "secret1", "secret2") }},
		{"update short", func() error { return s.UpdatePassword(ctx, "tok", "abc", "abc") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times", p.calls)
	}
}

func TestAuthRegisterLoginLogout(t *testing.T) {
	ctx := context.Background()
	s, p, f := newAuthService(t)

	u, err := s.Register(ctx, "a@example.com", "secret1", "Ann")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	prof, err := f.store.Profiles.Get(ctx, u.ID)
	if err != nil || prof.Name != "Ann" {
		t.Errorf("profile after register: got (%+v, %v)", prof, err)
	}

	login, err := s.Login(ctx, "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.SessionID == "" || login.User.ID != u.ID {
		t.Fatalf("login = %+v", login)
	}
	store := auth.NewStore(f.rdb, time.Hour)
	sess, ok, err := store.Get(ctx, login.SessionID)
	if err != nil || !ok || sess.UserID != u.ID || sess.AccessToken != "tok" {
		t.Fatalf("session = %+v ok=%v err=%v", sess, ok, err)
	}

	if err := s.Logout(ctx, login.SessionID, "tok"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, login.SessionID); ok {
		t.Error("session survived logout")
	}
	if p.signOut != 1 {
		t.Errorf("provider sign out calls = %d", p.signOut)
	}
}

func TestAuthProviderErrors(t *testing.T) {
	ctx := context.Background()
	s, p, _ := newAuthService(t)

	p.err = identity.ErrInvalidCredentials
	if _, err := s.Login(ctx, "a@example.com", "secret1"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("invalid credentials: got %v", err)
	}
	p.err = identity.ErrEmailTaken
	if _, err := s.Register(ctx, "a@example.com", "secret1", "Ann"); !errors.Is(err, ErrConflict) {
		t.Errorf("email taken: got %v", err)
	}
	p.err = errors.Join(identity.ErrUnavailable, errors.New("dial tcp"))
	if _, err := s.Session(ctx, "tok"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("unavailable: got %v", err)
	}
	p.err = &identity.ProviderError{Status: 422, Message: "Password is too weak"}
	err := s.UpdatePassword(ctx, "tok", "secret1", "secret1")
	if !errors.Is(err, ErrInvalidInput) || Message(err, "") != "Password is too weak" {
		t.Errorf("provider rejection: got %v", err)
	}
}
