package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"Taskboard/internal/auth"
	"Taskboard/internal/identity"
	"Taskboard/internal/repo"
)

const minPasswordLen = 6

// AuthService validates credentials, delegates them to the identity provider
// and keeps server-side sessions.
type AuthService struct {
	provider identity.Provider
	sessions *auth.Store
	profiles repo.ProfileRepo
	log      *slog.Logger
}

func NewAuthService(p identity.Provider, sessions *auth.Store, profiles repo.ProfileRepo, log *slog.Logger) *AuthService {
	return &AuthService{provider: p, sessions: sessions, profiles: profiles, log: log}
}

// Login is a signed-in user with the session created for it.
type Login struct {
	User        identity.User
	SessionID   string
	AccessToken string
	ExpiresAt   time.Time
}

// Register creates the account and its profile.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (identity.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return identity.User{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return identity.User{}, invalid("name is required")
	}
	u, err := s.provider.SignUp(ctx, email, password, name)
	if err != nil {
		return identity.User{}, s.identityErr("register", err)
	}
	if u.ID != "" {
		if _, err := s.profiles.Upsert(ctx, u.ID, name, nil); err != nil {
			s.log.Warn("create profile", "user_id", u.ID, "error", err)
		}
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Login, error) {
	if err := validateCredentials(email, password); err != nil {
		return Login{}, err
	}
	sess, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return Login{}, s.identityErr("login", err)
	}
	id, err := s.sessions.Create(ctx, auth.Session{UserID: sess.User.ID, AccessToken: sess.AccessToken})
	if err != nil {
		return Login{}, internal("failed to create session", err)
	}
	return Login{User: sess.User, SessionID: id, AccessToken: sess.AccessToken, ExpiresAt: sess.ExpiresAt}, nil
}

// Logout revokes the provider token and drops the session. A provider
// failure is logged and does not keep the session alive.
func (s *AuthService) Logout(ctx context.Context, sessionID, accessToken string) error {
	if accessToken != "" {
		if err := s.provider.SignOut(ctx, accessToken); err != nil {
			s.log.Warn("provider sign out", "error", err)
		}
	}
	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return internal("failed to delete session", err)
		}
	}
	return nil
}

// Session returns the user behind accessToken.
func (s *AuthService) Session(ctx context.Context, accessToken string) (identity.User, error) {
	u, err := s.provider.User(ctx, accessToken)
	if err != nil {
		return identity.User{}, s.identityErr("session", err)
	}
	return u, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := s.provider.RequestPasswordReset(ctx, email); err != nil {
		return s.identityErr("password reset", err)
	}
	return nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, accessToken, password, confirm string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return invalid("passwords do not match")
	}
	if err := s.provider.UpdatePassword(ctx, accessToken, password); err != nil {
		return s.identityErr("update password", err)
	}
	return nil
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return invalid("email and password are required")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return validatePassword(password)
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("invalid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return invalid("password must be at least 6 characters")
	}
	return nil
}

func (s *AuthService) identityErr(op string, err error) error {
	var pe *identity.ProviderError
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return &Error{Kind: ErrUnauthorized, Msg: identity.ErrInvalidCredentials.Error(), Cause: err}
	case errors.Is(err, identity.ErrInvalidToken):
		return &Error{Kind: ErrUnauthorized, Msg: identity.ErrInvalidToken.Error(), Cause: err}
	case errors.Is(err, identity.ErrEmailTaken):
		return &Error{Kind: ErrConflict, Msg: identity.ErrEmailTaken.Error(), Cause: err}
	case errors.Is(err, identity.ErrUnavailable):
		s.log.Error("identity provider", "op", op, "error", err)
		return unavailable("authentication service unavailable", err)
	case errors.As(err, &pe) && pe.Message != "":
		return &Error{Kind: ErrInvalidInput, Msg: pe.Message, Cause: err}
	}
	s.log.Error("identity provider", "op", op, "error", err)
	return internal(op+" failed", err)
}
