package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const recoveryTTL = 30 * time.Minute

// Local keeps accounts in the users table and issues its own tokens.
type Local struct {
	users    repo.UserRepo
	secret   []byte
	tokenTTL time.Duration
	log      *slog.Logger
	now      func() time.Time
}

func NewLocal(users repo.UserRepo, secret string, tokenTTL time.Duration, log *slog.Logger) *Local {
	return &Local{users: users, secret: []byte(secret), tokenTTL: tokenTTL, log: log, now: time.Now}
}

// HashPassword returns the bcrypt hash stored for password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (p *Local) SignUp(ctx context.Context, email, password, name string) (User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	u, err := p.users.Create(ctx, dom.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return User{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}

func (p *Local) SignIn(ctx context.Context, email, password string) (Session, error) {
	u, err := p.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	token, exp, err := IssueToken(p.secret, u.ID, u.Email, PurposeAccess, p.tokenTTL, p.now())
	if err != nil {
		return Session{}, err
	}
	return Session{
		User:        User{ID: u.ID, Email: u.Email, Name: u.Name},
		AccessToken: token,
		ExpiresAt:   exp,
	}, nil
}

// SignOut is a no-op: local tokens are stateless and expire on their own.
func (p *Local) SignOut(context.Context, string) error { return nil }

func (p *Local) User(ctx context.Context, accessToken string) (User, error) {
	claims, err := ParseToken(p.secret, accessToken)
	if err != nil {
		return User{}, err
	}
	u, err := p.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return User{}, ErrInvalidToken
		}
		return User{}, err
	}
	return User{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}

// RequestPasswordReset issues a recovery token. There is no mailer, so the
// token is written to the log.
func (p *Local) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := p.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	token, exp, err := IssueToken(p.secret, u.ID, u.Email, PurposeRecovery, recoveryTTL, p.now())
	if err != nil {
		return err
	}
	p.log.Info("password recovery token issued", "user_id", u.ID, "expires_at", exp, "token", token)
	return nil
}

// UpdatePassword accepts an access or a recovery token.
func (p *Local) UpdatePassword(ctx context.Context, accessToken, password string) error {
	claims, err := ParseToken(p.secret, accessToken)
	if err != nil {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := p.users.UpdatePasswordHash(ctx, claims.Subject, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
