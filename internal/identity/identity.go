// Package identity authenticates users through an identity provider.
// The local provider keeps accounts in the users table; the gotrue provider
// delegates to a GoTrue (Supabase Auth) server.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnavailable        = errors.New("identity provider unavailable")
)

// User is an authenticated account.
type User struct {
	ID    string
	Email string
	Name  string
}

// Session is the result of a successful sign-in.
type Session struct {
	User        User
	AccessToken string
	ExpiresAt   time.Time
}

// Provider is implemented by Local and GoTrue.
type Provider interface {
	SignUp(ctx context.Context, email, password, name string) (User, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, accessToken string) error
	User(ctx context.Context, accessToken string) (User, error)
	// RequestPasswordReset starts recovery. It succeeds for unknown emails too.
	RequestPasswordReset(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
}
