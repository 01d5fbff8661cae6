package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GoTrue delegates authentication to a GoTrue server, such as Supabase Auth.
type GoTrue struct {
	baseURL     string
	apiKey      string
	redirectURL string
	http        *http.Client
}

// NewGoTrue returns a provider for the server at baseURL, the project URL
// without the /auth/v1 suffix.
func NewGoTrue(baseURL, apiKey, redirectURL string, client *http.Client) *GoTrue {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	base := strings.TrimRight(baseURL, "/")
	base = strings.TrimSuffix(base, "/auth/v1")
	return &GoTrue{baseURL: base + "/auth/v1", apiKey: apiKey, redirectURL: redirectURL, http: client}
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (u gotrueUser) toUser() User {
	return User{ID: u.ID, Email: u.Email, Name: u.UserMetadata.Name}
}

type gotrueSession struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int64      `json:"expires_in"`
	User        gotrueUser `json:"user"`
}

// gotrueError is the error body; the field set varies by endpoint and version.
type gotrueError struct {
	Code             int    `json:"code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
}

func (e gotrueError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (g *GoTrue) SignUp(ctx context.Context, email, password, name string) (User, error) {
	body := map[string]any{
		"email":    normalizeEmail(email),
		"password": password,
		"data":     map[string]string{"name": strings.TrimSpace(name)},
	}
	// Depending on email confirmation settings the answer is a user or a session.
	var out struct {
		gotrueUser
		User *gotrueUser `json:"user"`
	}
	status, gerr, err := g.do(ctx, http.MethodPost, "/signup", "", body, &out)
	if err != nil {
		return User{}, err
	}
	if status >= 400 {
		msg := strings.ToLower(gerr.text())
		if status == http.StatusUnprocessableEntity || strings.Contains(msg, "already") || gerr.ErrorCode == "user_already_exists" {
			return User{}, ErrEmailTaken
		}
		return User{}, g.statusErr(status, gerr)
	}
	if out.User != nil {
		return out.User.toUser(), nil
	}
	return out.gotrueUser.toUser(), nil
}

func (g *GoTrue) SignIn(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": normalizeEmail(email), "password": password}
	var out gotrueSession
	status, gerr, err := g.do(ctx, http.MethodPost, "/token?grant_type=password", "", body, &out)
	if err != nil {
		return Session{}, err
	}
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		return Session{}, ErrInvalidCredentials
	}
	if status >= 400 {
		return Session{}, g.statusErr(status, gerr)
	}
	return Session{
		User:        out.User.toUser(),
		AccessToken: out.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(out.ExpiresIn) * time.Second),
	}, nil
}

func (g *GoTrue) SignOut(ctx context.Context, accessToken string) error {
	status, gerr, err := g.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
	if err != nil {
		return err
	}
	// An already expired token means there is nothing left to revoke.
	if status >= 400 && status != http.StatusUnauthorized && status != http.StatusForbidden {
		return g.statusErr(status, gerr)
	}
	return nil
}

func (g *GoTrue) User(ctx context.Context, accessToken string) (User, error) {
	var out gotrueUser
	status, gerr, err := g.do(ctx, http.MethodGet, "/user", accessToken, nil, &out)
	if err != nil {
		return User{}, err
	}
	if status >= 400 {
		return User{}, g.statusErr(status, gerr)
	}
	return out.toUser(), nil
}

func (g *GoTrue) RequestPasswordReset(ctx context.Context, email string) error {
	path := "/recover"
	if g.redirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(g.redirectURL)
	}
	status, gerr, err := g.do(ctx, http.MethodPost, path, "", map[string]string{"email": normalizeEmail(email)}, nil)
	if err != nil {
		return err
	}
	if status >= 400 {
		return g.statusErr(status, gerr)
	}
	return nil
}

func (g *GoTrue) UpdatePassword(ctx context.Context, accessToken, password string) error {
	status, gerr, err := g.do(ctx, http.MethodPut, "/user", accessToken, map[string]string{"password": password}, nil)
	if err != nil {
		return err
	}
	if status >= 400 {
		return g.statusErr(status, gerr)
	}
	return nil
}

// do sends one request. Non-2xx answers are returned as status and decoded
// error body, not as err; err is only set when the server was not reached or
// the body was unreadable.
func (g *GoTrue) do(ctx context.Context, method, path, token string, in, out any) (int, gotrueError, error) {
	var gerr gotrueError
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, gerr, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return 0, gerr, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", g.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return 0, gerr, errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, gerr, errors.Join(ErrUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		_ = json.Unmarshal(data, &gerr)
		return resp.StatusCode, gerr, nil
	}
	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return 0, gerr, errors.Join(ErrUnavailable, fmt.Errorf("decode %s response: %w", path, err))
		}
	}
	return resp.StatusCode, gerr, nil
}

// ProviderError is a rejection by the GoTrue server. Message is the
// server's explanation and is meant for the user.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("gotrue status %d: %s", e.Status, e.Message)
}

func (g *GoTrue) statusErr(status int, gerr gotrueError) error {
	cause := &ProviderError{Status: status, Message: gerr.text()}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Join(ErrInvalidToken, cause)
	case status >= 500:
		return errors.Join(ErrUnavailable, cause)
	}
	return cause
}
