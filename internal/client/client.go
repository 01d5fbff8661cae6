// Package client talks to the Taskboard HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/dto"
)

// APIError is a non-2xx answer. Data holds the payload sent along with the
// error, if any.
type APIError struct {
	Status  int
	Message string
	Data    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080". A nil httpClient uses a 30s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/") + "/api/v1", http: httpClient}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg, Data: env.Data}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// Login signs in and keeps the access token for later requests.
func (c *Client) Login(ctx context.Context, email, password string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return out, err
	}
	c.SetToken(out.AccessToken)
	return out, nil
}

func (c *Client) Register(ctx context.Context, email, password, name string) (dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", dto.RegisterRequest{Email: email, Password: password, Name: name}, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *Client) Session(ctx context.Context) (dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.do(ctx, http.MethodGet, "/auth/session", nil, &out)
	return out, err
}

// ListTodos fetches the todos matching f.
func (c *Client) ListTodos(ctx context.Context, f dom.TodoFilter) ([]dom.Todo, error) {
	q := url.Values{}
	if f.Completed != nil {
		q.Set("completed", strconv.FormatBool(*f.Completed))
	}
	if f.Priority != nil {
		q.Set("priority", string(*f.Priority))
	}
	if f.CategoryID != nil {
		q.Set("category_id", *f.CategoryID)
	}
	if len(f.TagIDs) > 0 {
		q.Set("tag_ids", strings.Join(f.TagIDs, ","))
	}
	path := "/todos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []dto.TodoResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	todos := make([]dom.Todo, len(out))
	for i := range out {
		todos[i] = todoFromResponse(out[i])
	}
	return todos, nil
}

func (c *Client) GetTodo(ctx context.Context, id string) (dom.Todo, error) {
	return c.todo(ctx, http.MethodGet, "/todos/"+url.PathEscape(id), nil)
}

func (c *Client) CreateTodo(ctx context.Context, req dto.CreateTodoRequest) (dom.Todo, error) {
	return c.todo(ctx, http.MethodPost, "/todos", req)
}

func (c *Client) UpdateTodo(ctx context.Context, id string, p dom.TodoPatch) (dom.Todo, error) {
	return c.todo(ctx, http.MethodPatch, "/todos/"+url.PathEscape(id), dto.PatchRequest(p))
}

func (c *Client) ToggleTodo(ctx context.Context, id string) (dom.Todo, error) {
	return c.todo(ctx, http.MethodPost, "/todos/"+url.PathEscape(id)+"/toggle", nil)
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ReorderTodos(ctx context.Context, ids []string) error {
	return c.do(ctx, http.MethodPut, "/todos/order", dto.ReorderRequest{IDs: ids}, nil)
}

func (c *Client) AttachTag(ctx context.Context, todoID, tagID string) error {
	return c.do(ctx, http.MethodPost, "/todos/"+url.PathEscape(todoID)+"/tags/"+url.PathEscape(tagID), nil, nil)
}

func (c *Client) DetachTag(ctx context.Context, todoID, tagID string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(todoID)+"/tags/"+url.PathEscape(tagID), nil, nil)
}

// Bulk runs req. A failed batch returns the per-id outcome together with
// the *APIError.
func (c *Client) Bulk(ctx context.Context, req dto.BulkRequest) (dto.BulkResponse, error) {
	var out dto.BulkResponse
	err := c.do(ctx, http.MethodPost, "/todos/bulk", req, &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Data) > 0 {
		_ = json.Unmarshal(apiErr.Data, &out)
	}
	return out, err
}

func (c *Client) todo(ctx context.Context, method, path string, body any) (dom.Todo, error) {
	var out dto.TodoResponse
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return dom.Todo{}, err
	}
	return todoFromResponse(out), nil
}

func (c *Client) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	err := c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, name, color string) (dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	err := c.do(ctx, http.MethodPost, "/categories", dto.CreateCategoryRequest{Name: name, Color: color}, &out)
	return out, err
}

func (c *Client) Tags(ctx context.Context) ([]dto.TagResponse, error) {
	var out []dto.TagResponse
	err := c.do(ctx, http.MethodGet, "/tags", nil, &out)
	return out, err
}

func (c *Client) CreateTag(ctx context.Context, name, color string) (dto.TagResponse, error) {
	var out dto.TagResponse
	err := c.do(ctx, http.MethodPost, "/tags", dto.CreateTagRequest{Name: name, Color: color}, &out)
	return out, err
}

// Profile returns nil when the profile was not created yet.
func (c *Client) Profile(ctx context.Context) (*dto.ProfileResponse, error) {
	var out *dto.ProfileResponse
	err := c.do(ctx, http.MethodGet, "/profile", nil, &out)
	return out, err
}

// Suggest asks for todo suggestions; lang selects the error language.
func (c *Client) Suggest(ctx context.Context, goal, lang string) ([]string, error) {
	b, err := json.Marshal(dto.SuggestRequest{Goal: goal})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/suggestions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	var out []string
	err = c.send(req, &out)
	return out, err
}

func todoFromResponse(r dto.TodoResponse) dom.Todo {
	t := dom.Todo{
		ID:         r.ID,
		Content:    r.Content,
		Completed:  r.Completed,
		Priority:   dom.Priority(r.Priority),
		DueDate:    r.DueDate,
		CategoryID: r.CategoryID,
		SortOrder:  r.SortOrder,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Category != nil {
		t.Category = &dom.CategoryRef{Name: r.Category.Name, Color: r.Category.Color}
	}
	for _, tag := range r.Tags {
		t.Tags = append(t.Tags, dom.Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color})
	}
	return t
}
