package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"Taskboard/internal/cache"
	dom "Taskboard/internal/domain"
	"Taskboard/internal/repo"
	"Taskboard/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const msgFetchTodos = "failed to fetch todos"

// NewTodo is the input of TodoService.Create.
type NewTodo struct {
	Content string
	// Priority defaults to medium when empty.
	Priority   dom.Priority
	CategoryID *string
	DueDate    *time.Time
}

type TodoService struct {
	todos      repo.TodoRepo
	tags       repo.TagRepo
	categories repo.CategoryRepo
	cache      *cache.TodoCache
	sf         singleflight.Group
	log        *slog.Logger
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(store repo.Store, c *cache.TodoCache, log *slog.Logger) *TodoService {
	return &TodoService{
		todos:      store.Todos,
		tags:       store.Tags,
		categories: store.Categories,
		cache:      c,
		log:        log,
	}
}

// List returns the user's todos matching f, each with its category and
// tags, ordered by sort_order then newest first.
func (s *TodoService) List(ctx context.Context, userID string, f dom.TodoFilter) ([]dom.Todo, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	if s.cache == nil {
		return s.list(ctx, userID, f)
	}
	ver, err := s.cache.Version(ctx, userID)
	if err != nil {
		s.log.Warn("read todo cache version", "user_id", userID, "error", err)
		return s.list(ctx, userID, f)
	}
	// The version is part of the key so a read started before a mutation
	// is never shared with one started after it.
	key := userID + ":" + strconv.FormatInt(ver, 10) + ":" + cache.FilterKey(f)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID, ver, f); err == nil && list != nil {
			return list, nil
		}
		list, err := s.list(ctx, userID, f)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetList(ctx, userID, ver, f, list); err != nil {
			s.log.Warn("cache todo list", "user_id", userID, "error", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Todo), nil
}

func (s *TodoService) list(ctx context.Context, userID string, f dom.TodoFilter) ([]dom.Todo, error) {
	todos, err := s.todos.List(ctx, userID, f)
	if err != nil {
		s.log.Error("list todos", "user_id", userID, "error", err)
		return nil, internal(msgFetchTodos, err)
	}
	if len(f.TagIDs) > 0 && len(todos) > 0 {
		keep, err := s.tags.TodoIDsWithAnyTag(ctx, userID, todoIDs(todos), f.TagIDs)
		if err != nil {
			s.log.Error("filter todos by tag", "user_id", userID, "error", err)
			return nil, internal(msgFetchTodos, err)
		}
		todos = retain(todos, keep)
	}
	if len(todos) == 0 {
		return []dom.Todo{}, nil
	}
	if err := s.annotateTags(ctx, userID, todos); err != nil {
		s.log.Error("load todo tags", "user_id", userID, "error", err)
		return nil, internal(msgFetchTodos, err)
	}
	return todos, nil
}

// Get returns one annotated todo.
func (s *TodoService) Get(ctx context.Context, userID, id string) (dom.Todo, error) {
	if !validID(id) {
		return dom.Todo{}, invalid("invalid todo id")
	}
	t, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Todo{}, fromRepo(err, "todo not found", "", "failed to fetch todo")
	}
	return s.withTags(ctx, userID, t)
}

func (s *TodoService) Create(ctx context.Context, userID string, in NewTodo) (dom.Todo, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return dom.Todo{}, invalid("content is required")
	}
	priority, err := dom.ParsePriority(string(in.Priority))
	if err != nil {
		return dom.Todo{}, invalid(err.Error())
	}
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return dom.Todo{}, err
	}

	t, err := s.todos.Create(ctx, dom.Todo{
		ID:         uuid.NewString(),
		UserID:     userID,
		Content:    content,
		Priority:   priority,
		CategoryID: in.CategoryID,
		DueDate:    utcPtr(in.DueDate),
	})
	if err != nil {
		return dom.Todo{}, fromRepo(err, "todo not found", "todo already exists", "failed to create todo")
	}
	s.invalidateCache(ctx, userID)
	t.Tags = []dom.Tag{}
	return t, nil
}

// Update applies a partial patch. An empty patch returns the todo unchanged.
func (s *TodoService) Update(ctx context.Context, userID, id string, p dom.TodoPatch) (dom.Todo, error) {
	if !validID(id) {
		return dom.Todo{}, invalid("invalid todo id")
	}
	p, err := s.validatePatch(ctx, userID, p)
	if err != nil {
		return dom.Todo{}, err
	}
	if p.IsZero() {
		return s.Get(ctx, userID, id)
	}
	t, err := s.todos.Update(ctx, userID, id, p)
	if err != nil {
		return dom.Todo{}, fromRepo(err, "todo not found", "", "failed to update todo")
	}
	s.invalidateCache(ctx, userID)
	return s.withTags(ctx, userID, t)
}

func (s *TodoService) Toggle(ctx context.Context, userID, id string) (dom.Todo, error) {
	if !validID(id) {
		return dom.Todo{}, invalid("invalid todo id")
	}
	t, err := s.todos.Toggle(ctx, userID, id)
	if err != nil {
		return dom.Todo{}, fromRepo(err, "todo not found", "", "failed to toggle todo")
	}
	s.invalidateCache(ctx, userID)
	return s.withTags(ctx, userID, t)
}

// Delete removes the todo. Deleting a missing todo succeeds.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return invalid("invalid todo id")
	}
	n, err := s.todos.Delete(ctx, userID, id)
	if err != nil {
		return internal("failed to delete todo", err)
	}
	if n > 0 {
		s.invalidateCache(ctx, userID)
	}
	return nil
}

// AttachTag links a tag to a todo. Attaching twice is a no-op.
func (s *TodoService) AttachTag(ctx context.Context, userID, todoID, tagID string) error {
	if !validID(todoID) || !validID(tagID) {
		return invalid("invalid todo or tag id")
	}
	if err := s.tags.Attach(ctx, userID, todoID, tagID); err != nil {
		return fromRepo(err, "todo or tag not found", "", "failed to attach tag")
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// DetachTag unlinks a tag from a todo. Detaching a missing link is a no-op.
func (s *TodoService) DetachTag(ctx context.Context, userID, todoID, tagID string) error {
	if !validID(todoID) || !validID(tagID) {
		return invalid("invalid todo or tag id")
	}
	if err := s.tags.Detach(ctx, userID, todoID, tagID); err != nil {
		return internal("failed to detach tag", err)
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// Reorder stores the position of each id as its sort order.
func (s *TodoService) Reorder(ctx context.Context, userID string, ids []string) error {
	ids = utils.Dedupe(ids)
	if len(ids) == 0 {
		return invalid("ids are required")
	}
	for _, id := range ids {
		if !validID(id) {
			return invalid("invalid todo id")
		}
	}
	if err := s.todos.Reorder(ctx, userID, ids); err != nil {
		return fromRepo(err, "todo not found", "", "failed to reorder todos")
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TodoService) validatePatch(ctx context.Context, userID string, p dom.TodoPatch) (dom.TodoPatch, error) {
	if p.Content != nil {
		c := strings.TrimSpace(*p.Content)
		if c == "" {
			return p, invalid("content cannot be empty")
		}
		p.Content = &c
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return p, invalid("priority must be one of high, medium, low")
	}
	if p.ClearCategory {
		p.CategoryID = nil
	} else if err := s.checkCategory(ctx, userID, p.CategoryID); err != nil {
		return p, err
	}
	if p.ClearDueDate {
		p.DueDate = nil
	}
	p.DueDate = utcPtr(p.DueDate)
	return p, nil
}

// checkCategory rejects categories the user does not own.
func (s *TodoService) checkCategory(ctx context.Context, userID string, id *string) error {
	if id == nil {
		return nil
	}
	if !validID(*id) {
		return invalid("invalid category id")
	}
	if _, err := s.categories.GetByID(ctx, userID, *id); err != nil {
		return fromRepo(err, "category not found", "", "failed to fetch category")
	}
	return nil
}

func (s *TodoService) withTags(ctx context.Context, userID string, t dom.Todo) (dom.Todo, error) {
	list := []dom.Todo{t}
	if err := s.annotateTags(ctx, userID, list); err != nil {
		return dom.Todo{}, internal("failed to fetch todo", err)
	}
	return list[0], nil
}

func (s *TodoService) annotateTags(ctx context.Context, userID string, todos []dom.Todo) error {
	byTodo, err := s.tags.ForTodos(ctx, userID, todoIDs(todos))
	if err != nil {
		return err
	}
	for i := range todos {
		todos[i].Tags = byTodo[todos[i].ID]
		if todos[i].Tags == nil {
			todos[i].Tags = []dom.Tag{}
		}
	}
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		s.log.Warn("invalidate todo cache", "user_id", userID, "error", err)
	}
}

func normalizeFilter(f dom.TodoFilter) (dom.TodoFilter, error) {
	if f.Priority != nil && !f.Priority.Valid() {
		return f, invalid("priority must be one of high, medium, low")
	}
	if f.CategoryID != nil && !validID(*f.CategoryID) {
		return f, invalid("invalid category id")
	}
	f.TagIDs = utils.Dedupe(f.TagIDs)
	for _, id := range f.TagIDs {
		if !validID(id) {
			return f, invalid("invalid tag id")
		}
	}
	if len(f.TagIDs) == 0 {
		f.TagIDs = nil
	}
	return f, nil
}

func todoIDs(todos []dom.Todo) []string {
	ids := make([]string, len(todos))
	for i, t := range todos {
		ids[i] = t.ID
	}
	return ids
}

// retain keeps the todos whose ID is in ids, preserving order.
func retain(todos []dom.Todo, ids []string) []dom.Todo {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	out := todos[:0]
	for _, t := range todos {
		if _, ok := keep[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
