package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	dom "Taskboard/internal/domain"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "data", "test.db"), log)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormStore(db)
}

// storeTests run against every driver.
var storeTests = []struct {
	name string
	run  func(t *testing.T, s Store)
}{
	{"TodoRowFields", testTodoRowFields},
	{"TodoOwnerScoping", testTodoOwnerScoping},
	{"TodoListFilters", testTodoListFilters},
	{"CategoryDeleteClearsTodos", testCategoryDeleteClearsTodos},
	{"TagAttachDetach", testTagAttachDetach},
	{"BulkAtomic", testBulkAtomic},
	{"ProfileUpsertKeepsAvatar", testProfileUpsertKeepsAvatar},
	{"UserEmailConflict", testUserEmailConflict},
}

func TestGormStore(t *testing.T) {
	for _, tt := range storeTests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run(t, openTestStore(t))
		})
	}
}

func newTodo(t *testing.T, s Store, userID, content string, p dom.Priority) dom.Todo {
	t.Helper()
	td, err := s.Todos.Create(context.Background(), dom.Todo{
		ID:       uuid.NewString(),
		UserID:   userID,
		Content:  content,
		Priority: p,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return td
}

func testTodoRowFields(t *testing.T, s Store) {
	ctx := context.Background()
	user := uuid.NewString()
	due := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.NewString()

	created, err := s.Todos.Create(ctx, dom.Todo{ID: id, UserID: user, Content: "file taxes", Priority: dom.PriorityHigh, DueDate: &due})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	check := func(name string, got dom.Todo) {
		t.Helper()
		if got.ID != id || got.UserID != user || got.Content != "file taxes" || got.Priority != dom.PriorityHigh {
			t.Errorf("%s: got %+v", name, got)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("%s: DueDate = %v, want %v", name, got.DueDate, due)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Errorf("%s: timestamps not loaded: %+v", name, got)
		}
	}
	check("Create", created)

	list, err := s.Todos.List(ctx, user, dom.TodoFilter{})
	if err != nil || len(list) != 1 {
		t.Fatalf("List: got (%d, %v)", len(list), err)
	}
	check("List", list[0])
	toggled, err := s.Todos.Toggle(ctx, user, id)
	if err != nil || !toggled.Completed {
		t.Fatalf("Toggle: got (%+v, %v)", toggled, err)
	}
	check("Toggle", toggled)

	tag, err := s.Tags.Create(ctx, dom.Tag{ID: uuid.NewString(), UserID: user, Name: "urgent", Color: "#EF4444"})
	if err != nil {
		t.Fatalf("Create tag failed: %v", err)
	}
	if err := s.Tags.Attach(ctx, user, id, tag.ID); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	tags, err := s.Tags.ForTodos(ctx, user, []string{id})
	if err != nil {
		t.Fatalf("ForTodos failed: %v", err)
	}
	got := tags[id]
	if len(got) != 1 || got[0].ID != tag.ID || got[0].UserID != user || got[0].Name != "urgent" || got[0].Color != "#EF4444" {
		t.Errorf("ForTodos: got %+v", got)
	}
}

func testTodoOwnerScoping(t *testing.T, s Store) {
	ctx := context.Background()
	alice, bob := uuid.NewString(), uuid.NewString()

	td := newTodo(t, s, alice, "Buy milk", dom.PriorityMedium)

	if _, err := s.Todos.GetByID(ctx, bob, td.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID as other user: got %v, want ErrNotFound", err)
	}
	content := "stolen"
	if _, err := s.Todos.Update(ctx, bob, td.ID, dom.TodoPatch{Content: &content}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update as other user: got %v, want ErrNotFound", err)
	}
	n, err := s.Todos.Delete(ctx, bob, td.ID)
	if err != nil || n != 0 {
		t.Errorf("Delete as other user: got (%d, %v), want (0, nil)", n, err)
	}
	list, err := s.Todos.List(ctx, bob, dom.TodoFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List as other user: got %d todos, want 0", len(list))
	}
	got, err := s.Todos.GetByID(ctx, alice, td.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Content != "Buy milk" {
		t.Errorf("Content: got %q, want %q", got.Content, "Buy milk")
	}
}

func testTodoListFilters(t *testing.T, s Store) {
	ctx := context.Background()
	user := uuid.NewString()

	high := newTodo(t, s, user, "high", dom.PriorityHigh)
	newTodo(t, s, user, "low", dom.PriorityLow)
	if _, err := s.Todos.Toggle(ctx, user, high.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	done := true
	list, err := s.Todos.List(ctx, user, dom.TodoFilter{Completed: &done})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != high.ID {
		t.Fatalf("completed filter: got %+v", list)
	}

	p := dom.PriorityLow
	list, err = s.Todos.List(ctx, user, dom.TodoFilter{Priority: &p})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Content != "low" {
		t.Fatalf("priority filter: got %+v", list)
	}
}

func testCategoryDeleteClearsTodos(t *testing.T, s Store) {
	ctx := context.Background()
	user := uuid.NewString()

	cat, err := s.Categories.Create(ctx, dom.Category{ID: uuid.NewString(), UserID: user, Name: "Work", Color: "#3B82F6"})
	if err != nil {
		t.Fatalf("Create category failed: %v", err)
	}
	second, err := s.Categories.Create(ctx, dom.Category{ID: uuid.NewString(), UserID: user, Name: "Home", Color: "#10B981"})
	if err != nil {
		t.Fatalf("Create category failed: %v", err)
	}
	if second.SortOrder != cat.SortOrder+1 {
		t.Errorf("SortOrder: got %d, want %d", second.SortOrder, cat.SortOrder+1)
	}

	td := newTodo(t, s, user, "report", dom.PriorityHigh)
	td, err = s.Todos.Update(ctx, user, td.ID, dom.TodoPatch{CategoryID: &cat.ID})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if td.Category == nil || td.Category.Name != "Work" {
		t.Fatalf("Category: got %+v, want Work", td.Category)
	}

	if n, err := s.Categories.Delete(ctx, user, cat.ID); err != nil || n != 1 {
		t.Fatalf("Delete category: got (%d, %v)", n, err)
	}
	td, err = s.Todos.GetByID(ctx, user, td.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if td.CategoryID != nil || td.Category != nil {
		t.Errorf("category not cleared: %+v", td)
	}
}

func testTagAttachDetach(t *testing.T, s Store) {
	ctx := context.Background()
	user, other := uuid.NewString(), uuid.NewString()

	a := newTodo(t, s, user, "a", dom.PriorityMedium)
	b := newTodo(t, s, user, "b", dom.PriorityMedium)
	urgent, err := s.Tags.Create(ctx, dom.Tag{ID: uuid.NewString(), UserID: user, Name: "urgent", Color: "#EF4444"})
	if err != nil {
		t.Fatalf("Create tag failed: %v", err)
	}
	errand, err := s.Tags.Create(ctx, dom.Tag{ID: uuid.NewString(), UserID: user, Name: "errand", Color: "#6B7280"})
	if err != nil {
		t.Fatalf("Create tag failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.Tags.Attach(ctx, user, a.ID, urgent.ID); err != nil {
			t.Fatalf("Attach #%d failed: %v", i+1, err)
		}
	}
	if err := s.Tags.Attach(ctx, user, a.ID, errand.ID); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := s.Tags.Attach(ctx, other, b.ID, urgent.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Attach as other user: got %v, want ErrNotFound", err)
	}

	tags, err := s.Tags.ForTodos(ctx, user, []string{a.ID, b.ID})
	if err != nil {
		t.Fatalf("ForTodos failed: %v", err)
	}
	if len(tags[a.ID]) != 2 || tags[a.ID][0].Name != "errand" {
		t.Errorf("tags of a: got %+v, want [errand urgent]", tags[a.ID])
	}
	if len(tags[b.ID]) != 0 {
		t.Errorf("tags of b: got %+v, want none", tags[b.ID])
	}

	ids, err := s.Tags.TodoIDsWithAnyTag(ctx, user, []string{a.ID, b.ID}, []string{urgent.ID, uuid.NewString()})
	if err != nil {
		t.Fatalf("TodoIDsWithAnyTag failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != a.ID {
		t.Errorf("TodoIDsWithAnyTag: got %v, want [%s]", ids, a.ID)
	}

	if err := s.Tags.Detach(ctx, user, a.ID, urgent.ID); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if err := s.Tags.Detach(ctx, user, a.ID, urgent.ID); err != nil {
		t.Fatalf("second Detach failed: %v", err)
	}
	if _, err := s.Todos.Delete(ctx, user, a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	tags, err = s.Tags.ForTodos(ctx, user, []string{a.ID})
	if err != nil {
		t.Fatalf("ForTodos failed: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("links survived todo delete: %+v", tags)
	}
}

func testBulkAtomic(t *testing.T, s Store) {
	ctx := context.Background()
	user := uuid.NewString()

	a := newTodo(t, s, user, "a", dom.PriorityMedium)
	b := newTodo(t, s, user, "b", dom.PriorityMedium)
	done := true

	err := s.Todos.BulkUpdate(ctx, user, []string{a.ID, b.ID, uuid.NewString()}, dom.TodoPatch{Completed: &done})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("BulkUpdate with missing id: got %v, want ErrNotFound", err)
	}
	got, _ := s.Todos.GetByID(ctx, user, a.ID)
	if got.Completed {
		t.Errorf("BulkUpdate was not rolled back")
	}

	if err := s.Todos.BulkUpdate(ctx, user, []string{a.ID, b.ID}, dom.TodoPatch{Completed: &done}); err != nil {
		t.Fatalf("BulkUpdate failed: %v", err)
	}
	list, _ := s.Todos.List(ctx, user, dom.TodoFilter{Completed: &done})
	if len(list) != 2 {
		t.Errorf("completed after BulkUpdate: got %d, want 2", len(list))
	}

	if err := s.Todos.Reorder(ctx, user, []string{b.ID, a.ID}); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	list, _ = s.Todos.List(ctx, user, dom.TodoFilter{})
	if len(list) != 2 || list[0].ID != b.ID {
		t.Errorf("order after Reorder: got %+v", list)
	}

	if err := s.Todos.BulkDelete(ctx, user, []string{a.ID, b.ID}); err != nil {
		t.Fatalf("BulkDelete failed: %v", err)
	}
	list, _ = s.Todos.List(ctx, user, dom.TodoFilter{})
	if len(list) != 0 {
		t.Errorf("todos after BulkDelete: got %d, want 0", len(list))
	}
}

func testProfileUpsertKeepsAvatar(t *testing.T, s Store) {
	ctx := context.Background()
	id := uuid.NewString()
	url := "https://cdn.example.com/avatars/a.png"

	if _, err := s.Profiles.Upsert(ctx, id, "Ann", &url); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	p, err := s.Profiles.Upsert(ctx, id, "Ann B", nil)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if p.Name != "Ann B" || p.AvatarURL == nil || *p.AvatarURL != url {
		t.Errorf("profile: got %+v", p)
	}
	empty := ""
	p, err = s.Profiles.Upsert(ctx, id, "Ann B", &empty)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if p.AvatarURL != nil {
		t.Errorf("AvatarURL: got %q, want nil", *p.AvatarURL)
	}
}

func testUserEmailConflict(t *testing.T, s Store) {
	ctx := context.Background()
	u := dom.User{ID: uuid.NewString(), Email: uuid.NewString() + "@example.com", Name: "A", PasswordHash: "x"}
	if _, err := s.Users.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	u.ID = uuid.NewString()
	if _, err := s.Users.Create(ctx, u); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email: got %v, want ErrConflict", err)
	}
}
