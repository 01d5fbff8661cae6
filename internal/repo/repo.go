package repo

import (
	"context"
	"errors"

	dom "Taskboard/internal/domain"
)

var (
	// ErrNotFound means no row owned by the caller matched.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("record already exists")
)

// TodoRepo persists todos. Every method is scoped to userID.
type TodoRepo interface {
	// List returns todos matching every set field of f except TagIDs,
	// with Category resolved and Tags left empty.
	List(ctx context.Context, userID string, f dom.TodoFilter) ([]dom.Todo, error)
	GetByID(ctx context.Context, userID, id string) (dom.Todo, error)
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	Update(ctx context.Context, userID, id string, p dom.TodoPatch) (dom.Todo, error)
	Toggle(ctx context.Context, userID, id string) (dom.Todo, error)
	// Delete returns the number of rows removed; zero is not an error.
	Delete(ctx context.Context, userID, id string) (int64, error)
	// Reorder sets sort_order to the position of each id, in one transaction.
	Reorder(ctx context.Context, userID string, ids []string) error
	// BulkUpdate and BulkDelete run in one transaction and roll back
	// with ErrNotFound unless every id is owned by userID.
	BulkUpdate(ctx context.Context, userID string, ids []string, p dom.TodoPatch) error
	BulkDelete(ctx context.Context, userID string, ids []string) error
}

// CategoryRepo persists categories.
type CategoryRepo interface {
	List(ctx context.Context, userID string) ([]dom.Category, error)
	GetByID(ctx context.Context, userID, id string) (dom.Category, error)
	// Create appends the category after the user's existing ones.
	Create(ctx context.Context, c dom.Category) (dom.Category, error)
	Update(ctx context.Context, userID, id string, p CategoryPatch) (dom.Category, error)
	Delete(ctx context.Context, userID, id string) (int64, error)
}

// CategoryPatch is a partial category update.
type CategoryPatch struct {
	Name      *string
	Color     *string
	SortOrder *int
}

// TagRepo persists tags and the todo_tags relation.
type TagRepo interface {
	List(ctx context.Context, userID string) ([]dom.Tag, error)
	GetByID(ctx context.Context, userID, id string) (dom.Tag, error)
	Create(ctx context.Context, t dom.Tag) (dom.Tag, error)
	Delete(ctx context.Context, userID, id string) (int64, error)
	// Attach is a no-op when the pair already exists. It returns
	// ErrNotFound when the todo or the tag is not owned by userID.
	Attach(ctx context.Context, userID, todoID, tagID string) error
	Detach(ctx context.Context, userID, todoID, tagID string) error
	// TodoIDsWithAnyTag narrows todoIDs to those carrying at least one of tagIDs.
	TodoIDsWithAnyTag(ctx context.Context, userID string, todoIDs, tagIDs []string) ([]string, error)
	// ForTodos returns the tags of each todo, ordered by name.
	ForTodos(ctx context.Context, userID string, todoIDs []string) (map[string][]dom.Tag, error)
}

// ProfileRepo persists profiles.
type ProfileRepo interface {
	Get(ctx context.Context, id string) (dom.Profile, error)
	// Upsert creates or updates the profile. A nil avatarURL keeps the stored
	// value; an empty one clears it.
	Upsert(ctx context.Context, id, name string, avatarURL *string) (dom.Profile, error)
}

// UserRepo persists accounts of the local identity provider.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByID(ctx context.Context, id string) (dom.User, error)
	Create(ctx context.Context, u dom.User) (dom.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

// Store bundles the repositories of one driver.
type Store struct {
	Todos      TodoRepo
	Categories CategoryRepo
	Tags       TagRepo
	Profiles   ProfileRepo
	Users      UserRepo
}
