package domain

import "time"

// Domain entity: the source of truth for a todo item.
// Knows nothing about gin, Postgres or Redis.
type Todo struct {
	ID         string
	UserID     string
	Content    string
	Completed  bool
	Priority   Priority
	DueDate    *time.Time
	CategoryID *string
	SortOrder  int

	// Category and Tags are resolved by the query layer, not stored on the row.
	Category *CategoryRef
	Tags     []Tag

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryRef is the part of a category shown next to a todo.
type CategoryRef struct {
	Name  string
	Color string
}

// TodoFilter narrows a todo listing. Nil fields are not applied.
type TodoFilter struct {
	Completed  *bool
	Priority   *Priority
	CategoryID *string
	// TagIDs keeps todos carrying at least one of the tags.
	TagIDs []string
}

// IsZero reports whether no field of the filter is set.
func (f TodoFilter) IsZero() bool {
	return f.Completed == nil && f.Priority == nil && f.CategoryID == nil && len(f.TagIDs) == 0
}

// TodoPatch is a partial update. Nil fields are left unchanged.
// ClearCategory and ClearDueDate set the column to NULL.
type TodoPatch struct {
	Content       *string
	Completed     *bool
	Priority      *Priority
	CategoryID    *string
	ClearCategory bool
	DueDate       *time.Time
	ClearDueDate  bool
}

// IsZero reports whether the patch changes nothing.
func (p TodoPatch) IsZero() bool {
	return p.Content == nil && p.Completed == nil && p.Priority == nil &&
		p.CategoryID == nil && !p.ClearCategory && p.DueDate == nil && !p.ClearDueDate
}

// Apply returns t with the patch applied. Used by optimistic client state.
func (p TodoPatch) Apply(t Todo) Todo {
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ClearCategory {
		t.CategoryID = nil
		t.Category = nil
	} else if p.CategoryID != nil {
		id := *p.CategoryID
		if t.CategoryID == nil || *t.CategoryID != id {
			t.Category = nil
		}
		t.CategoryID = &id
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	return t
}
