package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "Taskboard/internal/domain"
)

// DueDate parses due_date from JSON as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC. Set reports whether the
// key was present at all, so that null can clear the field.
type DueDate struct {
	t   *time.Time
	Set bool
}

func (d *DueDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	t, err := ParseDueDate(*raw)
	if err != nil {
		return err
	}
	d.t = &t
	return nil
}

// DueDateOf returns a present due date; nil encodes as null.
func DueDateOf(t *time.Time) DueDate { return DueDate{t: t, Set: true} }

func (d DueDate) MarshalJSON() ([]byte, error) {
	if d.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.UTC().Format(time.RFC3339))
}

// IsZero reports an absent due date, so omitzero drops the key.
func (d DueDate) IsZero() bool { return !d.Set }

// Ptr returns *time.Time for use in service/domain.
func (d DueDate) Ptr() *time.Time { return d.t }

// ParseDueDate accepts a date (YYYY-MM-DD) or an RFC3339 datetime.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// OptionalID is an ID field where null and absent differ:
// absent leaves the value unchanged, null clears it.
type OptionalID struct {
	Value *string
	Set   bool
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		o.Value = nil
		return nil
	}
	o.Value = &s
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o OptionalID) IsZero() bool { return !o.Set }

type CreateTodoRequest struct {
	Content    string  `json:"content" binding:"max=500"`
	Priority   string  `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	CategoryID *string `json:"category_id,omitempty"`
	DueDate    DueDate `json:"due_date,omitzero" swaggertype:"string" example:"2026-02-19"`
}

type UpdateTodoRequest struct {
	Content   *string `json:"content,omitempty" binding:"omitempty,max=500"`
	Completed *bool   `json:"completed,omitempty"`
	Priority  *string `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	// null removes the category
	CategoryID OptionalID `json:"category_id,omitzero" swaggertype:"string"`
	// null removes the due date
	DueDate DueDate `json:"due_date,omitzero" swaggertype:"string" example:"2026-02-19"`
}

// Patch converts the request into a domain patch.
func (r UpdateTodoRequest) Patch() dom.TodoPatch {
	p := dom.TodoPatch{
		Content:   r.Content,
		Completed: r.Completed,
	}
	if r.Priority != nil {
		pr := dom.Priority(*r.Priority)
		p.Priority = &pr
	}
	if r.CategoryID.Set {
		p.CategoryID = r.CategoryID.Value
		p.ClearCategory = r.CategoryID.Value == nil
	}
	if r.DueDate.Set {
		p.DueDate = r.DueDate.Ptr()
		p.ClearDueDate = r.DueDate.Ptr() == nil
	}
	return p
}

// PatchRequest is the inverse of Patch, used by API clients.
func PatchRequest(p dom.TodoPatch) UpdateTodoRequest {
	r := UpdateTodoRequest{Content: p.Content, Completed: p.Completed}
	if p.Priority != nil {
		pr := string(*p.Priority)
		r.Priority = &pr
	}
	switch {
	case p.ClearCategory:
		r.CategoryID = OptionalID{Set: true}
	case p.CategoryID != nil:
		r.CategoryID = OptionalID{Value: p.CategoryID, Set: true}
	}
	switch {
	case p.ClearDueDate:
		r.DueDate = DueDateOf(nil)
	case p.DueDate != nil:
		r.DueDate = DueDateOf(p.DueDate)
	}
	return r
}

type ReorderRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type BulkRequest struct {
	Op         string     `json:"op" binding:"required,oneof=complete incomplete delete update"`
	IDs        []string   `json:"ids" binding:"required,min=1"`
	Priority   *string    `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	CategoryID OptionalID `json:"category_id,omitzero" swaggertype:"string"`
	Atomic     bool       `json:"atomic,omitempty"`
}

type BulkResponse struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

type CategoryRefResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TodoResponse struct {
	ID         string               `json:"id"`
	Content    string               `json:"content"`
	Completed  bool                 `json:"completed"`
	Priority   string               `json:"priority"`
	DueDate    *time.Time           `json:"due_date"`
	CategoryID *string              `json:"category_id"`
	SortOrder  int                  `json:"sort_order"`
	Category   *CategoryRefResponse `json:"category"`
	Tags       []TagResponse        `json:"tags"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func TodoFromDomain(t dom.Todo) TodoResponse {
	r := TodoResponse{
		ID:         t.ID,
		Content:    t.Content,
		Completed:  t.Completed,
		Priority:   string(t.Priority),
		DueDate:    t.DueDate,
		CategoryID: t.CategoryID,
		SortOrder:  t.SortOrder,
		Tags:       TagsFromDomain(t.Tags),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
	if t.Category != nil {
		r.Category = &CategoryRefResponse{Name: t.Category.Name, Color: t.Category.Color}
	}
	return r
}

func TodosFromDomain(list []dom.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = TodoFromDomain(list[i])
	}
	return out
}
