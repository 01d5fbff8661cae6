package dto

import (
	"encoding/json"
	"testing"
	"time"

	dom "Taskboard/internal/domain"
)

func TestUpdateTodoRequestPatch(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, r UpdateTodoRequest)
	}{
		{
			name: "absent fields stay unchanged",
			body: `{"completed": true}`,
			check: func(t *testing.T, r UpdateTodoRequest) {
				p := r.Patch()
				if p.ClearCategory || p.CategoryID != nil || p.ClearDueDate || p.DueDate != nil {
					t.Errorf("patch touches absent fields: %+v", p)
				}
				if p.Completed == nil || !*p.Completed {
					t.Errorf("completed not set: %+v", p)
				}
			},
		},
		{
			name: "null clears",
			body: `{"category_id": null, "due_date": null}`,
			check: func(t *testing.T, r UpdateTodoRequest) {
				p := r.Patch()
				if !p.ClearCategory || !p.ClearDueDate {
					t.Errorf("null did not clear: %+v", p)
				}
			},
		},
		{
			name: "values set",
			body: `{"category_id": "c1", "due_date": "2025-01-01", "priority": "high"}`,
			check: func(t *testing.T, r UpdateTodoRequest) {
				p := r.Patch()
				if p.CategoryID == nil || *p.CategoryID != "c1" || p.ClearCategory {
					t.Errorf("category = %+v", p)
				}
				want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				if p.DueDate == nil || !p.DueDate.Equal(want) {
					t.Errorf("due date = %v", p.DueDate)
				}
				if p.Priority == nil || *p.Priority != "high" {
					t.Errorf("priority = %v", p.Priority)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r UpdateTodoRequest
			if err := json.Unmarshal([]byte(tt.body), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tt.check(t, r)
		})
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2026-02-19T10:30:00+02:00")
	if err != nil {
		t.Fatalf("ParseDueDate failed: %v", err)
	}
	if !got.Equal(time.Date(2026, 2, 19, 8, 30, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}
	if _, err := ParseDueDate("next week"); err == nil {
		t.Error("expected error")
	}
}

func TestPatchRequestEncoding(t *testing.T) {
	done := true
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		patch dom.TodoPatch
		want  string
	}{
		{"only completed", dom.TodoPatch{Completed: &done}, `{"completed":true}`},
		{"clear category and due date", dom.TodoPatch{ClearCategory: true, ClearDueDate: true}, `{"category_id":null,"due_date":null}`},
		{"set due date", dom.TodoPatch{DueDate: &due}, `{"due_date":"2026-03-01T00:00:00Z"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(PatchRequest(tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Fatalf("got %s, want %s", b, tt.want)
			}
			var back UpdateTodoRequest
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatal(err)
			}
			p := back.Patch()
			if p.ClearCategory != tt.patch.ClearCategory || p.ClearDueDate != tt.patch.ClearDueDate {
				t.Fatalf("decoded patch %+v", p)
			}
		})
	}
}
