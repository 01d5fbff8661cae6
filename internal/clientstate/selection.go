package clientstate

import (
	"context"

	"Taskboard/internal/dto"
)

// Select adds a visible todo to the selection.
func (l *List) Select(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index(id) < 0 {
		return false
	}
	l.selected[id] = true
	return true
}

func (l *List) Unselect(id string) {
	l.mu.Lock()
	delete(l.selected, id)
	l.mu.Unlock()
}

// ToggleSelected flips the selection of id and reports whether it is now selected.
func (l *List) ToggleSelected(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.selected[id] {
		delete(l.selected, id)
		return false
	}
	if l.index(id) < 0 {
		return false
	}
	l.selected[id] = true
	return true
}

func (l *List) SelectAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.items {
		l.selected[e.cur.ID] = true
	}
}

func (l *List) ClearSelection() {
	l.mu.Lock()
	l.selected = map[string]bool{}
	l.mu.Unlock()
}

func (l *List) IsSelected(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected[id]
}

// Selected returns the selected ids in display order.
func (l *List) Selected() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selectedLocked()
}

func (l *List) selectedLocked() []string {
	var ids []string
	for _, e := range l.items {
		if l.selected[e.cur.ID] {
			ids = append(ids, e.cur.ID)
		}
	}
	return ids
}

// Bulk sends the selection through the bulk endpoint with req's operation.
// The selection is consumed by the call. The list is not changed; callers
// re-fetch and Sync.
func (l *List) Bulk(ctx context.Context, req dto.BulkRequest) (dto.BulkResponse, error) {
	l.mu.Lock()
	ids := l.selectedLocked()
	l.selected = map[string]bool{}
	l.mu.Unlock()

	if len(ids) == 0 {
		return dto.BulkResponse{}, ErrEmptySelection
	}
	req.IDs = ids
	return l.backend.Bulk(ctx, req)
}
