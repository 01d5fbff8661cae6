// Package clientstate keeps the optimistic todo list of an API client.
//
// Every item moves through Clean -> Pending -> Committed or Failed. A
// mutation changes the local copy at once; its response either replaces it
// with the server copy or restores the last copy the server confirmed.
package clientstate

import (
	"context"
	"errors"
	"slices"
	"sync"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/dto"
)

type State int

const (
	Clean State = iota
	Pending
	Committed
	Failed
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrUnknownTodo    = errors.New("todo is not in the list")
	ErrEmptySelection = errors.New("no todos selected")
)

// Backend is the part of the API the list mutates through.
// *client.Client implements it.
type Backend interface {
	UpdateTodo(ctx context.Context, id string, p dom.TodoPatch) (dom.Todo, error)
	ToggleTodo(ctx context.Context, id string) (dom.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
	Bulk(ctx context.Context, req dto.BulkRequest) (dto.BulkResponse, error)
}

// Item is a snapshot of one visible todo.
type Item struct {
	Todo  dom.Todo
	State State
	// Err is the error of the last failed mutation.
	Err error
}

type entry struct {
	cur   dom.Todo
	good  dom.Todo
	state State
	err   error
	// seq of the latest mutation started on this item
	seq uint64
	// seq of the mutation whose server copy is in good
	goodSeq uint64
}

type removed struct {
	e     *entry
	index int
	seq   uint64
}

type List struct {
	backend Backend

	mu       sync.Mutex
	gen      uint64
	seq      uint64
	items    []*entry
	deleting map[string]removed
	selected map[string]bool
}

func New(b Backend) *List {
	return &List{backend: b, deleting: map[string]removed{}, selected: map[string]bool{}}
}

// Sync replaces the list with server truth. Pending mutations keep running
// but their responses are ignored. The selection is cleared.
func (l *List) Sync(todos []dom.Todo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.items = make([]*entry, len(todos))
	for i, t := range todos {
		l.items[i] = &entry{cur: t, good: t, state: Clean}
	}
	l.deleting = map[string]removed{}
	l.selected = map[string]bool{}
}

// Items returns the visible todos in display order.
func (l *List) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Item, len(l.items))
	for i, e := range l.items {
		out[i] = Item{Todo: e.cur, State: e.state, Err: e.err}
	}
	return out
}

// Get returns the visible todo with id.
func (l *List) Get(id string) (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return Item{}, false
	}
	e := l.items[i]
	return Item{Todo: e.cur, State: e.state, Err: e.err}, true
}

// Len is the number of visible todos.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *List) index(id string) int {
	return slices.IndexFunc(l.items, func(e *entry) bool { return e.cur.ID == id })
}

// Mutation is a server call whose local effect is already visible.
type Mutation struct {
	list *List
	id   string
	gen  uint64
	seq  uint64
	del  bool
	run  func(ctx context.Context, b Backend) (dom.Todo, error)
}

func (m *Mutation) TodoID() string { return m.id }

// Do runs the call and reconciles the list with its outcome. The call's
// error is returned even when the outcome was ignored after a Sync.
func (m *Mutation) Do(ctx context.Context) error {
	t, err := m.run(ctx, m.list.backend)
	m.list.resolve(m, t, err)
	return err
}

// Edit applies p locally and returns the update to run.
func (l *List) Edit(id string, p dom.TodoPatch) (*Mutation, error) {
	return l.start(id, func(t dom.Todo) dom.Todo { return p.Apply(t) },
		func(ctx context.Context, b Backend) (dom.Todo, error) { return b.UpdateTodo(ctx, id, p) })
}

// Toggle flips the completed flag locally and returns the toggle to run.
func (l *List) Toggle(id string) (*Mutation, error) {
	return l.start(id, func(t dom.Todo) dom.Todo { t.Completed = !t.Completed; return t },
		func(ctx context.Context, b Backend) (dom.Todo, error) { return b.ToggleTodo(ctx, id) })
}

func (l *List) start(id string, apply func(dom.Todo) dom.Todo, run func(context.Context, Backend) (dom.Todo, error)) (*Mutation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return nil, ErrUnknownTodo
	}
	l.seq++
	e := l.items[i]
	e.cur = apply(e.cur)
	e.state = Pending
	e.err = nil
	e.seq = l.seq
	return &Mutation{list: l, id: id, gen: l.gen, seq: l.seq, run: run}, nil
}

// Delete hides the todo at once and returns the delete to run. If the delete
// fails the todo reappears at its old position.
func (l *List) Delete(id string) (*Mutation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return nil, ErrUnknownTodo
	}
	l.seq++
	e := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.deleting[id] = removed{e: e, index: i, seq: l.seq}
	delete(l.selected, id)
	return &Mutation{list: l, id: id, gen: l.gen, seq: l.seq, del: true,
		run: func(ctx context.Context, b Backend) (dom.Todo, error) { return dom.Todo{}, b.DeleteTodo(ctx, id) },
	}, nil
}

func (l *List) resolve(m *Mutation, t dom.Todo, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if m.gen != l.gen {
		return
	}

	if m.del {
		r, ok := l.deleting[m.id]
		if !ok || r.seq != m.seq {
			return
		}
		delete(l.deleting, m.id)
		if err == nil {
			return
		}
		e := r.e
		e.cur, e.state, e.err = e.good, Failed, err
		at := min(r.index, len(l.items))
		l.items = slices.Insert(l.items, at, e)
		return
	}

	i := l.index(m.id)
	if i < 0 {
		return
	}
	e := l.items[i]
	if err != nil {
		// a newer mutation is in flight; its outcome decides the item
		if e.seq != m.seq {
			return
		}
		e.cur, e.state, e.err = e.good, Failed, err
		return
	}
	// a late response must not replace a newer server copy
	if m.seq > e.goodSeq {
		e.good, e.goodSeq = t, m.seq
	}
	if e.seq == m.seq {
		e.cur, e.state, e.err = t, Committed, nil
	}
}
