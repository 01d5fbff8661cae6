// Package tui is a terminal dashboard over the todo API.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Taskboard/internal/client"
	"Taskboard/internal/clientstate"
	dom "Taskboard/internal/domain"
	"Taskboard/internal/dto"

	tea "github.com/charmbracelet/bubbletea"
)

// API is what the dashboard needs from the server.
type API interface {
	clientstate.Backend
	ListTodos(ctx context.Context, f dom.TodoFilter) ([]dom.Todo, error)
}

type filterMode int

const (
	filterAll filterMode = iota
	filterActive
	filterDone
)

func (f filterMode) String() string {
	switch f {
	case filterActive:
		return "active"
	case filterDone:
		return "done"
	}
	return "all"
}

func (f filterMode) filter() dom.TodoFilter {
	switch f {
	case filterActive:
		return dom.TodoFilter{Completed: new(bool)}
	case filterDone:
		done := true
		return dom.TodoFilter{Completed: &done}
	}
	return dom.TodoFilter{}
}

type loadedMsg struct {
	todos []dom.Todo
	err   error
}

type mutationMsg struct {
	id  string
	err error
}

type bulkMsg struct {
	op  string
	res dto.BulkResponse
	err error
}

type Model struct {
	ctx     context.Context
	api     API
	list    *clientstate.List
	timeout time.Duration

	cursor   int
	filter   filterMode
	loading  bool
	status   string
	loadErr  error
	showHelp bool
}

func New(ctx context.Context, api API) *Model {
	return &Model{ctx: ctx, api: api, list: clientstate.New(api), timeout: 15 * time.Second}
}

// Run starts the dashboard on the terminal.
func Run(ctx context.Context, api API) error {
	program := tea.NewProgram(New(ctx, api), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return m.load()
}

func (m *Model) load() tea.Cmd {
	f := m.filter.filter()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
		defer cancel()
		todos, err := m.api.ListTodos(ctx, f)
		return loadedMsg{todos: todos, err: err}
	}
}

func (m *Model) run(mut *clientstate.Mutation) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
		defer cancel()
		return mutationMsg{id: mut.TodoID(), err: mut.Do(ctx)}
	}
}

func (m *Model) bulk(op string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
		defer cancel()
		res, err := m.list.Bulk(ctx, dto.BulkRequest{Op: op})
		return bulkMsg{op: op, res: res, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case loadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.list.Sync(msg.todos)
			m.clampCursor()
		}
	case mutationMsg:
		if msg.err != nil {
			m.status = "change failed: " + errorText(msg.err)
		}
		m.clampCursor()
	case bulkMsg:
		switch {
		case errors.Is(msg.err, clientstate.ErrEmptySelection):
			m.status = "nothing selected"
			return m, nil
		case msg.err != nil:
			m.status = fmt.Sprintf("%s: %d ok, %d failed (%s)", msg.op, len(msg.res.Succeeded), len(msg.res.Failed), errorText(msg.err))
		default:
			m.status = fmt.Sprintf("%s: %d todos", msg.op, len(msg.res.Succeeded))
		}
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "h", "?":
		m.showHelp = !m.showHelp
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case "r", "f5":
		m.loading = true
		return m.load()
	case "f":
		m.filter = (m.filter + 1) % 3
		m.loading = true
		return m.load()
	case " ":
		if id, ok := m.current(); ok {
			m.list.ToggleSelected(id)
		}
	case "a":
		m.list.SelectAll()
	case "esc":
		m.list.ClearSelection()
	case "x", "enter":
		return m.mutate(m.list.Toggle)
	case "d":
		return m.mutate(m.list.Delete)
	case "p":
		id, ok := m.current()
		if !ok {
			return nil
		}
		it, _ := m.list.Get(id)
		next := nextPriority(it.Todo.Priority)
		return m.mutate(func(id string) (*clientstate.Mutation, error) {
			return m.list.Edit(id, dom.TodoPatch{Priority: &next})
		})
	case "c":
		return m.bulk("complete")
	case "u":
		return m.bulk("incomplete")
	case "D":
		return m.bulk("delete")
	}
	return nil
}

func (m *Model) mutate(start func(id string) (*clientstate.Mutation, error)) tea.Cmd {
	id, ok := m.current()
	if !ok {
		return nil
	}
	mut, err := start(id)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = ""
	m.clampCursor()
	return m.run(mut)
}

func (m *Model) current() (string, bool) {
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return "", false
	}
	return items[m.cursor].Todo.ID, true
}

func (m *Model) clampCursor() {
	n := m.list.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextPriority(p dom.Priority) dom.Priority {
	switch p {
	case dom.PriorityLow:
		return dom.PriorityMedium
	case dom.PriorityMedium:
		return dom.PriorityHigh
	}
	return dom.PriorityLow
}

func errorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
