package tui

import (
	"fmt"
	"strings"

	"Taskboard/internal/clientstate"
)

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	fmt.Fprintf(&b, "Filter: %s | Selected: %d", m.filter, len(m.list.Selected()))
	if m.loading {
		b.WriteString(" | loading...")
	}
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString("Error loading todos:\n")
		b.WriteString("  " + errorText(m.loadErr) + "\n\n")
	}

	items := m.list.Items()
	if len(items) == 0 && m.loadErr == nil {
		b.WriteString("  No todos.\n")
	}
	for i, it := range items {
		b.WriteString(formatItem(it, i == m.cursor, m.list.IsSelected(it.Todo.ID)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString("Press h for help | q to quit\n")
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Taskboard"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j/k, arrows  Move\n")
	b.WriteString("  x, enter     Toggle completed\n")
	b.WriteString("  p            Cycle priority\n")
	b.WriteString("  d            Delete\n")
	b.WriteString("  space        Select\n")
	b.WriteString("  a / esc      Select all / clear selection\n")
	b.WriteString("  c / u / D    Complete / reopen / delete selected\n")
	b.WriteString("  f            Cycle filter (all, active, done)\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
}

func formatItem(it clientstate.Item, cursor, selected bool) string {
	pointer := " "
	if cursor {
		pointer = ">"
	}
	check := " "
	if selected {
		check = "*"
	}
	done := " "
	if it.Todo.Completed {
		done = "x"
	}
	line := fmt.Sprintf("%s%s [%s] %-6s %s", pointer, check, done, it.Todo.Priority, it.Todo.Content)
	if it.Todo.Category != nil {
		line += " @" + it.Todo.Category.Name
	}
	for _, tag := range it.Todo.Tags {
		line += " #" + tag.Name
	}
	switch it.State {
	case clientstate.Pending:
		line += "  (saving)"
	case clientstate.Failed:
		line += "  (failed, reverted)"
	}
	if it.Todo.DueDate != nil {
		line += "  due " + it.Todo.DueDate.Format("2006-01-02")
	}
	return line
}
