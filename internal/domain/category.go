package domain

import "time"

// Category groups todos. A todo has at most one.
type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	SortOrder int
	CreatedAt time.Time
}

// CategoryColors is the palette offered when creating a category; the first is the default.
var CategoryColors = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // yellow
	"#EF4444", // red
	"#8B5CF6", // purple
	"#F97316", // orange
	"#06B6D4", // cyan
	"#84CC16", // lime
}
