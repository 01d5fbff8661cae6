package domain

import "time"

// Tag labels todos; many-to-many through todo_tags.
type Tag struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
}

// TagColors is the palette offered when creating a tag; the first is the default.
var TagColors = []string{
	"#6B7280", // gray
	"#EF4444", // red
	"#F59E0B", // yellow
	"#10B981", // green
	"#3B82F6", // blue
	"#8B5CF6", // purple
	"#F97316", // orange
	"#06B6D4", // cyan
}
