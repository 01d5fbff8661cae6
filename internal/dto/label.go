package dto

import (
	"time"

	dom "Taskboard/internal/domain"
)

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color" example:"#3B82F6"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sort_order"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func CategoryFromDomain(c dom.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color, SortOrder: c.SortOrder, CreatedAt: c.CreatedAt}
}

func CategoriesFromDomain(list []dom.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(list))
	for i := range list {
		out[i] = CategoryFromDomain(list[i])
	}
	return out
}

type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color" example:"#6B7280"`
}

type TagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func TagsFromDomain(list []dom.Tag) []TagResponse {
	out := make([]TagResponse, len(list))
	for i, t := range list {
		out[i] = TagResponse{ID: t.ID, Name: t.Name, Color: t.Color}
	}
	return out
}

// PalettesResponse lists the colors accepted for categories and tags.
type PalettesResponse struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}
