package service

import (
	"context"
	"strings"
	"unicode/utf8"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/repo"

	"github.com/google/uuid"
)

const maxLabelName = 50

// CategoryService manages categories. Changes invalidate the owner's cached
// todo views, which show category names and colors.
type CategoryService struct {
	repo  repo.CategoryRepo
	todos *TodoService
}

func NewCategoryService(r repo.CategoryRepo, todos *TodoService) *CategoryService {
	return &CategoryService{repo: r, todos: todos}
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]dom.Category, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, internal("failed to fetch categories", err)
	}
	if list == nil {
		list = []dom.Category{}
	}
	return list, nil
}

// Create stores a category after the user's existing ones. An empty color
// picks the first palette color.
func (s *CategoryService) Create(ctx context.Context, userID, name, color string) (dom.Category, error) {
	name, err := labelName(name)
	if err != nil {
		return dom.Category{}, err
	}
	color, err = paletteColor(color, dom.CategoryColors)
	if err != nil {
		return dom.Category{}, err
	}
	c, err := s.repo.Create(ctx, dom.Category{ID: uuid.NewString(), UserID: userID, Name: name, Color: color})
	if err != nil {
		return dom.Category{}, fromRepo(err, "category not found", "category already exists", "failed to create category")
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id string, p repo.CategoryPatch) (dom.Category, error) {
	if !validID(id) {
		return dom.Category{}, invalid("invalid category id")
	}
	if p.Name != nil {
		name, err := labelName(*p.Name)
		if err != nil {
			return dom.Category{}, err
		}
		p.Name = &name
	}
	if p.Color != nil {
		color, err := paletteColor(*p.Color, dom.CategoryColors)
		if err != nil {
			return dom.Category{}, err
		}
		p.Color = &color
	}
	if p.SortOrder != nil && *p.SortOrder < 0 {
		return dom.Category{}, invalid("sort_order cannot be negative")
	}
	c, err := s.repo.Update(ctx, userID, id, p)
	if err != nil {
		return dom.Category{}, fromRepo(err, "category not found", "category already exists", "failed to update category")
	}
	s.todos.invalidateCache(ctx, userID)
	return c, nil
}

// Delete removes the category; its todos keep existing without one.
func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return invalid("invalid category id")
	}
	n, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return internal("failed to delete category", err)
	}
	if n > 0 {
		s.todos.invalidateCache(ctx, userID)
	}
	return nil
}

func labelName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name is required")
	}
	if utf8.RuneCountInString(name) > maxLabelName {
		return "", invalid("name must be at most 50 characters")
	}
	return name, nil
}

// paletteColor returns the palette entry matching color case-insensitively.
func paletteColor(color string, palette []string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return palette[0], nil
	}
	for _, c := range palette {
		if strings.EqualFold(c, color) {
			return c, nil
		}
	}
	return "", invalid("color must be one of " + strings.Join(palette, ", "))
}
