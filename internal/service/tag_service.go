package service

import (
	"context"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/repo"

	"github.com/google/uuid"
)

type TagService struct {
	repo  repo.TagRepo
	todos *TodoService
}

func NewTagService(r repo.TagRepo, todos *TodoService) *TagService {
	return &TagService{repo: r, todos: todos}
}

func (s *TagService) List(ctx context.Context, userID string) ([]dom.Tag, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, internal("failed to fetch tags", err)
	}
	if list == nil {
		list = []dom.Tag{}
	}
	return list, nil
}

// Create stores a tag. An empty color picks the first palette color.
func (s *TagService) Create(ctx context.Context, userID, name, color string) (dom.Tag, error) {
	name, err := labelName(name)
	if err != nil {
		return dom.Tag{}, err
	}
	color, err = paletteColor(color, dom.TagColors)
	if err != nil {
		return dom.Tag{}, err
	}
	t, err := s.repo.Create(ctx, dom.Tag{ID: uuid.NewString(), UserID: userID, Name: name, Color: color})
	if err != nil {
		return dom.Tag{}, fromRepo(err, "tag not found", "tag already exists", "failed to create tag")
	}
	return t, nil
}

// Delete removes the tag and its links to todos.
func (s *TagService) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return invalid("invalid tag id")
	}
	n, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return internal("failed to delete tag", err)
	}
	if n > 0 {
		s.todos.invalidateCache(ctx, userID)
	}
	return nil
}
