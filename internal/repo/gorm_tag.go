package repo

import (
	"context"

	dom "Taskboard/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTagRepo struct {
	db *gorm.DB
}

func (r *GormTagRepo) List(ctx context.Context, userID string) ([]dom.Tag, error) {
	var rows []tagRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]dom.Tag, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toDomain())
	}
	return list, nil
}

func (r *GormTagRepo) GetByID(ctx context.Context, userID, id string) (dom.Tag, error) {
	var row tagRow
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
		return dom.Tag{}, gormErr(err)
	}
	return row.toDomain(), nil
}

func (r *GormTagRepo) Create(ctx context.Context, t dom.Tag) (dom.Tag, error) {
	row := tagRow{ID: t.ID, UserID: t.UserID, Name: t.Name, Color: t.Color}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return dom.Tag{}, gormErr(err)
	}
	return row.toDomain(), nil
}

func (r *GormTagRepo) Delete(ctx context.Context, userID, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&tagRow{})
	return res.RowsAffected, res.Error
}

func (r *GormTagRepo) Attach(ctx context.Context, userID, todoID, tagID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todos, tags int64
		if err := tx.Model(&todoRow{}).Where("id = ? AND user_id = ?", todoID, userID).Count(&todos).Error; err != nil {
			return err
		}
		if err := tx.Model(&tagRow{}).Where("id = ? AND user_id = ?", tagID, userID).Count(&tags).Error; err != nil {
			return err
		}
		if todos == 0 || tags == 0 {
			return ErrNotFound
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&todoTagRow{TodoID: todoID, TagID: tagID}).Error
	})
}

func (r *GormTagRepo) Detach(ctx context.Context, userID, todoID, tagID string) error {
	return r.db.WithContext(ctx).
		Where("todo_id = ? AND tag_id = ?", todoID, tagID).
		Where("todo_id IN (?)", r.db.Model(&todoRow{}).Select("id").Where("user_id = ?", userID)).
		Delete(&todoTagRow{}).Error
}

func (r *GormTagRepo) TodoIDsWithAnyTag(ctx context.Context, userID string, todoIDs, tagIDs []string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table("todo_tags").
		Distinct("todo_tags.todo_id").
		Joins("JOIN todos ON todos.id = todo_tags.todo_id").
		Where("todos.user_id = ? AND todo_tags.todo_id IN ? AND todo_tags.tag_id IN ?", userID, todoIDs, tagIDs).
		Pluck("todo_tags.todo_id", &ids).Error
	return ids, err
}

type todoTagJoinRow struct {
	TodoID string
	Tag    tagRow `gorm:"embedded"`
}

func (r *GormTagRepo) ForTodos(ctx context.Context, userID string, todoIDs []string) (map[string][]dom.Tag, error) {
	var rows []todoTagJoinRow
	err := r.db.WithContext(ctx).Table("todo_tags").
		Select("todo_tags.todo_id, tags.*").
		Joins("JOIN tags ON tags.id = todo_tags.tag_id").
		Where("tags.user_id = ? AND todo_tags.todo_id IN ?", userID, todoIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string][]dom.Tag)
	for _, row := range rows {
		out[row.TodoID] = append(out[row.TodoID], row.Tag.toDomain())
	}
	return out, nil
}

func (row tagRow) toDomain() dom.Tag {
	return dom.Tag{ID: row.ID, UserID: row.UserID, Name: row.Name, Color: row.Color, CreatedAt: row.CreatedAt}
}
