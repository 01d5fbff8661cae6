package repo

import (
	"context"
	"time"

	dom "Taskboard/internal/domain"

	"gorm.io/gorm"
)

// GormTodoRepo implements TodoRepo with gorm.
type GormTodoRepo struct {
	db *gorm.DB
}

func (r *GormTodoRepo) joined(ctx context.Context, db *gorm.DB, userID string) *gorm.DB {
	return db.WithContext(ctx).Table("todos").
		Select("todos.*, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = todos.category_id AND categories.user_id = todos.user_id").
		Where("todos.user_id = ?", userID)
}

func (r *GormTodoRepo) List(ctx context.Context, userID string, f dom.TodoFilter) ([]dom.Todo, error) {
	q := r.joined(ctx, r.db, userID)
	if f.Completed != nil {
		q = q.Where("todos.completed = ?", *f.Completed)
	}
	if f.Priority != nil {
		q = q.Where("todos.priority = ?", string(*f.Priority))
	}
	if f.CategoryID != nil {
		q = q.Where("todos.category_id = ?", *f.CategoryID)
	}
	var rows []todoJoinRow
	if err := q.Order("todos.sort_order ASC, todos.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]dom.Todo, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toDomain())
	}
	return list, nil
}

func (r *GormTodoRepo) GetByID(ctx context.Context, userID, id string) (dom.Todo, error) {
	return r.get(ctx, r.db, userID, id)
}

func (r *GormTodoRepo) get(ctx context.Context, db *gorm.DB, userID, id string) (dom.Todo, error) {
	var rows []todoJoinRow
	if err := r.joined(ctx, db, userID).Where("todos.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return dom.Todo{}, err
	}
	if len(rows) == 0 {
		return dom.Todo{}, ErrNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *GormTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	now := time.Now().UTC()
	row := todoRow{
		ID:         t.ID,
		UserID:     t.UserID,
		Content:    t.Content,
		Completed:  t.Completed,
		Priority:   string(t.Priority),
		DueDate:    t.DueDate,
		CategoryID: t.CategoryID,
		SortOrder:  t.SortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return dom.Todo{}, gormErr(err)
	}
	return r.get(ctx, r.db, t.UserID, t.ID)
}

func (r *GormTodoRepo) Update(ctx context.Context, userID, id string, p dom.TodoPatch) (dom.Todo, error) {
	res := r.db.WithContext(ctx).Model(&todoRow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patchColumns(p))
	if res.Error != nil {
		return dom.Todo{}, gormErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return dom.Todo{}, ErrNotFound
	}
	return r.get(ctx, r.db, userID, id)
}

func (r *GormTodoRepo) Toggle(ctx context.Context, userID, id string) (dom.Todo, error) {
	res := r.db.WithContext(ctx).Model(&todoRow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"completed":  gorm.Expr("NOT completed"),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return dom.Todo{}, res.Error
	}
	if res.RowsAffected == 0 {
		return dom.Todo{}, ErrNotFound
	}
	return r.get(ctx, r.db, userID, id)
}

func (r *GormTodoRepo) Delete(ctx context.Context, userID, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&todoRow{})
	return res.RowsAffected, res.Error
}

func (r *GormTodoRepo) Reorder(ctx context.Context, userID string, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for i, id := range ids {
			res := tx.Model(&todoRow{}).
				Where("id = ? AND user_id = ?", id, userID).
				Updates(map[string]any{"sort_order": i, "updated_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

func (r *GormTodoRepo) BulkUpdate(ctx context.Context, userID string, ids []string, p dom.TodoPatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&todoRow{}).Where("user_id = ? AND id IN ?", userID, ids).Updates(patchColumns(p))
		if res.Error != nil {
			return gormErr(res.Error)
		}
		if res.RowsAffected != int64(len(ids)) {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormTodoRepo) BulkDelete(ctx context.Context, userID string, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id IN ?", userID, ids).Delete(&todoRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return ErrNotFound
		}
		return nil
	})
}

func patchColumns(p dom.TodoPatch) map[string]any {
	cols := map[string]any{"updated_at": time.Now().UTC()}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	if p.Completed != nil {
		cols["completed"] = *p.Completed
	}
	if p.Priority != nil {
		cols["priority"] = string(*p.Priority)
	}
	if p.ClearCategory {
		cols["category_id"] = nil
	} else if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.ClearDueDate {
		cols["due_date"] = nil
	} else if p.DueDate != nil {
		cols["due_date"] = *p.DueDate
	}
	return cols
}

func (jr todoJoinRow) toDomain() dom.Todo {
	row := jr.Todo
	t := dom.Todo{
		ID:         row.ID,
		UserID:     row.UserID,
		Content:    row.Content,
		Completed:  row.Completed,
		Priority:   dom.Priority(row.Priority),
		DueDate:    row.DueDate,
		CategoryID: row.CategoryID,
		SortOrder:  row.SortOrder,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if jr.CategoryName != nil {
		t.Category = &dom.CategoryRef{Name: *jr.CategoryName, Color: deref(jr.CategoryColor)}
	}
	return t
}
