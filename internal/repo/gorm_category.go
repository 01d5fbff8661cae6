package repo

import (
	"context"

	dom "Taskboard/internal/domain"

	"gorm.io/gorm"
)

type GormCategoryRepo struct {
	db *gorm.DB
}

func (r *GormCategoryRepo) List(ctx context.Context, userID string) ([]dom.Category, error) {
	var rows []categoryRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	list := make([]dom.Category, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toDomain())
	}
	return list, nil
}

func (r *GormCategoryRepo) GetByID(ctx context.Context, userID, id string) (dom.Category, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if err != nil {
		return dom.Category{}, gormErr(err)
	}
	return row.toDomain(), nil
}

func (r *GormCategoryRepo) Create(ctx context.Context, c dom.Category) (dom.Category, error) {
	row := categoryRow{ID: c.ID, UserID: c.UserID, Name: c.Name, Color: c.Color}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&categoryRow{}).
			Where("user_id = ?", c.UserID).
			Select("COALESCE(MAX(sort_order) + 1, 0)").
			Scan(&next).Error
		if err != nil {
			return err
		}
		row.SortOrder = next
		return tx.Create(&row).Error
	})
	if err != nil {
		return dom.Category{}, gormErr(err)
	}
	return row.toDomain(), nil
}

func (r *GormCategoryRepo) Update(ctx context.Context, userID, id string, p CategoryPatch) (dom.Category, error) {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Color != nil {
		cols["color"] = *p.Color
	}
	if p.SortOrder != nil {
		cols["sort_order"] = *p.SortOrder
	}
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&categoryRow{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(cols)
		if res.Error != nil {
			return dom.Category{}, gormErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return dom.Category{}, ErrNotFound
		}
	}
	return r.GetByID(ctx, userID, id)
}

// Delete removes the category; the foreign key clears category_id on its todos.
func (r *GormCategoryRepo) Delete(ctx context.Context, userID, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&categoryRow{})
	return res.RowsAffected, res.Error
}

func (row categoryRow) toDomain() dom.Category {
	return dom.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Color:     row.Color,
		SortOrder: row.SortOrder,
		CreatedAt: row.CreatedAt,
	}
}
