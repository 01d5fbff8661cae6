package repo

import (
	"context"

	dom "Taskboard/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProfileRepo struct {
	db *gorm.DB
}

func (r *GormProfileRepo) Get(ctx context.Context, id string) (dom.Profile, error) {
	var row profileRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return dom.Profile{}, gormErr(err)
	}
	return row.toDomain(), nil
}

func (r *GormProfileRepo) Upsert(ctx context.Context, id, name string, avatarURL *string) (dom.Profile, error) {
	row := profileRow{ID: id, Name: name}
	cols := []string{"name", "updated_at"}
	if avatarURL != nil {
		cols = append(cols, "avatar_url")
		if *avatarURL != "" {
			row.AvatarURL = avatarURL
		}
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&row).Error
	if err != nil {
		return dom.Profile{}, gormErr(err)
	}
	return r.Get(ctx, id)
}

func (row profileRow) toDomain() dom.Profile {
	return dom.Profile{
		ID:        row.ID,
		Name:      row.Name,
		AvatarURL: row.AvatarURL,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
