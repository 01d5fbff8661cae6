package repo

import (
	"context"

	dom "Taskboard/internal/domain"

	"gorm.io/gorm"
)

// GormUserRepo implements UserRepo with gorm.
type GormUserRepo struct {
	db *gorm.DB
}

func (r *GormUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormUserRepo) GetByID(ctx context.Context, id string) (dom.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormUserRepo) first(ctx context.Context, cond string, arg any) (dom.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&row).Error; err != nil {
		return dom.User{}, gormErr(err)
	}
	return dom.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *GormUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	row := userRow{ID: u.ID, Email: u.Email, Name: u.Name, PasswordHash: u.PasswordHash}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return dom.User{}, gormErr(err)
	}
	u.CreatedAt = row.CreatedAt
	return u, nil
}

func (r *GormUserRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
