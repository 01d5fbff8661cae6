package repo

import (
	"context"
	"fmt"
	"strings"

	dom "Taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGCategoryRepo struct {
	db *pgxpool.Pool
}

func NewPGCategoryRepo(db *pgxpool.Pool) *PGCategoryRepo {
	return &PGCategoryRepo{db: db}
}

func (r *PGCategoryRepo) List(ctx context.Context, userID string) ([]dom.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, color, sort_order, created_at
		FROM categories WHERE user_id = $1 ORDER BY sort_order ASC, name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Category
	for rows.Next() {
		var c dom.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCategoryRepo) GetByID(ctx context.Context, userID, id string) (dom.Category, error) {
	var c dom.Category
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, color, sort_order, created_at
		FROM categories WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.SortOrder, &c.CreatedAt)
	return c, pgErr(err)
}

func (r *PGCategoryRepo) Create(ctx context.Context, c dom.Category) (dom.Category, error) {
	query := `
		INSERT INTO categories (id, user_id, name, color, sort_order)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM categories WHERE user_id = $2))
		RETURNING sort_order, created_at`
	err := r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Name, c.Color).Scan(&c.SortOrder, &c.CreatedAt)
	return c, pgErr(err)
}

func (r *PGCategoryRepo) Update(ctx context.Context, userID, id string, p CategoryPatch) (dom.Category, error) {
	args := []any{id, userID}
	var sets []string
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Name != nil {
		set("name", *p.Name)
	}
	if p.Color != nil {
		set("color", *p.Color)
	}
	if p.SortOrder != nil {
		set("sort_order", *p.SortOrder)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, userID, id)
	}
	var c dom.Category
	err := r.db.QueryRow(ctx, `
		UPDATE categories SET `+strings.Join(sets, ", ")+`
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, color, sort_order, created_at`, args...,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.SortOrder, &c.CreatedAt)
	return c, pgErr(err)
}

// Delete removes the category; the foreign key clears category_id on its todos.
func (r *PGCategoryRepo) Delete(ctx context.Context, userID, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
