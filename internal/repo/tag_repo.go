package repo

import (
	"context"

	dom "Taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGTagRepo struct {
	db *pgxpool.Pool
}

func NewPGTagRepo(db *pgxpool.Pool) *PGTagRepo {
	return &PGTagRepo{db: db}
}

func (r *PGTagRepo) List(ctx context.Context, userID string) ([]dom.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, color, created_at
		FROM tags WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Tag
	for rows.Next() {
		var t dom.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTagRepo) GetByID(ctx context.Context, userID, id string) (dom.Tag, error) {
	var t dom.Tag
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, color, created_at
		FROM tags WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt)
	return t, pgErr(err)
}

func (r *PGTagRepo) Create(ctx context.Context, t dom.Tag) (dom.Tag, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO tags (id, user_id, name, color) VALUES ($1, $2, $3, $4)
		RETURNING created_at`, t.ID, t.UserID, t.Name, t.Color,
	).Scan(&t.CreatedAt)
	return t, pgErr(err)
}

func (r *PGTagRepo) Delete(ctx context.Context, userID, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGTagRepo) Attach(ctx context.Context, userID, todoID, tagID string) error {
	var owned bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM todos WHERE id = $2 AND user_id = $1)
		   AND EXISTS (SELECT 1 FROM tags WHERE id = $3 AND user_id = $1)`,
		userID, todoID, tagID,
	).Scan(&owned)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotFound
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO todo_tags (todo_id, tag_id) VALUES ($1, $2)
		ON CONFLICT (todo_id, tag_id) DO NOTHING`, todoID, tagID)
	return err
}

func (r *PGTagRepo) Detach(ctx context.Context, userID, todoID, tagID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM todo_tags tt USING todos t
		WHERE tt.todo_id = t.id AND t.user_id = $1 AND tt.todo_id = $2 AND tt.tag_id = $3`,
		userID, todoID, tagID)
	return err
}

func (r *PGTagRepo) TodoIDsWithAnyTag(ctx context.Context, userID string, todoIDs, tagIDs []string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT tt.todo_id
		FROM todo_tags tt JOIN todos t ON t.id = tt.todo_id
		WHERE t.user_id = $1 AND tt.todo_id = ANY($2::uuid[]) AND tt.tag_id = ANY($3::uuid[])`,
		userID, todoIDs, tagIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGTagRepo) ForTodos(ctx context.Context, userID string, todoIDs []string) (map[string][]dom.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tt.todo_id, g.id, g.user_id, g.name, g.color, g.created_at
		FROM todo_tags tt JOIN tags g ON g.id = tt.tag_id
		WHERE g.user_id = $1 AND tt.todo_id = ANY($2::uuid[])
		ORDER BY g.name ASC`, userID, todoIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]dom.Tag)
	for rows.Next() {
		var (
			todoID string
			t      dom.Tag
		)
		if err := rows.Scan(&todoID, &t.ID, &t.UserID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, err
		}
		out[todoID] = append(out[todoID], t)
	}
	return out, rows.Err()
}
