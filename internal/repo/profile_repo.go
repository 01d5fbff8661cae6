package repo

import (
	"context"

	dom "Taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGProfileRepo struct {
	db *pgxpool.Pool
}

func NewPGProfileRepo(db *pgxpool.Pool) *PGProfileRepo {
	return &PGProfileRepo{db: db}
}

func (r *PGProfileRepo) Get(ctx context.Context, id string) (dom.Profile, error) {
	var p dom.Profile
	err := r.db.QueryRow(ctx, `
		SELECT id, name, avatar_url, created_at, updated_at FROM profiles WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	return p, pgErr(err)
}

func (r *PGProfileRepo) Upsert(ctx context.Context, id, name string, avatarURL *string) (dom.Profile, error) {
	query := `
		INSERT INTO profiles (id, name, avatar_url) VALUES ($1, $2, NULLIF($3::text, ''))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar_url = CASE WHEN $3::text IS NULL THEN profiles.avatar_url ELSE EXCLUDED.avatar_url END,
			updated_at = NOW()
		RETURNING id, name, avatar_url, created_at, updated_at`
	var p dom.Profile
	err := r.db.QueryRow(ctx, query, id, name, avatarURL).
		Scan(&p.ID, &p.Name, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	return p, pgErr(err)
}
