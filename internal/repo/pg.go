package repo

import (
	"errors"

	"Taskboard/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPGStore returns the Postgres-backed repositories.
func NewPGStore(db *pgxpool.Pool) Store {
	return Store{
		Todos:      NewPGTodoRepo(db),
		Categories: NewPGCategoryRepo(db),
		Tags:       NewPGTagRepo(db),
		Profiles:   NewPGProfileRepo(db),
		Users:      NewPGUserRepo(db),
	}
}

// pgErr maps driver errors to the package errors.
func pgErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case utils.IsPGUniqueViolation(err):
		return ErrConflict
	}
	return err
}
