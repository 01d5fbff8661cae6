package repo

import (
	"context"
	"fmt"
	"strings"

	dom "Taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const todoColumns = `t.id, t.user_id, t.content, t.completed, t.priority, t.due_date, t.category_id,
	t.sort_order, t.created_at, t.updated_at, c.name, c.color`

const todoSelect = `SELECT ` + todoColumns + `
	FROM todos t LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id`

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) List(ctx context.Context, userID string, f dom.TodoFilter) ([]dom.Todo, error) {
	where := []string{"t.user_id = $1"}
	args := []any{userID}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Completed != nil {
		add("t.completed = $%d", *f.Completed)
	}
	if f.Priority != nil {
		add("t.priority = $%d", string(*f.Priority))
	}
	if f.CategoryID != nil {
		add("t.category_id = $%d", *f.CategoryID)
	}
	query := todoSelect + ` WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY t.sort_order ASC, t.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id string) (dom.Todo, error) {
	t, err := scanTodo(r.db.QueryRow(ctx, todoSelect+` WHERE t.id = $1 AND t.user_id = $2`, id, userID))
	return t, pgErr(err)
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		WITH t AS (
			INSERT INTO todos (id, user_id, content, completed, priority, due_date, category_id, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + todoColumns + ` FROM t LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id`
	out, err := scanTodo(r.db.QueryRow(ctx, query,
		t.ID, t.UserID, t.Content, t.Completed, string(t.Priority), t.DueDate, t.CategoryID, t.SortOrder,
	))
	return out, pgErr(err)
}

func (r *PGTodoRepo) Update(ctx context.Context, userID, id string, p dom.TodoPatch) (dom.Todo, error) {
	args := []any{id, userID}
	sets := patchSets(p, &args)
	query := `
		WITH t AS (
			UPDATE todos SET ` + strings.Join(sets, ", ") + `
			WHERE id = $1 AND user_id = $2
			RETURNING *
		)
		SELECT ` + todoColumns + ` FROM t LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id`
	out, err := scanTodo(r.db.QueryRow(ctx, query, args...))
	return out, pgErr(err)
}

func (r *PGTodoRepo) Toggle(ctx context.Context, userID, id string) (dom.Todo, error) {
	query := `
		WITH t AS (
			UPDATE todos SET completed = NOT completed, updated_at = NOW()
			WHERE id = $1 AND user_id = $2
			RETURNING *
		)
		SELECT ` + todoColumns + ` FROM t LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id`
	out, err := scanTodo(r.db.QueryRow(ctx, query, id, userID))
	return out, pgErr(err)
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGTodoRepo) Reorder(ctx context.Context, userID string, ids []string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for i, id := range ids {
			tag, err := tx.Exec(ctx,
				`UPDATE todos SET sort_order = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
				id, userID, i,
			)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
}

func (r *PGTodoRepo) BulkUpdate(ctx context.Context, userID string, ids []string, p dom.TodoPatch) error {
	args := []any{ids, userID}
	sets := patchSets(p, &args)
	query := `UPDATE todos SET ` + strings.Join(sets, ", ") + ` WHERE id = ANY($1::uuid[]) AND user_id = $2`
	return r.bulk(ctx, len(ids), query, args)
}

func (r *PGTodoRepo) BulkDelete(ctx context.Context, userID string, ids []string) error {
	return r.bulk(ctx, len(ids), `DELETE FROM todos WHERE id = ANY($1::uuid[]) AND user_id = $2`, []any{ids, userID})
}

func (r *PGTodoRepo) bulk(ctx context.Context, want int, query string, args []any) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != int64(want) {
			return ErrNotFound
		}
		return nil
	})
}

// patchSets renders the SET list for p, appending its values to args.
func patchSets(p dom.TodoPatch, args *[]any) []string {
	sets := []string{"updated_at = NOW()"}
	set := func(col string, v any) {
		*args = append(*args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(*args)))
	}
	if p.Content != nil {
		set("content", *p.Content)
	}
	if p.Completed != nil {
		set("completed", *p.Completed)
	}
	if p.Priority != nil {
		set("priority", string(*p.Priority))
	}
	if p.ClearCategory {
		sets = append(sets, "category_id = NULL")
	} else if p.CategoryID != nil {
		set("category_id", *p.CategoryID)
	}
	if p.ClearDueDate {
		sets = append(sets, "due_date = NULL")
	} else if p.DueDate != nil {
		set("due_date", *p.DueDate)
	}
	return sets
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var (
		t             dom.Todo
		priority      string
		categoryName  *string
		categoryColor *string
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Content, &t.Completed, &priority, &t.DueDate, &t.CategoryID,
		&t.SortOrder, &t.CreatedAt, &t.UpdatedAt, &categoryName, &categoryColor)
	if err != nil {
		return dom.Todo{}, err
	}
	t.Priority = dom.Priority(priority)
	if categoryName != nil {
		t.Category = &dom.CategoryRef{Name: *categoryName, Color: deref(categoryColor)}
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
