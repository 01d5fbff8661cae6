package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"Taskboard/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens a SQLite database through gorm and applies migrations.
func OpenSQLite(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "taskboard.db"
	}
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}

	dbLogger := logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	// One connection: keeps PRAGMAs in effect and serializes writers.
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, sqlDB, goose.DialectSQLite3); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return db, nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

// NewGormStore returns the gorm-backed repositories.
func NewGormStore(db *gorm.DB) Store {
	return Store{
		Todos:      &GormTodoRepo{db: db},
		Categories: &GormCategoryRepo{db: db},
		Tags:       &GormTagRepo{db: db},
		Profiles:   &GormProfileRepo{db: db},
		Users:      &GormUserRepo{db: db},
	}
}

func gormErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}

type todoRow struct {
	ID         string `gorm:"primaryKey"`
	UserID     string
	Content    string
	Completed  bool
	Priority   string
	DueDate    *time.Time
	CategoryID *string
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (todoRow) TableName() string { return "todos" }

// todoJoinRow is a todo with its category columns from the LEFT JOIN.
// gorm only maps exported fields, so the row is embedded by name.
type todoJoinRow struct {
	Todo          todoRow `gorm:"embedded"`
	CategoryName  *string
	CategoryColor *string
}

type categoryRow struct {
	ID        string `gorm:"primaryKey"`
	UserID    string
	Name      string
	Color     string
	SortOrder int
	CreatedAt time.Time
}

func (categoryRow) TableName() string { return "categories" }

type tagRow struct {
	ID        string `gorm:"primaryKey"`
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
}

func (tagRow) TableName() string { return "tags" }

type todoTagRow struct {
	TodoID string `gorm:"primaryKey"`
	TagID  string `gorm:"primaryKey"`
}

func (todoTagRow) TableName() string { return "todo_tags" }

type profileRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (profileRow) TableName() string { return "profiles" }

type userRow struct {
	ID           string `gorm:"primaryKey"`
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }
