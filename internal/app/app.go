package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"Taskboard/internal/ai"
	"Taskboard/internal/config"
	"Taskboard/internal/identity"
	"Taskboard/internal/repo"
	"Taskboard/internal/storage"
	"Taskboard/migrations"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg    config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	gormDB *gorm.DB
	redis  *redis.Client
	router *gin.Engine
}

// Deps are the external systems the router is built on. Objects and AI may
// be nil; the features using them then answer 502.
type Deps struct {
	Store    repo.Store
	Redis    *redis.Client
	Identity identity.Provider
	Objects  storage.ObjectStore
	AI       ai.Completer
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	rdb, err := newRedis(ctx, cfg.Redis)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.redis = rdb

	deps := Deps{
		Store:    store,
		Redis:    rdb,
		Identity: newIdentity(cfg.Auth, store.Users, log),
	}
	if cfg.Storage.Endpoint != "" {
		objects, err := storage.NewMinioStore(storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Region:    cfg.Storage.Region,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
			PublicURL: cfg.Storage.PublicURL,
		})
		if err != nil {
			_ = a.Close(ctx)
			return nil, err
		}
		objects.Check(ctx, log)
		deps.Objects = objects
	} else {
		log.Warn("STORAGE_ENDPOINT not set, avatar uploads disabled")
	}
	if cfg.AI.APIKey != "" {
		deps.AI = ai.New(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	} else {
		log.Warn("AI_API_KEY not set, suggestions disabled")
	}

	a.router = NewRouter(cfg, log, deps)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Server returns the HTTP server for the router with the configured timeouts.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + a.cfg.HTTP.Port,
		Handler:      a.router,
		ReadTimeout:  a.cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: a.cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  a.cfg.HTTP.IdleTimeout.Duration(),
	}
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return nil
}

func (a *App) openStore(ctx context.Context) (repo.Store, error) {
	switch a.cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := repo.OpenSQLite(ctx, a.cfg.DB.DSN, a.log)
		if err != nil {
			return repo.Store{}, err
		}
		a.gormDB = db
		a.log.Info("store ready", "driver", config.DriverSQLite, "dsn", a.cfg.DB.DSN)
		return repo.NewGormStore(db), nil
	default:
		if err := runMigrations(ctx, a.cfg.DB.DSN); err != nil {
			return repo.Store{}, err
		}
		pool, err := newPostgres(ctx, a.cfg.DB)
		if err != nil {
			return repo.Store{}, err
		}
		a.pool = pool
		a.log.Info("store ready", "driver", config.DriverPostgres)
		return repo.NewPGStore(pool), nil
	}
}

func newPostgres(ctx context.Context, c config.DBConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = c.MaxConns
	cfg.MinConns = 2
	if cfg.MinConns > cfg.MaxConns {
		cfg.MinConns = cfg.MaxConns
	}
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}
	return pool, nil
}

func newRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func runMigrations(ctx context.Context, dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	return migrations.Up(ctx, db, goose.DialectPostgres)
}

func newIdentity(cfg config.AuthConfig, users repo.UserRepo, log *slog.Logger) identity.Provider {
	if cfg.Provider == config.ProviderGoTrue {
		return identity.NewGoTrue(cfg.GoTrueURL, cfg.GoTrueAPIKey, cfg.RedirectURL, nil)
	}
	return identity.NewLocal(users, cfg.JWTSecret, cfg.TokenTTL.Duration(), log)
}
