// @title           Taskboard API
// @version         1.0
// @description     Personal todo board with categories, tags, bulk edits, avatars and AI suggestions.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        session_id
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Taskboard/internal/app"
	"Taskboard/internal/config"
	"Taskboard/internal/logging"

	_ "Taskboard/docs"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(config.LogConfig{}, "", os.Stderr).Error("config", "error", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log, cfg.App.Env, os.Stdout)
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info("config loaded, connecting to store and redis", "driver", cfg.DB.Driver, "auth", cfg.Auth.Provider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("app init", "error", err)
		os.Exit(1)
	}
	server := application.Server()

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("HTTP server", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown", "error", err)
	}
	if err := application.Close(shutdownCtx); err != nil {
		log.Error("close", "error", err)
	}
}
