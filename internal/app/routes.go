package app

import (
	"log/slog"
	"net/http"
	"time"

	"Taskboard/internal/auth"
	"Taskboard/internal/cache"
	"Taskboard/internal/config"
	"Taskboard/internal/handlers"
	"Taskboard/internal/logging"
	"Taskboard/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the engine with every route registered.
func NewRouter(cfg config.Config, log *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Requests(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "Cookie"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	Setup(r, cfg, log, d)
	return r
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *slog.Logger, d Deps) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")
	api.GET("/palettes", handlers.Palettes)

	secret := []byte(cfg.Auth.JWTSecret)
	sessions := auth.NewStore(d.Redis, cfg.Redis.SessionTTL.Duration())
	authSvc := service.NewAuthService(d.Identity, sessions, d.Store.Profiles, log)
	authHandler := handlers.NewAuthHandler(authSvc, sessions.TTL(), cfg.Auth.CookieSecure)
	registerAuthRoutes(api, authHandler,
		auth.RequireAuth(sessions, secret, log),
		auth.RequireAuthOrRecovery(sessions, secret, log))

	protected := api.Group("", auth.RequireAuth(sessions, secret, log))

	todoCache := cache.NewTodoCache(d.Redis, cfg.Redis.CacheTTL.Duration())
	todoSvc := service.NewTodoService(d.Store, todoCache, log)
	registerTodoRoutes(protected,
		handlers.NewTodoHandler(todoSvc),
		handlers.NewBulkHandler(service.NewBulkService(todoSvc, log)))
	registerLabelRoutes(protected,
		handlers.NewCategoryHandler(service.NewCategoryService(d.Store.Categories, todoSvc)),
		handlers.NewTagHandler(service.NewTagService(d.Store.Tags, todoSvc)))

	profileHandler := handlers.NewProfileHandler(service.NewProfileService(d.Store.Profiles, d.Objects, log))
	protected.GET("/profile", profileHandler.Get)
	protected.PUT("/profile", profileHandler.Update)
	protected.POST("/profile/avatar", profileHandler.UploadAvatar)
	protected.DELETE("/profile/avatar", profileHandler.DeleteAvatar)

	suggestHandler := handlers.NewSuggestHandler(service.NewSuggestService(d.AI, log))
	protected.POST("/suggestions", suggestHandler.Suggest)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Taskboard API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler, bulk *handlers.BulkHandler) {
	api.GET("/todos", h.List)
	api.POST("/todos", h.Create)
	api.PUT("/todos/order", h.Reorder)
	api.POST("/todos/bulk", bulk.Apply)
	api.GET("/todos/:id", h.Get)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
	api.POST("/todos/:id/toggle", h.Toggle)
	api.POST("/todos/:id/tags/:tagId", h.AttachTag)
	api.DELETE("/todos/:id/tags/:tagId", h.DetachTag)
}

func registerLabelRoutes(api *gin.RouterGroup, cat *handlers.CategoryHandler, tag *handlers.TagHandler) {
	api.GET("/categories", cat.List)
	api.POST("/categories", cat.Create)
	api.PATCH("/categories/:id", cat.Update)
	api.DELETE("/categories/:id", cat.Delete)
	api.GET("/tags", tag.List)
	api.POST("/tags", tag.Create)
	api.DELETE("/tags/:id", tag.Delete)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, requireAuth, requireAuthOrRecovery gin.HandlerFunc) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/password/reset", h.ResetPassword)
	api.POST("/auth/logout", requireAuth, h.Logout)
	api.GET("/auth/session", requireAuth, h.Session)
	api.POST("/auth/password/update", requireAuthOrRecovery, h.UpdatePassword)
}
