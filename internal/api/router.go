package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/grafit-studio/portfolio-cms/internal/api/handler"
	"github.com/grafit-studio/portfolio-cms/internal/api/middleware"
	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
	"github.com/grafit-studio/portfolio-cms/internal/core/service"
	"github.com/grafit-studio/portfolio-cms/internal/infrastructure/config"
	mongorepo "github.com/grafit-studio/portfolio-cms/internal/infrastructure/db/mongo"
	"github.com/grafit-studio/portfolio-cms/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil (Redis is optional); queue may be nil (notifications
// disabled); store backs the upload endpoints.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, queue ports.NotificationQueue, store ports.FileStorage) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("cms"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)
	settingsRepo := mongorepo.NewSettingsRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	projectService := service.NewProjectService(projectRepo, categoryRepo, log)
	contactService := service.NewContactService(contactRepo, queue, log)
	settingsService := service.NewSettingsService(settingsRepo, log)
	uploadService := service.NewUploadService(store, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	projectHandler := handler.NewProjectHandler(projectService)
	contactHandler := handler.NewContactHandler(contactService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	authed := middleware.Auth(cfg.JWTSecret)
	editors := middleware.RBAC(domain.RoleAdmin, domain.RoleEditor)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/profile", authHandler.Profile, authed)

	// --- Categories ---
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.ListActive)
	categories.GET("/slug/:slug", categoryHandler.GetBySlug)

	categoriesAdmin := categories.Group("/admin", authed, editors)
	categoriesAdmin.GET("/all", categoryHandler.ListAll)
	categoriesAdmin.GET("/:id", categoryHandler.GetByID)
	categoriesAdmin.POST("", categoryHandler.Create)
	categoriesAdmin.PATCH("/:id", categoryHandler.Update)
	categories.DELETE("/admin/:id", categoryHandler.Delete, authed, adminOnly)

	// --- Projects ---
	projects := api.Group("/projects")
	projects.GET("", projectHandler.ListPublished)
	projects.GET("/slug/:slug", projectHandler.GetBySlug)

	projectsAdmin := projects.Group("/admin", authed, editors)
	projectsAdmin.GET("/all", projectHandler.ListAll)
	projectsAdmin.GET("/:id", projectHandler.GetByID)
	projectsAdmin.POST("", projectHandler.Create)
	projectsAdmin.PATCH("/:id", projectHandler.Update)
	projectsAdmin.PATCH("/:id/publish", projectHandler.Publish)
	projectsAdmin.PATCH("/:id/unpublish", projectHandler.Unpublish)
	projects.DELETE("/admin/:id", projectHandler.Delete, authed, adminOnly)

	// --- Contacts ---
	contacts := api.Group("/contacts")
	contacts.POST("", contactHandler.Create)

	contactsAdmin := contacts.Group("/admin", authed, editors)
	contactsAdmin.GET("", contactHandler.List)
	contactsAdmin.GET("/:id", contactHandler.GetByID)
	contactsAdmin.PATCH("/:id/read", contactHandler.MarkAsRead)
	contactsAdmin.PATCH("/:id/unread", contactHandler.MarkAsUnread)
	contacts.DELETE("/admin/:id", contactHandler.Delete, authed, adminOnly)

	// --- Users (admin only) ---
	users := api.Group("/users", authed, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.POST("", userHandler.Create)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Uploads ---
	uploads := api.Group("/upload", authed, editors)
	uploads.POST("/image", uploadHandler.UploadImage)
	uploads.POST("/images", uploadHandler.UploadImages)
	uploads.DELETE("", uploadHandler.RemoveFile)

	// --- Contact settings ---
	api.GET("/settings", settingsHandler.Get)
	api.PATCH("/settings", settingsHandler.Update, authed, editors)

	return e
}
