package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/vinayak-mandal/finflow/internal/admin"
	"github.com/vinayak-mandal/finflow/internal/analytics"
	"github.com/vinayak-mandal/finflow/internal/auth"
	"github.com/vinayak-mandal/finflow/internal/config"
	"github.com/vinayak-mandal/finflow/internal/middleware"
	"github.com/vinayak-mandal/finflow/internal/session"
	"github.com/vinayak-mandal/finflow/internal/transaction"
	"github.com/vinayak-mandal/finflow/internal/user"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !isDev(d.Cfg.AppEnv) {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories
	var userRepo user.Repository
	var txRepo transaction.Repository
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
		txRepo = transaction.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
		txRepo = transaction.NewMemoryRepository()
	}
	sessions := session.NewRedisStore(d.Cache, d.Logger)

	// Services and handlers
	userSvc := user.NewService(userRepo)
	authSvc := auth.NewService(userRepo, sessions, d.Logger)
	txSvc := transaction.NewService(txRepo)
	analyticsSvc := analytics.NewService(txRepo, d.Logger)
	adminSvc := admin.NewService(userRepo, txRepo)

	authHandler := auth.NewHandler(authSvc)
	txHandler := transaction.NewHandler(txSvc)
	analyticsHandler := analytics.NewHandler(analyticsSvc)
	adminHandler := admin.NewHandler(adminSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginPerMin)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	// Protected routes: everything past this guard carries an Identity.
	protected := api.Group("", middleware.SessionAuth(sessions))
	RegisterProfileRoutes(protected, userSvc)
	RegisterTransactionRoutes(protected, txHandler)
	RegisterAnalyticsRoutes(protected, analyticsHandler)

	// Admin-only routes
	adminGroup := protected.Group("/admin", middleware.RequireAdmin())
	RegisterAdminRoutes(adminGroup, adminHandler)

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
