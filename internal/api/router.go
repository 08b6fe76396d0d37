package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/genesis-platform/accounts-api/internal/api/handler"
	"github.com/genesis-platform/accounts-api/internal/api/middleware"
	"github.com/genesis-platform/accounts-api/internal/core/domain"
	"github.com/genesis-platform/accounts-api/internal/core/service"
	"github.com/genesis-platform/accounts-api/internal/infrastructure/db/postgres"
	httphandlers "github.com/genesis-platform/accounts-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	accountService := service.NewAccountService(userRepo, jwtSecret, tokenTTL, log)
	accountHandler := handler.NewAccountHandler(accountService)

	authed := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Account routes ---
	e.POST("/login", accountHandler.Login)
	e.POST("/changePassword", accountHandler.ChangePassword, authed)

	// Admin-gated user management. The create endpoint is deliberately not
	// open self-registration: only an admin token may mint accounts.
	e.POST("/users/create", accountHandler.Create, authed, adminOnly)
	e.GET("/users/list", accountHandler.List, authed, adminOnly)
	e.PUT("/users/update", accountHandler.Update, authed, adminOnly)
	e.DELETE("/user/delete", accountHandler.Delete, authed, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(pool)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
