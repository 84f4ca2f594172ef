package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/winjhenshop/storefront-api/internal/api/handler"
	"github.com/winjhenshop/storefront-api/internal/api/middleware"
	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/service"
	"github.com/winjhenshop/storefront-api/internal/infrastructure/config"
	mongodb "github.com/winjhenshop/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/winjhenshop/storefront-api/internal/infrastructure/db/redis"
	"github.com/winjhenshop/storefront-api/pkg/activity"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client, tracker *activity.Tracker) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.TrackActivity(tracker))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	// --- Services ---
	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.TokenTTL, log)
	accountService := service.NewAccountService(userRepo, log)
	resetService := service.NewPasswordResetService(userRepo, cfg.DevMode(), log)
	catalogService := service.NewCatalogService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	dashboardService := service.NewDashboardService(userRepo, orderRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	passwordHandler := handler.NewPasswordHandler(resetService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	statusHandler := handler.NewStatusHandler(tracker)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", accountHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", passwordHandler.Forgot)
	e.POST("/auth/reset-password", passwordHandler.Reset)

	// --- Back-office routes ---
	admin := e.Group("/admin", authRequired, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/accounts", accountHandler.Create)

	// --- Authenticated storefront routes ---
	v1 := e.Group("/v1", authRequired)
	v1.GET("/catalog/products", catalogHandler.List)
	v1.GET("/catalog/products/:id", catalogHandler.Get)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/dashboard", dashboardHandler.Summary)
	v1.GET("/profile", accountHandler.Profile)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/status", statusHandler.Get)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
