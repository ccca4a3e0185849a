package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frutech/auth-service/internal/api/handler"
	"github.com/frutech/auth-service/internal/api/middleware"
	"github.com/frutech/auth-service/internal/core/domain"
	"github.com/frutech/auth-service/internal/core/password"
	"github.com/frutech/auth-service/internal/core/ports"
	"github.com/frutech/auth-service/internal/core/service"
	"github.com/frutech/auth-service/internal/core/token"
	"github.com/frutech/auth-service/internal/infrastructure/config"
	mongodb "github.com/frutech/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/frutech/auth-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db, cfg.UsersCollection)
	userCache := redisdb.NewUserCache(rdb)
	hasher := password.NewHasher(cfg.BcryptCost)
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL())

	authService := service.NewAuthService(userRepo, hasher, codec, audit, log)
	userService := service.NewUserService(userRepo, hasher, userCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	requireAuth := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify", authHandler.Verify)

	// --- User routes ---
	e.POST("/users", userHandler.Create)
	e.GET("/users/:id", userHandler.Get, requireAuth)
	e.PUT("/users/:id", userHandler.Update, requireAuth)
	e.DELETE("/users/:id", userHandler.Delete, requireAuth, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
