package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Lokesh0728/volconBE/docs"
	"github.com/Lokesh0728/volconBE/internal/api/handler"
	"github.com/Lokesh0728/volconBE/internal/api/middleware"
	"github.com/Lokesh0728/volconBE/internal/core/ports"
	"github.com/Lokesh0728/volconBE/internal/core/service"
	mongodb "github.com/Lokesh0728/volconBE/internal/infrastructure/db/mongo"
	redisdb "github.com/Lokesh0728/volconBE/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	issuer ports.TokenIssuer,
	hasher ports.PasswordHasher,
	audit service.AuditSink,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	sessions := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(accountRepo, hasher, issuer, sessions, audit, log)
	profileService := service.NewProfileService(accountRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	requireAuth := middleware.Auth(issuer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)

	// --- Profile routes (authenticated; ownership is not checked here) ---
	v1 := e.Group("/v1", requireAuth)
	v1.GET("/profiles", profileHandler.List)
	v1.GET("/profiles/:id", profileHandler.Get)
	v1.PUT("/profiles/:id", profileHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
