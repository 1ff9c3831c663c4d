package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/estately/apartments-api/internal/api/handler"
	"github.com/estately/apartments-api/internal/api/middleware"
	"github.com/estately/apartments-api/internal/core/service"
	"github.com/estately/apartments-api/internal/infrastructure/config"
	mongodb "github.com/estately/apartments-api/internal/infrastructure/db/mongo"
	redisdb "github.com/estately/apartments-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Paths and verbs mirror the published API; clients depend on them verbatim.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("apartments"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	apartmentRepo := mongodb.NewApartmentRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	apartmentService := service.NewApartmentService(apartmentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	apartmentHandler := handler.NewApartmentHandler(apartmentService)

	requireAuth := middleware.Auth(authService)
	optionalAuth := middleware.OptionalAuth(authService)

	// --- Auth / user routes ---
	e.POST("/user_token", authHandler.CreateToken)
	e.POST("/users", authHandler.CreateUser)
	e.GET("/users/:id", authHandler.GetUser, requireAuth)

	// --- Apartment routes ---
	// Reads and create accept anonymous callers; the policy evaluator
	// decides what each caller may actually do.
	e.GET("/apartments", apartmentHandler.Index, optionalAuth)
	e.GET("/apartments/:id", apartmentHandler.Show, optionalAuth)
	e.POST("/apartments", apartmentHandler.Create, optionalAuth)
	e.PUT("/apartments/:id", apartmentHandler.Update, requireAuth)
	e.PATCH("/apartments/:id", apartmentHandler.Update, requireAuth)
	e.DELETE("/apartments/:id", apartmentHandler.Destroy, requireAuth)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
