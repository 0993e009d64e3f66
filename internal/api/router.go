// Package api wires the HTTP surface of the propChase rental backend.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propchase/rental-api/internal/api/handler"
	"github.com/propchase/rental-api/internal/api/middleware"
	"github.com/propchase/rental-api/internal/core/ports"
	"github.com/propchase/rental-api/internal/core/service"
	"github.com/propchase/rental-api/internal/infrastructure/config"
	mongodb "github.com/propchase/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/propchase/rental-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, images ports.ImageStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("propchase"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, redisdb.NewResetThrottle(rdb), log)
	propertyService := service.NewPropertyService(propertyRepo, userRepo, log)
	bookingService := service.NewBookingService(bookingRepo, propertyRepo, log)
	mediaService := service.NewMediaService(images, log)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	uploadHandler := handler.NewUploadHandler(mediaService)

	requireAuth := middleware.Auth(tokenService)
	optionalAuth := middleware.OptionalAuth(tokenService)

	// --- Auth & profile ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.POST("/auth/reset-password", authHandler.ResetPassword)
	v1.GET("/profile", authHandler.Profile, optionalAuth)
	v1.PUT("/profile", authHandler.EditProfile, requireAuth)

	// --- Properties (reads public, mutations owner-only) ---
	v1.GET("/properties", propertyHandler.ListAll)
	v1.GET("/properties/mine", propertyHandler.ListMine, requireAuth)
	v1.GET("/properties/:id", propertyHandler.Get)
	v1.POST("/properties", propertyHandler.Create, requireAuth)
	v1.PUT("/properties/:id", propertyHandler.Update, requireAuth)

	// --- Bookings ---
	v1.POST("/bookings", bookingHandler.Create, requireAuth)
	v1.GET("/bookings", bookingHandler.ListMine, requireAuth)

	// --- Uploads ---
	v1.POST("/uploads", uploadHandler.Upload, requireAuth)
	v1.POST("/uploads/link", uploadHandler.ImportLink, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
