package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/planet-nakshatra/consultation-api/docs"
	"github.com/planet-nakshatra/consultation-api/internal/api/handler"
	"github.com/planet-nakshatra/consultation-api/internal/api/middleware"
	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
	"github.com/planet-nakshatra/consultation-api/internal/core/service"
	mongodb "github.com/planet-nakshatra/consultation-api/internal/infrastructure/db/mongo"
	redisdb "github.com/planet-nakshatra/consultation-api/internal/infrastructure/db/redis"
	"github.com/planet-nakshatra/consultation-api/internal/infrastructure/queue"
	"github.com/planet-nakshatra/consultation-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, dispatcher *queue.Dispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Production())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("nakshatra"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	offeringRepo := mongodb.NewOfferingRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)

	authService := service.NewAuthService(userRepo, service.TokenConfig{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	}, log)
	bookingService := service.NewBookingService(bookingRepo, dispatcher, log)
	offeringService := service.NewOfferingService(offeringRepo, log)
	inquiryService := service.NewInquiryService(inquiryRepo, dispatcher, log)
	testimonialService := service.NewTestimonialService()

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	offeringHandler := handler.NewOfferingHandler(offeringService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)

	authn := middleware.Auth(cfg.JWT.AccessSecret, authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	authLimit := middleware.RateLimit(limiter, "auth")
	contactLimit := middleware.RateLimit(limiter, "contact")

	// --- Auth routes ---
	auth := e.Group("/auth", authLimit)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.PATCH("/change-password", authHandler.ChangePassword, authn)
	auth.POST("/profile", authHandler.Profile, authn)

	// --- Booking routes ---
	bookings := e.Group("/bookings")
	bookings.GET("/astrologer", bookingHandler.Astrologer)
	bookings.GET("/slots", bookingHandler.Slots)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.List)

	// --- Service catalog routes ---
	services := e.Group("/services")
	services.GET("", offeringHandler.List)
	services.GET("/categories", offeringHandler.Categories)
	services.GET("/featured", offeringHandler.Featured)
	services.GET("/admin", offeringHandler.ListAdmin, authn, adminOnly)
	services.GET("/slug/:slug", offeringHandler.GetBySlug)
	services.GET("/:id", offeringHandler.Get)
	services.POST("", offeringHandler.Create, authn, adminOnly)
	services.PUT("/:id", offeringHandler.Update, authn, adminOnly)
	services.DELETE("/:id", offeringHandler.Delete, authn, adminOnly)

	// --- Contact routes ---
	contact := e.Group("/contact")
	contact.POST("/inquiry", inquiryHandler.Create, contactLimit)
	contact.GET("/inquiries", inquiryHandler.List, authn, adminOnly)

	// --- Testimonials ---
	e.GET("/testimonials", testimonialHandler.List)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
