package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawsitting/booking-system/internal/api/handler"
	"github.com/pawsitting/booking-system/internal/api/middleware"
	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/service"
	"github.com/pawsitting/booking-system/internal/infrastructure/config"
	mongodb "github.com/pawsitting/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/pawsitting/booking-system/internal/infrastructure/db/redis"
	"github.com/pawsitting/booking-system/internal/infrastructure/http/handlers"
	"github.com/pawsitting/booking-system/internal/infrastructure/llm"
	"github.com/pawsitting/booking-system/internal/infrastructure/stripe"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pawsitting"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	petRepo := mongodb.NewPetRepository(db)
	reportRepo := mongodb.NewReportCardRepository(db)
	feedRepo := mongodb.NewActivityFeedRepository(db)
	galleryRepo := mongodb.NewGalleryRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	chatRepo := mongodb.NewChatRepository(db)

	// --- Collaborators ---
	completer := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	checkoutProvider := stripe.NewClient(stripe.Config{SecretKey: cfg.Stripe.SecretKey})
	deduper := redisdb.NewEventDeduper(rdb)

	// --- Services ---
	identityService := service.NewIdentityService(userRepo, cfg.OwnerOpenID, log)
	bookingService := service.NewBookingService(bookingRepo, log)
	visitService := service.NewVisitService(reportRepo, feedRepo, completer, "", log)
	chatService := service.NewChatService(chatRepo, completer, cfg.LLM.ChatSystemPrompt, log)
	paymentService := service.NewPaymentService(bookingRepo, checkoutProvider, deduper,
		cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL, log)
	contentService := service.NewContentService(galleryRepo, inquiryRepo, serviceRepo, petRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(identityService, cfg.JWTSecret)
	bookingHandler := handler.NewBookingHandler(bookingService)
	visitHandler := handler.NewVisitHandler(visitService)
	chatHandler := handler.NewChatHandler(chatService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	webhookHandler := handler.NewWebhookHandler(paymentService, cfg.Stripe.WebhookSecret, log)
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handlers.NewHealthHandler(db, rdb)

	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/session", authHandler.CreateSession)
	e.GET("/auth/me", authHandler.Me, optionalAuth)
	e.POST("/v1/chat", chatHandler.Send, optionalAuth)
	e.GET("/v1/chat/history", chatHandler.History)
	e.GET("/v1/gallery", contentHandler.ListGallery)
	e.POST("/v1/inquiries", contentHandler.CreateInquiry)
	e.GET("/v1/services", contentHandler.ListServices)
	e.POST("/v1/stripe/webhook", webhookHandler.Receive)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", auth)
	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings", bookingHandler.List)
	v1.POST("/pets", contentHandler.CreatePet)
	v1.GET("/pets", contentHandler.ListPets)
	v1.GET("/report-cards/pet/:petId", visitHandler.ReportCardsByPet)
	v1.GET("/report-cards/booking/:bookingId", visitHandler.ReportCardsByBooking)
	v1.GET("/activity-feed/:bookingId", visitHandler.ActivityByBooking)
	v1.POST("/payments/checkout", paymentHandler.CreateCheckout)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", auth, adminOnly)
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	admin.POST("/report-cards", visitHandler.CreateReportCard)
	admin.POST("/activity-feed", visitHandler.CreateActivityItem)
	admin.POST("/gallery", contentHandler.CreateGalleryItem)
	admin.GET("/inquiries", contentHandler.ListInquiries)

	// --- Operational surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
