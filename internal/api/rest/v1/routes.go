package v1

import (
	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services and settings the v1 routes are wired with
type Dependencies struct {
	AuthService         users.AuthService
	ProfileService      users.ProfileService
	UploadService       photos.UploadService
	PhotoRequestService photos.PhotoRequestService
	StudioService       studio.StudioService
	CheckoutService     payments.CheckoutService
	WebhookService      payments.WebhookService
	OrderService        orders.OrderService
	AdminOrderService   orders.AdminOrderService
	CleanupService      cleanup.Service
	ErrorRecorder       errorlogs.Recorder
	Limiter             *ratelimit.Limiter
	Cookie              CookieSettings
	CronSecret          string
	Logger              logger.Logger
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, deps *Dependencies) {
	v1 := r.Group(BasePath) // lookup in version file
	v1.Use(Metrics(), RecordErrors(deps.ErrorRecorder, deps.Logger))

	requireAuth := RequireAuth(deps.AuthService, deps.Cookie.Name)

	// Auth Routes
	authHandler := NewAuthHandler(deps.AuthService, deps.Cookie)
	auth := v1.Group("/auth", RateLimit(deps.Limiter, "auth"))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/google/login", authHandler.GoogleLogin)
	auth.GET("/google/callback", authHandler.GoogleCallback)
	auth.GET("/session", requireAuth, authHandler.Session)

	// Studio Routes
	studioHandler := NewStudioHandler(deps.ProfileService, deps.UploadService, deps.PhotoRequestService, deps.StudioService, deps.CheckoutService)
	studioGroup := v1.Group("/studio", requireAuth)
	studioGroup.GET("/profile", studioHandler.GetProfile)
	studioGroup.POST("/profile", studioHandler.SaveProfile)
	studioGroup.POST("/upload", RateLimit(deps.Limiter, "upload"), studioHandler.Upload)
	studioGroup.GET("/uploads", studioHandler.ListUploads)
	studioGroup.DELETE("/uploads/:id", studioHandler.DeleteUpload)
	studioGroup.GET("/photo-requests", studioHandler.ListPhotoRequests)
	studioGroup.POST("/photo-requests", RateLimit(deps.Limiter, "upload"), studioHandler.CreatePhotoRequest)
	studioGroup.DELETE("/photo-requests/:id", studioHandler.DeletePhotoRequest)
	studioGroup.GET("/wizard", studioHandler.GetWizard)
	studioGroup.PUT("/wizard", studioHandler.UpdateWizard)
	studioGroup.POST("/checkout", studioHandler.Checkout)

	// Order Routes
	orderHandler := NewOrderHandler(deps.OrderService)
	orderGroup := v1.Group("/orders", requireAuth)
	orderGroup.GET("", orderHandler.List)
	orderGroup.GET("/:id", orderHandler.GetByID)
	orderGroup.GET("/:id/generated", orderHandler.ListGenerated)
	orderGroup.POST("/:id/cancel", orderHandler.Cancel)

	// Admin Routes
	adminHandler := NewAdminHandler(deps.AdminOrderService, deps.ErrorRecorder)
	admin := v1.Group("/admin", requireAuth, RequireAdmin())
	admin.GET("/orders", adminHandler.ListOrders)
	admin.GET("/orders/:id", adminHandler.GetOrder)
	admin.PATCH("/orders/:id", adminHandler.PatchOrder)
	admin.POST("/orders/:id/generated", adminHandler.UploadGenerated)
	admin.GET("/error-logs", adminHandler.ListErrorLogs)

	// Webhook and Cron Routes
	webhookHandler := NewWebhookHandler(deps.WebhookService)
	v1.POST("/webhooks/stripe", webhookHandler.Stripe)

	cronHandler := NewCronHandler(deps.CleanupService, deps.CronSecret)
	v1.GET("/cron/cleanup", cronHandler.Cleanup)
}
