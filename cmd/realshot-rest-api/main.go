// cmd/realshot-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	v1 "github.com/GRBalance8/realshot-sub001/internal/api/rest/v1"
	"github.com/GRBalance8/realshot-sub001/internal/bootstrap"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/scheduler"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// scheduledCleanupTimeout bounds a single in-process cleanup run
const scheduledCleanupTimeout = 30 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	container, err := bootstrap.New(context.Background(), restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer container.Close()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, container, log)
}

// newRouter builds the gin engine with CORS, metrics and the v1 routes
func newRouter(cfg *config.RestConfig, container *bootstrap.Container, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Configure CORS; credentials require explicit origins
	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{cfg.AppURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	services := container.Services

	// Setup API routes
	v1.SetupRoutes(r, &v1.Dependencies{
		AuthService:         services.Auth,
		ProfileService:      services.Profile,
		UploadService:       services.Upload,
		PhotoRequestService: services.PhotoRequest,
		StudioService:       services.Studio,
		CheckoutService:     services.Checkout,
		WebhookService:      services.Webhook,
		OrderService:        services.Order,
		AdminOrderService:   services.AdminOrder,
		CleanupService:      services.Cleanup,
		ErrorRecorder:       services.ErrorRecorder,
		Limiter:             ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Interval, cfg.RateLimit.Capacity),
		Cookie: v1.CookieSettings{
			Name:   cfg.Auth.Cookie(),
			Secure: strings.HasPrefix(cfg.AppURL, "https://"),
		},
		CronSecret: cfg.Cleanup.CronSecret,
		Logger:     log,
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, container *bootstrap.Container, log logger.Logger) error {
	r := newRouter(cfg, container, log)

	// Start the in-process cleanup schedule
	var cleanupScheduler *scheduler.Scheduler
	if cfg.Cleanup.SchedulerEnabled {
		s, err := scheduler.New(cfg.Cleanup.Schedule, container.Services.Cleanup, scheduledCleanupTimeout, log)
		if err != nil {
			return fmt.Errorf("failed to create cleanup scheduler: %w", err)
		}
		s.Start()
		cleanupScheduler = s
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if cleanupScheduler != nil {
		if err := cleanupScheduler.Stop(ctx); err != nil {
			log.Warn("Cleanup scheduler did not stop in time", "error", err)
		}
	}

	log.Info("Server stopped gracefully")
	return nil
}
