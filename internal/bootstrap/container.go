// Package bootstrap wires configuration, infrastructure and application services
// into the components shared by the REST API and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/app"
	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/auth"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/broker"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/connector"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/mailer"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/payment"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories holds the gorm repositories
type Repositories struct {
	Users           users.UserRepository
	Profiles        users.ProfileRepository
	Orders          orders.OrderRepository
	UploadedPhotos  photos.UploadedPhotoRepository
	GeneratedPhotos photos.GeneratedPhotoRepository
	PhotoRequests   photos.PhotoRequestRepository
	ErrorLogs       errorlogs.Repository
}

// Services holds the application services
type Services struct {
	Auth          users.AuthService
	Profile       users.ProfileService
	Upload        photos.UploadService
	PhotoRequest  photos.PhotoRequestService
	Studio        studio.StudioService
	Checkout      payments.CheckoutService
	Webhook       payments.WebhookService
	Order         orders.OrderService
	AdminOrder    orders.AdminOrderService
	Cleanup       cleanup.Service
	ErrorRecorder errorlogs.Recorder
}

// Container is the fully wired application
type Container struct {
	DB           *gorm.DB
	Repositories *Repositories
	Services     *Services

	closers []func()
}

// New connects to the database, migrates it and wires every service from cfg
func New(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Container, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	c := &Container{DB: db}
	c.closers = append(c.closers, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := persistence.Migrate(db); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	if c.Repositories, err = initializeRepositories(db, log); err != nil {
		c.Close()
		return nil, err
	}

	if c.Services, err = c.initializeServices(ctx, cfg, log); err != nil {
		c.Close()
		return nil, err
	}

	log.Info("Application services initialized successfully")
	return c, nil
}

// Close releases the broker connection and the database pool
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func initializeRepositories(db *gorm.DB, log logger.Logger) (*Repositories, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}

	uploadedRepo, err := persistence.NewGormUploadedPhotoRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create uploaded photo repository: %w", err)
	}

	generatedRepo, err := persistence.NewGormGeneratedPhotoRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated photo repository: %w", err)
	}

	requestRepo, err := persistence.NewGormPhotoRequestRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo request repository: %w", err)
	}

	errorLogRepo, err := persistence.NewGormErrorLogRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create error log repository: %w", err)
	}

	return &Repositories{
		Users:           userRepo,
		Profiles:        profileRepo,
		Orders:          orderRepo,
		UploadedPhotos:  uploadedRepo,
		GeneratedPhotos: generatedRepo,
		PhotoRequests:   requestRepo,
		ErrorLogs:       errorLogRepo,
	}, nil
}

// initializeConnectors sets up the blob store, payment gateway, mail and event transports
func (c *Container) initializeConnectors(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (
	blobs.BlobConnector, payments.PaymentGateway, notifications.Notifier, orders.EventPublisher, error,
) {
	if cfg.BlobConnector.CloudProvider != config.AzureCloudProvider {
		return nil, nil, nil, nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", cfg.BlobConnector.CloudProvider)
	}

	blobConnector, err := connector.NewAzureBlobConnector(ctx, &cfg.BlobConnector, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create Azure blob connector: %w", err)
	}

	gateway, err := payment.NewStripeGateway(&cfg.Stripe, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create stripe gateway: %w", err)
	}

	mail, err := mailer.NewMailer(&cfg.SMTP, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	notifier, err := mailer.NewNotifier(mail, cfg.AppURL, cfg.SMTP.AdminEmail, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	publisher, closePublisher, err := broker.NewEventPublisher(&cfg.Broker, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create event publisher: %w", err)
	}
	c.closers = append(c.closers, closePublisher)

	log.Info("Connectors initialized successfully")
	return blobConnector, gateway, notifier, publisher, nil
}

func (c *Container) initializeServices(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Services, error) {
	repos := c.Repositories

	blobConnector, gateway, notifier, publisher, err := c.initializeConnectors(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	tokenManager, err := auth.NewJWTTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TTL())
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	var oauthProvider users.OAuthProvider
	if cfg.Auth.GoogleEnabled() {
		if oauthProvider, err = auth.NewGoogleProvider(&cfg.Auth); err != nil {
			return nil, fmt.Errorf("failed to create google provider: %w", err)
		}
	}

	maxFileSize := cfg.BlobConnector.UploadLimit()
	s := &Services{}

	if s.Auth, err = app.NewAuthService(repos.Users, tokenManager, oauthProvider, notifier, cfg.Auth.AdminEmails, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	if s.Profile, err = app.NewProfileService(repos.Profiles, log); err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	if s.Upload, err = app.NewUploadService(blobConnector, repos.UploadedPhotos, cfg.Studio.MaxUploads, maxFileSize, log); err != nil {
		return nil, fmt.Errorf("failed to create upload service: %w", err)
	}

	if s.PhotoRequest, err = app.NewPhotoRequestService(blobConnector, repos.PhotoRequests, cfg.Studio.MaxPhotoRequests, maxFileSize, log); err != nil {
		return nil, fmt.Errorf("failed to create photo request service: %w", err)
	}

	if s.Studio, err = app.NewStudioService(repos.Profiles, repos.UploadedPhotos, repos.PhotoRequests, cfg.Studio.MinUploads, log); err != nil {
		return nil, fmt.Errorf("failed to create studio service: %w", err)
	}

	if s.Checkout, err = app.NewCheckoutService(
		repos.Orders, repos.Users, repos.UploadedPhotos, repos.PhotoRequests,
		s.Studio, gateway, publisher, &cfg.Stripe, log,
	); err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}

	if s.Webhook, err = app.NewWebhookService(gateway, repos.Orders, repos.Users, publisher, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create webhook service: %w", err)
	}

	if s.Order, err = app.NewOrderService(
		repos.Orders, repos.UploadedPhotos, repos.PhotoRequests, repos.GeneratedPhotos, publisher, log,
	); err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}

	if s.AdminOrder, err = app.NewAdminOrderService(
		repos.Orders, repos.Users, repos.UploadedPhotos, repos.PhotoRequests, repos.GeneratedPhotos,
		blobConnector, publisher, notifier, maxFileSize, log,
	); err != nil {
		return nil, fmt.Errorf("failed to create admin order service: %w", err)
	}

	if s.Cleanup, err = app.NewCleanupService(
		repos.Orders, repos.UploadedPhotos, repos.PhotoRequests, blobConnector, publisher, notifier,
		cfg.Cleanup.UploadRetention(), cfg.Cleanup.AbandonedAfter(), log,
	); err != nil {
		return nil, fmt.Errorf("failed to create cleanup service: %w", err)
	}

	if s.ErrorRecorder, err = app.NewErrorRecorder(repos.ErrorLogs, log); err != nil {
		return nil, fmt.Errorf("failed to create error recorder: %w", err)
	}

	return s, nil
}
