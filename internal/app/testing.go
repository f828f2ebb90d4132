//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/auth"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/broker"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/connector"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/mailer"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test constants for Azure Blob Storage (Azurite)
const (
	TestCloudProvider    = "azure"
	TestConnectionString = "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"
	TestContainerName    = "testphotos"
	TestWebhookSignature = "t=1,v1=test"
	TestMinUploads       = 2
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
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

	// Infrastructure
	DBContext *persistence.TestContext
	Gateway   *stubGateway
}

// stubGateway opens fake checkout sessions and accepts JSON webhook payloads signed with TestWebhookSignature
type stubGateway struct{}

func (g *stubGateway) CreateCheckoutSession(_ context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	id := "cs_test_" + req.OrderID
	return &payments.CheckoutSession{ID: id, URL: "https://checkout.stripe.test/" + id}, nil
}

func (g *stubGateway) ParseWebhook(payload []byte, signature string) (*payments.WebhookEvent, error) {
	if signature != TestWebhookSignature {
		return nil, payments.ErrInvalidSignature
	}

	var event payments.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Payload encodes a webhook event the way ParseWebhook expects it
func (g *stubGateway) Payload(t *testing.T, event *payments.WebhookEvent) []byte {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return payload
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup blob connector
	blobConnectorSettings := &config.BlobConnectorSettings{
		CloudProvider:    TestCloudProvider,
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}
	blobConnector, err := connector.NewAzureBlobConnector(ctx, blobConnectorSettings, logger)
	require.NoError(t, err, "Failed to create blob connector")

	notifier, err := mailer.NewNotifier(mailer.NewLogMailer(logger), "http://localhost:3000", "admin@realshot.test", logger)
	require.NoError(t, err)
	publisher := broker.NewLogEventPublisher(logger)
	gateway := &stubGateway{}

	tokenManager, err := auth.NewJWTTokenManager("integration-test-secret", time.Hour)
	require.NoError(t, err)

	errorLogRepo, err := persistence.NewGormErrorLogRepository(dbContext.DB)
	require.NoError(t, err)

	stripeSettings := &config.StripeSettings{
		SecretKey:     "sk_test_integration",
		WebhookSecret: "whsec_integration",
		SuccessURL:    "http://localhost:3000/studio/success",
		CancelURL:     "http://localhost:3000/studio",
		Currency:      "usd",
		Packages:      []config.PackageSettings{{ID: "starter", Name: "Starter", PriceCents: 2900, PhotoCount: 20}},
	}

	s := &TestServices{DBContext: dbContext, Gateway: gateway}

	s.AuthService, err = NewAuthService(dbContext.UserRepo, tokenManager, nil, notifier, nil, logger)
	require.NoError(t, err)
	s.ProfileService, err = NewProfileService(dbContext.ProfileRepo, logger)
	require.NoError(t, err)
	s.UploadService, err = NewUploadService(blobConnector, dbContext.UploadedPhotoRepo, 10, config.DefaultMaxUploadSize, logger)
	require.NoError(t, err)
	s.PhotoRequestService, err = NewPhotoRequestService(blobConnector, dbContext.PhotoRequestRepo, 5, config.DefaultMaxUploadSize, logger)
	require.NoError(t, err)
	s.StudioService, err = NewStudioService(dbContext.ProfileRepo, dbContext.UploadedPhotoRepo, dbContext.PhotoRequestRepo, TestMinUploads, logger)
	require.NoError(t, err)
	s.CheckoutService, err = NewCheckoutService(dbContext.OrderRepo, dbContext.UserRepo, dbContext.UploadedPhotoRepo, dbContext.PhotoRequestRepo,
		s.StudioService, gateway, publisher, stripeSettings, logger)
	require.NoError(t, err)
	s.WebhookService, err = NewWebhookService(gateway, dbContext.OrderRepo, dbContext.UserRepo, publisher, notifier, logger)
	require.NoError(t, err)
	s.OrderService, err = NewOrderService(dbContext.OrderRepo, dbContext.UploadedPhotoRepo, dbContext.PhotoRequestRepo, dbContext.GeneratedPhotoRepo, publisher, logger)
	require.NoError(t, err)
	s.AdminOrderService, err = NewAdminOrderService(dbContext.OrderRepo, dbContext.UserRepo, dbContext.UploadedPhotoRepo, dbContext.PhotoRequestRepo,
		dbContext.GeneratedPhotoRepo, blobConnector, publisher, notifier, config.DefaultMaxUploadSize, logger)
	require.NoError(t, err)
	s.CleanupService, err = NewCleanupService(dbContext.OrderRepo, dbContext.UploadedPhotoRepo, dbContext.PhotoRequestRepo, blobConnector,
		publisher, notifier, 30*24*time.Hour, 7*24*time.Hour, logger)
	require.NoError(t, err)
	s.ErrorRecorder, err = NewErrorRecorder(errorLogRepo, logger)
	require.NoError(t, err)

	return s
}
