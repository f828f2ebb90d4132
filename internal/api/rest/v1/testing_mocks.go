//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input *users.RegisterInput) (*users.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, input *users.LoginInput) (*users.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) OAuthLoginURL(state string) (string, error) {
	args := m.Called(state)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) OAuthCallback(ctx context.Context, code string) (*users.Session, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) PromoteToAdmin(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*users.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockProfileService) Save(ctx context.Context, userID string, input *users.ProfileInput) (*users.Profile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, userID string, form *multipart.Form) ([]*photos.UploadedPhoto, error) {
	args := m.Called(ctx, userID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.UploadedPhoto), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, userID string) ([]*photos.UploadedPhoto, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.UploadedPhoto), args.Error(1)
}

func (m *MockUploadService) Delete(ctx context.Context, userID, photoID string) error {
	args := m.Called(ctx, userID, photoID)
	return args.Error(0)
}

// MockPhotoRequestService is a mock implementation of PhotoRequestService
type MockPhotoRequestService struct {
	mock.Mock
}

func (m *MockPhotoRequestService) Create(ctx context.Context, userID string, input *photos.PhotoRequestInput) (*photos.PhotoRequest, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*photos.PhotoRequest), args.Error(1)
}

func (m *MockPhotoRequestService) List(ctx context.Context, userID string) ([]*photos.PhotoRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.PhotoRequest), args.Error(1)
}

func (m *MockPhotoRequestService) Delete(ctx context.Context, userID, requestID string) error {
	args := m.Called(ctx, userID, requestID)
	return args.Error(0)
}

// MockStudioService is a mock implementation of StudioService
type MockStudioService struct {
	mock.Mock
}

func (m *MockStudioService) Facts(ctx context.Context, userID string) (*studio.Facts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*studio.Facts), args.Error(1)
}

func (m *MockStudioService) Get(ctx context.Context, userID string) (*studio.View, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*studio.View), args.Error(1)
}

func (m *MockStudioService) Update(ctx context.Context, userID string, update *studio.Update) (*studio.View, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*studio.View), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, userID string, input *payments.CheckoutInput) (*payments.CheckoutResult, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.CheckoutResult), args.Error(1)
}

// MockWebhookService is a mock implementation of WebhookService
type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) Handle(ctx context.Context, payload []byte, signature string) (*payments.WebhookEvent, error) {
	args := m.Called(ctx, payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookEvent), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, userID string) ([]*orders.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, userID, orderID string) (*orders.Detail, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Detail), args.Error(1)
}

func (m *MockOrderService) ListGenerated(ctx context.Context, userID, orderID string) ([]*photos.GeneratedPhoto, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.GeneratedPhoto), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, userID, orderID string) (*orders.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

// MockAdminOrderService is a mock implementation of AdminOrderService
type MockAdminOrderService struct {
	mock.Mock
}

func (m *MockAdminOrderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockAdminOrderService) Get(ctx context.Context, orderID string) (*orders.Detail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Detail), args.Error(1)
}

func (m *MockAdminOrderService) Patch(ctx context.Context, orderID string, patch *orders.Patch) (*orders.Order, error) {
	args := m.Called(ctx, orderID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockAdminOrderService) UploadGenerated(ctx context.Context, orderID string, form *multipart.Form) ([]*photos.GeneratedPhoto, error) {
	args := m.Called(ctx, orderID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.GeneratedPhoto), args.Error(1)
}

// MockCleanupService is a mock implementation of cleanup.Service
type MockCleanupService struct {
	mock.Mock
}

func (m *MockCleanupService) Run(ctx context.Context, job string) (*cleanup.Report, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cleanup.Report), args.Error(1)
}

// MockErrorRecorder is a mock implementation of errorlogs.Recorder
type MockErrorRecorder struct {
	mock.Mock
}

func (m *MockErrorRecorder) Record(ctx context.Context, source string, err error, userID string) {
	m.Called(ctx, source, err, userID)
}

func (m *MockErrorRecorder) ListRecent(ctx context.Context, limit int) ([]*errorlogs.ErrorLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*errorlogs.ErrorLog), args.Error(1)
}
