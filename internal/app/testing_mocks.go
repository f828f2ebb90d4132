//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*users.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *users.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

// MockTokenManager is a mock implementation of TokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Issue(user *users.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenManager) Parse(token string) (*users.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Claims), args.Error(1)
}

// MockOAuthProvider is a mock implementation of OAuthProvider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	return m.Called(state).String(0)
}

func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (*users.OAuthIdentity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.OAuthIdentity), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID string) (*orders.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStripeSessionID(ctx context.Context, sessionID string) (*orders.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]*orders.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]*orders.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAbandonedBefore(ctx context.Context, cutoff time.Time) ([]*orders.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *orders.Order) error {
	return m.Called(ctx, order).Error(0)
}

// MockUploadedPhotoRepository is a mock implementation of UploadedPhotoRepository
type MockUploadedPhotoRepository struct {
	mock.Mock
}

func (m *MockUploadedPhotoRepository) Create(ctx context.Context, photo *photos.UploadedPhoto) error {
	return m.Called(ctx, photo).Error(0)
}

func (m *MockUploadedPhotoRepository) GetByID(ctx context.Context, photoID string) (*photos.UploadedPhoto, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*photos.UploadedPhoto), args.Error(1)
}

func (m *MockUploadedPhotoRepository) ListByUser(ctx context.Context, userID string) ([]*photos.UploadedPhoto, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.UploadedPhoto), args.Error(1)
}

func (m *MockUploadedPhotoRepository) ListByOrder(ctx context.Context, orderID string) ([]*photos.UploadedPhoto, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.UploadedPhoto), args.Error(1)
}

func (m *MockUploadedPhotoRepository) ListOrphanedBefore(ctx context.Context, cutoff time.Time) ([]*photos.UploadedPhoto, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.UploadedPhoto), args.Error(1)
}

func (m *MockUploadedPhotoRepository) CountUnassigned(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUploadedPhotoRepository) AssignToOrder(ctx context.Context, userID, orderID string) (int64, error) {
	args := m.Called(ctx, userID, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUploadedPhotoRepository) DeleteByID(ctx context.Context, photoID string) error {
	return m.Called(ctx, photoID).Error(0)
}

// MockGeneratedPhotoRepository is a mock implementation of GeneratedPhotoRepository
type MockGeneratedPhotoRepository struct {
	mock.Mock
}

func (m *MockGeneratedPhotoRepository) Create(ctx context.Context, photo *photos.GeneratedPhoto) error {
	return m.Called(ctx, photo).Error(0)
}

func (m *MockGeneratedPhotoRepository) ListByOrder(ctx context.Context, orderID string) ([]*photos.GeneratedPhoto, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.GeneratedPhoto), args.Error(1)
}

// MockPhotoRequestRepository is a mock implementation of PhotoRequestRepository
type MockPhotoRequestRepository struct {
	mock.Mock
}

func (m *MockPhotoRequestRepository) Create(ctx context.Context, request *photos.PhotoRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockPhotoRequestRepository) GetByID(ctx context.Context, requestID string) (*photos.PhotoRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*photos.PhotoRequest), args.Error(1)
}

func (m *MockPhotoRequestRepository) ListByUser(ctx context.Context, userID string) ([]*photos.PhotoRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.PhotoRequest), args.Error(1)
}

func (m *MockPhotoRequestRepository) ListByOrder(ctx context.Context, orderID string) ([]*photos.PhotoRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*photos.PhotoRequest), args.Error(1)
}

func (m *MockPhotoRequestRepository) CountUnassigned(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRequestRepository) AssignToOrder(ctx context.Context, userID, orderID string) (int64, error) {
	args := m.Called(ctx, userID, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRequestRepository) ClearReference(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

func (m *MockPhotoRequestRepository) DeleteByID(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

// MockBlobConnector is a mock implementation of BlobConnector
type MockBlobConnector struct {
	mock.Mock
}

func (m *MockBlobConnector) Upload(ctx context.Context, name string, data []byte, contentType string) (*blobs.StoredBlob, error) {
	args := m.Called(ctx, name, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blobs.StoredBlob), args.Error(1)
}

func (m *MockBlobConnector) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockBlobConnector) URL(name string) string {
	return m.Called(name).String(0)
}

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) ParseWebhook(payload []byte, signature string) (*payments.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookEvent), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *orders.Event) error {
	return m.Called(ctx, event).Error(0)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Welcome(ctx context.Context, user *users.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockNotifier) OrderConfirmed(ctx context.Context, user *users.User, order *orders.Order) error {
	return m.Called(ctx, user, order).Error(0)
}

func (m *MockNotifier) OrderCompleted(ctx context.Context, user *users.User, order *orders.Order) error {
	return m.Called(ctx, user, order).Error(0)
}

func (m *MockNotifier) CleanupReport(ctx context.Context, summary *notifications.CleanupSummary) error {
	return m.Called(ctx, summary).Error(0)
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

// MockErrorLogRepository is a mock implementation of the error log Repository
type MockErrorLogRepository struct {
	mock.Mock
}

func (m *MockErrorLogRepository) Create(ctx context.Context, entry *errorlogs.ErrorLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockErrorLogRepository) ListRecent(ctx context.Context, limit int) ([]*errorlogs.ErrorLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*errorlogs.ErrorLog), args.Error(1)
}
