//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/ratelimit"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(t *testing.T, authService *MockAuthService) *gin.Engine {
	t.Helper()

	r := gin.New()
	SetupRoutes(r, &Dependencies{
		AuthService:         authService,
		ProfileService:      new(MockProfileService),
		UploadService:       new(MockUploadService),
		PhotoRequestService: new(MockPhotoRequestService),
		StudioService:       new(MockStudioService),
		CheckoutService:     new(MockCheckoutService),
		WebhookService:      new(MockWebhookService),
		OrderService:        new(MockOrderService),
		AdminOrderService:   new(MockAdminOrderService),
		CleanupService:      new(MockCleanupService),
		ErrorRecorder:       new(MockErrorRecorder),
		Limiter:             ratelimit.New(100, time.Minute, 100),
		Cookie:              CookieSettings{Name: "session"},
		CronSecret:          "cron-secret",
		Logger:              testutil.SetupTestLogger(t),
	})
	return r
}

// TestSetupRoutes_ProtectedRoutes verifies that routes are registered behind the right guards
func TestSetupRoutes_ProtectedRoutes(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("Authenticate", mock.Anything, "customer-token").
		Return(&users.Claims{UserID: testUserID, Role: users.RoleUser}, nil)

	r := setupTestRouter(t, mockAuthService)

	tests := []struct {
		method   string
		url      string
		token    string
		expected int
	}{
		{"GET", "/api/v1/studio/wizard", "", http.StatusUnauthorized},
		{"POST", "/api/v1/studio/upload", "", http.StatusUnauthorized},
		{"POST", "/api/v1/studio/checkout", "", http.StatusUnauthorized},
		{"GET", "/api/v1/orders", "", http.StatusUnauthorized},
		{"GET", "/api/v1/auth/session", "", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/orders", "", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/orders", "customer-token", http.StatusForbidden},
		{"PATCH", "/api/v1/admin/orders/o1", "customer-token", http.StatusForbidden},
		{"GET", "/api/v1/admin/error-logs", "customer-token", http.StatusForbidden},
		{"GET", "/api/v1/cron/cleanup", "", http.StatusUnauthorized},
		{"GET", "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

// TestSetupRoutes_PublicRoutes verifies that unauthenticated routes are reachable
func TestSetupRoutes_PublicRoutes(t *testing.T) {
	r := setupTestRouter(t, new(MockAuthService))

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/auth/register"},
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
			assert.NotEqual(t, http.StatusUnauthorized, w.Code)
		})
	}
}
