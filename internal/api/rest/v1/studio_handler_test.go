//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/httputil"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type studioMocks struct {
	profile  *MockProfileService
	upload   *MockUploadService
	request  *MockPhotoRequestService
	studio   *MockStudioService
	checkout *MockCheckoutService
}

func newStudioHandlerWithMocks() (StudioHandler, *studioMocks) {
	m := &studioMocks{
		profile:  new(MockProfileService),
		upload:   new(MockUploadService),
		request:  new(MockPhotoRequestService),
		studio:   new(MockStudioService),
		checkout: new(MockCheckoutService),
	}
	return NewStudioHandler(m.profile, m.upload, m.request, m.studio, m.checkout), m
}

func TestStudioHandler_GetProfile(t *testing.T) {
	t.Run("saved profile", func(t *testing.T) {
		handler, m := newStudioHandlerWithMocks()
		m.profile.On("Get", mock.Anything, testUserID).Return(&users.Profile{ID: "p1", Gender: "female", WizardStep: 1}, nil)

		w := httptest.NewRecorder()
		handler.GetProfile(newTestContext(w, jsonRequest(t, http.MethodGet, "/studio/profile", nil), customerClaims()))

		assert.Equal(t, http.StatusOK, w.Code)
		var body ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "female", body.Gender)
	})

	t.Run("no profile yet", func(t *testing.T) {
		handler, m := newStudioHandlerWithMocks()
		m.profile.On("Get", mock.Anything, testUserID).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.GetProfile(newTestContext(w, jsonRequest(t, http.MethodGet, "/studio/profile", nil), customerClaims()))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStudioHandler_SaveProfile_ValidationError(t *testing.T) {
	handler, m := newStudioHandlerWithMocks()
	m.profile.On("Save", mock.Anything, testUserID, mock.Anything).Return(nil, apperrors.InvalidInput("Field: Gender, Tag: required"))

	w := httptest.NewRecorder()
	handler.SaveProfile(newTestContext(w, jsonRequest(t, http.MethodPost, "/studio/profile", map[string]string{"ageRange": "25-34"}), customerClaims()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "Gender")
}

func TestStudioHandler_Upload_Success(t *testing.T) {
	handler, m := newStudioHandlerWithMocks()

	uploaded := []*photos.UploadedPhoto{{ID: "u1", URL: "https://blob/uploads/u1.png", FileName: "a.png", ContentType: "image/png"}}
	m.upload.On("Upload", mock.Anything, testUserID, mock.MatchedBy(func(form *multipart.Form) bool {
		return len(form.File[httputil.FilesField]) == 1
	})).Return(uploaded, nil)

	req := testutil.NewMultipartRequest(t, http.MethodPost, "/studio/upload", httputil.FilesField,
		map[string][]byte{"a.png": testutil.PNGBytes}, nil)
	w := httptest.NewRecorder()

	handler.Upload(newTestContext(w, req, customerClaims()))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
	m.upload.AssertExpectations(t)
}

func TestStudioHandler_Upload_InvalidForm(t *testing.T) {
	handler, m := newStudioHandlerWithMocks()

	w := httptest.NewRecorder()
	handler.Upload(newTestContext(w, jsonRequest(t, http.MethodPost, "/studio/upload", nil), customerClaims()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid form data", decodeError(t, w).Message)
	m.upload.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestStudioHandler_Upload_LimitReached(t *testing.T) {
	handler, m := newStudioHandlerWithMocks()
	m.upload.On("Upload", mock.Anything, testUserID, mock.Anything).Return(nil, apperrors.ErrConflict)

	req := testutil.NewMultipartRequest(t, http.MethodPost, "/studio/upload", httputil.FilesField,
		map[string][]byte{"a.png": testutil.PNGBytes}, nil)
	w := httptest.NewRecorder()

	handler.Upload(newTestContext(w, req, customerClaims()))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStudioHandler_DeleteUpload(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"someone else's photo", apperrors.ErrForbidden, http.StatusForbidden},
		{"attached to an order", apperrors.ErrConflict, http.StatusConflict},
		{"unknown photo", apperrors.NotFound("photo", "u1"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newStudioHandlerWithMocks()
			m.upload.On("Delete", mock.Anything, testUserID, "u1").Return(tt.err)

			w := httptest.NewRecorder()
			c := newTestContext(w, jsonRequest(t, http.MethodDelete, "/studio/uploads/u1", nil), customerClaims())
			c.Params = gin.Params{{Key: "id", Value: "u1"}}

			handler.DeleteUpload(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestStudioHandler_CreatePhotoRequest(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		handler, m := newStudioHandlerWithMocks()
		m.request.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in *photos.PhotoRequestInput) bool {
			return in.Instruction == "on a beach" && in.Reference == nil
		})).Return(&photos.PhotoRequest{ID: "r1", Instruction: "on a beach"}, nil)

		w := httptest.NewRecorder()
		handler.CreatePhotoRequest(newTestContext(w,
			jsonRequest(t, http.MethodPost, "/studio/photo-requests", map[string]string{"instruction": "on a beach"}),
			customerClaims()))

		assert.Equal(t, http.StatusCreated, w.Code)
		m.request.AssertExpectations(t)
	})

	t.Run("multipart with reference", func(t *testing.T) {
		handler, m := newStudioHandlerWithMocks()
		m.request.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in *photos.PhotoRequestInput) bool {
			return in.Instruction == "like this" && in.Reference != nil && in.Reference.Filename == "ref.jpg"
		})).Return(&photos.PhotoRequest{ID: "r2", Instruction: "like this"}, nil)

		req := testutil.NewMultipartRequest(t, http.MethodPost, "/studio/photo-requests", referenceField,
			map[string][]byte{"ref.jpg": testutil.JPEGBytes}, map[string]string{"instruction": "like this"})
		w := httptest.NewRecorder()

		handler.CreatePhotoRequest(newTestContext(w, req, customerClaims()))

		assert.Equal(t, http.StatusCreated, w.Code)
		m.request.AssertExpectations(t)
	})
}

func TestStudioHandler_UpdateWizard(t *testing.T) {
	handler, m := newStudioHandlerWithMocks()

	view := &studio.View{
		State:   studio.State{CurrentStep: studio.StepDesign},
		MaxStep: studio.StepPayment,
		Facts:   studio.Facts{HasProfile: true, UploadCount: 6, MinUploads: 5},
	}
	m.studio.On("Update", mock.Anything, testUserID, mock.MatchedBy(func(u *studio.Update) bool {
		return u.Action == studio.ActionNext
	})).Return(view, nil)

	w := httptest.NewRecorder()
	handler.UpdateWizard(newTestContext(w, jsonRequest(t, http.MethodPut, "/studio/wizard", map[string]string{"action": "next"}), customerClaims()))

	assert.Equal(t, http.StatusOK, w.Code)

	var body WizardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, studio.StepDesign, body.CurrentStep)
	assert.Equal(t, "design", body.StepName)
	assert.Equal(t, int64(6), body.Facts.UploadCount)
}

func TestStudioHandler_Checkout(t *testing.T) {
	t.Run("opens payment page", func(t *testing.T) {
		handler, m := newStudioHandlerWithMocks()
		order := orders.NewPendingOrder(testUserID, "starter", 2900, "usd", time.Now())
		m.checkout.On("Checkout", mock.Anything, testUserID, &payments.CheckoutInput{PackageID: "starter"}).
			Return(&payments.CheckoutResult{Order: order, URL: "https://checkout.stripe.test/c/pay/cs_1"}, nil)

		w := httptest.NewRecorder()
		handler.Checkout(newTestContext(w, jsonRequest(t, http.MethodPost, "/studio/checkout", map[string]string{"packageId": "starter"}), customerClaims()))

		assert.Equal(t, http.StatusCreated, w.Code)

		var body CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, order.ID, body.OrderID)
		assert.Equal(t, "https://checkout.stripe.test/c/pay/cs_1", body.URL)
	})

	t.Run("wizard incomplete", func(t *testing.T) {
		handler, m := newStudioHandlerWithMocks()
		m.checkout.On("Checkout", mock.Anything, testUserID, mock.Anything).Return(nil, apperrors.InvalidInput("studio is not ready for checkout"))

		w := httptest.NewRecorder()
		handler.Checkout(newTestContext(w, jsonRequest(t, http.MethodPost, "/studio/checkout", map[string]string{"packageId": "starter"}), customerClaims()))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
