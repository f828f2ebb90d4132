//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestPatchOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   PatchOrderRequest
		shouldErr bool
	}{
		{"Valid status", PatchOrderRequest{Status: strPtr("PROCESSING")}, false},
		{"Valid flags only", PatchOrderRequest{ImagesProcessed: boolPtr(true)}, false},
		{"Empty (checked by the service)", PatchOrderRequest{}, false},
		{"Unknown status", PatchOrderRequest{Status: strPtr("SHIPPED")}, true},
		{"Lowercase status", PatchOrderRequest{Status: strPtr("completed")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPatchOrderRequest_ToPatch(t *testing.T) {
	patch := (&PatchOrderRequest{Status: strPtr("COMPLETED"), TrainingInitiated: boolPtr(true)}).ToPatch()

	require.NotNil(t, patch.Status)
	assert.Equal(t, orders.StatusCompleted, *patch.Status)
	require.NotNil(t, patch.TrainingInitiated)
	assert.True(t, *patch.TrainingInitiated)
	assert.Nil(t, patch.ImagesGenerated)

	assert.Nil(t, (&PatchOrderRequest{ImagesGenerated: boolPtr(false)}).ToPatch().Status)
}

func TestNewOrderDetailResponse(t *testing.T) {
	now := time.Now()
	order := orders.NewPendingOrder("8a7c1f9e-3b2d-4c5e-9f1a-2b3c4d5e6f70", "starter", 2900, "usd", now)

	detail := &orders.Detail{
		Order:   order,
		User:    &users.User{ID: order.UserID, Email: "jane@realshot.test", Role: users.RoleUser},
		Uploads: []*photos.UploadedPhoto{{ID: "u1", URL: "https://blob/u1"}},
	}

	response := newOrderDetailResponse(detail)

	assert.Equal(t, order.ID, response.ID)
	assert.Equal(t, orders.StatusPending, response.Status)
	require.NotNil(t, response.User)
	assert.Equal(t, "USER", response.User.Role)
	assert.Len(t, response.Uploads, 1)
	assert.NotNil(t, response.PhotoRequests, "empty lists encode as []")
	assert.Empty(t, response.GeneratedPhotos)
}

func TestNewWizardResponse(t *testing.T) {
	view := &studio.View{
		State:   studio.State{CurrentStep: studio.StepUpload},
		MaxStep: studio.StepUpload,
	}

	response := newWizardResponse(view)

	assert.Equal(t, studio.StepUpload, response.CurrentStep)
	assert.Equal(t, studio.StepUpload.String(), response.StepName)
}
