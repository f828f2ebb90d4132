//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudioFlow_FromSignUpToDelivery(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	session, err := services.AuthService.Register(ctx, &users.RegisterInput{Email: "flow@realshot.test", Password: "password1", Name: "Flow"})
	require.NoError(t, err)
	userID := session.User.ID

	claims, err := services.AuthService.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// checkout is refused until the studio is complete
	_, err = services.CheckoutService.Checkout(ctx, userID, &payments.CheckoutInput{PackageID: "starter"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = services.ProfileService.Save(ctx, userID, &users.ProfileInput{Gender: "female", AgeRange: "25-34"})
	require.NoError(t, err)

	uploaded, err := services.UploadService.Upload(ctx, userID, testutil.CreateTestImageForm(t, TestMinUploads))
	require.NoError(t, err)
	require.Len(t, uploaded, TestMinUploads)

	_, err = services.PhotoRequestService.Create(ctx, userID, &photos.PhotoRequestInput{Instruction: "professional headshot"})
	require.NoError(t, err)

	step := studio.StepPayment
	view, err := services.StudioService.Update(ctx, userID, &studio.Update{Action: studio.ActionGoTo, Step: &step})
	require.NoError(t, err)
	assert.Equal(t, studio.StepPayment, view.State.CurrentStep)

	result, err := services.CheckoutService.Checkout(ctx, userID, &payments.CheckoutInput{PackageID: "starter"})
	require.NoError(t, err)
	orderID := result.Order.ID

	// attached uploads no longer count towards the next order
	facts, err := services.StudioService.Facts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), facts.UploadCount)

	event := &payments.WebhookEvent{
		ID:            "evt_flow",
		Type:          payments.EventCheckoutCompleted,
		SessionID:     *result.Order.StripeSessionID,
		OrderID:       orderID,
		PaymentStatus: orders.PaymentStatusPaid,
	}
	payload := services.Gateway.Payload(t, event)

	_, err = services.WebhookService.Handle(ctx, payload, "forged")
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)

	for i := 0; i < 2; i++ {
		_, err = services.WebhookService.Handle(ctx, payload, TestWebhookSignature)
		require.NoError(t, err)
	}

	detail, err := services.OrderService.Get(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusProcessing, detail.Order.Status)
	assert.True(t, detail.Order.IsPaid())
	assert.Len(t, detail.Uploads, TestMinUploads)
	assert.Len(t, detail.PhotoRequests, 1)

	_, err = services.OrderService.Cancel(ctx, userID, orderID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	generated, err := services.AdminOrderService.UploadGenerated(ctx, orderID, testutil.CreateTestImageForm(t, 2))
	require.NoError(t, err)
	assert.Len(t, generated, 2)

	status := orders.StatusCompleted
	completed, err := services.AdminOrderService.Patch(ctx, orderID, &orders.Patch{Status: &status})
	require.NoError(t, err)
	assert.True(t, completed.Progress.ImagesGenerated)
	assert.True(t, completed.Progress.OrderCompleted)
	require.NotNil(t, completed.DateTimeCompleted)

	delivered, err := services.OrderService.ListGenerated(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Len(t, delivered, 2)

	report, err := services.CleanupService.Run(ctx, cleanup.JobAll)
	require.NoError(t, err)
	assert.Equal(t, 0, report.PhotosDeleted, "fresh orders are kept")
	assert.False(t, report.Failed())
}

func TestUploadFlow_DeleteAndErrorLog(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := testUser(t, services)

	uploaded, err := services.UploadService.Upload(ctx, user.ID, testutil.CreateTestImageForm(t, 1))
	require.NoError(t, err)

	require.NoError(t, services.UploadService.Delete(ctx, user.ID, uploaded[0].ID))

	remaining, err := services.UploadService.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	err = services.UploadService.Delete(ctx, user.ID, uploaded[0].ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	services.ErrorRecorder.Record(ctx, "DELETE /api/v1/upload/photos", err, user.ID)
	logs, err := services.ErrorRecorder.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, user.ID, *logs[0].UserID)
}

func testUser(t *testing.T, services *TestServices) *users.User {
	t.Helper()

	session, err := services.AuthService.Register(context.Background(), &users.RegisterInput{Email: "uploader@realshot.test", Password: "password1"})
	require.NoError(t, err)
	return session.User
}
