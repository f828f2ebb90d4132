//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	order := CreateTestOrder(t, ctx, user, time.Now())

	fetched, err := ctx.OrderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, fetched.Status)
	assert.Equal(t, orders.PaymentStatusUnpaid, fetched.PaymentStatus)
	assert.Equal(t, int64(2900), fetched.Amount)

	_, err = ctx.OrderRepo.GetByID(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestOrderSqliteRepository_Create_InvalidOrder(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.OrderRepo.Create(context.Background(), &orders.Order{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestOrderSqliteRepository_UpdateAndSessionLookup(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	order := CreateTestOrder(t, ctx, user, time.Now())

	order.MarkPaid("cs_test_123", time.Now())
	require.NoError(t, ctx.OrderRepo.Update(context.Background(), order))

	fetched, err := ctx.OrderRepo.GetByStripeSessionID(context.Background(), "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, orders.StatusProcessing, fetched.Status)
	assert.True(t, fetched.IsPaid())
}

func TestOrderSqliteRepository_ListWithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	alice := CreateTestUser(t, ctx)
	bob := CreateTestUser(t, ctx)

	CreateTestOrder(t, ctx, alice, time.Now().Add(-2*time.Hour))
	paid := CreateTestOrder(t, ctx, alice, time.Now().Add(-time.Hour))
	paid.MarkPaid("cs_1", time.Now())
	require.NoError(t, ctx.OrderRepo.Update(context.Background(), paid))
	CreateTestOrder(t, ctx, bob, time.Now())

	query := orders.NewOrderQuery()
	all, err := ctx.OrderRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	query.Status = string(orders.StatusProcessing)
	processing, err := ctx.OrderRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, processing, 1)
	assert.Equal(t, paid.ID, processing[0].ID)

	query = orders.NewOrderQuery()
	query.UserID = alice.ID
	query.Limit = 1
	newest, err := ctx.OrderRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, newest, 1)
	assert.Equal(t, paid.ID, newest[0].ID)

	byUser, err := ctx.OrderRepo.ListByUser(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)
}

func TestOrderSqliteRepository_RetentionQueries(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	now := time.Now()

	oldCompleted := CreateTestOrder(t, ctx, user, now.AddDate(0, 0, -60))
	oldCompleted.Apply(&orders.Patch{Status: statusPtr(orders.StatusCompleted)}, now.AddDate(0, 0, -45))
	require.NoError(t, ctx.OrderRepo.Update(context.Background(), oldCompleted))

	recentCompleted := CreateTestOrder(t, ctx, user, now.AddDate(0, 0, -3))
	recentCompleted.Apply(&orders.Patch{Status: statusPtr(orders.StatusCompleted)}, now.AddDate(0, 0, -1))
	require.NoError(t, ctx.OrderRepo.Update(context.Background(), recentCompleted))

	abandoned := CreateTestOrder(t, ctx, user, now.AddDate(0, 0, -10))
	CreateTestOrder(t, ctx, user, now.AddDate(0, 0, -1))

	completed, err := ctx.OrderRepo.ListCompletedBefore(context.Background(), now.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, oldCompleted.ID, completed[0].ID)

	stale, err := ctx.OrderRepo.ListAbandonedBefore(context.Background(), now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, abandoned.ID, stale[0].ID)
}

func TestPhotoSqliteRepositories_AssignAndCount(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	background := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, ctx.UploadedPhotoRepo.Create(background, NewTestUpload(user, time.Now())))
	}
	request := &photos.PhotoRequest{ID: uuid.NewString(), UserID: user.ID, Instruction: "studio portrait", DateTimeCreated: time.Now()}
	require.NoError(t, ctx.PhotoRequestRepo.Create(background, request))

	count, err := ctx.UploadedPhotoRepo.CountUnassigned(background, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	order := CreateTestOrder(t, ctx, user, time.Now())
	assigned, err := ctx.UploadedPhotoRepo.AssignToOrder(background, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), assigned)
	assigned, err = ctx.PhotoRequestRepo.AssignToOrder(background, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), assigned)

	count, err = ctx.UploadedPhotoRepo.CountUnassigned(background, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	byOrder, err := ctx.UploadedPhotoRepo.ListByOrder(background, order.ID)
	require.NoError(t, err)
	assert.Len(t, byOrder, 3)

	requests, err := ctx.PhotoRequestRepo.ListByOrder(background, order.ID)
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	unassignedRequests, err := ctx.PhotoRequestRepo.ListByUser(background, user.ID)
	require.NoError(t, err)
	assert.Empty(t, unassignedRequests)
}

func TestUploadedPhotoSqliteRepository_OrphansAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	background := context.Background()

	old := NewTestUpload(user, time.Now().AddDate(0, 0, -10))
	fresh := NewTestUpload(user, time.Now())
	require.NoError(t, ctx.UploadedPhotoRepo.Create(background, old))
	require.NoError(t, ctx.UploadedPhotoRepo.Create(background, fresh))

	orphans, err := ctx.UploadedPhotoRepo.ListOrphanedBefore(background, time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, old.ID, orphans[0].ID)

	require.NoError(t, ctx.UploadedPhotoRepo.DeleteByID(background, old.ID))
	_, err = ctx.UploadedPhotoRepo.GetByID(background, old.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPhotoRequestSqliteRepository_ClearReference(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	background := context.Background()

	url := "https://blobs.realshot.test/references/r.png"
	blobName := "references/r.png"
	request := &photos.PhotoRequest{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		Instruction:       "like this one",
		ReferenceImageURL: &url,
		ReferenceBlobName: &blobName,
		DateTimeCreated:   time.Now(),
	}
	require.NoError(t, ctx.PhotoRequestRepo.Create(background, request))

	require.NoError(t, ctx.PhotoRequestRepo.ClearReference(background, request.ID))

	fetched, err := ctx.PhotoRequestRepo.GetByID(background, request.ID)
	require.NoError(t, err)
	assert.False(t, fetched.HasReference())
	assert.Nil(t, fetched.ReferenceImageURL)
}

func TestGeneratedPhotoSqliteRepository(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)
	order := CreateTestOrder(t, ctx, user, time.Now())

	generated := &photos.GeneratedPhoto{
		ID:              uuid.NewString(),
		OrderID:         order.ID,
		UserID:          user.ID,
		URL:             "https://blobs.realshot.test/generated/g.png",
		BlobName:        "generated/g.png",
		FileName:        "g.png",
		DateTimeCreated: time.Now(),
	}
	require.NoError(t, ctx.GeneratedPhotoRepo.Create(context.Background(), generated))

	list, err := ctx.GeneratedPhotoRepo.ListByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, generated.URL, list[0].URL)
}

func statusPtr(s orders.Status) *orders.Status { return &s }
