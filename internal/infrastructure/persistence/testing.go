//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                 *gorm.DB
	UserRepo           users.UserRepository
	ProfileRepo        users.ProfileRepository
	OrderRepo          orders.OrderRepository
	UploadedPhotoRepo  photos.UploadedPhotoRepository
	GeneratedPhotoRepo photos.GeneratedPhotoRepository
	PhotoRequestRepo   photos.PhotoRequestRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err)
	profileRepo, err := NewGormProfileRepository(db, log)
	require.NoError(t, err)
	orderRepo, err := NewGormOrderRepository(db, log)
	require.NoError(t, err)
	uploadedRepo, err := NewGormUploadedPhotoRepository(db, log)
	require.NoError(t, err)
	generatedRepo, err := NewGormGeneratedPhotoRepository(db, log)
	require.NoError(t, err)
	requestRepo, err := NewGormPhotoRequestRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:                 db,
		UserRepo:           userRepo,
		ProfileRepo:        profileRepo,
		OrderRepo:          orderRepo,
		UploadedPhotoRepo:  uploadedRepo,
		GeneratedPhotoRepo: generatedRepo,
		PhotoRequestRepo:   requestRepo,
	}
}

// CreateTestUser persists a credentials user with a unique email
func CreateTestUser(t *testing.T, ctx *TestContext) *users.User {
	t.Helper()

	user := users.NewUser(uuid.NewString()[:8]+"@realshot.test", "Test User", users.ProviderCredentials, time.Now())
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	return user
}

// CreateTestOrder persists a pending order of user created at createdAt
func CreateTestOrder(t *testing.T, ctx *TestContext, user *users.User, createdAt time.Time) *orders.Order {
	t.Helper()

	order := orders.NewPendingOrder(user.ID, "starter", 2900, "usd", createdAt)
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), order))
	return order
}

// NewTestUpload builds an unassigned upload of user
func NewTestUpload(user *users.User, createdAt time.Time) *photos.UploadedPhoto {
	id := uuid.NewString()
	return &photos.UploadedPhoto{
		ID:              id,
		UserID:          user.ID,
		URL:             "https://blobs.realshot.test/uploads/" + user.ID + "/" + id + ".png",
		BlobName:        "uploads/" + user.ID + "/" + id + ".png",
		FileName:        "photo.png",
		ContentType:     "image/png",
		Size:            2048,
		DateTimeCreated: createdAt,
	}
}
