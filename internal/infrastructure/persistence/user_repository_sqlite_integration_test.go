//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)

	byID, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := ctx.UserRepo.GetByEmail(context.Background(), " "+user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserSqliteRepository_DuplicateEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)

	duplicate := users.NewUser(user.Email, "Other", users.ProviderGoogle, time.Now())
	err := ctx.UserRepo.Create(context.Background(), duplicate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestUserSqliteRepository_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUserSqliteRepository_Update(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)

	user.Role = users.RoleAdmin
	require.NoError(t, ctx.UserRepo.Update(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsAdmin())
}

func TestProfileSqliteRepository_Upsert(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx)

	_, err := ctx.ProfileRepo.GetByUserID(context.Background(), user.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	profile := &users.Profile{ID: uuid.NewString(), UserID: user.ID, Gender: "female", AgeRange: "25-34", DateTimeCreated: time.Now()}
	require.NoError(t, ctx.ProfileRepo.Upsert(context.Background(), profile))

	// a second save with a different id still targets the user's single row
	again := &users.Profile{ID: uuid.NewString(), UserID: user.ID, Gender: "female", AgeRange: "35-44", WizardStep: 2, DesignSubstep: true, DateTimeCreated: time.Now()}
	require.NoError(t, ctx.ProfileRepo.Upsert(context.Background(), again))

	fetched, err := ctx.ProfileRepo.GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, fetched.ID)
	assert.Equal(t, "35-44", fetched.AgeRange)
	assert.Equal(t, 2, fetched.WizardStep)
	assert.True(t, fetched.DesignSubstep)
}
