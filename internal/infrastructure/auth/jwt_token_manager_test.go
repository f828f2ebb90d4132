//go:build unit
// +build unit

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func TestJWTTokenManager_IssueAndParse(t *testing.T) {
	manager, err := NewJWTTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	user := users.NewUser("jane@example.com", "Jane", users.ProviderCredentials, time.Now())
	user.Role = users.RoleAdmin

	token, expiresAt, err := manager.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, users.RoleAdmin, claims.Role)
}

func TestJWTTokenManager_RejectsExpired(t *testing.T) {
	managerIface, err := NewJWTTokenManager(testSecret, time.Minute)
	require.NoError(t, err)
	manager := managerIface.(*jwtTokenManager)

	manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := manager.Issue(users.NewUser("a@b.co", "", users.ProviderCredentials, time.Now()))
	require.NoError(t, err)

	manager.now = time.Now
	_, err = manager.Parse(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestJWTTokenManager_RejectsForeignTokens(t *testing.T) {
	manager, err := NewJWTTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewJWTTokenManager("another-secret-of-length", time.Hour)
	require.NoError(t, err)

	token, _, err := other.Issue(users.NewUser("a@b.co", "", users.ProviderCredentials, time.Now()))
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = manager.Parse(none)
	assert.Error(t, err)

	_, err = manager.Parse("garbage")
	assert.Error(t, err)
}

func TestNewJWTTokenManager_InvalidSettings(t *testing.T) {
	_, err := NewJWTTokenManager("short", time.Hour)
	assert.Error(t, err)

	_, err = NewJWTTokenManager(testSecret, 0)
	assert.Error(t, err)
}
