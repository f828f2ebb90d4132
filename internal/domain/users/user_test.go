//go:build unit
// +build unit

package users

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(u *User)
		expectedError bool
	}{
		{"valid user", func(u *User) {}, false},
		{"invalid email", func(u *User) { u.Email = "not-an-email" }, true},
		{"unknown provider", func(u *User) { u.Provider = "github" }, true},
		{"unknown role", func(u *User) { u.Role = "ROOT" }, true},
		{"invalid id", func(u *User) { u.ID = "123" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("Jane@Example.com ", " Jane ", ProviderCredentials, time.Now())
			tt.mutate(u)

			err := u.Validate()
			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), "Field:"))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	u := NewUser("  Jane@Example.COM", "Jane", ProviderGoogle, time.Now())

	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.False(t, u.IsAdmin())

	u.Role = RoleAdmin
	assert.True(t, u.IsAdmin())
}

func TestProfile(t *testing.T) {
	var missing *Profile
	assert.False(t, missing.IsComplete())

	p := &Profile{ID: uuid.NewString(), UserID: uuid.NewString(), DateTimeCreated: time.Now()}
	require.NoError(t, p.Validate())
	assert.False(t, p.IsComplete())

	p.Apply(&ProfileInput{Gender: "female", AgeRange: "25-34", HairColor: "brown"}, time.Now())
	assert.True(t, p.IsComplete())
	assert.Equal(t, "brown", p.HairColor)

	p.WizardStep = 4
	assert.Error(t, p.Validate())
}

func TestInputValidation(t *testing.T) {
	assert.NoError(t, (&RegisterInput{Email: "a@b.co", Password: "password1"}).Validate())
	assert.Error(t, (&RegisterInput{Email: "a@b.co", Password: "short"}).Validate())
	assert.NoError(t, (&RegisterInput{Email: "a@b.co", Password: strings.Repeat("é", 36)}).Validate())
	assert.Error(t, (&RegisterInput{Email: "a@b.co", Password: strings.Repeat("é", 37)}).Validate())
	assert.Error(t, (&LoginInput{Email: "a@b.co"}).Validate())
	assert.Error(t, (&ProfileInput{Gender: "male"}).Validate())
}
