package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Role grants access to route groups
type Role string

// Known roles
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Sign-in providers
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// User entity
type User struct {
	ID              string    `validate:"required,uuid4"`
	Email           string    `validate:"required,email,max=255"`
	Name            string    `validate:"max=255"`
	Image           *string   `validate:"omitempty,url"`
	PasswordHash    *string   `validate:"omitempty,min=1"`
	Provider        string    `validate:"required,oneof=credentials google"`
	Role            Role      `validate:"required,oneof=USER ADMIN"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// NewUser creates a USER account with a fresh id
func NewUser(email, name, provider string, now time.Time) *User {
	return &User{
		ID:              uuid.NewString(),
		Email:           NormalizeEmail(email),
		Name:            strings.TrimSpace(name),
		Provider:        provider,
		Role:            RoleUser,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validateStruct(u)
}

// IsAdmin reports whether the user may use the admin API
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lower-cases and trims an email so lookups are case insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateStruct(s interface{}) error {
	err := validator.New().Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
