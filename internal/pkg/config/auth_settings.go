package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTokenTTL is the session token lifetime used when none is configured
const DefaultTokenTTL = 72 * time.Hour

// AuthSettings holds session token and OAuth provider settings
type AuthSettings struct {
	JWTSecret          string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	CookieName         string        `mapstructure:"cookie_name"`
	GoogleClientID     string        `mapstructure:"google_client_id"`
	GoogleClientSecret string        `mapstructure:"google_client_secret"`
	GoogleRedirectURL  string        `mapstructure:"google_redirect_url" validate:"omitempty,url"`
	// AdminEmails are promoted to the ADMIN role when they sign up
	AdminEmails []string `mapstructure:"admin_emails" validate:"dive,email"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if (s.GoogleClientID == "") != (s.GoogleClientSecret == "") {
		return fmt.Errorf("google client id and secret must be set together")
	}

	return nil
}

// GoogleEnabled reports whether the Google OAuth provider is configured
func (s *AuthSettings) GoogleEnabled() bool {
	return s.GoogleClientID != "" && s.GoogleClientSecret != ""
}

// TTL returns the session lifetime, falling back to DefaultTokenTTL
func (s *AuthSettings) TTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return DefaultTokenTTL
}

// Cookie returns the session cookie name
func (s *AuthSettings) Cookie() string {
	if s.CookieName != "" {
		return s.CookieName
	}
	return "session"
}
