package users

import (
	"context"
	"fmt"
	"time"
)

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByEmail retrieves a User by normalized email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update saves all fields of an existing User
	Update(ctx context.Context, user *User) error
}

// ProfileRepository defines the interface for Profile-related operations
type ProfileRepository interface {
	// GetByUserID retrieves the Profile of a user
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	// Upsert creates or replaces the Profile of profile.UserID
	Upsert(ctx context.Context, profile *Profile) error
}

// Claims are the facts carried by a session token
type Claims struct {
	UserID    string
	Email     string
	Role      Role
	ExpiresAt time.Time
}

// TokenManager issues and verifies session tokens
type TokenManager interface {
	Issue(user *User) (token string, expiresAt time.Time, err error)
	Parse(token string) (*Claims, error)
}

// OAuthIdentity is the account information returned by an OAuth provider
type OAuthIdentity struct {
	Provider      string
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// OAuthProvider drives the authorization code flow of an external identity provider
type OAuthProvider interface {
	// AuthCodeURL returns the consent page URL carrying state
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the signed-in identity
	Exchange(ctx context.Context, code string) (*OAuthIdentity, error)
}

// Session is what a successful sign-in returns
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// RegisterInput carries a credentials sign-up
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"max=255"`
}

// LoginInput carries a credentials sign-in
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// Validate for validating RegisterInput struct
func (in *RegisterInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	// the max tag counts runes, bcrypt counts bytes
	if len(in.Password) > MaxPasswordBytes {
		return fmt.Errorf("password exceeds %d bytes", MaxPasswordBytes)
	}
	return nil
}

// Validate for validating LoginInput struct
func (in *LoginInput) Validate() error {
	return validateStruct(in)
}

// AuthService defines sign-up, sign-in and session resolution
type AuthService interface {
	// Register creates a credentials account and signs it in
	Register(ctx context.Context, input *RegisterInput) (*Session, error)
	// Login verifies credentials and signs the user in
	Login(ctx context.Context, input *LoginInput) (*Session, error)
	// OAuthLoginURL returns the provider consent URL for state
	OAuthLoginURL(state string) (string, error)
	// OAuthCallback completes the provider flow, creating the user on first sign-in
	OAuthCallback(ctx context.Context, code string) (*Session, error)
	// Authenticate resolves a session token to its claims
	Authenticate(ctx context.Context, token string) (*Claims, error)
	// CurrentUser returns the user behind a session
	CurrentUser(ctx context.Context, userID string) (*User, error)
	// PromoteToAdmin grants the ADMIN role to the account with email
	PromoteToAdmin(ctx context.Context, email string) (*User, error)
}

// ProfileService defines methods for reading and saving the studio profile
type ProfileService interface {
	// Get returns the caller's profile, or nil when none was saved yet
	Get(ctx context.Context, userID string) (*Profile, error)
	// Save creates or updates the caller's profile
	Save(ctx context.Context, userID string, input *ProfileInput) (*Profile, error)
}
