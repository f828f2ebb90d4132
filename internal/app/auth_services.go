package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// authService implements the AuthService interface over credentials and an optional OAuth provider
type authService struct {
	userRepository users.UserRepository
	tokenManager   users.TokenManager
	oauthProvider  users.OAuthProvider
	notifier       notifications.Notifier
	adminEmails    map[string]struct{}
	logger         logger.Logger
}

// NewAuthService creates a new instance of AuthService. oauthProvider may be nil when
// social sign-in is not configured; adminEmails are granted ADMIN on first sign-in.
func NewAuthService(
	userRepository users.UserRepository,
	tokenManager users.TokenManager,
	oauthProvider users.OAuthProvider,
	notifier notifications.Notifier,
	adminEmails []string,
	logger logger.Logger,
) (users.AuthService, error) {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[users.NormalizeEmail(email)] = struct{}{}
	}

	return &authService{
		userRepository: userRepository,
		tokenManager:   tokenManager,
		oauthProvider:  oauthProvider,
		notifier:       notifier,
		adminEmails:    admins,
		logger:         logger,
	}, nil
}

// Register creates a credentials account. An email that is already taken yields ErrConflict.
func (s *authService) Register(ctx context.Context, input *users.RegisterInput) (*users.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	_, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	user := users.NewUser(input.Email, input.Name, users.ProviderCredentials, time.Now())
	user.PasswordHash = &passwordHash
	s.grantConfiguredRole(user)

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "provider", user.Provider)
	s.sendWelcome(ctx, user)

	return s.issue(user)
}

// Login verifies credentials. Unknown emails and wrong passwords are indistinguishable.
func (s *authService) Login(ctx context.Context, input *users.LoginInput) (*users.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	user, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	return s.issue(user)
}

func (s *authService) OAuthLoginURL(state string) (string, error) {
	if s.oauthProvider == nil {
		return "", apperrors.InvalidInput("social sign-in is not configured")
	}
	return s.oauthProvider.AuthCodeURL(state), nil
}

// OAuthCallback signs in the provider identity, creating the account on first sign-in.
// An existing credentials account with the same verified email is reused.
func (s *authService) OAuthCallback(ctx context.Context, code string) (*users.Session, error) {
	if s.oauthProvider == nil {
		return nil, apperrors.InvalidInput("social sign-in is not configured")
	}
	if code == "" {
		return nil, apperrors.InvalidInput("missing authorization code")
	}

	identity, err := s.oauthProvider.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if identity.Email == "" || !identity.EmailVerified {
		return nil, fmt.Errorf("%w: provider account has no verified email", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepository.GetByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		if s.mergeIdentity(user, identity) {
			if err := s.userRepository.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, apperrors.ErrNotFound):
		user = users.NewUser(identity.Email, identity.Name, identity.Provider, time.Now())
		if identity.Picture != "" {
			picture := identity.Picture
			user.Image = &picture
		}
		s.grantConfiguredRole(user)

		if err := s.userRepository.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("user registered", "user_id", user.ID, "provider", user.Provider)
		s.sendWelcome(ctx, user)
	default:
		return nil, err
	}

	return s.issue(user)
}

// mergeIdentity fills profile fields the account lacks and reports whether anything changed
func (s *authService) mergeIdentity(user *users.User, identity *users.OAuthIdentity) bool {
	changed := false
	if user.Name == "" && identity.Name != "" {
		user.Name = strings.TrimSpace(identity.Name)
		changed = true
	}
	if user.Image == nil && identity.Picture != "" {
		picture := identity.Picture
		user.Image = &picture
		changed = true
	}
	if changed {
		user.DateTimeUpdated = time.Now()
	}
	return changed
}

// Authenticate verifies the token and reloads the account so role changes apply immediately
func (s *authService) Authenticate(ctx context.Context, token string) (*users.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", apperrors.ErrUnauthorized)
	}

	claims, err := s.tokenManager.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	claims.Email = user.Email
	claims.Role = user.Role
	return claims, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *authService) PromoteToAdmin(ctx context.Context, email string) (*users.User, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.IsAdmin() {
		return user, nil
	}

	user.Role = users.RoleAdmin
	user.DateTimeUpdated = time.Now()
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user promoted to admin", "user_id", user.ID)
	return user, nil
}

func (s *authService) grantConfiguredRole(user *users.User) {
	if _, ok := s.adminEmails[user.Email]; ok {
		user.Role = users.RoleAdmin
	}
}

func (s *authService) sendWelcome(ctx context.Context, user *users.User) {
	if err := s.notifier.Welcome(ctx, user); err != nil {
		s.logger.Warn("failed to send welcome mail", "user_id", user.ID, "error", err)
	}
}

func (s *authService) issue(user *users.User) (*users.Session, error) {
	token, expiresAt, err := s.tokenManager.Issue(user)
	if err != nil {
		return nil, err
	}
	return &users.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
