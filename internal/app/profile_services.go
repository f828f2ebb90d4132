package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepository users.ProfileRepository
	logger            logger.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepository users.ProfileRepository, logger logger.Logger) (users.ProfileService, error) {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*users.Profile, error) {
	profile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// Save keeps the wizard position of an existing profile and only replaces the editable fields
func (s *profileService) Save(ctx context.Context, userID string, input *users.ProfileInput) (*users.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	now := time.Now()
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &users.Profile{
			ID:              uuid.NewString(),
			UserID:          userID,
			DateTimeCreated: now,
		}
	}

	profile.Apply(input, now)

	if err := s.profileRepository.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile saved", "user_id", userID)
	return profile, nil
}
