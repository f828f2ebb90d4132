package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
)

// studioService implements the StudioService interface. The wizard position is
// stored on the profile and always capped by what the user has completed.
type studioService struct {
	profileRepository users.ProfileRepository
	photoRepository   photos.UploadedPhotoRepository
	requestRepository photos.PhotoRequestRepository
	minUploads        int
	logger            logger.Logger
}

// NewStudioService creates a new instance of StudioService
func NewStudioService(
	profileRepository users.ProfileRepository,
	photoRepository photos.UploadedPhotoRepository,
	requestRepository photos.PhotoRequestRepository,
	minUploads int,
	logger logger.Logger,
) (studio.StudioService, error) {
	if minUploads < 1 {
		return nil, fmt.Errorf("min uploads must be positive, got %d", minUploads)
	}

	return &studioService{
		profileRepository: profileRepository,
		photoRepository:   photoRepository,
		requestRepository: requestRepository,
		minUploads:        minUploads,
		logger:            logger,
	}, nil
}

func (s *studioService) Facts(ctx context.Context, userID string) (*studio.Facts, error) {
	_, facts, err := s.load(ctx, userID)
	return facts, err
}

func (s *studioService) Get(ctx context.Context, userID string) (*studio.View, error) {
	profile, facts, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := studio.Hydrate(persistedState(profile), *facts)
	return &studio.View{State: state, MaxStep: facts.MaxStep(), Facts: *facts}, nil
}

func (s *studioService) Update(ctx context.Context, userID string, update *studio.Update) (*studio.View, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	profile, facts, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := studio.Hydrate(persistedState(profile), *facts)
	switch update.Action {
	case studio.ActionNext:
		state = state.Next()
	case studio.ActionPrev:
		state = state.Prev()
	case studio.ActionGoTo:
		state = state.GoTo(*update.Step)
	}
	state = studio.Hydrate(state, *facts)

	if profile != nil && (profile.WizardStep != int(state.CurrentStep) || profile.DesignSubstep != state.DesignSubstep) {
		profile.WizardStep = int(state.CurrentStep)
		profile.DesignSubstep = state.DesignSubstep
		profile.DateTimeUpdated = time.Now()
		if err := s.profileRepository.Upsert(ctx, profile); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("wizard moved", "user_id", userID, "action", update.Action, "step", state.CurrentStep.String())
	return &studio.View{State: state, MaxStep: facts.MaxStep(), Facts: *facts}, nil
}

func (s *studioService) load(ctx context.Context, userID string) (*users.Profile, *studio.Facts, error) {
	profile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		profile = nil
	}

	uploads, err := s.photoRepository.CountUnassigned(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	requests, err := s.requestRepository.CountUnassigned(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return profile, &studio.Facts{
		HasProfile:        profile.IsComplete(),
		UploadCount:       uploads,
		PhotoRequestCount: requests,
		MinUploads:        s.minUploads,
	}, nil
}

func persistedState(profile *users.Profile) studio.State {
	if profile == nil {
		return studio.State{}
	}
	return studio.State{CurrentStep: studio.Step(profile.WizardStep), DesignSubstep: profile.DesignSubstep}
}
