package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StudioSettings bounds what a customer has to provide before checkout
type StudioSettings struct {
	MinUploads       int `mapstructure:"min_uploads" validate:"required,min=1"`
	MaxUploads       int `mapstructure:"max_uploads" validate:"required,gtefield=MinUploads"`
	MaxPhotoRequests int `mapstructure:"max_photo_requests" validate:"required,min=1"`
}

// Validate checks that all fields in StudioSettings are valid
func (s *StudioSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StudioSettings: %w", err)
	}

	return nil
}
