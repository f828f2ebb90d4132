package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings configures the fixed-window limiter in front of auth and upload routes
type RateLimitSettings struct {
	Limit    int           `mapstructure:"limit" validate:"required,min=1"`
	Interval time.Duration `mapstructure:"interval" validate:"required"`
	// Capacity bounds the number of tracked clients; least recently seen are evicted
	Capacity int `mapstructure:"capacity" validate:"required,min=1"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}

	if s.Interval < time.Second {
		return fmt.Errorf("interval must be at least one second")
	}

	return nil
}
