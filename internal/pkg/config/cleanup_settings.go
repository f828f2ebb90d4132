package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CleanupSettings configures the retention jobs and how they are triggered
type CleanupSettings struct {
	// UploadRetentionDays is how long source photos of completed orders are kept
	UploadRetentionDays int `mapstructure:"upload_retention_days" validate:"required,min=1"`
	// AbandonedAfterDays is the age after which unpaid pending orders and orphaned uploads are removed
	AbandonedAfterDays int `mapstructure:"abandoned_after_days" validate:"required,min=1"`
	// Schedule is a standard five-field cron expression for the in-process scheduler
	Schedule string `mapstructure:"schedule"`
	// SchedulerEnabled starts the in-process scheduler next to the REST API
	SchedulerEnabled bool `mapstructure:"scheduler_enabled"`
	// CronSecret guards the HTTP trigger; the endpoint is disabled when empty
	CronSecret string `mapstructure:"cron_secret"`
}

// Validate checks that all fields in CleanupSettings are valid
func (s *CleanupSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CleanupSettings: %w", err)
	}

	if s.SchedulerEnabled && s.Schedule == "" {
		return fmt.Errorf("schedule is required when the scheduler is enabled")
	}

	return nil
}

// UploadRetention returns UploadRetentionDays as a duration
func (s *CleanupSettings) UploadRetention() time.Duration {
	return time.Duration(s.UploadRetentionDays) * 24 * time.Hour
}

// AbandonedAfter returns AbandonedAfterDays as a duration
func (s *CleanupSettings) AbandonedAfter() time.Duration {
	return time.Duration(s.AbandonedAfterDays) * 24 * time.Hour
}
