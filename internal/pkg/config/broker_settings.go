package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BrokerSettings configures the AMQP exchange order events are published to.
// When Enabled is false events are written to the log only.
type BrokerSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url" validate:"omitempty,url"`
	Exchange string `mapstructure:"exchange"`
}

// Validate checks that all fields in BrokerSettings are valid
func (s *BrokerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BrokerSettings: %w", err)
	}

	if s.Enabled && (s.URL == "" || s.Exchange == "") {
		return fmt.Errorf("url and exchange are required when the broker is enabled")
	}

	return nil
}
