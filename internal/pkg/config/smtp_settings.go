package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SMTPSettings holds the outgoing mail transport. When Enabled is false mails are only logged.
type SMTPSettings struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from" validate:"omitempty,email"`
	AdminEmail string `mapstructure:"admin_email" validate:"omitempty,email"`
	UseTLS     bool   `mapstructure:"use_tls"`
}

// Validate checks that all fields in SMTPSettings are valid
func (s *SMTPSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SMTPSettings: %w", err)
	}

	if s.Enabled && (s.Host == "" || s.From == "") {
		return fmt.Errorf("host and from are required when smtp is enabled")
	}

	return nil
}
