package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PackageSettings describes one purchasable photo package
type PackageSettings struct {
	ID         string `mapstructure:"id" validate:"required,max=64"`
	Name       string `mapstructure:"name" validate:"required"`
	PriceCents int64  `mapstructure:"price_cents" validate:"required,min=50"`
	PhotoCount int    `mapstructure:"photo_count" validate:"required,min=1"`
}

// StripeSettings holds the payment provider credentials and the package catalogue
type StripeSettings struct {
	SecretKey     string            `mapstructure:"secret_key" validate:"required"`
	WebhookSecret string            `mapstructure:"webhook_secret" validate:"required"`
	SuccessURL    string            `mapstructure:"success_url" validate:"required,url"`
	CancelURL     string            `mapstructure:"cancel_url" validate:"required,url"`
	Currency      string            `mapstructure:"currency" validate:"required,len=3"`
	Packages      []PackageSettings `mapstructure:"packages" validate:"required,min=1,dive"`
}

// Validate checks that all fields in StripeSettings are valid
func (s *StripeSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StripeSettings: %w", err)
	}

	seen := make(map[string]struct{}, len(s.Packages))
	for _, p := range s.Packages {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate package id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// Package looks up a package by id
func (s *StripeSettings) Package(id string) (PackageSettings, bool) {
	for _, p := range s.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return PackageSettings{}, false
}
