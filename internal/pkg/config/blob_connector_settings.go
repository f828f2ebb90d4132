package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

// DefaultMaxUploadSize is the per-file limit applied when none is configured (10 MiB)
const DefaultMaxUploadSize int64 = 10 << 20

// BlobConnectorSettings holds the blob storage account used for uploaded and generated photos
type BlobConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure"`
	ConnectionString string `mapstructure:"connection_string" validate:"required"`
	ContainerName    string `mapstructure:"container_name" validate:"required,min=3,max=63"`
	// PublicBaseURL overrides the account URL in the links handed to clients (CDN in front of the container)
	PublicBaseURL string `mapstructure:"public_base_url" validate:"omitempty,url"`
	MaxUploadSize int64  `mapstructure:"max_upload_size" validate:"omitempty,min=1"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}

	return nil
}

// UploadLimit returns the configured per-file limit or the default
func (s *BlobConnectorSettings) UploadLimit() int64 {
	if s.MaxUploadSize > 0 {
		return s.MaxUploadSize
	}
	return DefaultMaxUploadSize
}
