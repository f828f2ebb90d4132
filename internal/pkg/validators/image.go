// Package validators holds custom go-playground validator rules shared by domain entities.
package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ImageContentTypeTag is the tag name ImageContentTypeValidation is registered under
const ImageContentTypeTag = "imageContentType"

// AllowedImageContentTypes lists the photo formats accepted for uploads
var AllowedImageContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"image/heif",
}

// IsAllowedImageContentType reports whether contentType (parameters ignored) is an accepted photo format
func IsAllowedImageContentType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, allowed := range AllowedImageContentTypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// ImageContentTypeValidation validates that a string field holds an accepted photo content type.
func ImageContentTypeValidation(fl validator.FieldLevel) bool {
	return IsAllowedImageContentType(fl.Field().String())
}

// New returns a validator with the custom rules of this package registered
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(ImageContentTypeTag, ImageContentTypeValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
