package photos

import (
	"errors"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// UploadedPhoto is a customer photo used to train the generation model
type UploadedPhoto struct {
	ID              string  `validate:"required,uuid4"`
	UserID          string  `validate:"required,uuid4"`
	OrderID         *string `validate:"omitempty,uuid4"`
	URL             string  `validate:"required,url"`
	BlobName        string  `validate:"required,max=1024"`
	FileName        string  `validate:"required,max=255"`
	ContentType     string  `validate:"required,imageContentType"`
	Size            int64   `validate:"min=1"`
	DateTimeCreated time.Time
}

// GeneratedPhoto is a result image an admin delivered for an order
type GeneratedPhoto struct {
	ID              string `validate:"required,uuid4"`
	OrderID         string `validate:"required,uuid4"`
	UserID          string `validate:"required,uuid4"`
	URL             string `validate:"required,url"`
	BlobName        string `validate:"required,max=1024"`
	FileName        string `validate:"required,max=255"`
	DateTimeCreated time.Time
}

// PhotoRequest is a per-photo instruction with an optional reference image
type PhotoRequest struct {
	ID                string  `validate:"required,uuid4"`
	UserID            string  `validate:"required,uuid4"`
	OrderID           *string `validate:"omitempty,uuid4"`
	Instruction       string  `validate:"required,min=1,max=1000"`
	ReferenceImageURL *string `validate:"omitempty,url"`
	ReferenceBlobName *string `validate:"omitempty,max=1024"`
	DateTimeCreated   time.Time
}

// Validate for validating UploadedPhoto struct
func (p *UploadedPhoto) Validate() error {
	return validateStruct(p)
}

// Validate for validating GeneratedPhoto struct
func (p *GeneratedPhoto) Validate() error {
	return validateStruct(p)
}

// Validate for validating PhotoRequest struct
func (r *PhotoRequest) Validate() error {
	return validateStruct(r)
}

// HasReference reports whether a reference image is attached
func (r *PhotoRequest) HasReference() bool {
	return r.ReferenceBlobName != nil && *r.ReferenceBlobName != ""
}

func validateStruct(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
