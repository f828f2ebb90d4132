package photos

import (
	"context"
	"mime/multipart"
	"time"
)

// UploadedPhotoRepository defines the interface for UploadedPhoto-related operations
type UploadedPhotoRepository interface {
	// Create adds a new UploadedPhoto to the database
	Create(ctx context.Context, photo *UploadedPhoto) error
	// GetByID retrieves an UploadedPhoto by ID
	GetByID(ctx context.Context, photoID string) (*UploadedPhoto, error)
	// ListByUser returns the photos of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*UploadedPhoto, error)
	// ListByOrder returns the photos attached to an order
	ListByOrder(ctx context.Context, orderID string) ([]*UploadedPhoto, error)
	// ListOrphanedBefore returns photos never attached to an order and created before cutoff
	ListOrphanedBefore(ctx context.Context, cutoff time.Time) ([]*UploadedPhoto, error)
	// CountUnassigned counts the photos of a user not yet attached to an order
	CountUnassigned(ctx context.Context, userID string) (int64, error)
	// AssignToOrder attaches all unassigned photos of a user to an order
	AssignToOrder(ctx context.Context, userID, orderID string) (int64, error)
	// DeleteByID removes an UploadedPhoto by ID
	DeleteByID(ctx context.Context, photoID string) error
}

// GeneratedPhotoRepository defines the interface for GeneratedPhoto-related operations
type GeneratedPhotoRepository interface {
	Create(ctx context.Context, photo *GeneratedPhoto) error
	ListByOrder(ctx context.Context, orderID string) ([]*GeneratedPhoto, error)
}

// PhotoRequestRepository defines the interface for PhotoRequest-related operations
type PhotoRequestRepository interface {
	// Create adds a new PhotoRequest to the database
	Create(ctx context.Context, request *PhotoRequest) error
	// GetByID retrieves a PhotoRequest by ID
	GetByID(ctx context.Context, requestID string) (*PhotoRequest, error)
	// ListByUser returns the requests of a user not yet attached to an order
	ListByUser(ctx context.Context, userID string) ([]*PhotoRequest, error)
	// ListByOrder returns the requests attached to an order
	ListByOrder(ctx context.Context, orderID string) ([]*PhotoRequest, error)
	// CountUnassigned counts the requests of a user not yet attached to an order
	CountUnassigned(ctx context.Context, userID string) (int64, error)
	// AssignToOrder attaches all unassigned requests of a user to an order
	AssignToOrder(ctx context.Context, userID, orderID string) (int64, error)
	// ClearReference drops the reference image fields of a request
	ClearReference(ctx context.Context, requestID string) error
	// DeleteByID removes a PhotoRequest by ID
	DeleteByID(ctx context.Context, requestID string) error
}

// PhotoRequestInput carries a new instruction and its optional reference image
type PhotoRequestInput struct {
	Instruction string `validate:"required,min=1,max=1000"`
	Reference   *multipart.FileHeader
}

// Validate for validating PhotoRequestInput struct
func (in *PhotoRequestInput) Validate() error {
	return validateStruct(in)
}

// UploadService defines methods for storing and managing customer uploads
type UploadService interface {
	// Upload validates and stores every file of the form field "files"
	Upload(ctx context.Context, userID string, form *multipart.Form) ([]*UploadedPhoto, error)
	// List returns the caller's uploads
	List(ctx context.Context, userID string) ([]*UploadedPhoto, error)
	// Delete removes one of the caller's uploads, blob first
	Delete(ctx context.Context, userID, photoID string) error
}

// PhotoRequestService defines methods for per-photo instructions
type PhotoRequestService interface {
	Create(ctx context.Context, userID string, input *PhotoRequestInput) (*PhotoRequest, error)
	List(ctx context.Context, userID string) ([]*PhotoRequest, error)
	Delete(ctx context.Context, userID, requestID string) error
}
