package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/httputil"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

// uploadService implements the UploadService interface for customer training photos
type uploadService struct {
	blobConnector   blobs.BlobConnector
	photoRepository photos.UploadedPhotoRepository
	maxUploads      int
	maxFileSize     int64
	logger          logger.Logger
}

// NewUploadService creates a new instance of UploadService. maxUploads bounds the
// photos a user may hold before they are attached to an order.
func NewUploadService(
	blobConnector blobs.BlobConnector,
	photoRepository photos.UploadedPhotoRepository,
	maxUploads int,
	maxFileSize int64,
	logger logger.Logger,
) (photos.UploadService, error) {
	if maxUploads < 1 {
		return nil, fmt.Errorf("max uploads must be positive, got %d", maxUploads)
	}
	if maxFileSize < 1 {
		return nil, fmt.Errorf("max file size must be positive, got %d", maxFileSize)
	}

	return &uploadService{
		blobConnector:   blobConnector,
		photoRepository: photoRepository,
		maxUploads:      maxUploads,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}, nil
}

// Upload validates every file before storing any, so a rejected batch leaves nothing behind
func (s *uploadService) Upload(ctx context.Context, userID string, form *multipart.Form) ([]*photos.UploadedPhoto, error) {
	images, err := readImages(form, httputil.FilesField, s.maxFileSize)
	if err != nil {
		return nil, err
	}

	existing, err := s.photoRepository.CountUnassigned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if int(existing)+len(images) > s.maxUploads {
		return nil, apperrors.InvalidInput("at most %d photos can be uploaded, %d already stored", s.maxUploads, existing)
	}

	uploaded := make([]*photos.UploadedPhoto, 0, len(images))
	for _, img := range images {
		blobName := blobs.BuildBlobName(blobs.PrefixUploads, userID, img.fileName)

		stored, err := s.blobConnector.Upload(ctx, blobName, img.data, img.contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", img.fileName, err)
		}

		photo := &photos.UploadedPhoto{
			ID:              uuid.NewString(),
			UserID:          userID,
			URL:             stored.URL,
			BlobName:        stored.Name,
			FileName:        blobs.SanitizeFileName(img.fileName),
			ContentType:     img.contentType,
			Size:            stored.Size,
			DateTimeCreated: time.Now(),
		}

		if err := s.photoRepository.Create(ctx, photo); err != nil {
			if delErr := s.blobConnector.Delete(ctx, stored.Name); delErr != nil {
				s.logger.Warn("failed to remove blob of unsaved photo", "blob", stored.Name, "error", delErr)
			}
			return nil, err
		}

		s.logger.Info("photo uploaded", "photo_id", photo.ID, "user_id", userID, "size", photo.Size)
		uploaded = append(uploaded, photo)
	}

	return uploaded, nil
}

func (s *uploadService) List(ctx context.Context, userID string) ([]*photos.UploadedPhoto, error) {
	return s.photoRepository.ListByUser(ctx, userID)
}

// Delete removes an unassigned upload. Photos attached to an order are kept for fulfillment.
func (s *uploadService) Delete(ctx context.Context, userID, photoID string) error {
	photo, err := s.photoRepository.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != userID {
		return fmt.Errorf("photo %s: %w", photoID, apperrors.ErrForbidden)
	}
	if photo.OrderID != nil {
		return fmt.Errorf("photo %s belongs to order %s: %w", photoID, *photo.OrderID, apperrors.ErrConflict)
	}

	if err := s.blobConnector.Delete(ctx, photo.BlobName); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", photo.BlobName, err)
	}
	if err := s.photoRepository.DeleteByID(ctx, photoID); err != nil {
		return err
	}

	s.logger.Info("photo deleted", "photo_id", photoID, "user_id", userID)
	return nil
}

// photoRequestService implements the PhotoRequestService interface
type photoRequestService struct {
	blobConnector     blobs.BlobConnector
	requestRepository photos.PhotoRequestRepository
	maxRequests       int
	maxFileSize       int64
	logger            logger.Logger
}

// NewPhotoRequestService creates a new instance of PhotoRequestService
func NewPhotoRequestService(
	blobConnector blobs.BlobConnector,
	requestRepository photos.PhotoRequestRepository,
	maxRequests int,
	maxFileSize int64,
	logger logger.Logger,
) (photos.PhotoRequestService, error) {
	if maxRequests < 1 {
		return nil, fmt.Errorf("max photo requests must be positive, got %d", maxRequests)
	}

	return &photoRequestService{
		blobConnector:     blobConnector,
		requestRepository: requestRepository,
		maxRequests:       maxRequests,
		maxFileSize:       maxFileSize,
		logger:            logger,
	}, nil
}

func (s *photoRequestService) Create(ctx context.Context, userID string, input *photos.PhotoRequestInput) (*photos.PhotoRequest, error) {
	input.Instruction = strings.TrimSpace(input.Instruction)
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	count, err := s.requestRepository.CountUnassigned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if int(count) >= s.maxRequests {
		return nil, apperrors.InvalidInput("at most %d photo requests are allowed", s.maxRequests)
	}

	request := &photos.PhotoRequest{
		ID:              uuid.NewString(),
		UserID:          userID,
		Instruction:     input.Instruction,
		DateTimeCreated: time.Now(),
	}

	if input.Reference != nil {
		img, err := readImage(input.Reference, s.maxFileSize)
		if err != nil {
			return nil, err
		}

		stored, err := s.blobConnector.Upload(ctx, blobs.BuildBlobName(blobs.PrefixReferences, userID, img.fileName), img.data, img.contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store reference image: %w", err)
		}
		request.ReferenceImageURL = &stored.URL
		request.ReferenceBlobName = &stored.Name
	}

	if err := s.requestRepository.Create(ctx, request); err != nil {
		if request.HasReference() {
			if delErr := s.blobConnector.Delete(ctx, *request.ReferenceBlobName); delErr != nil {
				s.logger.Warn("failed to remove reference of unsaved request", "blob", *request.ReferenceBlobName, "error", delErr)
			}
		}
		return nil, err
	}

	s.logger.Info("photo request created", "request_id", request.ID, "user_id", userID, "reference", request.HasReference())
	return request, nil
}

func (s *photoRequestService) List(ctx context.Context, userID string) ([]*photos.PhotoRequest, error) {
	return s.requestRepository.ListByUser(ctx, userID)
}

func (s *photoRequestService) Delete(ctx context.Context, userID, requestID string) error {
	request, err := s.requestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.UserID != userID {
		return fmt.Errorf("photo request %s: %w", requestID, apperrors.ErrForbidden)
	}
	if request.OrderID != nil {
		return fmt.Errorf("photo request %s belongs to order %s: %w", requestID, *request.OrderID, apperrors.ErrConflict)
	}

	if request.HasReference() {
		if err := s.blobConnector.Delete(ctx, *request.ReferenceBlobName); err != nil {
			return fmt.Errorf("failed to delete reference image: %w", err)
		}
	}
	if err := s.requestRepository.DeleteByID(ctx, requestID); err != nil {
		return err
	}

	s.logger.Info("photo request deleted", "request_id", requestID, "user_id", userID)
	return nil
}
