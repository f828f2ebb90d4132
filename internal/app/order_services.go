package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/httputil"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

// orderService implements the OrderService interface for customers
type orderService struct {
	orderRepository     orders.OrderRepository
	photoRepository     photos.UploadedPhotoRepository
	requestRepository   photos.PhotoRequestRepository
	generatedRepository photos.GeneratedPhotoRepository
	publisher           orders.EventPublisher
	logger              logger.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(
	orderRepository orders.OrderRepository,
	photoRepository photos.UploadedPhotoRepository,
	requestRepository photos.PhotoRequestRepository,
	generatedRepository photos.GeneratedPhotoRepository,
	publisher orders.EventPublisher,
	logger logger.Logger,
) (orders.OrderService, error) {
	return &orderService{
		orderRepository:     orderRepository,
		photoRepository:     photoRepository,
		requestRepository:   requestRepository,
		generatedRepository: generatedRepository,
		publisher:           publisher,
		logger:              logger,
	}, nil
}

func (s *orderService) List(ctx context.Context, userID string) ([]*orders.Order, error) {
	return s.orderRepository.ListByUser(ctx, userID)
}

func (s *orderService) Get(ctx context.Context, userID, orderID string) (*orders.Detail, error) {
	order, err := s.owned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return loadDetail(ctx, order, s.photoRepository, s.requestRepository, s.generatedRepository)
}

func (s *orderService) ListGenerated(ctx context.Context, userID, orderID string) ([]*photos.GeneratedPhoto, error) {
	if _, err := s.owned(ctx, userID, orderID); err != nil {
		return nil, err
	}
	return s.generatedRepository.ListByOrder(ctx, orderID)
}

func (s *orderService) Cancel(ctx context.Context, userID, orderID string) (*orders.Order, error) {
	order, err := s.owned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(time.Now()); err != nil {
		return nil, err
	}
	if err := s.orderRepository.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled by customer", "order_id", orderID, "user_id", userID)
	if err := s.publisher.Publish(ctx, orders.NewEvent(orders.EventOrderCancelled, order, time.Now())); err != nil {
		s.logger.Warn("failed to publish order event", "order_id", orderID, "error", err)
	}

	return order, nil
}

// owned loads an order of userID. Orders of other users are reported as not found.
func (s *orderService) owned(ctx context.Context, userID, orderID string) (*orders.Order, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.NotFound("order", orderID)
	}
	return order, nil
}

func loadDetail(
	ctx context.Context,
	order *orders.Order,
	photoRepository photos.UploadedPhotoRepository,
	requestRepository photos.PhotoRequestRepository,
	generatedRepository photos.GeneratedPhotoRepository,
) (*orders.Detail, error) {
	uploads, err := photoRepository.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	requests, err := requestRepository.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	generated, err := generatedRepository.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &orders.Detail{
		Order:           order,
		Uploads:         uploads,
		PhotoRequests:   requests,
		GeneratedPhotos: generated,
	}, nil
}

// adminOrderService implements the AdminOrderService interface
type adminOrderService struct {
	orderRepository     orders.OrderRepository
	userRepository      users.UserRepository
	photoRepository     photos.UploadedPhotoRepository
	requestRepository   photos.PhotoRequestRepository
	generatedRepository photos.GeneratedPhotoRepository
	blobConnector       blobs.BlobConnector
	publisher           orders.EventPublisher
	notifier            notifications.Notifier
	maxFileSize         int64
	logger              logger.Logger
}

// NewAdminOrderService creates a new instance of AdminOrderService
func NewAdminOrderService(
	orderRepository orders.OrderRepository,
	userRepository users.UserRepository,
	photoRepository photos.UploadedPhotoRepository,
	requestRepository photos.PhotoRequestRepository,
	generatedRepository photos.GeneratedPhotoRepository,
	blobConnector blobs.BlobConnector,
	publisher orders.EventPublisher,
	notifier notifications.Notifier,
	maxFileSize int64,
	logger logger.Logger,
) (orders.AdminOrderService, error) {
	return &adminOrderService{
		orderRepository:     orderRepository,
		userRepository:      userRepository,
		photoRepository:     photoRepository,
		requestRepository:   requestRepository,
		generatedRepository: generatedRepository,
		blobConnector:       blobConnector,
		publisher:           publisher,
		notifier:            notifier,
		maxFileSize:         maxFileSize,
		logger:              logger,
	}, nil
}

func (s *adminOrderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.orderRepository.List(ctx, query)
}

func (s *adminOrderService) Get(ctx context.Context, orderID string) (*orders.Detail, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	detail, err := loadDetail(ctx, order, s.photoRepository, s.requestRepository, s.generatedRepository)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByID(ctx, order.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	detail.User = user

	return detail, nil
}

// Patch applies a partial update. The owner is emailed the first time the order completes.
func (s *adminOrderService) Patch(ctx context.Context, orderID string, patch *orders.Patch) (*orders.Order, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	completedNow := order.Apply(patch, time.Now())
	if err := s.orderRepository.Update(ctx, order); err != nil {
		return nil, err
	}

	eventType := orders.EventOrderUpdated
	if order.Status != previous {
		eventType = orders.EventTypeFor(order.Status)
	}
	s.logger.Info("order updated", "order_id", orderID, "status", order.Status, "previous_status", previous)
	if err := s.publisher.Publish(ctx, orders.NewEvent(eventType, order, time.Now())); err != nil {
		s.logger.Warn("failed to publish order event", "order_id", orderID, "error", err)
	}

	if completedNow {
		s.notifyCompleted(ctx, order)
	}

	return order, nil
}

func (s *adminOrderService) notifyCompleted(ctx context.Context, order *orders.Order) {
	user, err := s.userRepository.GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("failed to load order owner", "order_id", order.ID, "error", err)
		return
	}
	if err := s.notifier.OrderCompleted(ctx, user, order); err != nil {
		s.logger.Warn("failed to send completion mail", "order_id", order.ID, "error", err)
	}
}

// UploadGenerated stores result images under the order and marks them as generated
func (s *adminOrderService) UploadGenerated(ctx context.Context, orderID string, form *multipart.Form) ([]*photos.GeneratedPhoto, error) {
	order, err := s.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == orders.StatusCancelled {
		return nil, fmt.Errorf("%w: order %s is cancelled", apperrors.ErrInvalidTransition, orderID)
	}

	images, err := readImages(form, httputil.FilesField, s.maxFileSize)
	if err != nil {
		return nil, err
	}

	generated := make([]*photos.GeneratedPhoto, 0, len(images))
	for _, img := range images {
		stored, err := s.blobConnector.Upload(ctx, blobs.BuildBlobName(blobs.PrefixGenerated, order.ID, img.fileName), img.data, img.contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", img.fileName, err)
		}

		photo := &photos.GeneratedPhoto{
			ID:              uuid.NewString(),
			OrderID:         order.ID,
			UserID:          order.UserID,
			URL:             stored.URL,
			BlobName:        stored.Name,
			FileName:        blobs.SanitizeFileName(img.fileName),
			DateTimeCreated: time.Now(),
		}
		if err := s.generatedRepository.Create(ctx, photo); err != nil {
			if delErr := s.blobConnector.Delete(ctx, stored.Name); delErr != nil {
				s.logger.Warn("failed to remove blob of unsaved photo", "blob", stored.Name, "error", delErr)
			}
			return nil, err
		}
		generated = append(generated, photo)
	}

	if !order.Progress.ImagesGenerated {
		order.Progress.ImagesGenerated = true
		order.DateTimeUpdated = time.Now()
		if err := s.orderRepository.Update(ctx, order); err != nil {
			return nil, err
		}
	}

	s.logger.Info("generated photos uploaded", "order_id", orderID, "count", len(generated))
	if err := s.publisher.Publish(ctx, orders.NewEvent(orders.EventOrderGenerated, order, time.Now())); err != nil {
		s.logger.Warn("failed to publish order event", "order_id", orderID, "error", err)
	}

	return generated, nil
}
