package app

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/studio"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
)

// checkoutService implements the CheckoutService interface. It turns the caller's
// unassigned uploads and photo requests into a PENDING order backed by a payment session.
type checkoutService struct {
	orderRepository   orders.OrderRepository
	userRepository    users.UserRepository
	photoRepository   photos.UploadedPhotoRepository
	requestRepository photos.PhotoRequestRepository
	studioService     studio.StudioService
	gateway           payments.PaymentGateway
	publisher         orders.EventPublisher
	settings          *config.StripeSettings
	logger            logger.Logger
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(
	orderRepository orders.OrderRepository,
	userRepository users.UserRepository,
	photoRepository photos.UploadedPhotoRepository,
	requestRepository photos.PhotoRequestRepository,
	studioService studio.StudioService,
	gateway payments.PaymentGateway,
	publisher orders.EventPublisher,
	settings *config.StripeSettings,
	logger logger.Logger,
) (payments.CheckoutService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &checkoutService{
		orderRepository:   orderRepository,
		userRepository:    userRepository,
		photoRepository:   photoRepository,
		requestRepository: requestRepository,
		studioService:     studioService,
		gateway:           gateway,
		publisher:         publisher,
		settings:          settings,
		logger:            logger,
	}, nil
}

func (s *checkoutService) Checkout(ctx context.Context, userID string, input *payments.CheckoutInput) (*payments.CheckoutResult, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	pkg, ok := s.settings.Package(input.PackageID)
	if !ok {
		return nil, apperrors.InvalidInput("unknown package %q", input.PackageID)
	}

	facts, err := s.studioService.Facts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !facts.ReadyForCheckout() {
		return nil, apperrors.InvalidInput("studio is incomplete: profile, at least %d photos and one photo request are required", facts.MinUploads)
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order := orders.NewPendingOrder(userID, pkg.ID, pkg.PriceCents, s.settings.Currency, time.Now())
	if err := s.orderRepository.Create(ctx, order); err != nil {
		return nil, err
	}

	successURL, err := withOrderID(s.settings.SuccessURL, order.ID)
	if err != nil {
		return nil, err
	}
	cancelURL, err := withOrderID(s.settings.CancelURL, order.ID)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, &payments.CheckoutRequest{
		OrderID:       order.ID,
		UserID:        userID,
		CustomerEmail: user.Email,
		ProductName:   pkg.Name,
		Amount:        pkg.PriceCents,
		Currency:      s.settings.Currency,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	})
	if err != nil {
		s.abandon(ctx, order)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	uploads, err := s.photoRepository.AssignToOrder(ctx, userID, order.ID)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepository.AssignToOrder(ctx, userID, order.ID)
	if err != nil {
		return nil, err
	}

	order.StripeSessionID = &session.ID
	order.DateTimeUpdated = time.Now()
	if err := s.orderRepository.Update(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("checkout session created",
		"order_id", order.ID,
		"user_id", userID,
		"package_id", pkg.ID,
		"uploads", uploads,
		"photo_requests", requests)

	if err := s.publisher.Publish(ctx, orders.NewEvent(orders.EventOrderCreated, order, time.Now())); err != nil {
		s.logger.Warn("failed to publish order event", "order_id", order.ID, "error", err)
	}

	return &payments.CheckoutResult{Order: order, URL: session.URL}, nil
}

// abandon cancels an order whose payment session could not be opened
func (s *checkoutService) abandon(ctx context.Context, order *orders.Order) {
	if err := order.Cancel(time.Now()); err != nil {
		s.logger.Error("failed to cancel order", "order_id", order.ID, "error", err)
		return
	}
	if err := s.orderRepository.Update(ctx, order); err != nil {
		s.logger.Error("failed to cancel order", "order_id", order.ID, "error", err)
	}
}

func withOrderID(rawURL, orderID string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid redirect url %s: %w", rawURL, err)
	}

	q := u.Query()
	q.Set("orderId", orderID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
