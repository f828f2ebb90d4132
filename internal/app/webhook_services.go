package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
)

// webhookService implements the WebhookService interface for payment provider callbacks.
// Deliveries may repeat, so every transition it applies is idempotent.
type webhookService struct {
	gateway         payments.PaymentGateway
	orderRepository orders.OrderRepository
	userRepository  users.UserRepository
	publisher       orders.EventPublisher
	notifier        notifications.Notifier
	logger          logger.Logger
}

// NewWebhookService creates a new instance of WebhookService
func NewWebhookService(
	gateway payments.PaymentGateway,
	orderRepository orders.OrderRepository,
	userRepository users.UserRepository,
	publisher orders.EventPublisher,
	notifier notifications.Notifier,
	logger logger.Logger,
) (payments.WebhookService, error) {
	return &webhookService{
		gateway:         gateway,
		orderRepository: orderRepository,
		userRepository:  userRepository,
		publisher:       publisher,
		notifier:        notifier,
		logger:          logger,
	}, nil
}

// Handle verifies the payload and applies it. Events for unknown orders are acknowledged.
func (s *webhookService) Handle(ctx context.Context, payload []byte, signature string) (*payments.WebhookEvent, error) {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return nil, err
	}

	switch event.Type {
	case payments.EventCheckoutCompleted:
		err = s.handleCompleted(ctx, event)
	case payments.EventCheckoutExpired:
		err = s.handleExpired(ctx, event)
	default:
		s.logger.Debug("ignoring webhook event", "event_id", event.ID, "type", event.Type)
	}
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s *webhookService) handleCompleted(ctx context.Context, event *payments.WebhookEvent) error {
	if event.PaymentStatus != orders.PaymentStatusPaid {
		s.logger.Info("checkout completed without payment", "event_id", event.ID, "session_id", event.SessionID, "payment_status", event.PaymentStatus)
		return nil
	}

	order, err := s.findOrder(ctx, event)
	if err != nil || order == nil {
		return err
	}

	if !order.MarkPaid(event.SessionID, time.Now()) {
		s.logger.Info("order already paid", "order_id", order.ID, "event_id", event.ID)
		return nil
	}
	if err := s.orderRepository.Update(ctx, order); err != nil {
		return err
	}

	s.logger.Info("order paid", "order_id", order.ID, "user_id", order.UserID, "amount", order.Amount)
	s.publish(ctx, orders.EventOrderPaid, order)

	user, err := s.userRepository.GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn("failed to load order owner", "order_id", order.ID, "error", err)
		return nil
	}
	if err := s.notifier.OrderConfirmed(ctx, user, order); err != nil {
		s.logger.Warn("failed to send order confirmation", "order_id", order.ID, "error", err)
	}

	return nil
}

func (s *webhookService) handleExpired(ctx context.Context, event *payments.WebhookEvent) error {
	order, err := s.findOrder(ctx, event)
	if err != nil || order == nil {
		return err
	}

	if err := order.Cancel(time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			s.logger.Info("expired session for settled order", "order_id", order.ID, "status", order.Status)
			return nil
		}
		return err
	}
	if err := s.orderRepository.Update(ctx, order); err != nil {
		return err
	}

	s.logger.Info("order cancelled after session expiry", "order_id", order.ID)
	s.publish(ctx, orders.EventOrderCancelled, order)
	return nil
}

// findOrder resolves the order of a session, falling back to the order id carried in metadata.
// It returns nil without error when neither matches.
func (s *webhookService) findOrder(ctx context.Context, event *payments.WebhookEvent) (*orders.Order, error) {
	order, err := s.orderRepository.GetByStripeSessionID(ctx, event.SessionID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if event.OrderID != "" {
		order, err = s.orderRepository.GetByID(ctx, event.OrderID)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load order %s: %w", event.OrderID, err)
		}
	}

	s.logger.Warn("webhook for unknown order", "event_id", event.ID, "session_id", event.SessionID, "order_id", event.OrderID)
	return nil, nil
}

func (s *webhookService) publish(ctx context.Context, eventType string, order *orders.Order) {
	if err := s.publisher.Publish(ctx, orders.NewEvent(eventType, order, time.Now())); err != nil {
		s.logger.Warn("failed to publish order event", "order_id", order.ID, "type", eventType, "error", err)
	}
}
