package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSignature is returned when a webhook payload was not signed with the endpoint secret
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Webhook event types handled by WebhookService
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

// CheckoutInput selects the package the customer pays for
type CheckoutInput struct {
	PackageID string `json:"packageId" validate:"required,max=64"`
}

// Validate for validating CheckoutInput struct
func (in *CheckoutInput) Validate() error {
	if err := validator.New().Struct(in); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// CheckoutRequest is what the gateway needs to open a hosted payment page
type CheckoutRequest struct {
	OrderID       string
	UserID        string
	CustomerEmail string
	ProductName   string
	Amount        int64
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is an opened hosted payment page
type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent is a verified gateway notification reduced to the fields we act on
type WebhookEvent struct {
	ID            string
	Type          string
	SessionID     string
	OrderID       string
	PaymentStatus string
}

// PaymentGateway wraps the payment provider
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted payment page for an order
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)
	// ParseWebhook verifies the signature header and decodes the event
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// CheckoutResult is returned to the client to redirect to the payment page
type CheckoutResult struct {
	Order *orders.Order
	URL   string
}

// CheckoutService defines order creation at the end of the wizard
type CheckoutService interface {
	Checkout(ctx context.Context, userID string, input *CheckoutInput) (*CheckoutResult, error)
}

// WebhookService defines handling of gateway notifications
type WebhookService interface {
	// Handle verifies and applies a notification; unknown event types are ignored
	Handle(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}
