package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// ErrBadEvent is returned for signed events whose payload cannot be decoded
var ErrBadEvent = fmt.Errorf("bad stripe event: %w", apperrors.ErrInvalidInput)

// Metadata keys attached to every checkout session
const (
	MetadataOrderID = "orderId"
	MetadataUserID  = "userId"
)

type stripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        logger.Logger
}

// NewStripeGateway creates a PaymentGateway backed by Stripe Checkout
func NewStripeGateway(settings *config.StripeSettings, logger logger.Logger) (payments.PaymentGateway, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	api := &client.API{}
	api.Init(settings.SecretKey, nil)

	return &stripeGateway{
		api:           api,
		webhookSecret: settings.WebhookSecret,
		logger:        logger,
	}, nil
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.OrderID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.AddMetadata(MetadataOrderID, req.OrderID)
	params.AddMetadata(MetadataUserID, req.UserID)
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session for order %s: %w", req.OrderID, err)
	}

	g.logger.Info("checkout session created", "order_id", req.OrderID, "session_id", session.ID)

	return &payments.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header. Events of a newer API
// version than the SDK are accepted since only a few session fields are read.
func (g *stripeGateway) ParseWebhook(payload []byte, signature string) (*payments.WebhookEvent, error) {
	return parseWebhook(payload, signature, g.webhookSecret)
}

func parseWebhook(payload []byte, signature, secret string) (*payments.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payments.ErrInvalidSignature, err)
	}

	result := &payments.WebhookEvent{ID: event.ID, Type: string(event.Type)}

	switch result.Type {
	case payments.EventCheckoutCompleted, payments.EventCheckoutExpired:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: error unmarshaling into CheckoutSession: %v", ErrBadEvent, err)
		}
		result.SessionID = session.ID
		result.PaymentStatus = string(session.PaymentStatus)
		result.OrderID = session.ClientReferenceID
		if result.OrderID == "" {
			result.OrderID = session.Metadata[MetadataOrderID]
		}
	}

	return result, nil
}
