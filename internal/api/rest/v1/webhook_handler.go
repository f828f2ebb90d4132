package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodySize    = 64 << 10
)

// WebhookHandler defines the interface for payment provider callbacks
type WebhookHandler interface {
	Stripe(ctx *gin.Context)
}

type webhookHandler struct {
	webhookService payments.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookService payments.WebhookService) WebhookHandler {
	return &webhookHandler{webhookService: webhookService}
}

// Stripe verifies and applies a Stripe event. The raw body is required for the signature check.
// @Summary Receive a Stripe event
// @Description Verify the Stripe-Signature header and apply checkout events.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /webhooks/stripe [post]
func (handler *webhookHandler) Stripe(ctx *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBodySize))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return
	}
	if err != nil {
		respondBadRequest(ctx, "failed to read request body")
		return
	}

	if _, err := handler.webhookService.Handle(ctx.Request.Context(), payload, ctx.GetHeader(stripeSignatureHeader)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
