package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Status is the fulfillment state of an order
type Status string

// Order statuses
const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Payment statuses
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Statuses lists every valid Status
var Statuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of Statuses
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Progress holds the fulfillment milestones an admin ticks off
type Progress struct {
	ImagesProcessed   bool `json:"imagesProcessed"`
	TrainingInitiated bool `json:"trainingInitiated"`
	ImagesGenerated   bool `json:"imagesGenerated"`
	OrderCompleted    bool `json:"orderCompleted"`
}

// Order entity
type Order struct {
	ID                string `validate:"required,uuid4"`
	UserID            string `validate:"required,uuid4"`
	Status            Status `validate:"required,oneof=PENDING PROCESSING COMPLETED CANCELLED"`
	Progress          Progress
	PackageID         string    `validate:"required,max=64"`
	Amount            int64     `validate:"min=0"`
	Currency          string    `validate:"required,len=3"`
	StripeSessionID   *string   `validate:"omitempty,max=255"`
	PaymentStatus     string    `validate:"required,oneof=unpaid paid"`
	DateTimeCompleted *time.Time
	DateTimeCreated   time.Time `validate:"required"`
	DateTimeUpdated   time.Time
}

// NewPendingOrder creates an unpaid order waiting for checkout
func NewPendingOrder(userID, packageID string, amount int64, currency string, now time.Time) *Order {
	return &Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          StatusPending,
		PackageID:       packageID,
		Amount:          amount,
		Currency:        currency,
		PaymentStatus:   PaymentStatusUnpaid,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	err := validator.New().Struct(o)
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

// IsPaid reports whether the checkout of the order succeeded
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// MarkPaid records a successful checkout. A pending order moves to PROCESSING;
// an order that is already paid is left as is and changed is false.
func (o *Order) MarkPaid(sessionID string, now time.Time) (changed bool) {
	if o.IsPaid() {
		return false
	}
	o.PaymentStatus = PaymentStatusPaid
	if sessionID != "" {
		o.StripeSessionID = &sessionID
	}
	if o.Status == StatusPending {
		o.Status = StatusProcessing
	}
	o.DateTimeUpdated = now
	return true
}

// Cancel moves an unpaid pending order to CANCELLED
func (o *Order) Cancel(now time.Time) error {
	if o.Status != StatusPending || o.IsPaid() {
		return fmt.Errorf("%w: cannot cancel %s order %s", apperrors.ErrInvalidTransition, o.Status, o.ID)
	}
	o.Status = StatusCancelled
	o.DateTimeUpdated = now
	return nil
}

// Patch is a partial admin update; nil fields are left unchanged
type Patch struct {
	Status            *Status `json:"status,omitempty"`
	ImagesProcessed   *bool   `json:"imagesProcessed,omitempty"`
	TrainingInitiated *bool   `json:"trainingInitiated,omitempty"`
	ImagesGenerated   *bool   `json:"imagesGenerated,omitempty"`
	OrderCompleted    *bool   `json:"orderCompleted,omitempty"`
}

// Validate checks the patch names a known status and changes at least one field
func (p *Patch) Validate() error {
	if p.Status == nil && p.ImagesProcessed == nil && p.TrainingInitiated == nil &&
		p.ImagesGenerated == nil && p.OrderCompleted == nil {
		return apperrors.InvalidInput("patch contains no fields")
	}
	if p.Status != nil && !p.Status.Valid() {
		return apperrors.InvalidInput("unknown order status %q", *p.Status)
	}
	return nil
}

// Apply writes the patch onto the order. Any status may be set; moving to
// COMPLETED also ticks OrderCompleted and stamps the completion time.
// completedNow is true only when the order was not COMPLETED before.
func (o *Order) Apply(p *Patch, now time.Time) (completedNow bool) {
	wasCompleted := o.Status == StatusCompleted

	if p.ImagesProcessed != nil {
		o.Progress.ImagesProcessed = *p.ImagesProcessed
	}
	if p.TrainingInitiated != nil {
		o.Progress.TrainingInitiated = *p.TrainingInitiated
	}
	if p.ImagesGenerated != nil {
		o.Progress.ImagesGenerated = *p.ImagesGenerated
	}
	if p.OrderCompleted != nil {
		o.Progress.OrderCompleted = *p.OrderCompleted
	}
	if p.Status != nil {
		o.Status = *p.Status
	}

	if o.Status == StatusCompleted {
		o.Progress.OrderCompleted = true
		if !wasCompleted || o.DateTimeCompleted == nil {
			completedAt := now
			o.DateTimeCompleted = &completedAt
		}
	}

	o.DateTimeUpdated = now
	return !wasCompleted && o.Status == StatusCompleted
}
