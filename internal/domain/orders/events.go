package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event types published on the order exchange
const (
	EventOrderCreated   = "order.created"
	EventOrderPaid      = "order.paid"
	EventOrderUpdated   = "order.updated"
	EventOrderCompleted = "order.completed"
	EventOrderCancelled = "order.cancelled"
	EventOrderGenerated = "order.generated"
)

// Event is a change notification for downstream consumers (generation pipeline, analytics)
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	Status     Status    `json:"status"`
	Progress   Progress  `json:"progress"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventTypeFor returns the event type announcing a move to status, e.g. "order.completed"
func EventTypeFor(status Status) string {
	return "order." + strings.ToLower(string(status))
}

// NewEvent builds an event of eventType describing the current state of order
func NewEvent(eventType string, order *Order, now time.Time) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		Progress:   order.Progress,
		OccurredAt: now,
	}
}
