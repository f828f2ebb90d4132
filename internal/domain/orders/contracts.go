package orders

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
)

// OrderRepository defines the interface for Order-related operations
type OrderRepository interface {
	// Create adds a new Order to the database
	Create(ctx context.Context, order *Order) error
	// GetByID retrieves an Order by ID
	GetByID(ctx context.Context, orderID string) (*Order, error)
	// GetByStripeSessionID retrieves the Order a checkout session was opened for
	GetByStripeSessionID(ctx context.Context, sessionID string) (*Order, error)
	// ListByUser returns the orders of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	// List returns the orders matching query
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	// ListCompletedBefore returns COMPLETED orders whose completion time is before cutoff
	ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]*Order, error)
	// ListAbandonedBefore returns PENDING unpaid orders created before cutoff
	ListAbandonedBefore(ctx context.Context, cutoff time.Time) ([]*Order, error)
	// Update saves all fields of an existing Order
	Update(ctx context.Context, order *Order) error
}

// EventPublisher delivers order events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
}

// Detail is an order with everything attached to it
type Detail struct {
	Order           *Order
	User            *users.User
	Uploads         []*photos.UploadedPhoto
	PhotoRequests   []*photos.PhotoRequest
	GeneratedPhotos []*photos.GeneratedPhoto
}

// OrderService defines the customer side of orders
type OrderService interface {
	// List returns the caller's orders
	List(ctx context.Context, userID string) ([]*Order, error)
	// Get returns one of the caller's orders with its attachments
	Get(ctx context.Context, userID, orderID string) (*Detail, error)
	// ListGenerated returns the result images of one of the caller's orders
	ListGenerated(ctx context.Context, userID, orderID string) ([]*photos.GeneratedPhoto, error)
	// Cancel cancels one of the caller's unpaid pending orders
	Cancel(ctx context.Context, userID, orderID string) (*Order, error)
}

// AdminOrderService defines order fulfillment for administrators
type AdminOrderService interface {
	// List returns the orders matching query
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	// Get returns an order with its attachments and owner
	Get(ctx context.Context, orderID string) (*Detail, error)
	// Patch applies a partial status and progress update
	Patch(ctx context.Context, orderID string, patch *Patch) (*Order, error)
	// UploadGenerated stores result images for an order and ticks ImagesGenerated
	UploadGenerated(ctx context.Context, orderID string, form *multipart.Form) ([]*photos.GeneratedPhoto, error)
}
