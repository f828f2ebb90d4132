// Package notifications defines the transactional emails sent to customers and administrators.
package notifications

import (
	"context"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
)

// Message is a rendered email
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers rendered messages
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// CleanupSummary is the part of a cleanup run an administrator is told about
type CleanupSummary struct {
	Job      string
	Orders   int
	Photos   int
	Blobs    int
	Failures []string
}

// Notifier renders and sends the emails of the order lifecycle
type Notifier interface {
	Welcome(ctx context.Context, user *users.User) error
	OrderConfirmed(ctx context.Context, user *users.User, order *orders.Order) error
	OrderCompleted(ctx context.Context, user *users.User, order *orders.Order) error
	CleanupReport(ctx context.Context, summary *CleanupSummary) error
}
