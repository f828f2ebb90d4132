// Package errorlogs records server failures in the database so administrators can review them.
package errorlogs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ErrorLog is one recorded failure
type ErrorLog struct {
	ID              string
	Source          string
	Message         string
	Detail          string
	UserID          *string
	DateTimeCreated time.Time
}

// New creates an ErrorLog stamped now; an empty userID is stored as nil
func New(source, message, detail, userID string, now time.Time) *ErrorLog {
	entry := &ErrorLog{
		ID:              uuid.NewString(),
		Source:          source,
		Message:         truncate(message, 1000),
		Detail:          truncate(detail, 10000),
		DateTimeCreated: now,
	}
	if userID != "" {
		entry.UserID = &userID
	}
	return entry
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Repository defines the interface for ErrorLog-related operations
type Repository interface {
	Create(ctx context.Context, entry *ErrorLog) error
	// ListRecent returns at most limit entries, newest first
	ListRecent(ctx context.Context, limit int) ([]*ErrorLog, error)
}

// Recorder writes failures best effort; it never returns an error to the caller
type Recorder interface {
	Record(ctx context.Context, source string, err error, userID string)
	ListRecent(ctx context.Context, limit int) ([]*ErrorLog, error)
}
