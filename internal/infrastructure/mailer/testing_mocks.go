//go:build unit
// +build unit

package mailer

import (
	"context"
	"sync"

	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
)

// RecordingMailer keeps every sent message; for tests
type RecordingMailer struct {
	mu       sync.Mutex
	Messages []*notifications.Message
	Err      error
}

// Send records msg and returns Err
func (m *RecordingMailer) Send(_ context.Context, msg *notifications.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, msg)
	return m.Err
}
