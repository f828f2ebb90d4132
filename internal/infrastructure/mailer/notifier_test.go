//go:build unit
// +build unit

package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T, adminEmail string) (notifications.Notifier, *RecordingMailer) {
	t.Helper()

	recorder := &RecordingMailer{}
	notifier, err := NewNotifier(recorder, "https://realshot.test/", adminEmail, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return notifier, recorder
}

func TestNotifier_OrderCompleted(t *testing.T) {
	notifier, recorder := newTestNotifier(t, "")
	user := users.NewUser("jane@example.com", "Jane <script>", users.ProviderCredentials, time.Now())
	order := orders.NewPendingOrder(user.ID, "pro", 5900, "usd", time.Now())

	require.NoError(t, notifier.OrderCompleted(context.Background(), user, order))

	require.Len(t, recorder.Messages, 1)
	msg := recorder.Messages[0]
	assert.Equal(t, []string{"jane@example.com"}, msg.To)
	assert.Contains(t, msg.HTMLBody, "https://realshot.test/orders/"+order.ID)
	assert.Contains(t, msg.HTMLBody, "Jane &lt;script&gt;")
	assert.Contains(t, msg.TextBody, "ready")
}

func TestNotifier_OrderConfirmedFormatsAmount(t *testing.T) {
	notifier, recorder := newTestNotifier(t, "")
	user := users.NewUser("sam@example.com", "", users.ProviderGoogle, time.Now())
	order := orders.NewPendingOrder(user.ID, "starter", 2905, "eur", time.Now())

	require.NoError(t, notifier.OrderConfirmed(context.Background(), user, order))

	require.Len(t, recorder.Messages, 1)
	assert.Contains(t, recorder.Messages[0].HTMLBody, "29.05 EUR")
	assert.Contains(t, recorder.Messages[0].HTMLBody, "Hi sam,")
}

func TestNotifier_Welcome(t *testing.T) {
	notifier, recorder := newTestNotifier(t, "")
	user := users.NewUser("sam@example.com", "Sam", users.ProviderCredentials, time.Now())

	require.NoError(t, notifier.Welcome(context.Background(), user))
	require.Len(t, recorder.Messages, 1)
	assert.Contains(t, recorder.Messages[0].HTMLBody, "https://realshot.test/studio")
}

func TestNotifier_CleanupReport(t *testing.T) {
	summary := &notifications.CleanupSummary{Job: "uploads", Orders: 2, Photos: 9, Blobs: 8, Failures: []string{"uploads/u/1.png: timeout"}}

	silent, recorder := newTestNotifier(t, "")
	require.NoError(t, silent.CleanupReport(context.Background(), summary))
	assert.Empty(t, recorder.Messages)

	notifier, recorder := newTestNotifier(t, "ops@realshot.test")
	require.NoError(t, notifier.CleanupReport(context.Background(), summary))
	require.Len(t, recorder.Messages, 1)
	assert.Equal(t, "Cleanup uploads: 1 failures", recorder.Messages[0].Subject)
	assert.Contains(t, recorder.Messages[0].HTMLBody, "uploads/u/1.png: timeout")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "29.00 USD", FormatAmount(2900, "usd"))
	assert.Equal(t, "0.50 EUR", FormatAmount(50, "eur"))
}

func TestBuildMessage(t *testing.T) {
	_, err := buildMessage("studio@realshot.test", &notifications.Message{To: []string{"a@b.co"}, Subject: "hi", TextBody: "x", HTMLBody: "<p>x</p>"})
	require.NoError(t, err)

	_, err = buildMessage("not an address", &notifications.Message{To: []string{"a@b.co"}})
	assert.Error(t, err)
}
