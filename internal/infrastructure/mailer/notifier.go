package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type templateNotifier struct {
	mailer     notifications.Mailer
	templates  *template.Template
	appURL     string
	adminEmail string
	logger     logger.Logger
}

// NewNotifier creates a Notifier rendering the embedded HTML templates.
// CleanupReport is skipped when adminEmail is empty.
func NewNotifier(mailer notifications.Mailer, appURL, adminEmail string, logger logger.Logger) (notifications.Notifier, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &templateNotifier{
		mailer:     mailer,
		templates:  templates,
		appURL:     strings.TrimRight(appURL, "/"),
		adminEmail: adminEmail,
		logger:     logger,
	}, nil
}

type customerData struct {
	Name      string
	StudioURL string
	OrderURL  string
	OrderID   string
	PackageID string
	Amount    string
}

func (n *templateNotifier) customerData(user *users.User, order *orders.Order) customerData {
	name := user.Name
	if name == "" {
		name = strings.SplitN(user.Email, "@", 2)[0]
	}

	data := customerData{Name: name, StudioURL: n.appURL + "/studio"}
	if order != nil {
		data.OrderID = order.ID
		data.OrderURL = n.appURL + "/orders/" + order.ID
		data.PackageID = order.PackageID
		data.Amount = FormatAmount(order.Amount, order.Currency)
	}
	return data
}

func (n *templateNotifier) Welcome(ctx context.Context, user *users.User) error {
	data := n.customerData(user, nil)
	text := fmt.Sprintf("Hi %s,\n\nWelcome to RealShot. Open the studio to get started: %s\n", data.Name, data.StudioURL)
	return n.send(ctx, []string{user.Email}, "Welcome to RealShot", "welcome.html", data, text)
}

func (n *templateNotifier) OrderConfirmed(ctx context.Context, user *users.User, order *orders.Order) error {
	data := n.customerData(user, order)
	text := fmt.Sprintf("Hi %s,\n\nWe received your payment of %s for order %s.\nView it here: %s\n",
		data.Name, data.Amount, order.ID, data.OrderURL)
	return n.send(ctx, []string{user.Email}, "Your RealShot order is confirmed", "order_confirmed.html", data, text)
}

func (n *templateNotifier) OrderCompleted(ctx context.Context, user *users.User, order *orders.Order) error {
	data := n.customerData(user, order)
	text := fmt.Sprintf("Hi %s,\n\nYour photos are ready: %s\n", data.Name, data.OrderURL)
	return n.send(ctx, []string{user.Email}, "Your RealShot photos are ready", "order_completed.html", data, text)
}

func (n *templateNotifier) CleanupReport(ctx context.Context, summary *notifications.CleanupSummary) error {
	if n.adminEmail == "" {
		n.logger.Debug("no admin email configured, cleanup report not mailed", "job", summary.Job)
		return nil
	}

	subject := fmt.Sprintf("Cleanup %s: %d photos deleted", summary.Job, summary.Photos)
	if len(summary.Failures) > 0 {
		subject = fmt.Sprintf("Cleanup %s: %d failures", summary.Job, len(summary.Failures))
	}
	text := fmt.Sprintf("Job: %s\nOrders: %d\nPhotos: %d\nBlobs: %d\nFailures:\n%s\n",
		summary.Job, summary.Orders, summary.Photos, summary.Blobs, strings.Join(summary.Failures, "\n"))
	return n.send(ctx, []string{n.adminEmail}, subject, "cleanup_report.html", summary, text)
}

func (n *templateNotifier) send(ctx context.Context, to []string, subject, templateName string, data interface{}, text string) error {
	var body bytes.Buffer
	if err := n.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", templateName, err)
	}

	return n.mailer.Send(ctx, &notifications.Message{
		To:       to,
		Subject:  subject,
		HTMLBody: body.String(),
		TextBody: text,
	})
}

// FormatAmount renders minor currency units, e.g. 2900 usd as "29.00 USD"
func FormatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", amount/100, amount%100, strings.ToUpper(currency))
}
