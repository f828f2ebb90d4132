package mailer

import (
	"context"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/wneessen/go-mail"
)

type smtpMailer struct {
	client *mail.Client
	from   string
	logger logger.Logger
}

// NewSMTPMailer creates a Mailer delivering through the configured SMTP relay
func NewSMTPMailer(settings *config.SMTPSettings, logger logger.Logger) (notifications.Mailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	options := []mail.Option{mail.WithPort(settings.Port)}
	if settings.UseTLS {
		options = append(options, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		options = append(options, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if settings.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(settings.Username),
			mail.WithPassword(settings.Password),
		)
	}

	client, err := mail.NewClient(settings.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &smtpMailer{client: client, from: settings.From, logger: logger}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg *notifications.Message) error {
	message, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send mail %q: %w", msg.Subject, err)
	}

	m.logger.Info("mail sent", "subject", msg.Subject, "recipients", len(msg.To))
	return nil
}

func buildMessage(from string, msg *notifications.Message) (*mail.Msg, error) {
	message := mail.NewMsg()
	if err := message.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %s: %w", from, err)
	}
	if err := message.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		message.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}
	return message, nil
}

// logMailer writes messages to the log; used when SMTP is disabled
type logMailer struct {
	logger logger.Logger
}

// NewLogMailer creates a Mailer that only logs what would have been sent
func NewLogMailer(logger logger.Logger) notifications.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, msg *notifications.Message) error {
	m.logger.Info("mail not sent, smtp disabled", "subject", msg.Subject, "to", msg.To)
	m.logger.Debug("mail body", "text", msg.TextBody)
	return nil
}

// NewMailer picks the SMTP mailer when enabled and the log mailer otherwise
func NewMailer(settings *config.SMTPSettings, logger logger.Logger) (notifications.Mailer, error) {
	if !settings.Enabled {
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(settings, logger)
}
