package notification

import (
	"context"

	"go.uber.org/zap"

	"planora.io/planora/internal/pkg/logger"
)

// EmailChannel delivers one email. Implementations wrap a real
// transport (SMTP, an ESP API); the core only decides whether and what
// to send. A returned error fails the delivery job and lets the queue
// redeliver.
type EmailChannel interface {
	SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) error
}

// SMSChannel delivers one SMS to an E.164-normalized phone number.
type SMSChannel interface {
	SendSMS(ctx context.Context, phone, message string) error
}

// LogEmailChannel writes outbound email to the log instead of a
// transport. Default in development and tests.
type LogEmailChannel struct {
	From string
}

// SendEmail logs the message and reports success.
func (c *LogEmailChannel) SendEmail(_ context.Context, to, subject, textBody, _ string) error {
	logger.Info("email (log channel)",
		zap.String("from", c.From),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("text_bytes", len(textBody)),
	)
	return nil
}

// LogSMSChannel writes outbound SMS to the log instead of a transport.
type LogSMSChannel struct{}

// SendSMS logs the message and reports success.
func (c *LogSMSChannel) SendSMS(_ context.Context, phone, message string) error {
	logger.Info("sms (log channel)",
		zap.String("to", phone),
		zap.Int("message_bytes", len(message)),
	)
	return nil
}

var (
	_ EmailChannel = (*LogEmailChannel)(nil)
	_ SMSChannel   = (*LogSMSChannel)(nil)
)
