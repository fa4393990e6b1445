// Package mailer composes transfer notifications and delivers them over a
// single outbound SMTP relay, one attempt per message.
package mailer

import (
	"context"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/traydesk/transferdesk/internal/common"
)

// Dispatcher performs one outbound send attempt and reports a boolean
// outcome. Implementations never propagate a failure as an error; either
// the send completed or it did not.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) bool
}

// SMTPDispatcher delivers via an authenticated SMTP relay.
type SMTPDispatcher struct {
	cfg    common.SMTPConfig
	logger *slog.Logger
}

func NewSMTPDispatcher(cfg common.SMTPConfig, logger *slog.Logger) *SMTPDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPDispatcher{cfg: cfg, logger: logger}
}

// Send composes the MIME message (plain-text body plus one base64 attachment
// named after the artifact's base name), authenticates, sends once, and
// closes the connection. Any failure at any step yields false; no retry.
func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) bool {
	m := mail.NewMsg()
	if err := m.From(d.cfg.From); err != nil {
		d.logger.Error("mailer.compose.failed", "stage", "from", "error", err)
		return false
	}
	if err := m.To(msg.To); err != nil {
		d.logger.Error("mailer.compose.failed", "stage", "to", "error", err)
		return false
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	if msg.AttachmentPath != "" {
		m.AttachFile(msg.AttachmentPath)
	}

	client, err := mail.NewClient(d.cfg.Host,
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(d.cfg.Timeout),
	)
	if err != nil {
		d.logger.Error("mailer.client.failed", "host", d.cfg.Host, "error", err)
		return false
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		d.logger.Error("mailer.send.failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return false
	}

	d.logger.Info("mailer.send.ok", "to", msg.To, "subject", msg.Subject)
	return true
}
